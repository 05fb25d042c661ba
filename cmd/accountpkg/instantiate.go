package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/branched-services/go-accountpkg"
)

var instantiateCmd = &cobra.Command{
	Use:   "instantiate <package>",
	Short: "Resolve a package's storage with the given placeholder values",
	Long: `Resolve every storage entry of a package and print the resulting slots.
Values are given as --value key=<hex word|felt> or read from a TOML file with
--values. Command-line values take precedence over the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstantiate,
}

func init() {
	instantiateCmd.Flags().StringArray("value", nil, "placeholder value as key=value (repeatable)")
	instantiateCmd.Flags().String("values", "", "TOML file with placeholder values")
	instantiateCmd.Flags().String("account-type", "", "require the package to target this account type")
}

// runInstantiate parses the values, instantiates the package and prints the slots.
func runInstantiate(cmd *cobra.Command, args []string) error {
	pkg, err := readPackage(args[0])
	if err != nil {
		return err
	}

	parser := newValueParser(pkg.Metadata())
	values := accountpkg.PlaceholderValues{}

	valuesFile, err := cmd.Flags().GetString("values")
	if err != nil {
		return err
	}
	if valuesFile != "" {
		if err := parser.parseFile(valuesFile, values); err != nil {
			return err
		}
	}
	assignments, err := cmd.Flags().GetStringArray("value")
	if err != nil {
		return err
	}
	for _, arg := range assignments {
		if err := parser.parseAssignment(arg, values); err != nil {
			return err
		}
	}

	opts := []accountpkg.InstantiateOption{accountpkg.WithLogger(logger)}
	accountType, err := cmd.Flags().GetString("account-type")
	if err != nil {
		return err
	}
	if accountType != "" {
		t, err := accountpkg.ParseAccountType(accountType)
		if err != nil {
			return err
		}
		opts = append(opts, accountpkg.ForAccountType(t))
	}

	component, err := pkg.Instantiate(values, opts...)
	if err != nil {
		return err
	}
	return printSlots(cmd.OutOrStdout(), pkg.Metadata(), component)
}

// declaredSlots lists the slot index of every instantiated slot. Slots follow
// entry declaration order, which need not be index order.
func declaredSlots(metadata *accountpkg.Metadata) []accountpkg.SlotIndex {
	var indices []accountpkg.SlotIndex
	for _, entry := range metadata.StorageEntries() {
		indices = append(indices, entry.SlotIndices()...)
	}
	return indices
}

// printSlots writes one line per slot, labelled with its declared index,
// followed by map contents.
func printSlots(w io.Writer, metadata *accountpkg.Metadata, component *accountpkg.AccountComponent) error {
	indices := declaredSlots(metadata)
	slots := component.StorageSlots()
	if len(indices) != len(slots) {
		return fmt.Errorf("component has %d slots, metadata declares %d", len(slots), len(indices))
	}
	for i, slot := range slots {
		fmt.Fprintf(w, "%3d %-5s %s\n", indices[i], slot.Type(), color.GreenString(slot.Value().Hex()))

		if m, ok := slot.Map(); ok {
			for _, item := range m.Items() {
				fmt.Fprintf(w, "      %s => %s\n", item.Key.Hex(), item.Value.Hex())
			}
		}
	}
	return nil
}
