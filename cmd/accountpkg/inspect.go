package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/branched-services/go-accountpkg"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <package>",
	Short: "Show the contents of a component package",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "text", "output format (text|yaml|toml)")
}

// packageView is the serializable summary of a package.
type packageView struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Version     string      `yaml:"version"`
	Targets     []string    `yaml:"targets"`
	Library     libraryView `yaml:"library"`
	Storage     []entryView `yaml:"storage"`
}

type libraryView struct {
	Digest  string   `yaml:"digest"`
	Exports []string `yaml:"exports"`
	Size    int      `yaml:"size"`
}

type entryView struct {
	Name         string                 `yaml:"name"`
	Kind         string                 `yaml:"kind"`
	Slots        []accountpkg.SlotIndex `yaml:"slots,flow"`
	Placeholders []string               `yaml:"placeholders,omitempty"`
}

// newPackageView summarizes pkg.
func newPackageView(pkg *accountpkg.Package) packageView {
	m := pkg.Metadata()
	view := packageView{
		Name:        m.Name(),
		Description: m.Description(),
		Version:     m.Version().String(),
		Targets:     make([]string, 0, len(m.Targets())),
		Library: libraryView{
			Digest:  pkg.Library().Digest().String(),
			Exports: pkg.Library().Exports(),
			Size:    len(pkg.Library().Code()),
		},
		Storage: make([]entryView, 0, len(m.StorageEntries())),
	}
	for _, t := range m.Targets() {
		view.Targets = append(view.Targets, t.String())
	}

	placeholders := make(map[string][]string)
	for _, req := range m.PlaceholderKeys() {
		placeholders[req.Entry] = append(placeholders[req.Entry], fmt.Sprintf("%s (%s)", req.Key, req.Type))
	}
	for _, entry := range m.StorageEntries() {
		view.Storage = append(view.Storage, entryView{
			Name:         entry.EntryName(),
			Kind:         entryKind(entry),
			Slots:        entry.SlotIndices(),
			Placeholders: placeholders[entry.EntryName()],
		})
	}
	return view
}

func entryKind(entry accountpkg.StorageEntry) string {
	switch entry.(type) {
	case accountpkg.ValueEntry:
		return "value"
	case accountpkg.MultiSlotEntry:
		return "multi-slot"
	case accountpkg.MapEntry:
		return "map"
	default:
		return "unknown"
	}
}

// runInspect prints the package in the requested format.
func runInspect(cmd *cobra.Command, args []string) error {
	pkg, err := readPackage(args[0])
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		printPackage(out, newPackageView(pkg))
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(newPackageView(pkg)); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		text, err := pkg.Metadata().MarshalTOML()
		if err != nil {
			return err
		}
		_, err = out.Write(text)
		return err
	default:
		return fmt.Errorf("unknown format %q (expected text, yaml or toml)", format)
	}
}

// printPackage writes a human-readable summary.
func printPackage(w io.Writer, view packageView) {
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", bold(view.Name), color.CyanString(view.Version))
	if view.Description != "" {
		fmt.Fprintf(w, "  %s\n", view.Description)
	}
	fmt.Fprintf(w, "  targets: %s\n", strings.Join(view.Targets, ", "))
	fmt.Fprintf(w, "  library: %s (%d bytes)\n", view.Library.Digest, view.Library.Size)
	fmt.Fprintf(w, "  exports: %s\n", strings.Join(view.Library.Exports, ", "))

	fmt.Fprintf(w, "%s\n", bold("storage"))
	for _, e := range view.Storage {
		slots := make([]string, len(e.Slots))
		for i, s := range e.Slots {
			slots[i] = fmt.Sprint(s)
		}
		fmt.Fprintf(w, "  [%s] %s %s\n", strings.Join(slots, ","), e.Name, color.HiBlackString(e.Kind))
		for _, p := range e.Placeholders {
			fmt.Fprintf(w, "      %s\n", color.YellowString(p))
		}
	}
}
