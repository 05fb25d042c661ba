package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys <package>",
	Short: "List the placeholder values a package needs",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeys,
}

// runKeys prints one line per required placeholder: key, type and the entry
// that first declares it.
func runKeys(cmd *cobra.Command, args []string) error {
	pkg, err := readPackage(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reqs := pkg.Metadata().PlaceholderKeys()
	if len(reqs) == 0 {
		fmt.Fprintln(out, "no placeholders")
		return nil
	}
	for _, req := range reqs {
		fmt.Fprintf(out, "%-24s %-5s %s\n", color.YellowString(req.Key.String()), req.Type, req.Entry)
	}
	return nil
}
