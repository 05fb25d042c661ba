package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/branched-services/go-accountpkg/accounts"
)

var standardCmd = &cobra.Command{
	Use:   "standard [dir]",
	Short: "Write the standard component packages",
	Long: `Write the built-in authentication, basic wallet and basic faucet packages
to dir (default: the current directory). Existing files are kept unless --force
is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStandard,
}

func init() {
	standardCmd.Flags().Bool("force", false, "overwrite existing package files")
}

func runStandard(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	packages := accounts.Packages()
	names := make([]string, 0, len(packages))
	for name := range packages {
		names = append(names, name)
	}
	slices.Sort(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		path := filepath.Join(dir, name+packageExt)
		if fileExists(path) && !force {
			fmt.Fprintf(out, "%s %s\n", color.YellowString("skipped"), path)
			continue
		}
		if err := packages[name].WriteFile(path); err != nil {
			return err
		}
		logger.Info().Str("path", path).Msg("standard package written")
		fmt.Fprintf(out, "%s %s\n", color.GreenString("wrote"), path)
	}
	return nil
}
