package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/branched-services/go-accountpkg"
	"github.com/branched-services/go-accountpkg/accounts"
)

var buildCmd = &cobra.Command{
	Use:   "build <metadata.toml> <code>",
	Short: "Build a component package",
	Long: `Build a component package from TOML metadata and assembled code.
The exported procedures are taken from the "export." declarations of the code
unless --export is given.`,
	Args: cobra.ExactArgs(2),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output file (default: <metadata>.accpkg)")
	buildCmd.Flags().StringSlice("export", nil, "exported procedure name (repeatable)")
}

// runBuild parses and validates the metadata, wraps the code into a library
// and writes the encoded package.
func runBuild(cmd *cobra.Command, args []string) error {
	metadataPath, codePath := args[0], args[1]

	text, err := os.ReadFile(metadataPath)
	if err != nil {
		return err
	}
	metadata, err := accountpkg.ParseMetadata(text)
	if err != nil {
		return fmt.Errorf("%s: %w", metadataPath, err)
	}
	logger.Debug().Str("name", metadata.Name()).Int("entries", len(metadata.StorageEntries())).Msg("metadata parsed")

	code, err := os.ReadFile(codePath)
	if err != nil {
		return err
	}
	exports, err := cmd.Flags().GetStringSlice("export")
	if err != nil {
		return err
	}
	if len(exports) == 0 {
		exports = accounts.ProcedureExports(string(code))
	}
	lib, err := accountpkg.NewLibrary(code, exports...)
	if err != nil {
		return fmt.Errorf("%s: %w", codePath, err)
	}

	pkg, err := accountpkg.NewPackage(metadata, lib)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		output = packageFileName(metadataPath)
	}
	if err := pkg.WriteFile(output); err != nil {
		return err
	}

	logger.Info().Str("path", output).Str("library", lib.Digest().String()).Msg("package written")
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", color.GreenString("built"), output, metadata.Name())
	return nil
}
