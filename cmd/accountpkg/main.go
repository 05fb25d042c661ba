package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logLevelEnv overrides the default of the --log-level flag.
const logLevelEnv = "ACCOUNTPKG_LOG_LEVEL"

var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:   "accountpkg",
	Short: "Build and inspect account component packages",
	Long: `accountpkg builds component packages from TOML metadata and assembled code,
inspects existing packages and instantiates them into concrete storage slots.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// main registers the subcommands and persistent flags and executes the root
// command, exiting with status 1 on failure.
func main() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(instantiateCmd)
	rootCmd.AddCommand(standardCmd)

	defaultLevel := "warn"
	if env := os.Getenv(logLevelEnv); env != "" {
		defaultLevel = env
	}
	rootCmd.PersistentFlags().String("log-level", defaultLevel, "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup configures the logger and color output from the persistent flags.
func setup(cmd *cobra.Command, _ []string) error {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		return fmt.Errorf("invalid log level %q", levelName)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	switch colorMode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, on or off)", colorMode)
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    color.NoColor,
	}
	logger = zerolog.New(output).Level(level).With().Timestamp().Str("app", "accountpkg").Logger()
	return nil
}
