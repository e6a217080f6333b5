package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tmoida/lava-test-plans/internal/vars"
)

var (
	flagVariablesPath      string
	flagVariablesFiles     []string
	flagOverwriteVariables []string
	flagDeviceID           string
	flagDevicePath         string
	flagVerbose            bool
)

var rootCmd = &cobra.Command{
	Use:   "lava-test-plans",
	Short: "Assemble, validate and render device test plan definitions",
	Long: `lava-test-plans merges variable files with command line overrides,
validates the result against per-device reference variables, and renders
test plan templates ready for submission to a device farm scheduler.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagVariablesPath, "variables-path", ".", "base directory variable files are resolved against")
	rootCmd.PersistentFlags().StringArrayVar(&flagVariablesFiles, "variables-file", nil, "variables file to merge (repeatable, later files win)")
	rootCmd.PersistentFlags().StringArrayVar(&flagOverwriteVariables, "overwrite-variable", nil, "key=value override applied after all files (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagDeviceID, "device-id", "", "device identifier the plan targets")
	rootCmd.PersistentFlags().StringVar(&flagDevicePath, "device-path", "", "directory holding per-device reference variables (defaults to --variables-path)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	cobra.OnInitialize(initLogger)
}

func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)
}

// buildContext merges the configured variable files and overrides.
func buildContext() (map[string]any, error) {
	return vars.Build(flagVariablesPath, flagVariablesFiles, flagOverwriteVariables)
}

// resolveDevicePath returns the directory reference variables live under,
// preferring --device-path over the variables base directory.
func resolveDevicePath() string {
	if flagDevicePath != "" {
		return flagDevicePath
	}
	return flagVariablesPath
}
