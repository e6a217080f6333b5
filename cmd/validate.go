package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tmoida/lava-test-plans/internal/vars"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that all reference variables for a device are present",
	Long: `Builds the merged variable context and compares it against the
device's reference variables file. Reports every reference variable the
context does not define. Only presence is checked, never values.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	if flagDeviceID == "" {
		return fmt.Errorf("--device-id is required")
	}

	missing, err := vars.Missing(flagVariablesPath, flagDeviceID, resolveDevicePath(), flagVariablesFiles, flagOverwriteVariables)
	if err != nil {
		return err
	}

	if len(missing) > 0 {
		for _, key := range missing {
			fmt.Printf("%s: missing\n", key)
		}
		return fmt.Errorf("%d reference variable(s) missing for device %s", len(missing), flagDeviceID)
	}

	log.Debug().Str("device", flagDeviceID).Msg("all reference variables present")
	fmt.Println("all reference variables present")

	return nil
}
