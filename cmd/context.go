package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(contextCmd)
}

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Print the merged variable context as YAML",
	Long: `Merges all --variables-file inputs in order, applies
--overwrite-variable entries on top, and prints the resulting context.
Useful for inspecting what a template would actually see.`,
	Args: cobra.NoArgs,
	RunE: runContext,
}

func runContext(cmd *cobra.Command, args []string) error {
	context, err := buildContext()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(context)
	if err != nil {
		return fmt.Errorf("encoding context: %w", err)
	}

	fmt.Print(string(out))

	return nil
}
