package commands

import (
	"github.com/spf13/cobra"

	"github.com/jbx-labs/emr-stepcon/cmd/emr-stepcon/handlers"
)

// Init returns the command for interactively creating a configuration.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a configuration file.

Asks for the AWS region and an optional default cluster id, then writes
the configuration YAML. Requires an interactive terminal.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "emr-stepcon.yaml", "Output file path")

	return cmd
}
