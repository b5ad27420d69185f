// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

var (
	configPath string
	verbosity  int
)

// Root returns the root command for the emr-stepcon CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emr-stepcon",
		Short: "Manage the step concurrency level of EMR clusters",
		Long: `emr-stepcon binds a managed step concurrency level to an EMR cluster.

A binding claims one cluster's StepConcurrencyLevel attribute, tracks it
through a bookkeeping tag, and restores the default level of 1 when the
binding is deleted. The live cluster attribute is always the source of
truth; nothing is cached locally.`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: emr-stepcon.yaml)")
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")

	cmd.AddCommand(Init())
	cmd.AddCommand(Create())
	cmd.AddCommand(Read())
	cmd.AddCommand(Update())
	cmd.AddCommand(Delete())
	cmd.AddCommand(List())
	cmd.AddCommand(Version())

	return cmd
}
