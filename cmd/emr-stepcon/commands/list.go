package commands

import (
	"github.com/spf13/cobra"

	"github.com/jbx-labs/emr-stepcon/cmd/emr-stepcon/handlers"
)

// List returns the command for reading all known bindings.
func List() *cobra.Command {
	var refsPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Read every binding in a refs file",
		Long: `Read every binding listed in a refs file.

The refs file is the orchestration layer's record of known bindings:

  bindings:
    - uid: scb-7f3a...
      clusterId: j-1K48XXXXXXHCB

Each entry is read live, one at a time. An entry that fails is reported
on stderr and does not stop the rest.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), configPath, refsPath, verbosity)
		},
	}

	cmd.Flags().StringVarP(&refsPath, "refs", "f", "bindings.yaml", "Path to the refs file")

	return cmd
}
