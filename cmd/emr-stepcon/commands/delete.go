package commands

import (
	"github.com/spf13/cobra"

	"github.com/jbx-labs/emr-stepcon/cmd/emr-stepcon/handlers"
)

// Delete returns the command for tearing a binding down.
func Delete() *cobra.Command {
	var (
		uid       string
		clusterID string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a binding, restoring the default level",
		Long: `Delete a binding.

Restores the cluster's step concurrency level to the default of 1 and
removes the bookkeeping tag. Deleting a binding whose cluster is already
gone succeeds: absence is the desired end state.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Delete(cmd.Context(), configPath, uid, clusterID, verbosity)
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "Binding uid returned by create")
	cmd.Flags().StringVar(&clusterID, "cluster-id", "", "Target EMR cluster id")
	_ = cmd.MarkFlagRequired("uid")

	return cmd
}
