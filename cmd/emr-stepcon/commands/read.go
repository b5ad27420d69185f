package commands

import (
	"github.com/spf13/cobra"

	"github.com/jbx-labs/emr-stepcon/cmd/emr-stepcon/handlers"
)

// Read returns the command for fetching a binding's live state.
func Read() *cobra.Command {
	var (
		uid       string
		clusterID string
	)

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Show the live state of a binding",
		Long: `Show the live state of a binding.

The observed level is re-fetched from the cluster on every read; nothing
is cached. Fails with a not-found error when the cluster is gone or the
binding no longer owns it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Read(cmd.Context(), configPath, uid, clusterID, verbosity)
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "Binding uid returned by create")
	cmd.Flags().StringVar(&clusterID, "cluster-id", "", "Target EMR cluster id")
	_ = cmd.MarkFlagRequired("uid")

	return cmd
}
