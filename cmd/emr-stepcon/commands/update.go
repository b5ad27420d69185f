package commands

import (
	"github.com/spf13/cobra"

	"github.com/jbx-labs/emr-stepcon/cmd/emr-stepcon/handlers"
)

// Update returns the command for changing a binding's level in place.
func Update() *cobra.Command {
	var (
		uid       string
		clusterID string
		level     string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change a binding's step concurrency level",
		Long: `Change a binding's step concurrency level in place.

Only the level changes; the uid and cluster id of a binding are fixed for
its lifetime. Updating to the level the cluster already reports is a
no-op and issues no modify call.

Examples:
  emr-stepcon update --uid scb-7f3a... --cluster-id j-1K48XXXXXXHCB --level 200`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Update(cmd.Context(), configPath, uid, clusterID, level, verbosity)
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "Binding uid returned by create")
	cmd.Flags().StringVar(&clusterID, "cluster-id", "", "Target EMR cluster id")
	cmd.Flags().StringVar(&level, "level", "", "New step concurrency level (1-256)")
	_ = cmd.MarkFlagRequired("uid")
	_ = cmd.MarkFlagRequired("level")

	return cmd
}
