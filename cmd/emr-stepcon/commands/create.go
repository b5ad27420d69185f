package commands

import (
	"github.com/spf13/cobra"

	"github.com/jbx-labs/emr-stepcon/cmd/emr-stepcon/handlers"
)

// Create returns the command for creating a step concurrency binding.
//
// Flags:
//
//	--cluster-id: Target EMR cluster (falls back to cluster_id in config)
//	--level: Desired step concurrency level, 1-256 (required)
//
// Environment variables:
//
//	AWS credentials are resolved through the default chain unless the
//	config file carries static credentials.
func Create() *cobra.Command {
	var (
		clusterID string
		level     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Bind a step concurrency level to a cluster",
		Long: `Bind a step concurrency level to an EMR cluster.

The cluster must exist, accept modification, and not already carry a
binding. On success the binding's uid is printed; persist it, it is the
handle for read, update, and delete.

Examples:
  # Raise the level of a specific cluster to 50
  emr-stepcon create --cluster-id j-1K48XXXXXXHCB --level 50

  # Use the default cluster from emr-stepcon.yaml
  emr-stepcon create --level 50`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Create(cmd.Context(), configPath, clusterID, level, verbosity)
		},
	}

	cmd.Flags().StringVar(&clusterID, "cluster-id", "", "Target EMR cluster id")
	cmd.Flags().StringVar(&level, "level", "", "Desired step concurrency level (1-256)")
	_ = cmd.MarkFlagRequired("level")

	return cmd
}
