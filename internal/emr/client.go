// Package emr wraps the EMR cluster-management API behind a narrow
// interface. The real implementation talks to AWS through aws-sdk-go-v2;
// tests substitute the func-field mock.
package emr

import (
	"context"
)

// ClusterState is the lifecycle state reported by the cluster API.
type ClusterState string

const (
	StateStarting             ClusterState = "STARTING"
	StateBootstrapping        ClusterState = "BOOTSTRAPPING"
	StateRunning              ClusterState = "RUNNING"
	StateWaiting              ClusterState = "WAITING"
	StateTerminating          ClusterState = "TERMINATING"
	StateTerminated           ClusterState = "TERMINATED"
	StateTerminatedWithErrors ClusterState = "TERMINATED_WITH_ERRORS"
)

// Modifiable reports whether the cluster accepts attribute changes.
func (s ClusterState) Modifiable() bool {
	switch s {
	case StateStarting, StateBootstrapping, StateRunning, StateWaiting:
		return true
	default:
		return false
	}
}

// Terminated reports whether the cluster is gone or on its way out.
func (s ClusterState) Terminated() bool {
	switch s {
	case StateTerminating, StateTerminated, StateTerminatedWithErrors:
		return true
	default:
		return false
	}
}

// Cluster is the domain view of a DescribeCluster response: only the
// attributes the lifecycle handler acts on.
type Cluster struct {
	ID               string
	State            ClusterState
	ConcurrencyLevel int32
	Tags             map[string]string
}

// ClusterAPI is the capability the lifecycle handler drives. All methods
// are remote calls: possibly slow, possibly throttled, eventually
// consistent. Mutations may be acknowledged before they are applied.
type ClusterAPI interface {
	// DescribeCluster fetches the live cluster attributes.
	// Returns ErrClusterNotFound when the cluster does not exist.
	DescribeCluster(ctx context.Context, clusterID string) (*Cluster, error)

	// ModifyConcurrency asks the cluster to change its step concurrency
	// level. The call returns before the change is observable.
	ModifyConcurrency(ctx context.Context, clusterID string, level int32) error

	// AddTags attaches tags to the cluster.
	AddTags(ctx context.Context, clusterID string, tags map[string]string) error

	// RemoveTags detaches tags from the cluster by key.
	RemoveTags(ctx context.Context, clusterID string, keys []string) error
}
