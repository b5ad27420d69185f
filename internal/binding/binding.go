// Package binding defines the step-concurrency binding model and the pure
// validation and tag-encoding helpers around it. Nothing in this package
// performs I/O; the authoritative state of a binding is always the live
// cluster attribute.
package binding

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// MinLevel and MaxLevel bound the step concurrency level accepted by EMR.
	MinLevel int32 = 1
	MaxLevel int32 = 256

	// DefaultLevel is the level a cluster reverts to when a binding is deleted.
	DefaultLevel int32 = 1
)

// Binding associates a managed step-concurrency level with one EMR cluster.
//
// UID and ClusterID are fixed for the lifetime of the binding; the
// orchestration layer treats a change to either as a replacement, never an
// in-place update. ObservedLevel is recomputed on every read and is never
// cached.
type Binding struct {
	UID           string `yaml:"uid"`
	ClusterID     string `yaml:"clusterId"`
	DesiredLevel  int32  `yaml:"desiredLevel"`
	ObservedLevel int32  `yaml:"observedLevel"`
}

// Ref is the durable handle the orchestration layer persists per binding.
type Ref struct {
	UID       string `yaml:"uid"`
	ClusterID string `yaml:"clusterId"`
}

// MintUID generates a fresh binding identity. Called exactly once per
// binding, at create time; uids are never reused.
func MintUID() string {
	return "scb-" + uuid.NewString()
}

// ValidateLevel checks the step concurrency range locally so that an
// out-of-range request issues zero remote calls.
func ValidateLevel(level int32) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("step concurrency level must be between %d and %d, got %d", MinLevel, MaxLevel, level)
	}
	return nil
}

// ValidateClusterID checks that a cluster identifier is present.
func ValidateClusterID(clusterID string) error {
	if clusterID == "" {
		return fmt.Errorf("cluster id must not be empty")
	}
	return nil
}
