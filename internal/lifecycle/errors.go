package lifecycle

import (
	"fmt"
)

// ValidationError reports bad input shape or range. It is raised before
// any remote call, so a validation failure never has side effects.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports that the cluster is gone or the binding does not
// own it. Fatal for read and update; delete treats the same condition as
// vacuous success.
type NotFoundError struct {
	UID       string
	ClusterID string
}

func (e *NotFoundError) Error() string {
	if e.UID != "" {
		return fmt.Sprintf("binding %s not found on cluster %s", e.UID, e.ClusterID)
	}
	return fmt.Sprintf("cluster %s not found", e.ClusterID)
}

// ThrottlingError reports that the API kept rejecting a call for rate
// limiting past the retry budget. The operation is safe to re-issue.
type ThrottlingError struct {
	Err error
}

func (e *ThrottlingError) Error() string {
	return fmt.Sprintf("throttled past retry budget: %v", e.Err)
}

func (e *ThrottlingError) Unwrap() error { return e.Err }

// ConflictError reports that the cluster cannot take this binding's
// modification: either another binding already owns the attribute, or a
// competing modification did not clear within the budget.
type ConflictError struct {
	ClusterID string
	OwnerUID  string
	Err       error
}

func (e *ConflictError) Error() string {
	if e.OwnerUID != "" {
		return fmt.Sprintf("cluster %s is already bound by %s", e.ClusterID, e.OwnerUID)
	}
	return fmt.Sprintf("cluster %s is busy with another modification: %v", e.ClusterID, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// PartialFailureError reports that a mutating call was issued but the
// operation did not finish: the remote state is unknown and must be
// re-read, not assumed. LastObserved carries the last concurrency level a
// probe saw, or -1 when nothing was observed after the mutation.
// Re-issuing the same operation is safe; re-sending an already-applied
// level is a remote no-op.
type PartialFailureError struct {
	Op           string
	ClusterID    string
	LastObserved int32
	Err          error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s on cluster %s may be partially applied (last observed level %d): %v",
		e.Op, e.ClusterID, e.LastObserved, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }
