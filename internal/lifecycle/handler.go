// Package lifecycle drives the step-concurrency binding state machine:
// create, read, update, delete, list. Each operation turns a desired-state
// request into idempotent cluster API calls, waits for the
// eventually-consistent API to converge, and returns either a populated
// binding or a typed error. The live cluster attribute is the single
// source of truth; nothing is cached between operations.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/go-logr/logr"

	"github.com/jbx-labs/emr-stepcon/internal/binding"
	"github.com/jbx-labs/emr-stepcon/internal/config"
	"github.com/jbx-labs/emr-stepcon/internal/emr"
	"github.com/jbx-labs/emr-stepcon/internal/retry"
	"github.com/jbx-labs/emr-stepcon/internal/stabilize"
)

// Handler orchestrates binding operations against one cluster API. It is
// stateless across invocations; the orchestration layer guarantees at most
// one in-flight operation per binding, but bindings on the same cluster
// from other owners are a real hazard, guarded by the owner tag.
type Handler struct {
	api      emr.ClusterAPI
	log      logr.Logger
	timeouts *config.Timeouts
}

// Option is a functional option for Handler construction.
type Option func(*Handler)

// WithLogger injects a logger; the default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(h *Handler) { h.log = log }
}

// WithTimeouts overrides the environment-derived timeout budgets.
func WithTimeouts(t *config.Timeouts) Option {
	return func(h *Handler) { h.timeouts = t }
}

// New builds a Handler around the given cluster API.
func New(api emr.ClusterAPI, opts ...Option) *Handler {
	h := &Handler{
		api:      api,
		log:      logr.Discard(),
		timeouts: config.LoadTimeouts(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Create binds a fresh uid to the cluster and raises its step concurrency
// level to desiredLevel. Nothing is committed before the modify call; any
// failure at or after it is reported as potentially partial, because the
// remote API exposes no cancel.
func (h *Handler) Create(ctx context.Context, clusterID string, desiredLevel int32) (*binding.Binding, error) {
	if err := binding.ValidateClusterID(clusterID); err != nil {
		return nil, &ValidationError{Field: "clusterId", Err: err}
	}
	if err := binding.ValidateLevel(desiredLevel); err != nil {
		return nil, &ValidationError{Field: "stepConcurrencyLevel", Err: err}
	}

	cluster, err := h.describe(ctx, clusterID)
	if err != nil {
		if emr.IsNotFound(err) {
			return nil, &NotFoundError{ClusterID: clusterID}
		}
		return nil, err
	}
	if !cluster.State.Modifiable() {
		return nil, &NotFoundError{ClusterID: clusterID}
	}
	if owner := binding.OwnerUID(cluster.Tags); owner != "" {
		// Single-ownership policy: one binding per cluster.
		return nil, &ConflictError{ClusterID: clusterID, OwnerUID: owner}
	}

	b := &binding.Binding{
		UID:          binding.MintUID(),
		ClusterID:    clusterID,
		DesiredLevel: desiredLevel,
	}
	h.log.Info("creating binding", "uid", b.UID, "clusterId", clusterID, "level", desiredLevel)

	observed, err := h.applyLevel(ctx, clusterID, desiredLevel, h.timeouts.Create)
	if err != nil {
		return nil, &PartialFailureError{Op: "create", ClusterID: clusterID, LastObserved: observed, Err: err}
	}
	if err := h.tag(ctx, clusterID, binding.OwnerTag(b.UID)); err != nil {
		return nil, &PartialFailureError{Op: "create", ClusterID: clusterID, LastObserved: observed, Err: err}
	}

	b.ObservedLevel = observed
	return b, nil
}

// Read re-fetches the live concurrency level. It never mutates; the
// binding record is treated as a cache that this call refreshes.
func (h *Handler) Read(ctx context.Context, uid, clusterID string) (*binding.Binding, error) {
	if err := binding.ValidateClusterID(clusterID); err != nil {
		return nil, &ValidationError{Field: "clusterId", Err: err}
	}
	if uid == "" {
		return nil, &ValidationError{Field: "uid", Err: fmt.Errorf("uid must not be empty")}
	}

	cluster, err := h.describe(ctx, clusterID)
	if err != nil {
		if emr.IsNotFound(err) {
			return nil, &NotFoundError{UID: uid, ClusterID: clusterID}
		}
		return nil, err
	}
	if cluster.State.Terminated() || binding.OwnerUID(cluster.Tags) != uid {
		return nil, &NotFoundError{UID: uid, ClusterID: clusterID}
	}

	return &binding.Binding{
		UID:           uid,
		ClusterID:     clusterID,
		DesiredLevel:  cluster.ConcurrencyLevel,
		ObservedLevel: cluster.ConcurrencyLevel,
	}, nil
}

// Update moves the binding to newLevel. uid and clusterId are never
// touched; the owner tag stays as is. Already-applied levels short-circuit
// without a redundant modify call.
func (h *Handler) Update(ctx context.Context, uid, clusterID string, newLevel int32) (*binding.Binding, error) {
	if err := binding.ValidateClusterID(clusterID); err != nil {
		return nil, &ValidationError{Field: "clusterId", Err: err}
	}
	if uid == "" {
		return nil, &ValidationError{Field: "uid", Err: fmt.Errorf("uid must not be empty")}
	}
	if err := binding.ValidateLevel(newLevel); err != nil {
		return nil, &ValidationError{Field: "stepConcurrencyLevel", Err: err}
	}

	cluster, err := h.describe(ctx, clusterID)
	if err != nil {
		if emr.IsNotFound(err) {
			return nil, &NotFoundError{UID: uid, ClusterID: clusterID}
		}
		return nil, err
	}
	if !cluster.State.Modifiable() || binding.OwnerUID(cluster.Tags) != uid {
		return nil, &NotFoundError{UID: uid, ClusterID: clusterID}
	}

	b := &binding.Binding{UID: uid, ClusterID: clusterID, DesiredLevel: newLevel}
	if cluster.ConcurrencyLevel == newLevel {
		// Idempotent no-op: the desired level is already applied.
		b.ObservedLevel = newLevel
		return b, nil
	}

	h.log.Info("updating binding", "uid", uid, "clusterId", clusterID, "level", newLevel)
	observed, err := h.applyLevel(ctx, clusterID, newLevel, h.timeouts.Update)
	if err != nil {
		return nil, &PartialFailureError{Op: "update", ClusterID: clusterID, LastObserved: observed, Err: err}
	}

	b.ObservedLevel = observed
	return b, nil
}

// Delete restores the cluster's default level and removes the owner tag.
// A cluster that is gone, terminated, or owned by someone else counts as
// already deleted: absence is the desired end state, so a second delete
// is never an error.
func (h *Handler) Delete(ctx context.Context, uid, clusterID string) error {
	if err := binding.ValidateClusterID(clusterID); err != nil {
		return &ValidationError{Field: "clusterId", Err: err}
	}
	if uid == "" {
		return &ValidationError{Field: "uid", Err: fmt.Errorf("uid must not be empty")}
	}

	cluster, err := h.describe(ctx, clusterID)
	if err != nil {
		if emr.IsNotFound(err) {
			h.log.Info("cluster already gone, delete is vacuous", "uid", uid, "clusterId", clusterID)
			return nil
		}
		return err
	}
	if cluster.State.Terminated() {
		return nil
	}
	if binding.OwnerUID(cluster.Tags) != uid {
		// Tag already removed, or the cluster belongs to another binding.
		// Either way this binding is gone; never stomp a foreign owner.
		return nil
	}

	h.log.Info("deleting binding", "uid", uid, "clusterId", clusterID)
	if cluster.ConcurrencyLevel != binding.DefaultLevel {
		observed, err := h.applyLevel(ctx, clusterID, binding.DefaultLevel, h.timeouts.Delete)
		if err != nil {
			return &PartialFailureError{Op: "delete", ClusterID: clusterID, LastObserved: observed, Err: err}
		}
	}
	if err := h.untag(ctx, clusterID, []string{binding.OwnerTagKey}); err != nil {
		return &PartialFailureError{Op: "delete", ClusterID: clusterID, LastObserved: binding.DefaultLevel, Err: err}
	}
	return nil
}

// List reads each known binding in turn, lazily. One element failing
// yields an error for that element only; the rest of the sequence is
// still produced. The sequence is restartable: it holds no state beyond
// the refs slice.
func (h *Handler) List(ctx context.Context, refs []binding.Ref) iter.Seq2[*binding.Binding, error] {
	return func(yield func(*binding.Binding, error) bool) {
		for _, ref := range refs {
			b, err := h.Read(ctx, ref.UID, ref.ClusterID)
			if err != nil {
				if !yield(nil, fmt.Errorf("binding %s: %w", ref.UID, err)) {
					return
				}
				continue
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}

// applyLevel issues the modify call and waits for the cluster to report
// the new level. Returns the last observed level (-1 if none) alongside
// any error, so partial failures can surface the last known state.
func (h *Handler) applyLevel(ctx context.Context, clusterID string, level int32, budget time.Duration) (int32, error) {
	if err := h.requestModify(ctx, clusterID, level, budget); err != nil {
		return -1, err
	}
	return h.waitForLevel(ctx, clusterID, level, budget)
}

// requestModify gets the modify call accepted. Throttles are retried at
// the call site; a competing modification holds the call in the
// stabilization poller until it clears or the budget runs out.
func (h *Handler) requestModify(ctx context.Context, clusterID string, level int32, budget time.Duration) error {
	probe := func(ctx context.Context) (stabilize.Outcome, error) {
		err := h.withThrottleRetry(ctx, func() error {
			return h.api.ModifyConcurrency(ctx, clusterID, level)
		})
		switch {
		case err == nil:
			return stabilize.Stable, nil
		case emr.IsConflict(err):
			// Another modification is in flight; it clears on its own.
			return stabilize.Pending, err
		default:
			return stabilize.Failed, err
		}
	}

	err := stabilize.Wait(ctx, probe,
		stabilize.WithTimeout(budget),
		stabilize.WithInitialInterval(h.timeouts.PollInitial),
		stabilize.WithMaxInterval(h.timeouts.PollMax),
	)
	if err == nil {
		return nil
	}

	var probeFailed *stabilize.ProbeFailedError
	if errors.As(err, &probeFailed) {
		return probeFailed.Err
	}
	var timeout *stabilize.TimeoutError
	if errors.As(err, &timeout) && emr.IsConflict(timeout.LastErr) {
		return &ConflictError{ClusterID: clusterID, Err: timeout.LastErr}
	}
	return err
}

// waitForLevel polls the cluster until it reports the requested level.
// Transient describe failures are tolerated while waiting; a cluster that
// terminates mid-wait is fatal.
func (h *Handler) waitForLevel(ctx context.Context, clusterID string, level int32, budget time.Duration) (int32, error) {
	lastObserved := int32(-1)

	probe := func(ctx context.Context) (stabilize.Outcome, error) {
		cluster, err := h.api.DescribeCluster(ctx, clusterID)
		if err != nil {
			if emr.IsNotFound(err) {
				return stabilize.Failed, fmt.Errorf("cluster disappeared while waiting: %w", err)
			}
			return stabilize.Pending, err
		}
		lastObserved = cluster.ConcurrencyLevel
		if cluster.State.Terminated() {
			return stabilize.Failed, fmt.Errorf("cluster %s entered state %s while waiting for level %d", clusterID, cluster.State, level)
		}
		if cluster.ConcurrencyLevel == level {
			return stabilize.Stable, nil
		}
		return stabilize.Pending, fmt.Errorf("observed level %d, want %d", cluster.ConcurrencyLevel, level)
	}

	err := stabilize.Wait(ctx, probe,
		stabilize.WithTimeout(budget),
		stabilize.WithInitialInterval(h.timeouts.PollInitial),
		stabilize.WithMaxInterval(h.timeouts.PollMax),
	)
	return lastObserved, err
}

// describe fetches the cluster, retrying throttled calls.
func (h *Handler) describe(ctx context.Context, clusterID string) (*emr.Cluster, error) {
	var cluster *emr.Cluster
	err := h.withThrottleRetry(ctx, func() error {
		c, err := h.api.DescribeCluster(ctx, clusterID)
		if err != nil {
			return err
		}
		cluster = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cluster, nil
}

// tag attaches the owner tag, retrying throttled calls.
func (h *Handler) tag(ctx context.Context, clusterID string, tags map[string]string) error {
	return h.withThrottleRetry(ctx, func() error {
		return h.api.AddTags(ctx, clusterID, tags)
	})
}

// untag removes the owner tag, retrying throttled calls.
func (h *Handler) untag(ctx context.Context, clusterID string, keys []string) error {
	return h.withThrottleRetry(ctx, func() error {
		return h.api.RemoveTags(ctx, clusterID, keys)
	})
}

// withThrottleRetry re-issues op while the API throttles it. Everything
// else is permanent at this layer; exhausting the budget on a throttle
// surfaces as ThrottlingError.
func (h *Handler) withThrottleRetry(ctx context.Context, op func() error) error {
	err := retry.Do(ctx, func() error {
		if err := op(); err != nil {
			if emr.IsThrottle(err) {
				return err
			}
			return retry.Permanent(err)
		}
		return nil
	},
		retry.WithMaxAttempts(h.timeouts.RetryMaxAttempts),
		retry.WithInitialDelay(h.timeouts.RetryInitialDelay),
	)
	if err != nil && emr.IsThrottle(err) {
		return &ThrottlingError{Err: err}
	}
	return err
}
