package emr

import (
	"errors"
	"strings"

	"github.com/aws/smithy-go"
)

// ErrClusterNotFound is returned by DescribeCluster when the cluster does
// not exist (or no longer exists).
var ErrClusterNotFound = errors.New("cluster not found")

// IsNotFound reports whether err indicates a missing cluster. The EMR API
// signals unknown cluster ids as an invalid request rather than a distinct
// not-found code, so the message has to be consulted.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrClusterNotFound) {
		return true
	}
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.ErrorCode() != "InvalidRequestException" {
		return false
	}
	msg := strings.ToLower(apiErr.ErrorMessage())
	return strings.Contains(msg, "is not valid") ||
		strings.Contains(msg, "does not exist")
}

// IsThrottle reports whether err is a rate-limit rejection. Throttled
// calls are transient and safe to re-issue.
func IsThrottle(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "ThrottlingException", "Throttling", "TooManyRequestsException", "RequestLimitExceeded":
		return true
	default:
		return false
	}
}

// IsConflict reports whether err indicates the cluster is busy with
// another modification. Conflicts resolve on their own; callers wait via
// the stabilization poller rather than failing.
func IsConflict(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.ErrorCode() == "ConcurrentModificationException" {
		return true
	}
	msg := strings.ToLower(apiErr.ErrorMessage())
	return strings.Contains(msg, "is busy") ||
		strings.Contains(msg, "currently being modified")
}
