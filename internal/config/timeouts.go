package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds the operation and polling budgets. Cluster modification
// can take tens of seconds to minutes, so the mutation budgets default
// generously. All values can be customized via environment variables.
type Timeouts struct {
	Create            time.Duration // Budget for create (modify + stabilize + tag)
	Update            time.Duration // Budget for update (modify + stabilize)
	Delete            time.Duration // Budget for delete (reset + stabilize + untag)
	PollInitial       time.Duration // First interval between stabilization probes
	PollMax           time.Duration // Cap on the interval between probes
	RetryMaxAttempts  int           // Attempts per throttled API call
	RetryInitialDelay time.Duration // First delay between retried API calls
}

// LoadTimeouts loads timeout configuration from environment variables.
// If a variable is not set or invalid, the default is used.
//
// Environment Variables:
//   - EMR_STEPCON_TIMEOUT_CREATE (default: 10m)
//   - EMR_STEPCON_TIMEOUT_UPDATE (default: 10m)
//   - EMR_STEPCON_TIMEOUT_DELETE (default: 10m)
//   - EMR_STEPCON_POLL_INITIAL (default: 2s)
//   - EMR_STEPCON_POLL_MAX (default: 30s)
//   - EMR_STEPCON_RETRY_MAX_ATTEMPTS (default: 5)
//   - EMR_STEPCON_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Create:            parseDuration("EMR_STEPCON_TIMEOUT_CREATE", 10*time.Minute),
		Update:            parseDuration("EMR_STEPCON_TIMEOUT_UPDATE", 10*time.Minute),
		Delete:            parseDuration("EMR_STEPCON_TIMEOUT_DELETE", 10*time.Minute),
		PollInitial:       parseDuration("EMR_STEPCON_POLL_INITIAL", 2*time.Second),
		PollMax:           parseDuration("EMR_STEPCON_POLL_MAX", 30*time.Second),
		RetryMaxAttempts:  parseInt("EMR_STEPCON_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("EMR_STEPCON_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
