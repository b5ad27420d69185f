package binding

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLevel converts the wire representation of a step concurrency level
// into its integer form. The inbound contract carries the level as a
// decimal string; anything non-numeric, signed, zero-padded, or outside
// [MinLevel, MaxLevel] is rejected.
func ParseLevel(s string) (int32, error) {
	if s == "" {
		return 0, fmt.Errorf("step concurrency level must not be empty")
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") || (len(s) > 1 && strings.HasPrefix(s, "0")) {
		return 0, fmt.Errorf("step concurrency level %q is not a plain decimal integer", s)
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("step concurrency level %q is not an integer", s)
	}
	level := int32(n)
	if err := ValidateLevel(level); err != nil {
		return 0, err
	}
	return level, nil
}
