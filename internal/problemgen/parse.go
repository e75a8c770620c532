package problemgen

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel parse failures. Evaluators fold these into verdicts; they are
// never surfaced to the learner as raw errors.
var (
	// ErrMissing means the field was empty after trimming. An empty field
	// is "no value", never zero.
	ErrMissing = errors.New("no value entered")

	// ErrUnparsable means text was present but is not a number.
	ErrUnparsable = errors.New("not a number")
)

// ParseNumber parses a free-text answer field. Whitespace is trimmed;
// an empty field yields ErrMissing; non-numeric text yields
// ErrUnparsable; otherwise the value parses as a float64, so "3", "3.0"
// and "+3" all compare equal to the integer 3.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissing
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrUnparsable
	}
	return v, nil
}
