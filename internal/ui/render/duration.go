package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned by ParseDuration for unparseable input.
var ErrInvalidDuration = errors.New("invalid duration")

// Duration formats whole seconds as m:ss, or h:mm:ss from one hour up.
// Negative values keep their sign.
func Duration(seconds int) string {
	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	h, m, s := seconds/3600, seconds/60%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, h, m, s)
	}
	return fmt.Sprintf("%s%d:%02d", sign, m, s)
}

// ParseDuration reads whole seconds ("245", "-3") or a clock form ("4:05",
// "1:02:05"). Clock fields after the first must be in 0..59. The sign of a
// negative input is kept so callers can apply their own policy.
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDuration)
	}

	fields := strings.Split(s, ":")
	if len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	negative := strings.HasPrefix(fields[0], "-")
	if negative && len(fields) > 1 {
		fields[0] = fields[0][1:]
	}

	total := 0
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		if i > 0 && (n < 0 || n > 59 || len(f) != 2) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		if i == 0 && len(fields) > 1 && n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}
		if total > (math.MaxInt-n)/60 {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidDuration, s)
		}
		total = total*60 + n
	}

	if negative && len(fields) > 1 {
		total = -total
	}
	return total, nil
}
