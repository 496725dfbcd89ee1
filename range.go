package folio

import (
	"fmt"
	"time"
)

// Range is a fixed lookback window for historical series. Providers map it
// to a sampling resolution; the combiner uses it to label output points.
type Range string

const (
	Range1D Range = "1D"
	Range1W Range = "1W"
	Range1M Range = "1M"
	Range3M Range = "3M"
	Range6M Range = "6M"
	Range1Y Range = "1Y"
	Range5Y Range = "5Y"
)

// Ranges lists all valid ranges, shortest first.
var Ranges = []Range{Range1D, Range1W, Range1M, Range3M, Range6M, Range1Y, Range5Y}

// ParseRange parses a range label such as "1D" or "5Y".
func ParseRange(s string) (Range, error) {
	for _, r := range Ranges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown range %q", s)
}

// Lookback returns the duration the range reaches into the past.
func (r Range) Lookback() time.Duration {
	switch r {
	case Range1D:
		return 24 * time.Hour
	case Range1W:
		return 7 * 24 * time.Hour
	case Range1M:
		return 30 * 24 * time.Hour
	case Range3M:
		return 91 * 24 * time.Hour
	case Range6M:
		return 182 * 24 * time.Hour
	case Range1Y:
		return 365 * 24 * time.Hour
	case Range5Y:
		return 5 * 365 * 24 * time.Hour
	default:
		return 30 * 24 * time.Hour
	}
}

// Resolution returns the sampling interval a provider should use for the
// range.
func (r Range) Resolution() time.Duration {
	switch r {
	case Range1D:
		return 5 * time.Minute
	case Range1W:
		return time.Hour
	case Range1M, Range3M:
		return 24 * time.Hour
	case Range6M, Range1Y:
		return 24 * time.Hour
	case Range5Y:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Label formats a point timestamp for display within the range: intraday
// ranges show the clock, longer ranges the date.
func (r Range) Label(t time.Time) string {
	switch r {
	case Range1D:
		return t.Format("15:04")
	case Range1W:
		return t.Format("Mon 15:04")
	case Range5Y:
		return t.Format("Jan 2006")
	default:
		return t.Format("Jan 02")
	}
}
