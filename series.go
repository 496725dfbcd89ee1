package folio

import (
	"sort"
	"time"
)

// Sample is one point of a price time-series.
type Sample struct {
	Time  time.Time
	Price float64
}

// Series is a price history, ascending by timestamp.
type Series []Sample

// Len returns the number of samples.
func (s Series) Len() int { return len(s) }

// Sort orders the series ascending by timestamp, keeping the relative
// order of equal timestamps.
func (s Series) Sort() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Time.Before(s[j].Time) })
}

// Nearest returns the sample time-closest to the target. It binary-searches
// for the first sample at or after the target and compares it with its
// predecessor by absolute time distance; on a tie the earlier sample wins.
// It returns false only when the series is empty.
func (s Series) Nearest(target time.Time) (Sample, bool) {
	if len(s) == 0 {
		return Sample{}, false
	}
	i := sort.Search(len(s), func(i int) bool { return !s[i].Time.Before(target) })
	if i == 0 {
		return s[0], true
	}
	if i == len(s) {
		return s[len(s)-1], true
	}
	after, before := s[i], s[i-1]
	if target.Sub(before.Time) <= after.Time.Sub(target) {
		return before, true
	}
	return after, true
}

// Scale returns a copy of the series with every price multiplied by the
// factor.
func (s Series) Scale(factor float64) Series {
	out := make(Series, len(s))
	for i, sample := range s {
		out[i] = Sample{Time: sample.Time, Price: sample.Price * factor}
	}
	return out
}
