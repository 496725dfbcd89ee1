package folio

import (
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2025, time.March, 3, hour, 0, 0, 0, time.UTC)
}

func TestSeriesNearest(t *testing.T) {
	series := Series{
		{Time: at(10), Price: 1},
		{Time: at(12), Price: 2},
		{Time: at(14), Price: 3},
	}

	cases := []struct {
		name   string
		target time.Time
		want   float64
	}{
		{name: "before first", target: at(8), want: 1},
		{name: "exact match", target: at(12), want: 2},
		{name: "after last", target: at(20), want: 3},
		{name: "closer to predecessor", target: at(10).Add(30 * time.Minute), want: 1},
		{name: "closer to successor", target: at(12).Add(90 * time.Minute), want: 3},
		{name: "equidistant favors earlier", target: at(11), want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sample, ok := series.Nearest(tc.target)
			if !ok {
				t.Fatal("Nearest returned no sample")
			}
			if sample.Price != tc.want {
				t.Errorf("Nearest(%s) = %f, want %f", tc.target, sample.Price, tc.want)
			}
		})
	}
}

func TestSeriesNearestEmpty(t *testing.T) {
	if _, ok := Series(nil).Nearest(at(10)); ok {
		t.Error("empty series must return ok=false")
	}
}

func TestSeriesSortIsStable(t *testing.T) {
	series := Series{
		{Time: at(12), Price: 2},
		{Time: at(10), Price: 1},
		{Time: at(12), Price: 3},
	}
	series.Sort()

	want := []float64{1, 2, 3}
	for i, price := range want {
		if series[i].Price != price {
			t.Errorf("sample %d price = %f, want %f", i, series[i].Price, price)
		}
	}
}

func TestSeriesScale(t *testing.T) {
	series := Series{{Time: at(10), Price: 2}, {Time: at(11), Price: 4}}
	scaled := series.Scale(2.5)

	if scaled[0].Price != 5 || scaled[1].Price != 10 {
		t.Errorf("scaled prices = %f, %f, want 5, 10", scaled[0].Price, scaled[1].Price)
	}
	if series[0].Price != 2 {
		t.Error("Scale must not mutate the receiver")
	}
}
