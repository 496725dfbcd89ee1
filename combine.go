package folio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/phuslu/log"
)

// MaxCombineSymbols caps the number of symbols per combined-curve request.
// Exceeding it rejects the request before any fetch is attempted.
const MaxCombineSymbols = 30

// ErrTooManySymbols is returned when a combine request exceeds MaxCombineSymbols.
var ErrTooManySymbols = errors.New("too many symbols")

// WeightedSymbol pairs a symbol with the held quantity weighting its series.
type WeightedSymbol struct {
	Symbol   string
	Quantity float64
}

// SeriesProvider returns the ascending price history of a symbol over a
// range.
type SeriesProvider interface {
	Series(ctx context.Context, symbol string, r Range) (Series, error)
}

// Point is one sample of a combined portfolio value curve.
type Point struct {
	Time  time.Time
	Label string
	Price float64
}

// CombineSeries builds one value curve for a basket of quantity-weighted
// symbols over the requested range.
//
// Every symbol's series is fetched concurrently; a symbol whose fetch
// fails or comes back empty is dropped, not fatal. The series with the
// most samples fixes the output timeline, and every other series
// contributes its time-nearest sample at each point (ties favor the
// earlier sample). Combined values are rounded to 2 decimal places. The
// call is stateless: identical inputs reproduce identical output. A
// single-symbol request reduces to quantity times that series.
func CombineSeries(ctx context.Context, provider SeriesProvider, weights []WeightedSymbol, r Range) ([]Point, error) {
	if len(weights) == 0 {
		return nil, nil
	}
	if len(weights) > MaxCombineSymbols {
		return nil, fmt.Errorf("%w: %d symbols, limit is %d", ErrTooManySymbols, len(weights), MaxCombineSymbols)
	}

	series := fetchAllSeries(ctx, provider, weights, r)
	if len(series) == 0 {
		return nil, nil
	}

	// The longest series fixes the output granularity.
	var base Series
	for _, w := range weights {
		if s := series[w.Symbol]; s.Len() > base.Len() {
			base = s
		}
	}

	points := make([]Point, 0, base.Len())
	for _, sample := range base {
		var combined float64
		for _, w := range weights {
			s, ok := series[w.Symbol]
			if !ok {
				continue
			}
			nearest, ok := s.Nearest(sample.Time)
			if !ok {
				continue
			}
			combined += nearest.Price
		}
		points = append(points, Point{
			Time:  sample.Time,
			Label: r.Label(sample.Time),
			Price: round2(combined),
		})
	}
	return points, nil
}

// fetchAllSeries fans the per-symbol fetches out concurrently and scales
// each fetched series by the quantity held. Each result lands in its own
// key; failed and empty series are simply absent.
func fetchAllSeries(ctx context.Context, provider SeriesProvider, weights []WeightedSymbol, r Range) map[string]Series {
	quantity := make(map[string]float64, len(weights))
	for _, w := range weights {
		quantity[w.Symbol] = w.Quantity
	}
	type result struct {
		symbol string
		series Series
		err    error
	}
	results := make(chan result, len(weights))
	sem := make(chan struct{}, fetchConcurrency)

	var wg sync.WaitGroup
	for _, w := range weights {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results <- result{symbol: symbol, err: ctx.Err()}
				return
			}
			s, err := provider.Series(ctx, symbol, r)
			results <- result{symbol: symbol, series: s, err: err}
		}(w.Symbol)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	series := make(map[string]Series, len(weights))
	pending := len(weights)
	for pending > 0 {
		select {
		case res, ok := <-results:
			if !ok {
				return series
			}
			pending--
			if res.err != nil {
				log.Warn().Str("symbol", res.symbol).Err(res.err).Msg("series fetch failed, symbol dropped")
				continue
			}
			if res.series.Len() == 0 {
				continue
			}
			series[res.symbol] = res.series.Scale(quantity[res.symbol])
		case <-ctx.Done():
			log.Warn().Int("missing", pending).Msg("series batch deadline reached")
			return series
		}
	}
	return series
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
