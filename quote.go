package folio

import (
	"context"
	"sync"
	"time"

	"github.com/phuslu/log"
)

// Quote is a live market snapshot for one symbol, supplied by an external
// provider. The engine never fetches quotes on its own.
type Quote struct {
	Symbol        string
	Price         float64
	PreviousClose float64
	DayHigh       float64
	DayLow        float64
	Volume        int64
	MarketCap     float64
	Timestamp     time.Time
}

// QuoteProvider returns the latest quote for a symbol.
type QuoteProvider interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
}

// fetchConcurrency caps the number of in-flight provider calls.
const fetchConcurrency = 8

// FetchQuotes fetches quotes for all symbols concurrently and returns the
// ones that arrived. A symbol whose fetch fails, or that does not answer
// before the context deadline, is absent from the result; it never fails
// the batch.
func FetchQuotes(ctx context.Context, provider QuoteProvider, symbols []string) map[string]Quote {
	type result struct {
		symbol string
		quote  Quote
		err    error
	}
	results := make(chan result, len(symbols))
	sem := make(chan struct{}, fetchConcurrency)

	var wg sync.WaitGroup
	for _, symbol := range symbols {
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
			q, err := provider.Quote(ctx, symbol)
			results <- result{symbol: symbol, quote: q, err: err}
		}(symbol)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	quotes := make(map[string]Quote, len(symbols))
	pending := len(symbols)
	for pending > 0 {
		select {
		case r, ok := <-results:
			if !ok {
				return quotes
			}
			pending--
			if r.err != nil {
				log.Warn().Str("symbol", r.symbol).Err(r.err).Msg("quote fetch failed, symbol dropped")
				continue
			}
			quotes[r.symbol] = r.quote
		case <-ctx.Done():
			// Deadline reached: keep what arrived, drop the slow symbols.
			log.Warn().Int("missing", pending).Msg("quote batch deadline reached")
			return quotes
		}
	}
	return quotes
}
