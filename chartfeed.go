package folio

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/phuslu/log"
	"golang.org/x/time/rate"
)

// ChartFeed is the bundled implementation of the QuoteProvider and
// SeriesProvider contracts, talking to a Yahoo-style chart JSON endpoint.
// The engine never uses it implicitly; callers inject it.
type ChartFeed struct {
	base    string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewChartFeed creates a feed client with a daily disk cache and a request
// rate limit.
func NewChartFeed(cfg FeedConfig) *ChartFeed {
	rps := cfg.RateLimit
	if rps <= 0 {
		rps = 4
	}
	return &ChartFeed{
		base:    cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  dailyCachedClient(),
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// rangeParams derives the feed's range and interval tokens from the
// lookback window and sampling resolution of a Range.
func rangeParams(r Range) (rng, interval string) {
	switch res := r.Resolution(); {
	case res < 24*time.Hour:
		interval = fmt.Sprintf("%dm", int(res.Minutes()))
	case res < 7*24*time.Hour:
		interval = "1d"
	default:
		interval = "1wk"
	}
	switch days := int(r.Lookback() / (24 * time.Hour)); {
	case days <= 1:
		rng = "1d"
	case days <= 7:
		// the feed counts trading days, a calendar week is 5d
		rng = "5d"
	case days <= 31:
		rng = "1mo"
	case days <= 92:
		rng = "3mo"
	case days <= 183:
		rng = "6mo"
	case days <= 366:
		rng = "1y"
	default:
		rng = "5y"
	}
	return rng, interval
}

func (f *ChartFeed) chart(ctx context.Context, symbol string, rng, interval string) (any, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		f.base, url.PathEscape(symbol), rng, interval)
	if f.apiKey != "" {
		addr += "&api_token=" + url.QueryEscape(f.apiKey)
	}
	var jobj any
	if err := f.jwget(ctx, addr, &jobj); err != nil {
		return nil, fmt.Errorf("could not fetch chart for %q: %w", symbol, err)
	}
	return jobj, nil
}

// Quote implements QuoteProvider against the chart endpoint's metadata.
func (f *ChartFeed) Quote(ctx context.Context, symbol string) (Quote, error) {
	jobj, err := f.chart(ctx, symbol, "1d", "5m")
	if err != nil {
		return Quote{}, err
	}

	meta := "$.chart.result[0].meta"
	price, err := jfloat(jobj, meta+".regularMarketPrice")
	if err != nil {
		return Quote{}, fmt.Errorf("no price for %q: %w", symbol, err)
	}
	q := Quote{Symbol: symbol, Price: price, Timestamp: time.Now()}
	// The remaining fields are best-effort: feeds omit them for some
	// asset classes.
	q.PreviousClose, _ = jfloat(jobj, meta+".chartPreviousClose")
	q.DayHigh, _ = jfloat(jobj, meta+".regularMarketDayHigh")
	q.DayLow, _ = jfloat(jobj, meta+".regularMarketDayLow")
	if v, err := jfloat(jobj, meta+".regularMarketVolume"); err == nil {
		q.Volume = int64(v)
	}
	q.MarketCap, _ = jfloat(jobj, meta+".marketCap")
	return q, nil
}

// Series implements SeriesProvider against the chart endpoint.
func (f *ChartFeed) Series(ctx context.Context, symbol string, r Range) (Series, error) {
	rng, interval := rangeParams(r)
	jobj, err := f.chart(ctx, symbol, rng, interval)
	if err != nil {
		return nil, err
	}

	stamps, err := jfloats(jobj, "$.chart.result[0].timestamp[*]")
	if err != nil {
		return nil, fmt.Errorf("no timestamps for %q: %w", symbol, err)
	}
	closes, err := jfloats(jobj, "$.chart.result[0].indicators.quote[0].close[*]")
	if err != nil {
		return nil, fmt.Errorf("no closes for %q: %w", symbol, err)
	}
	if len(closes) < len(stamps) {
		stamps = stamps[:len(closes)]
	}

	series := make(Series, 0, len(stamps))
	for i, ts := range stamps {
		if closes[i] == 0 {
			continue // feed uses null/zero for halted intervals
		}
		series = append(series, Sample{Time: time.Unix(int64(ts), 0).UTC(), Price: closes[i]})
	}
	series.Sort()
	return series, nil
}

// jfloat extracts a single float from a decoded JSON tree.
func jfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("path %q: %w", path, err)
	}
	// jsonpath sometimes returns a one-element list instead of a scalar.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("path %q: not a number: %v", path, jval)
	}
	return val, nil
}

// jfloats extracts a list of floats; null entries become 0.
func jfloats(jobj any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("path %q: not a list: %v", path, jval)
	}
	out := make([]float64, len(jlist))
	for i, v := range jlist {
		if f, ok := v.(float64); ok {
			out[i] = f
		}
	}
	return out, nil
}

// jwget performs an HTTP GET and unmarshals the JSON response.
func (f *ChartFeed) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// diskCache implements a simple disk cache for HTTP responses. The cache
// key embeds the current day, so entries expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (*http.Response, error) {
	key := fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02"), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	if cached, err := c.get(key, req); err == nil {
		return cached, nil
	}

	resp, err := c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("host", resp.Request.URL.Host).Str("path", resp.Request.URL.Path).Str("status", resp.Status).Msg("feed request")
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	if err := c.put(key, resp); err != nil {
		log.Warn().Err(err).Msg("feed cache write failed (ignored)")
	}
	return resp, nil
}

func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(os.TempDir(), key))
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// dailyCachedClient returns a client whose responses are cached on disk
// with a daily expiry.
func dailyCachedClient() *http.Client {
	return &http.Client{Transport: &diskCache{http.DefaultTransport}}
}
