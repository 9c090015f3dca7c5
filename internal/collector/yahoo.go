package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"MarketBoard/internal/model"
)

// batchWorkers bounds the parallel per-symbol downloads inside one batch.
const batchWorkers = 4

// YahooFetcher retrieves daily bars from the Yahoo Finance public chart API.
// The chart endpoint serves one symbol per request, so a batch fans out
// across a small worker pool inside the single logical call.
type YahooFetcher struct {
	Client  *http.Client
	baseURL string // test override
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open  []interface{} `json:"open"`
					High  []interface{} `json:"high"`
					Low   []interface{} `json:"low"`
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func rangeForDays(days int) string {
	switch {
	case days <= 30:
		return "1mo"
	case days <= 90:
		return "3mo"
	case days <= 180:
		return "6mo"
	case days <= 365:
		return "1y"
	default:
		return "2y"
	}
}

func (f *YahooFetcher) fetchChart(ctx context.Context, symbol string, days int) ([]model.Bar, error) {
	base := f.baseURL
	if base == "" {
		base = "https://query1.finance.yahoo.com/v8/finance/chart"
	}
	u := fmt.Sprintf("%s/%s?interval=1d&range=%s", base, url.PathEscape(symbol), rangeForDays(days))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s", symbol)
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}
	quote := result.Indicators.Quote[0]
	if len(quote.Open) != len(result.Timestamp) || len(quote.High) != len(result.Timestamp) ||
		len(quote.Low) != len(result.Timestamp) || len(quote.Close) != len(result.Timestamp) {
		return nil, fmt.Errorf("yahoo: malformed quote arrays for %s", symbol)
	}
	bars := make([]model.Bar, 0, len(result.Timestamp))

	for i, ts := range result.Timestamp {
		o := toFloat(quote.Open[i])
		h := toFloat(quote.High[i])
		l := toFloat(quote.Low[i])
		c := toFloat(quote.Close[i])
		if o == 0 && h == 0 && l == 0 && c == 0 {
			continue // skip null bars (holidays etc.)
		}
		bars = append(bars, model.Bar{
			Date:  time.Unix(ts, 0).UTC(),
			Open:  o,
			High:  h,
			Low:   l,
			Close: c,
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

// FetchDailyBatch retrieves daily bars for all symbols. Single-symbol lists
// take the direct path; larger lists fan out across the worker pool. The
// batch errors only when every symbol failed, so partial provider outages
// degrade to omissions instead of losing the whole group.
func (f *YahooFetcher) FetchDailyBatch(ctx context.Context, symbols []string, days int) (map[string][]model.Bar, error) {
	results := make(map[string][]model.Bar, len(symbols))
	if len(symbols) == 0 {
		return results, nil
	}

	if len(symbols) == 1 {
		sym := symbols[0]
		bars, err := f.fetchChart(ctx, sym, days)
		if err != nil {
			return results, fmt.Errorf("fetch %s: %w", sym, err)
		}
		results[sym] = bars
		return results, nil
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		lastErr error
	)
	sem := make(chan struct{}, batchWorkers)
	for _, sym := range symbols {
		wg.Add(1)
		go func(sym string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			bars, err := f.fetchChart(ctx, sym, days)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[WARN] fetch %s: %v", sym, err)
				lastErr = err
				return
			}
			results[sym] = bars
		}(sym)
	}
	wg.Wait()

	if len(results) == 0 && lastErr != nil {
		return results, fmt.Errorf("all %d symbols failed: %w", len(symbols), lastErr)
	}
	return results, nil
}
