// Package holdings retrieves ETF top-constituent lists for the dashboard's
// holdings panel. Retrieval is best effort: a failing symbol is omitted.
package holdings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"MarketBoard/internal/model"
)

// maxHoldings caps the constituents kept per ETF.
const maxHoldings = 10

// Provider returns the top constituents of an ETF.
type Provider interface {
	TopHoldings(ctx context.Context, symbol string) ([]model.Holding, error)
	Name() string
}

// NoopProvider is used when holdings retrieval is disabled.
type NoopProvider struct{}

func (NoopProvider) Name() string { return "noop" }

func (NoopProvider) TopHoldings(_ context.Context, _ string) ([]model.Holding, error) {
	return nil, nil
}

// YahooProvider reads the quoteSummary topHoldings module.
type YahooProvider struct {
	Client  *http.Client
	baseURL string // test override
}

// NewYahooProvider creates a holdings provider with optional proxy support.
func NewYahooProvider(proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooProvider{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// quoteSummary is the subset of the response this provider reads.
type quoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			TopHoldings struct {
				Holdings []struct {
					Symbol      string `json:"symbol"`
					HoldingName string `json:"holdingName"`
					HoldingPct  struct {
						Raw float64 `json:"raw"`
					} `json:"holdingPercent"`
				} `json:"holdings"`
			} `json:"topHoldings"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (p *YahooProvider) TopHoldings(ctx context.Context, symbol string) ([]model.Holding, error) {
	base := p.baseURL
	if base == "" {
		base = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"
	}
	u := fmt.Sprintf("%s/%s?modules=topHoldings", base, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holdings fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("holdings read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holdings: status %d", resp.StatusCode)
	}

	var qs quoteSummary
	if err := json.Unmarshal(body, &qs); err != nil {
		return nil, fmt.Errorf("holdings decode: %w", err)
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("holdings api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("holdings: no result for %s", symbol)
	}

	raw := qs.QuoteSummary.Result[0].TopHoldings.Holdings
	out := make([]model.Holding, 0, maxHoldings)
	for _, h := range raw {
		if len(out) >= maxHoldings {
			break
		}
		out = append(out, model.Holding{
			Symbol: h.Symbol,
			Name:   h.HoldingName,
			Weight: h.HoldingPct.Raw * 100,
		})
	}
	return out, nil
}
