package collector

import (
	"context"
	"fmt"
	"time"

	"MarketBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Bars are keyed by symbol; symbols listed in Fail always error. When a
// symbol has no canned data and is not failing, generated bars are returned.
type MockFetcher struct {
	Bars      map[string][]model.Bar
	Fail      map[string]bool
	BasePrice float64
	Calls     int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBatch(_ context.Context, symbols []string, days int) (map[string][]model.Bar, error) {
	m.Calls++
	results := make(map[string][]model.Bar, len(symbols))
	var lastErr error
	for _, sym := range symbols {
		if m.Fail[sym] {
			lastErr = fmt.Errorf("mock: %s unavailable", sym)
			continue
		}
		if bars, ok := m.Bars[sym]; ok {
			results[sym] = bars
			continue
		}
		base := m.BasePrice
		if base == 0 {
			base = 100
		}
		results[sym] = GenerateBars(base, days)
	}
	if len(results) == 0 && lastErr != nil {
		return results, lastErr
	}
	return results, nil
}

// GenerateBars builds a synthetic ascending daily series ending today.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:  time.Now().UTC().AddDate(0, 0, -(count - i)),
			Open:  p * 0.999,
			High:  p * 1.005,
			Low:   p * 0.995,
			Close: p,
		}
	}
	return bars
}
