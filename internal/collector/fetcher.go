package collector

import (
	"context"

	"MarketBoard/internal/model"
)

// Fetcher defines the interface for retrieving daily bar data.
// FetchDailyBatch is one logical request for the whole symbol list; symbols
// the provider could not resolve are absent from the returned map. It errors
// only when no symbol could be fetched at all.
type Fetcher interface {
	FetchDailyBatch(ctx context.Context, symbols []string, days int) (map[string][]model.Bar, error)
	Name() string
}
