// Package yield probes the US Treasury published yield-curve data for the
// 2-year rate, which Yahoo has no reliable ticker for. Two independent
// endpoints serve the same data in different formats; providers are tried
// in order and the first parseable rate wins.
package yield

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Provider returns a single yield rate in percent (e.g. 4.25 for 4.25%).
type Provider interface {
	Rate(ctx context.Context) (float64, error)
	Name() string
}

// Chain tries providers in order and returns the first parseable positive
// rate. An error is returned only when every provider failed.
type Chain struct {
	providers []Provider
}

// NewChain creates a fallback chain over the given providers.
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Name identifies the chain as a provider.
func (c *Chain) Name() string { return "chain" }

// Rate probes the chain. Each provider failure is logged and the next one
// is tried; there is no synthetic default.
func (c *Chain) Rate(ctx context.Context) (float64, error) {
	var lastErr error
	for _, p := range c.providers {
		rate, err := p.Rate(ctx)
		if err == nil && rate > 0 {
			return rate, nil
		}
		if err == nil {
			err = fmt.Errorf("non-positive rate %v", rate)
		}
		log.Printf("[WARN] yield provider %s: %v", p.Name(), err)
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no yield providers configured")
	}
	return 0, fmt.Errorf("all yield providers failed: %w", lastErr)
}

func newClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}
