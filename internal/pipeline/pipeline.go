// Package pipeline orchestrates the fetch run: per-group batch retrieval
// with a retry budget, per-identifier metric extraction with warn-and-omit,
// yield post-processing, and ranked-group sorting. A run never fails; the
// worst case is a snapshot with empty lists.
package pipeline

import (
	"context"
	"log"
	"sort"
	"time"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/config"
	"MarketBoard/internal/metrics"
	"MarketBoard/internal/model"
	"MarketBoard/internal/retry"
	"MarketBoard/internal/yield"
)

// generatedAtLayout matches the dashboard's expected timestamp format.
const generatedAtLayout = "2006-01-02T15:04:05Z"

// HoldingsProvider is the subset of holdings retrieval the pipeline needs.
type HoldingsProvider interface {
	TopHoldings(ctx context.Context, symbol string) ([]model.Holding, error)
}

// Runner executes one fetch run over the configured groups.
type Runner struct {
	Cfg      *config.Config
	Fetcher  collector.Fetcher
	Yield    yield.Provider   // secondary yield probe, may be nil
	Holdings HoldingsProvider // may be nil

	// Now is injected by tests; defaults to time.Now.
	Now func() time.Time
}

// Result is the outcome of one run, for recording and notification.
type Result struct {
	Snapshot *model.Snapshot
	Omitted  []string
	Duration time.Duration
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run fetches every configured group in order and assembles the snapshot.
func (r *Runner) Run(ctx context.Context) *Result {
	started := r.now()
	snap := &model.Snapshot{
		GeneratedAt: started.UTC().Format(generatedAtLayout),
		GroupOrder:  r.Cfg.GroupNames(),
		Groups:      make(map[string][]model.MetricRecord, len(r.Cfg.Groups)),
	}
	res := &Result{Snapshot: snap}

	batchDelay := time.Duration(r.Cfg.Fetch.BatchDelaySeconds) * time.Second
	for i, g := range r.Cfg.Groups {
		log.Printf("[INFO] fetching %s (%d tickers)", g.Name, len(g.Symbols))
		recs, omitted := r.fetchGroup(ctx, g)
		snap.Groups[g.Name] = recs
		res.Omitted = append(res.Omitted, omitted...)

		// Polite delay between batches; a scheduling courtesy for the
		// provider, not needed after the last group.
		if i < len(r.Cfg.Groups)-1 {
			select {
			case <-ctx.Done():
			case <-time.After(batchDelay):
			}
		}
	}

	if r.Yield != nil && r.Cfg.Yields.Secondary {
		r.probeSecondaryYield(ctx, snap)
	}

	for _, name := range r.Cfg.Ranked {
		sortByWeekly(snap.Groups[name])
	}

	if r.Holdings != nil && r.Cfg.Holdings.Enabled {
		snap.Holdings = r.fetchHoldings(ctx)
	}
	if snap.Holdings == nil {
		snap.Holdings = map[string][]model.Holding{}
	}

	res.Duration = r.now().Sub(started)
	return res
}

// fetchGroup retrieves one group's bars with the retry budget and extracts
// each identifier individually. An exhausted retry budget downgrades to a
// logged omission of the whole group; per-identifier failures omit only
// that identifier.
func (r *Runner) fetchGroup(ctx context.Context, g config.Group) ([]model.MetricRecord, []string) {
	attempts := r.Cfg.Fetch.RetryAttempts
	delay := time.Duration(r.Cfg.Fetch.RetryDelaySeconds) * time.Second

	raw, err := retry.Do(ctx, func() (map[string][]model.Bar, error) {
		return r.Fetcher.FetchDailyBatch(ctx, g.Symbols, r.Cfg.Fetch.LookbackDays)
	}, attempts, delay)
	if err != nil {
		log.Printf("[ERROR] batch %s: %v", g.Name, err)
		raw = map[string][]model.Bar{}
	}

	now := r.now()
	recs := make([]model.MetricRecord, 0, len(g.Symbols))
	var omitted []string
	for _, sym := range g.Symbols {
		bars, ok := raw[sym]
		if !ok {
			log.Printf("[WARN] no data for %s", sym)
			omitted = append(omitted, sym)
			continue
		}
		rec, ok := metrics.Extract(bars, sym, now)
		if !ok {
			log.Printf("[WARN] insufficient history for %s, omitting", sym)
			omitted = append(omitted, sym)
			continue
		}
		if g.Name == "yields" {
			if label, ok := r.Cfg.Yields.Remap[sym]; ok {
				rec.Sym = label
			}
		}
		recs = append(recs, rec)
	}
	return recs, omitted
}

// probeSecondaryYield asks the fallback chain for the 2-year rate and
// appends it to the yields group. On failure the entry is omitted entirely;
// there is never a synthetic value.
func (r *Runner) probeSecondaryYield(ctx context.Context, snap *model.Snapshot) {
	rate, err := r.Yield.Rate(ctx)
	if err != nil {
		log.Printf("[WARN] secondary yield: %v", err)
		return
	}
	snap.Groups["yields"] = append(snap.Groups["yields"], model.MetricRecord{
		Sym:   r.Cfg.Yields.SecSym,
		Price: rate,
		Spark: make([]float64, metrics.SparkLen),
	})
}

func (r *Runner) fetchHoldings(ctx context.Context) map[string][]model.Holding {
	out := make(map[string][]model.Holding, len(r.Cfg.Holdings.Symbols))
	for _, sym := range r.Cfg.Holdings.Symbols {
		hs, err := r.Holdings.TopHoldings(ctx, sym)
		if err != nil {
			log.Printf("[WARN] holdings %s: %v", sym, err)
			continue
		}
		if len(hs) > 0 {
			out[sym] = hs
		}
	}
	return out
}

// sortByWeekly sorts records by 1-week change descending. The sort is
// stable: ties keep their original fetch order.
func sortByWeekly(recs []model.MetricRecord) {
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].W1 > recs[j].W1 })
}
