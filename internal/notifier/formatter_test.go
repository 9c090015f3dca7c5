package notifier

import (
	"strings"
	"testing"
	"time"

	"MarketBoard/internal/model"
	"MarketBoard/internal/pipeline"
)

func TestFormatRunSummary(t *testing.T) {
	res := &pipeline.Result{
		Snapshot: &model.Snapshot{
			GeneratedAt: "2026-06-15T12:00:00Z",
			GroupOrder:  []string{"futures", "crypto"},
			Groups: map[string][]model.MetricRecord{
				"futures": {{Sym: "ES1!"}, {Sym: "NQ1!"}},
				"crypto":  {{Sym: "BTC"}},
			},
		},
		Omitted:  []string{"EWO", "VNM"},
		Duration: 42 * time.Second,
	}

	msg := FormatRunSummary(res)
	for _, want := range []string{
		"2026-06-15T12:00:00Z",
		"3 in 2 groups",
		"42s",
		"Omitted (2): EWO, VNM",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("summary missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatRunSummary_NoOmissions(t *testing.T) {
	res := &pipeline.Result{
		Snapshot: &model.Snapshot{
			GeneratedAt: "2026-06-15T12:00:00Z",
			GroupOrder:  []string{"sector"},
			Groups:      map[string][]model.MetricRecord{"sector": {{Sym: "XLK"}}},
		},
		Duration: time.Second,
	}
	if msg := FormatRunSummary(res); strings.Contains(msg, "Omitted") {
		t.Errorf("clean run should not mention omissions:\n%s", msg)
	}
}
