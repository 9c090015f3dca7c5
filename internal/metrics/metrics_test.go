package metrics

import (
	"testing"
	"time"

	"MarketBoard/internal/model"
)

// barsForYear builds one bar per day ending at now, High = Close.
func barsForYear(closes []float64, now time.Time) []model.Bar {
	bars := make([]model.Bar, len(closes))
	n := len(closes)
	for i, c := range closes {
		bars[i] = model.Bar{
			Date:  now.AddDate(0, 0, -(n - 1 - i)),
			Open:  c,
			High:  c,
			Low:   c,
			Close: c,
		}
	}
	return bars
}

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func TestPct_GuardsZeroOld(t *testing.T) {
	tests := []struct {
		new, old, want float64
	}{
		{106, 103, 2.91},
		{106, 101, 4.95},
		{100, 0, 0.0},
		{0, 0, 0.0},
		{90, -100, -10.0}, // abs(old) in the denominator
		{100, 100, 0.0},
	}
	for _, tt := range tests {
		if got := Pct(tt.new, tt.old); got != tt.want {
			t.Errorf("Pct(%v, %v) = %v, want %v", tt.new, tt.old, got, tt.want)
		}
	}
}

func TestExtract_InsufficientBars(t *testing.T) {
	for _, closes := range [][]float64{nil, {100}} {
		if _, ok := Extract(barsForYear(closes, testNow), "SPY", testNow); ok {
			t.Errorf("expected absence for %d bars", len(closes))
		}
	}

	// Bars without a positive close don't count as valid.
	bars := barsForYear([]float64{100, 0, 0}, testNow)
	if _, ok := Extract(bars, "SPY", testNow); ok {
		t.Error("expected absence when only 1 valid bar remains")
	}
}

func TestExtract_EndToEnd(t *testing.T) {
	closes := []float64{100, 101, 99, 102, 103, 101, 104, 105, 103, 106}
	rec, ok := Extract(barsForYear(closes, testNow), "SPY", testNow)
	if !ok {
		t.Fatal("expected a record")
	}
	if rec.Sym != "SPY" {
		t.Errorf("sym = %q, want SPY", rec.Sym)
	}
	if rec.Price != 106 {
		t.Errorf("price = %v, want 106", rec.Price)
	}
	if rec.D1 != 2.91 {
		t.Errorf("d1 = %v, want 2.91", rec.D1)
	}
	if rec.W1 != 4.95 {
		t.Errorf("w1 = %v, want 4.95", rec.W1)
	}
	if rec.Hi52 != 0.0 {
		t.Errorf("hi52 = %v, want 0.0 (106 is the max high)", rec.Hi52)
	}
	if rec.YTD != 6.0 {
		t.Errorf("ytd = %v, want 6.0", rec.YTD)
	}
	wantSpark := []float64{-1.94, 2.97, 0.96, -1.9, 2.91}
	if len(rec.Spark) != SparkLen {
		t.Fatalf("spark length = %d, want %d", len(rec.Spark), SparkLen)
	}
	for i, v := range wantSpark {
		if rec.Spark[i] != v {
			t.Errorf("spark[%d] = %v, want %v", i, rec.Spark[i], v)
		}
	}
}

func TestExtract_SparkAlwaysLength5(t *testing.T) {
	for _, n := range []int{2, 4, 5, 6, 100} {
		closes := make([]float64, n)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		rec, ok := Extract(barsForYear(closes, testNow), "QQQ", testNow)
		if !ok {
			t.Fatalf("%d bars: expected a record", n)
		}
		if len(rec.Spark) != SparkLen {
			t.Errorf("%d bars: spark length = %d, want %d", n, len(rec.Spark), SparkLen)
		}
	}

	// 2 bars gives 1 real change, left-padded with 4 zeros.
	rec, _ := Extract(barsForYear([]float64{100, 102}, testNow), "QQQ", testNow)
	want := []float64{0, 0, 0, 0, 2.0}
	for i, v := range want {
		if rec.Spark[i] != v {
			t.Errorf("spark[%d] = %v, want %v", i, rec.Spark[i], v)
		}
	}
}

func TestExtract_YTDRequiresCurrentYearBar(t *testing.T) {
	// All bars in December of the prior year.
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := barsForYear([]float64{100, 101, 102}, time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC))
	rec, ok := Extract(bars, "SPY", now)
	if !ok {
		t.Fatal("expected a record")
	}
	if rec.YTD != 0.0 {
		t.Errorf("ytd = %v, want 0.0 when no bar falls in the current year", rec.YTD)
	}
}

func TestExtract_HighDrivesHi52(t *testing.T) {
	bars := barsForYear([]float64{100, 102, 104}, testNow)
	bars[1].High = 130 // intraday spike above every close
	rec, ok := Extract(bars, "SPY", testNow)
	if !ok {
		t.Fatal("expected a record")
	}
	if rec.Hi52 != -20.0 {
		t.Errorf("hi52 = %v, want -20.0 (104 vs high 130)", rec.Hi52)
	}
}

func TestDisplaySymbol_Remap(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ES=F", "ES1!"},
		{"CL=F", "CL1!"},
		{"^TNX", "US10Y"},
		{"^VIX", "CBOE:VIX"},
		{"BTC-USD", "BTC"},
		{"SPY", "SPY"}, // unmapped passes through
	}
	for _, tt := range tests {
		if got := DisplaySymbol(tt.in); got != tt.want {
			t.Errorf("DisplaySymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtract_CryptoEnrichment(t *testing.T) {
	rec, ok := Extract(barsForYear([]float64{50000, 51000}, testNow), "BTC-USD", testNow)
	if !ok {
		t.Fatal("expected a record")
	}
	if rec.Sym != "BTC" || rec.ID != "bitcoin" || rec.Name != "Bitcoin" {
		t.Errorf("got sym=%q id=%q name=%q, want BTC/bitcoin/Bitcoin", rec.Sym, rec.ID, rec.Name)
	}

	rec2, _ := Extract(barsForYear([]float64{100, 101}, testNow), "SPY", testNow)
	if rec2.ID != "" || rec2.Name != "" {
		t.Errorf("non-crypto record should have empty id/name, got %q/%q", rec2.ID, rec2.Name)
	}
}
