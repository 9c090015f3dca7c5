package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"MarketBoard/internal/model"
)

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		GeneratedAt: "2026-06-15T12:00:00Z",
		GroupOrder:  []string{"futures", "crypto"},
		Groups: map[string][]model.MetricRecord{
			"futures": {{Sym: "ES1!", Price: 5400.25, D1: 0.5, Spark: []float64{0, 0, 0, 0.1, 0.5}}},
			"crypto":  {{Sym: "BTC", Price: 64000, ID: "bitcoin", Name: "Bitcoin", Spark: []float64{0, 0, 0, 0, 1.2}}},
		},
		Holdings: map[string][]model.Holding{
			"SPY": {{Symbol: "AAPL", Name: "Apple Inc", Weight: 7.1}},
		},
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "data.json")

	if err := Write(path, testSnapshot()); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"generated_at", "futures", "crypto", "holdings"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}

	var recs []model.MetricRecord
	if err := json.Unmarshal(doc["futures"], &recs); err != nil {
		t.Fatalf("futures list: %v", err)
	}
	if len(recs) != 1 || recs[0].Sym != "ES1!" {
		t.Errorf("futures round trip lost data: %+v", recs)
	}
}

func TestWrite_GroupOrderPreserved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	if err := Write(path, testSnapshot()); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ := os.ReadFile(path)
	s := string(data)

	iGen := strings.Index(s, `"generated_at"`)
	iFut := strings.Index(s, `"futures"`)
	iCry := strings.Index(s, `"crypto"`)
	if !(iGen >= 0 && iGen < iFut && iFut < iCry) {
		t.Errorf("keys out of order: generated_at=%d futures=%d crypto=%d", iGen, iFut, iCry)
	}
}

func TestWrite_EmptyGroupEmitsEmptyList(t *testing.T) {
	snap := testSnapshot()
	snap.GroupOrder = append(snap.GroupOrder, "yields")

	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := Write(path, snap); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ := os.ReadFile(path)
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(doc["yields"])) != "[]" {
		t.Errorf("yields = %s, want []", doc["yields"])
	}
}

func TestWrite_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, testSnapshot()); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "old") {
		t.Error("previous output not replaced")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}
