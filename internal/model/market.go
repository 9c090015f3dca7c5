package model

import "time"

// Bar represents a single daily OHLC bar.
type Bar struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// MetricRecord holds the derived statistics for one instrument, shaped for
// the dashboard JSON. Spark always has exactly 5 entries, oldest change first.
type MetricRecord struct {
	Sym   string    `json:"sym"`
	Price float64   `json:"price"`
	D1    float64   `json:"d1"`
	W1    float64   `json:"w1"`
	Hi52  float64   `json:"hi52"`
	YTD   float64   `json:"ytd"`
	Spark []float64 `json:"spark"`

	// Crypto assets only.
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Holding is one ETF constituent with its portfolio weight in percent.
type Holding struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Snapshot is the full dashboard document produced by one fetch run.
// GroupOrder preserves the configured group order for serialization;
// each run fully replaces the previous output.
type Snapshot struct {
	GeneratedAt string
	GroupOrder  []string
	Groups      map[string][]MetricRecord
	Holdings    map[string][]Holding
}

// TotalRecords counts MetricRecords across all groups.
func (s *Snapshot) TotalRecords() int {
	n := 0
	for _, recs := range s.Groups {
		n += len(recs)
	}
	return n
}
