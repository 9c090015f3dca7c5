package metrics

import (
	"math"
	"time"

	"MarketBoard/internal/model"
)

// SparkLen is the fixed length of the spark-line sequence.
const SparkLen = 5

// weekLookback is the number of trading days behind the latest close used
// for the 1-week change.
const weekLookback = 5

// Pct returns the percent change of new vs old, rounded to 2 decimals.
// Returns exactly 0.0 when old is zero, guarding against division by zero.
func Pct(new, old float64) float64 {
	if old == 0 {
		return 0.0
	}
	return round2((new - old) / math.Abs(old) * 100)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// Extract computes the MetricRecord for one instrument from its daily bars,
// ordered by date ascending. Bars without a positive close are dropped first.
// Returns ok=false when fewer than 2 valid bars remain; callers log and omit
// the instrument rather than treating this as an error.
func Extract(bars []model.Bar, symbol string, now time.Time) (model.MetricRecord, bool) {
	valid := bars[:0:0]
	for _, b := range bars {
		if b.Close > 0 {
			valid = append(valid, b)
		}
	}
	if len(valid) < 2 {
		return model.MetricRecord{}, false
	}

	closes := make([]float64, len(valid))
	for i, b := range valid {
		closes[i] = b.Close
	}
	n := len(closes)
	price := round4(closes[n-1])

	d1 := Pct(closes[n-1], closes[n-2])

	w1 := 0.0
	if n >= weekLookback+1 {
		w1 = Pct(closes[n-1], closes[n-1-weekLookback])
	}

	// Trailing high over the whole retained window (callers supply ~52 weeks).
	hi := 0.0
	for _, b := range valid {
		if b.High > hi {
			hi = b.High
		}
	}
	if hi == 0 {
		hi = price
	}
	hi52 := Pct(price, hi)

	ytd := 0.0
	year := now.Year()
	for _, b := range valid {
		if b.Date.Year() == year {
			ytd = Pct(price, b.Close)
			break
		}
	}

	spark := make([]float64, 0, SparkLen)
	start := n - SparkLen
	if start < 1 {
		start = 1
	}
	for i := start; i < n; i++ {
		spark = append(spark, Pct(closes[i], closes[i-1]))
	}
	for len(spark) < SparkLen {
		spark = append([]float64{0.0}, spark...)
	}

	rec := model.MetricRecord{
		Sym:   DisplaySymbol(symbol),
		Price: price,
		D1:    d1,
		W1:    w1,
		Hi52:  hi52,
		YTD:   ytd,
		Spark: spark,
	}
	if id, ok := cryptoIDs[symbol]; ok {
		rec.ID = id
		rec.Name = cryptoNames[symbol]
	}
	return rec, true
}
