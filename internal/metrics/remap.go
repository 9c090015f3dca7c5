package metrics

// displaySymbols maps provider identifiers to the display symbols the
// dashboard uses: TradingView-style continuous contracts for futures,
// tenor labels for treasury yields, and bare tickers for crypto pairs.
var displaySymbols = map[string]string{
	"ES=F":  "ES1!",
	"NQ=F":  "NQ1!",
	"RTY=F": "RTY1!",
	"YM=F":  "YM1!",
	"GC=F":  "GC1!",
	"SI=F":  "SI1!",
	"HG=F":  "HG1!",
	"PL=F":  "PL1!",
	"PA=F":  "PA1!",
	"CL=F":  "CL1!",
	"NG=F":  "NG1!",

	"^IRX": "US3M",
	"^TNX": "US10Y",
	"^TYX": "US30Y",

	"DX-Y.NYB": "DX-Y.NYB",
	"^VIX":     "CBOE:VIX",

	"BTC-USD": "BTC",
	"ETH-USD": "ETH",
	"SOL-USD": "SOL",
	"XRP-USD": "XRP",
}

var cryptoIDs = map[string]string{
	"BTC-USD": "bitcoin",
	"ETH-USD": "ethereum",
	"SOL-USD": "solana",
	"XRP-USD": "ripple",
}

var cryptoNames = map[string]string{
	"BTC-USD": "Bitcoin",
	"ETH-USD": "Ethereum",
	"SOL-USD": "Solana",
	"XRP-USD": "Ripple",
}

// DisplaySymbol returns the dashboard symbol for a provider identifier.
// Unmapped identifiers pass through unchanged.
func DisplaySymbol(symbol string) string {
	if mapped, ok := displaySymbols[symbol]; ok {
		return mapped
	}
	return symbol
}
