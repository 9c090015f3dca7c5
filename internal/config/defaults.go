package config

// DefaultGroups returns the built-in ticker universe. A config file with a
// groups section replaces this entirely; the file is authoritative and these
// lists are defaults only.
func DefaultGroups() []Group {
	return []Group{
		{Name: "futures", Symbols: []string{"ES=F", "NQ=F", "RTY=F", "YM=F"}},
		{Name: "etfmain", Symbols: []string{"SPY", "QQQ", "DIA", "IWM"}},
		{Name: "submarket", Symbols: []string{
			"IVW", "IVE", "IJK", "IJJ", "IJT", "IJS", "MGK", "VUG", "VTV",
		}},
		{Name: "sector", Symbols: []string{
			"XLK", "XLV", "XLF", "XLE", "XLY", "XLI", "XLB", "XLU", "XLRE", "XLC", "XLP",
		}},
		{Name: "sectorew", Symbols: []string{
			"RYT", "RYH", "RYF", "RYE", "RCD", "RGI", "RTM", "RYU", "EWRE", "EWCO", "RHS",
		}},
		{Name: "thematic", Symbols: []string{
			"BOTZ", "HACK", "SOXX", "ICLN", "SKYY", "XBI", "ITA", "FINX", "ARKG", "URA",
			"AIQ", "CIBR", "ROBO", "ARKK", "DRIV", "OGIG", "ACES", "PAVE", "HERO", "CLOU",
		}},
		{Name: "country", Symbols: []string{
			"EWJ", "EWY", "INDA", "MCHI", "GXC", "EWH", "EWU", "EWQ", "EWG", "EWZ", "EWT",
			"EWA", "EWC", "EWL", "EWP", "EWS", "TUR", "EWM", "EPHE", "THD", "VNM", "EWI",
			"EWN", "EWD", "EWK", "EWO",
		}},
		{Name: "metals", Symbols: []string{"GC=F", "SI=F", "HG=F", "PL=F", "PA=F"}},
		{Name: "commod", Symbols: []string{"CL=F", "NG=F"}},
		{Name: "global", Symbols: []string{
			"^N225", "^KS11", "^NSEI", "000001.SS", "000300.SS", "^HSI", "^FTSE", "^FCHI", "^GDAXI",
		}},
		{Name: "yields", Symbols: []string{"^IRX", "^TNX", "^TYX"}}, // 13wk, 10yr, 30yr treasury
		{Name: "dxvix", Symbols: []string{"DX-Y.NYB", "^VIX"}},
		{Name: "crypto", Symbols: []string{"BTC-USD", "ETH-USD", "SOL-USD", "XRP-USD"}},
	}
}
