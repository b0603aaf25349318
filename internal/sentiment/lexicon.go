package sentiment

// financeLexicon returns finance-specific terms with sentiment weights.
// Keys are lowercase unigrams or space-joined phrases of up to three
// tokens; weights range -3..+3 and are divided by lexiconScale when
// applied.
func financeLexicon() map[string]float64 {
	return map[string]float64{
		// Bullish terms
		"bullish":       2.0,
		"bull":          1.8,
		"long":          1.0,
		"uptrend":       1.7,
		"rally":         1.5,
		"surge":         1.8,
		"jump":          1.3,
		"soar":          1.8,
		"thrive":        1.6,
		"boom":          1.5,
		"breakout":      1.7,
		"rebound":       1.5,
		"recover":       1.4,
		"outperform":    1.6,
		"outperforming": 1.6,
		"upgrade":       1.7,
		"beat":          1.5,
		"exceeded":      1.6,
		"growth":        1.4,
		"growing":       1.3,
		"profitable":    1.6,
		"gains":         1.5,
		"gain":          1.4,
		"winning":       1.5,
		"strong":        1.3,
		"strength":      1.3,
		"opportunity":   1.2,
		"promising":     1.3,
		"positive":      1.3,
		"upside":        1.6,
		"buy":           1.3,
		"undervalued":   1.4,
		"discount":      1.2,
		"bargain":       1.3,
		"momentum":      1.2,
		"moon":          2.5,
		"rocket":        2.0,
		"diamond hands": 1.7,
		"tendies":       1.8,
		"stonks":        1.5,
		"hold":          0.5,
		"hodl":          1.0,
		"buy the dip":   1.5,
		"green":         1.2,
		"oversold":      1.3,
		"bottomed":      1.4,
		"bottom":        1.0,
		"accumulate":    1.2,
		"accumulation":  1.1,
		"squeeze":       1.0,
		"rip":           1.5,
		"dividend":      1.3,
		"yield":         1.2,
		"compounding":   1.4,
		"income":        1.2,
		"appreciation":  1.3,
		"diversification": 0.8,
		"value investing":  1.2,
		"bogleheads":    0.7,
		"fire":          1.2,
		"retirement":    0.9,
		"index fund":    0.6,
		"alpha":         1.3,
		"leveraged":     0.8,

		// Bearish terms
		"bearish":        -2.0,
		"bear":           -1.8,
		"short":          -1.0,
		"downtrend":      -1.7,
		"correction":     -1.2,
		"plunge":         -1.8,
		"crash":          -2.0,
		"dump":           -1.7,
		"tumble":         -1.6,
		"tank":           -2.0,
		"collapse":       -1.9,
		"sell off":       -1.5,
		"selloff":        -1.5,
		"drop":           -1.4,
		"falling":        -1.4,
		"slump":          -1.6,
		"underperform":   -1.6,
		"underperforming": -1.6,
		"downgrade":      -1.7,
		"miss":           -1.5,
		"missed":         -1.5,
		"disappointing":  -1.6,
		"disappointed":   -1.5,
		"losses":         -1.5,
		"losing":         -1.4,
		"loss":           -1.5,
		"weak":           -1.3,
		"weakness":       -1.3,
		"risk":           -1.1,
		"risky":          -1.2,
		"negative":       -1.3,
		"downside":       -1.6,
		"sell":           -0.5,
		"overvalued":     -1.4,
		"expensive":      -1.2,
		"bubble":         -1.5,
		"drilling":       -1.4,
		"bagholding":     -1.5,
		"bagholder":      -1.5,
		"paper hands":    -1.0,
		"rekt":           -1.7,
		"red":            -1.2,
		"overbought":     -1.3,
		"topped":         -1.4,
		"top":            -0.8,
		"distribution":   -1.1,
		"resistance":     -0.8,
		"drill":          -1.3,
		"bust":           -1.5,
		"bankruptcy":     -1.9,
		"insolvent":      -1.8,
		"default":        -1.7,
		"hyperinflation":  -1.6,
		"recession":      -1.5,
		"depression":     -1.8,
		"stagflation":    -1.6,
		"deflation":      -1.4,
		"margin call":    -1.6,
		"leverage":       -0.7,
		"debt":           -0.9,
		"liquidation":    -1.5,

		// Neutral/context-dependent terms with slight bias
		"volatile":      -0.3,
		"volatility":    -0.3,
		"uncertainty":   -0.4,
		"stabilize":     0.4,
		"consolidate":   0.2,
		"consolidation": 0.1,
		"sideways":      0.0,
		"flat":          0.0,
		"cautious":      -0.3,
		"careful":       -0.3,
		"patience":      0.2,
		"wait":          0.0,
		"holding":       0.3,
		"steady":        0.2,
		"yolo":          0.2,
		"fomo":          -0.2,
		"rotation":      0.1,
		"mixed":         0.0,
		"swing":         0.1,
		"trade":         0.0,
		"volume":        0.0,
		"liquidity":     0.1,
		"range":         0.0,
		"support":       0.8,
		"hedged":        0.3,
		"hedging":       0.0,
		"hedge":         0.1,
		"protection":    0.2,
		"invest":        0.3,
		"investing":     0.3,
		"investment":    0.2,
		"portfolio":     0.1,
		"diversify":     0.4,
		"asset":         0.0,
		"allocation":    0.2,
		"rebalance":     0.1,
		"passive":       0.2,
		"active":        0.1,
		"cash":          0.0,
		"bonds":         0.1,
		"equities":      0.1,
		"stocks":        0.1,
		"mutual fund":   0.1,
		"etf":           0.1,
		"index":         0.1,
		"market":        0.0,
		"capital":       0.0,
		"expense ratio": -0.1,
		"fee":           -0.2,
		"commission":    -0.2,
		"tax":           -0.2,
		"taxable":       -0.1,
		"roth":          0.2,
		"ira":           0.1,
		"401k":          0.1,
		"vanguard":      0.1,
		"fidelity":      0.1,
		"schwab":        0.1,
		"bogle":         0.2,
	}
}
