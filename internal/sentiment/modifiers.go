package sentiment

// amplifierFactors returns words that strengthen the next matched term.
// Factors are multiplicative; the applied effect is factor-1.
func amplifierFactors() map[string]float64 {
	return map[string]float64{
		"very":          1.5,
		"extremely":     2.0,
		"incredibly":    2.0,
		"definitely":    1.3,
		"absolutely":    1.7,
		"completely":    1.5,
		"totally":       1.5,
		"really":        1.3,
		"significantly": 1.4,
		"substantially": 1.4,
		"strongly":      1.5,
		"highly":        1.5,
		"massively":     1.7,
		"undoubtedly":   1.3,
		"particularly":  1.2,
		"especially":    1.3,
		"notably":       1.2,
		"remarkably":    1.4,
		"exceptionally": 1.6,
	}
}

// diminisherFactors returns words that soften the next matched term.
// The spaced keys cannot equal a single token and never fire in the
// token scan.
func diminisherFactors() map[string]float64 {
	return map[string]float64{
		"somewhat":   0.7,
		"slightly":   0.6,
		"a bit":      0.7,
		"barely":     0.4,
		"marginally": 0.6,
		"hardly":     0.4,
		"partly":     0.8,
		"partially":  0.8,
		"a little":   0.7,
		"mildly":     0.8,
		"moderately": 0.8,
	}
}

// negatorWords returns words that open a negation region over the
// following tokens.
func negatorWords() map[string]bool {
	return map[string]bool{
		"not":     true,
		"n't":     true,
		"no":      true,
		"never":   true,
		"neither": true,
		"nor":     true,
		"none":    true,
		"nothing": true,
		"nobody":  true,
		"nowhere": true,
		"without": true,
		"lack":    true,
		"lacking": true,
		"lacks":   true,
	}
}
