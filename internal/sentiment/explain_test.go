package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	assert.Equal(t, "#888888", Color(0))
	assert.Equal(t, "#00ff00", Color(1))
	assert.Equal(t, "#ff0000", Color(-1))
	assert.Equal(t, "#00bb00", Color(0.5))
	assert.Equal(t, "#bb0000", Color(-0.5))
	assert.Equal(t, "#009300", Color(0.2))
}

func TestExplain_NoMatches(t *testing.T) {
	r := &Result{Compound: 0.9, Sentiment: Positive}
	assert.Equal(t, "No notable financial sentiment detected.", Explain(r))
}

func TestExplain_Bands(t *testing.T) {
	cases := []struct {
		compound float64
		want     string
	}{
		{0.80, "strongly positive"},
		{0.60, "strongly positive"},
		{0.30, "positive"},
		{0.15, "positive"},
		{0.10, "neutral"},
		{-0.10, "neutral"},
		{-0.15, "negative"},
		{-0.30, "negative"},
		{-0.60, "strongly negative"},
		{-0.90, "strongly negative"},
	}

	for _, tc := range cases {
		r := &Result{Compound: tc.compound, MatchedTerms: []string{"rally"}}
		assert.Contains(t, Explain(r), tc.want, "compound %.2f", tc.compound)
	}
}

func TestExplain_ListsTerms(t *testing.T) {
	r := &Result{
		Compound:     -0.30,
		MatchedTerms: []string{"crash"},
	}

	assert.Equal(t,
		"The overall financial sentiment is negative (score: -0.30). Key financial terms detected: crash.",
		Explain(r))
}

func TestExplain_TruncatesToFiveTerms(t *testing.T) {
	r := &Result{
		Compound:     0.80,
		MatchedTerms: []string{"moon", "rocket", "bullish", "rally", "surge", "gains"},
	}

	assert.Equal(t,
		"The overall financial sentiment is strongly positive (score: 0.80). "+
			"Key financial terms detected: moon, rocket, bullish, rally, surge and 1 more.",
		Explain(r))
}
