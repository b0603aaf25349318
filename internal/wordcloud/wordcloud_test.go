package wordcloud

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencies_ShortTextYieldsNil(t *testing.T) {
	assert.Nil(t, Frequencies(""))
	assert.Nil(t, Frequencies("GME to the moon"))
	assert.Nil(t, Frequencies("one two three four five six seven eight nine"))
}

func TestFrequencies_TenWordsIsEnough(t *testing.T) {
	freqs := Frequencies("alpha beta gamma delta epsilon zeta eta theta iota kappa")
	assert.Len(t, freqs, 10)
}

func TestFrequencies_CountsAndOrder(t *testing.T) {
	text := "Tesla rally continues! Tesla deliveries beat estimates. " +
		"Analysts expect the rally to extend, though skeptics doubt Tesla margins."

	freqs := Frequencies(text)

	want := []Frequency{
		{Term: "tesla", Count: 3},
		{Term: "rally", Count: 2},
		{Term: "analysts", Count: 1},
		{Term: "beat", Count: 1},
		{Term: "continues", Count: 1},
		{Term: "deliveries", Count: 1},
		{Term: "doubt", Count: 1},
		{Term: "estimates", Count: 1},
		{Term: "expect", Count: 1},
		{Term: "extend", Count: 1},
		{Term: "margins", Count: 1},
		{Term: "skeptics", Count: 1},
		{Term: "though", Count: 1},
	}
	assert.Equal(t, want, freqs, "count descending, alphabetical within a count")
}

func TestFrequencies_StripsPunctuationBeforeFiltering(t *testing.T) {
	text := "Don't panic everyone, hold steady. Don't panic, diamond hands prevail here friends."

	freqs := Frequencies(text)
	require.NotEmpty(t, freqs)

	assert.Equal(t, Frequency{Term: "panic", Count: 2}, freqs[0])
	for _, f := range freqs {
		assert.NotEqual(t, "dont", f.Term, "bare contractions are stopwords")
		assert.NotEqual(t, "here", f.Term)
	}
}

func TestFrequencies_DropsStopwordsAndShortTokens(t *testing.T) {
	text := "Buy GME and buy AMC, going to the moon soon, I am so bullish on it"

	freqs := Frequencies(text)

	want := []Frequency{
		{Term: "amc", Count: 1},
		{Term: "bullish", Count: 1},
		{Term: "gme", Count: 1},
		{Term: "moon", Count: 1},
		{Term: "soon", Count: 1},
	}
	assert.Equal(t, want, freqs)
}

func TestFrequencies_AllStopwordsYieldsNil(t *testing.T) {
	assert.Nil(t, Frequencies("buy sell stock stocks market markets trading money price prices today"))
}

func TestFrequencies_CapsAtHundredTerms(t *testing.T) {
	terms := make([]string, 120)
	for i := range terms {
		terms[i] = fmt.Sprintf("term%03d", i)
	}

	freqs := Frequencies(strings.Join(terms, " "))

	require.Len(t, freqs, 100)
	assert.Equal(t, "term000", freqs[0].Term)
	assert.Equal(t, "term099", freqs[99].Term)
}
