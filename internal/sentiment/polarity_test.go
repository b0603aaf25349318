package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_NoKnownWords(t *testing.T) {
	a := NewAnalyzer()

	polarity, subjectivity := a.estimate("xyzzy plugh quux")
	assert.Equal(t, 0.0, polarity)
	assert.Equal(t, 0.0, subjectivity)
}

func TestEstimate_OpposingWordsCancel(t *testing.T) {
	a := NewAnalyzer()

	polarity, subjectivity := a.estimate("good bad")
	assert.InDelta(t, 0.0, polarity, 1e-9)
	assert.InDelta(t, 0.625, subjectivity, 1e-9)
}

func TestEstimate_NegationFlipsAndDampens(t *testing.T) {
	a := NewAnalyzer()

	polarity, _ := a.estimate("not good")
	assert.InDelta(t, -0.35, polarity, 1e-9)
}

func TestEstimate_BoosterScales(t *testing.T) {
	a := NewAnalyzer()

	plain, _ := a.estimate("good")
	boosted, _ := a.estimate("very good")

	assert.InDelta(t, 0.70, plain, 1e-9)
	assert.InDelta(t, 0.91, boosted, 1e-9)
}

func TestEstimate_NegatedBooster(t *testing.T) {
	a := NewAnalyzer()

	// The booster applies first, then the negator two tokens back
	// flips and halves the result.
	polarity, _ := a.estimate("not very good")
	assert.InDelta(t, -0.455, polarity, 1e-9)
}

func TestEstimate_BoostedPolarityClamped(t *testing.T) {
	a := NewAnalyzer()

	polarity, subjectivity := a.estimate("extremely excellent")
	assert.Equal(t, 1.0, polarity)
	assert.Equal(t, 1.0, subjectivity)
}

func TestEstimate_PunctuationIgnored(t *testing.T) {
	a := NewAnalyzer()

	plain, _ := a.estimate("good")
	punctuated, _ := a.estimate("good!!!")

	assert.Equal(t, plain, punctuated)
}

func TestEstimate_NegationOutOfScope(t *testing.T) {
	a := NewAnalyzer()

	// Two tokens between the negator and the hit put it out of reach.
	polarity, _ := a.estimate("not so called good")
	assert.Positive(t, polarity)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"tsla", "to", "the", "moon", "100x"},
		tokenize("TSLA to the moon!! 100x"))
	assert.Empty(t, tokenize("!!! ... ???"))
	assert.Empty(t, tokenize(""))
}
