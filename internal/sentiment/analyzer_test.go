package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalyzer_BuildsTables(t *testing.T) {
	a := NewAnalyzer()

	require.NotEmpty(t, a.lexicon)
	require.NotEmpty(t, a.amplifiers)
	require.NotEmpty(t, a.diminishers)
	require.NotEmpty(t, a.negators)
	require.NotEmpty(t, a.assessments)
	require.Len(t, a.gazetteer, 8)
	require.NotNil(t, a.tickerPattern)
	require.Len(t, a.phrasePatterns, 5)
}

func TestScore_EmptyText(t *testing.T) {
	a := NewAnalyzer()

	for _, text := range []string{"", "   ", "\n\t  "} {
		r := a.Score(text)
		assert.Equal(t, 0.0, r.Compound)
		assert.Equal(t, 0.0, r.Pos)
		assert.Equal(t, 0.0, r.Neg)
		assert.Equal(t, 1.0, r.Neu)
		assert.Equal(t, Neutral, r.Sentiment)
		assert.Empty(t, r.MatchedTerms)
	}
}

func TestScore_ChannelsSumToOne(t *testing.T) {
	a := NewAnalyzer()

	texts := []string{
		"TSLA to the moon",
		"market crash incoming, sell everything",
		"not bullish on this rally",
		"very bearish, absolutely terrible earnings",
		"I think the market looks great today",
		"somewhat volatile but holding steady",
		"no sentiment words here at all",
		"🚀🚀🚀 emoji only",
	}

	for _, text := range texts {
		r := a.Score(text)
		assert.InDelta(t, 1.0, r.Pos+r.Neg+r.Neu, 1e-9, "text: %q", text)
		assert.GreaterOrEqual(t, r.Compound, -1.0)
		assert.LessOrEqual(t, r.Compound, 1.0)
		assert.GreaterOrEqual(t, r.Subjectivity, 0.0)
		assert.LessOrEqual(t, r.Subjectivity, 1.0)
		for _, v := range []float64{r.Pos, r.Neg, r.Neu} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestScore_SingleLexiconTerm(t *testing.T) {
	a := NewAnalyzer()

	r := a.Score("bullish")

	// 2.0 / 2.5 with a zero base estimate.
	assert.InDelta(t, 0.8, r.Compound, 1e-9)
	assert.Equal(t, Positive, r.Sentiment)
	assert.Equal(t, []string{"bullish"}, r.MatchedTerms)
}

func TestScore_AmplifierRaisesScore(t *testing.T) {
	a := NewAnalyzer()

	plain := a.Score("bullish")
	amplified := a.Score("very bullish")

	assert.Greater(t, amplified.Compound, plain.Compound)
	assert.Equal(t, Positive, plain.Sentiment)
	assert.Equal(t, Positive, amplified.Sentiment)
}

func TestScore_DiminisherSoftensScore(t *testing.T) {
	a := NewAnalyzer()

	plain := a.Score("bullish")
	softened := a.Score("barely bullish")

	assert.Less(t, softened.Compound, plain.Compound)
	assert.Greater(t, softened.Compound, 0.0)
	assert.InDelta(t, 0.32, softened.Compound, 1e-9)
}

func TestScore_NegationFlipsScore(t *testing.T) {
	a := NewAnalyzer()

	plain := a.Score("bullish")
	negated := a.Score("not bullish")

	assert.Less(t, negated.Compound, plain.Compound)
	// 0.8 charged twice: 0.8 - 1.6.
	assert.InDelta(t, -0.8, negated.Compound, 1e-9)
	assert.Equal(t, Negative, negated.Sentiment)
	assert.Contains(t, negated.MatchedTerms, "bullish")
}

func TestScore_NegationWindowIsThreeTokens(t *testing.T) {
	a := NewAnalyzer()

	inside := a.Score("not a big rally")   // rally at offset 3, inside
	outside := a.Score("not a very big rally") // rally at offset 4, outside

	assert.Negative(t, inside.Compound)
	assert.Positive(t, outside.Compound)
}

func TestScore_NegatorAtEndHasNoEffect(t *testing.T) {
	a := NewAnalyzer()

	r := a.Score("bullish not")
	assert.InDelta(t, 0.8, r.Compound, 1e-9)
}

func TestScore_ModifierWithoutTargetHasNoEffect(t *testing.T) {
	a := NewAnalyzer()

	r := a.Score("very quickly moving along")
	assert.Equal(t, 0.0, r.Compound)
	assert.Equal(t, Neutral, r.Sentiment)
	assert.Empty(t, r.MatchedTerms)
}

func TestScore_MatchedTermOrdering(t *testing.T) {
	a := NewAnalyzer()

	// Unigram hits come first in token order, then phrase hits by
	// position; "buy the dip" overlaps its own unigram "buy".
	r := a.Score("buy the dip")
	assert.Equal(t, []string{"buy", "buy the dip"}, r.MatchedTerms)

	// (1.3 + 1.5) / 2.5 exceeds the cap, so the compound clamps.
	assert.Equal(t, 1.0, r.Compound)
}

func TestScore_RepeatedTermsCountEachTime(t *testing.T) {
	a := NewAnalyzer()

	r := a.Score("crash crash")
	assert.Len(t, r.MatchedTerms, 2)
	// 2 * (-2.0/2.5) clamped to -1.
	assert.Equal(t, -1.0, r.Compound)
	assert.Equal(t, Negative, r.Sentiment)
}

func TestScore_MixedSignalsCancel(t *testing.T) {
	a := NewAnalyzer()

	// +0.8 and -0.8 from the lexicon cancel exactly.
	r := a.Score("bullish crash")
	assert.Equal(t, 0.0, r.Compound)
	assert.Equal(t, Neutral, r.Sentiment)
	assert.Equal(t, 0.0, r.Pos)
	assert.Equal(t, 0.0, r.Neg)
	assert.Equal(t, 1.0, r.Neu)
	assert.Len(t, r.MatchedTerms, 2)
}

func TestScore_IntensityBoost(t *testing.T) {
	a := NewAnalyzer()

	// "gains" alone: compound 0.6, pos (0.6+0)/2 = 0.3, boosted to 0.36.
	r := a.Score("gains")
	assert.InDelta(t, 0.6, r.Compound, 1e-9)
	assert.InDelta(t, 0.36, r.Pos, 1e-9)
	assert.InDelta(t, 0.64, r.Neu, 1e-9)
	assert.InDelta(t, 1.0, r.Pos+r.Neg+r.Neu, 1e-9)
}

func TestScore_PunctuationBlocksLexiconTokens(t *testing.T) {
	a := NewAnalyzer()

	// Tokens are whitespace-split, so trailing punctuation keeps the
	// token out of the lexicon.
	r := a.Score("bullish!")
	assert.Empty(t, r.MatchedTerms)
	assert.Equal(t, 0.0, r.Compound)
}

func TestScore_CompoundClampedToRange(t *testing.T) {
	a := NewAnalyzer()

	up := a.Score("moon moon rocket rocket bullish surge")
	down := a.Score("crash tank collapse bankruptcy plunge dump")

	assert.Equal(t, 1.0, up.Compound)
	assert.Equal(t, -1.0, down.Compound)
}

func TestScore_Idempotent(t *testing.T) {
	a := NewAnalyzer()

	text := "very bullish on TSLA, not bearish at all, buy the dip"
	first := a.Score(text)
	second := a.Score(text)

	assert.Equal(t, first, second)
}

func TestClassify_Thresholds(t *testing.T) {
	assert.Equal(t, Positive, classify(0.15))
	assert.Equal(t, Neutral, classify(0.149999))
	assert.Equal(t, Negative, classify(-0.15))
	assert.Equal(t, Neutral, classify(-0.149999))
	assert.Equal(t, Neutral, classify(0.0))
	assert.Equal(t, Positive, classify(1.0))
	assert.Equal(t, Negative, classify(-1.0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, clamp(1.5, -1.0, 1.0))
	assert.Equal(t, -1.0, clamp(-2.0, -1.0, 1.0))
	assert.Equal(t, 0.25, clamp(0.25, -1.0, 1.0))
}
