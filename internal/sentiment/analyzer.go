// Package sentiment provides lexicon-based financial sentiment scoring
// and entity extraction for social-media style market chatter.
package sentiment

import (
	"math"
	"regexp"
	"strings"
)

// Classification represents the sentiment label of a scored text.
type Classification string

const (
	Positive Classification = "positive"
	Negative Classification = "negative"
	Neutral  Classification = "neutral"
)

const (
	// lexiconScale converts raw lexicon weights (-3..+3) into polarity
	// adjustments comparable to the base estimator's -1..1 range.
	lexiconScale = 2.5

	// negationWindow is the number of tokens a negator reaches forward.
	negationWindow = 3

	// intensityBoost strengthens the dominant channel when financial
	// terms were matched.
	intensityBoost = 1.2

	positiveThreshold = 0.15
	negativeThreshold = -0.15
)

// Result represents the outcome of scoring one text.
type Result struct {
	Compound     float64        `json:"compound"` // -1 to 1
	Pos          float64        `json:"pos"`
	Neg          float64        `json:"neg"`
	Neu          float64        `json:"neu"`
	Sentiment    Classification `json:"sentiment"`
	Subjectivity float64        `json:"subjectivity"` // 0 to 1
	MatchedTerms []string       `json:"matched_terms"`
}

// Analyzer scores text against a financial lexicon and extracts financial
// entities. All tables are built once at construction; an Analyzer is
// immutable afterwards and safe for concurrent use.
type Analyzer struct {
	lexicon     map[string]float64
	amplifiers  map[string]float64
	diminishers map[string]float64
	negators    map[string]bool

	assessments map[string]assessment
	boosters    map[string]float64

	gazetteer      []entityCategory
	tickerPattern  *regexp.Regexp
	phrasePatterns []*regexp.Regexp
}

// NewAnalyzer creates a new analyzer with predefined dictionaries and
// compiled entity patterns.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		lexicon:        financeLexicon(),
		amplifiers:     amplifierFactors(),
		diminishers:    diminisherFactors(),
		negators:       negatorWords(),
		assessments:    wordAssessments(),
		boosters:       boosterFactors(),
		gazetteer:      compileGazetteer(),
		tickerPattern:  regexp.MustCompile(tickerExpr),
		phrasePatterns: compileKeyPhrasePatterns(),
	}
}

// Score analyzes the text and returns a fresh Result. The base polarity
// estimate is shifted by lexicon matches, negation regions and
// amplifier/diminisher modifiers, then decomposed into pos/neg/neu
// channels that sum to one.
func (a *Analyzer) Score(text string) *Result {
	if strings.TrimSpace(text) == "" {
		return &Result{Neu: 1.0, Sentiment: Neutral}
	}

	words := strings.Fields(strings.ToLower(text))

	polarity, subjectivity := a.estimate(text)

	var adjustment float64
	var matched []string

	// Single-token lexicon hits, in token order. Repeated tokens are
	// counted every time they occur.
	for _, word := range words {
		if weight, ok := a.lexicon[word]; ok {
			adjustment += weight / lexiconScale
			matched = append(matched, word)
		}
	}

	// Two- and three-token phrases starting at each position. Phrases
	// overlap freely with the single-token hits above.
	for i := range words {
		if i < len(words)-1 {
			phrase := words[i] + " " + words[i+1]
			if weight, ok := a.lexicon[phrase]; ok {
				adjustment += weight / lexiconScale
				matched = append(matched, phrase)
			}
		}
		if i < len(words)-2 {
			phrase := words[i] + " " + words[i+1] + " " + words[i+2]
			if weight, ok := a.lexicon[phrase]; ok {
				adjustment += weight / lexiconScale
				matched = append(matched, phrase)
			}
		}
	}

	matchedSet := make(map[string]bool, len(matched))
	for _, term := range matched {
		matchedSet[term] = true
	}

	// A negator marks the next three token positions as negated.
	// Overlapping regions collapse into one membership set.
	negated := make(map[int]bool)
	for i, word := range words {
		if a.negators[word] {
			for j := i + 1; j < len(words) && j <= i+negationWindow; j++ {
				negated[j] = true
			}
		}
	}

	// Each amplifier or diminisher scans forward to the first token that
	// equals a matched term and contributes factor-1 to the combined
	// effect. Multi-word matched phrases never equal a single token, so
	// they are skipped by construction.
	var amplifierEffect float64
	for i, word := range words {
		factor, ok := a.amplifiers[word]
		if !ok {
			factor, ok = a.diminishers[word]
		}
		if !ok {
			continue
		}
		next := i + 1
		for next < len(words) && !matchedSet[words[next]] {
			next++
		}
		if next < len(words) {
			amplifierEffect += factor - 1.0
		}
	}

	// Matched single terms inside a negation region are charged twice
	// their contribution, flipping the term's net effect.
	var negationEffect float64
	for i, word := range words {
		if negated[i] && matchedSet[word] {
			if weight, ok := a.lexicon[word]; ok {
				negationEffect -= 2 * (weight / lexiconScale)
			}
		}
	}

	adjustment += negationEffect

	if amplifierEffect != 0 && adjustment != 0 {
		adjustment *= 1 + amplifierEffect
	}

	compound := clamp(polarity+adjustment, -1.0, 1.0)

	var pos, neg, neu float64
	switch {
	case compound > 0:
		pos = (compound + subjectivity) / 2
		neu = 1 - pos
	case compound < 0:
		neg = (math.Abs(compound) + subjectivity) / 2
		neu = 1 - neg
	default:
		neu = 1.0
	}

	pos = clamp(pos, 0.0, 1.0)
	neg = clamp(neg, 0.0, 1.0)
	neu = clamp(neu, 0.0, 1.0)

	if total := pos + neg + neu; total > 0 {
		pos /= total
		neg /= total
		neu /= total
	}

	// Matched financial terms sharpen the dominant channel; the neutral
	// channel absorbs the difference so the three still sum to one.
	if len(matched) > 0 {
		switch {
		case compound > 0:
			pos = math.Min(pos*intensityBoost, 1.0)
			neu = math.Max(1.0-pos, 0.0)
		case compound < 0:
			neg = math.Min(neg*intensityBoost, 1.0)
			neu = math.Max(1.0-neg, 0.0)
		}
	}

	return &Result{
		Compound:     compound,
		Pos:          pos,
		Neg:          neg,
		Neu:          neu,
		Sentiment:    classify(compound),
		Subjectivity: subjectivity,
		MatchedTerms: matched,
	}
}

// classify maps a compound score to its label.
func classify(compound float64) Classification {
	switch {
	case compound >= positiveThreshold:
		return Positive
	case compound <= negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
