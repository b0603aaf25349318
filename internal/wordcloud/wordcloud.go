// Package wordcloud distills thread text into the term frequencies a
// client-side word cloud renders.
package wordcloud

import (
	"regexp"
	"sort"
	"strings"
)

// Frequency is one cloud term with its occurrence count.
type Frequency struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

const (
	// minWords is the smallest raw word count worth a cloud.
	minWords = 10
	// minTermLen drops stray letters and two-letter glue.
	minTermLen = 3
	// maxTerms caps the payload at the hundred strongest terms.
	maxTerms = 100
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Frequencies tokenizes text into stopword-filtered term counts, most
// frequent first and alphabetical within a count. Texts under ten raw
// words yield nil; tiny comment sections get no cloud.
func Frequencies(text string) []Frequency {
	if len(strings.Fields(text)) < minWords {
		return nil
	}

	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), "")

	counts := make(map[string]int)
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) < minTermLen || stopwords[tok] {
			continue
		}
		counts[tok]++
	}
	if len(counts) == 0 {
		return nil
	}

	freqs := make([]Frequency, 0, len(counts))
	for term, count := range counts {
		freqs = append(freqs, Frequency{Term: term, Count: count})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Term < freqs[j].Term
	})

	if len(freqs) > maxTerms {
		freqs = freqs[:maxTerms]
	}
	return freqs
}
