package sentiment

import (
	"fmt"
	"math"
	"strings"
)

// Color returns a hex color for a compound score: green shades for
// positive scores, red shades for negative ones and gray for zero. The
// channel intensity grows with the score's magnitude.
func Color(compound float64) string {
	switch {
	case compound > 0:
		intensity := int(math.Min(255, 120+compound*135))
		return fmt.Sprintf("#00%02x00", intensity)
	case compound < 0:
		intensity := int(math.Min(255, 120+math.Abs(compound)*135))
		return fmt.Sprintf("#%02x0000", intensity)
	default:
		return "#888888"
	}
}

// Explain renders a human-readable summary of a scoring result, naming
// the sentiment band and up to five matched financial terms.
func Explain(r *Result) string {
	if len(r.MatchedTerms) == 0 {
		return "No notable financial sentiment detected."
	}

	var desc string
	switch {
	case r.Compound >= 0.6:
		desc = "strongly positive"
	case r.Compound >= positiveThreshold:
		desc = "positive"
	case r.Compound <= -0.6:
		desc = "strongly negative"
	case r.Compound <= negativeThreshold:
		desc = "negative"
	default:
		desc = "neutral"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The overall financial sentiment is %s (score: %.2f). ", desc, r.Compound)

	top := r.MatchedTerms
	if len(top) > 5 {
		top = top[:5]
	}
	b.WriteString("Key financial terms detected: " + strings.Join(top, ", "))
	if len(r.MatchedTerms) > 5 {
		fmt.Fprintf(&b, " and %d more.", len(r.MatchedTerms)-5)
	} else {
		b.WriteString(".")
	}

	return b.String()
}
