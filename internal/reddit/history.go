package reddit

import (
	"math"
	"time"
)

// SentimentPoint is one day of aggregated sentiment for an entity.
type SentimentPoint struct {
	Date     string  `json:"date"`
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Volume   int     `json:"volume"`
}

// volatileEntities get a wider sentiment swing than the rest.
var volatileEntities = map[string]bool{
	"TSLA": true, "GME": true, "AMC": true, "AAPL": true, "MSFT": true,
}

// historicalSentiment builds a daily series from days ago through today.
// The positive channel follows a sine wave with a slight upward drift,
// the negative channel mirrors it at half amplitude, and both carry
// Gaussian noise. Neutral takes the remainder with a 0.05 floor paid
// for evenly by the other two channels.
func (s *simulator) historicalSentiment(entity string, days int) []SentimentPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	var amplitude, frequency, trend float64
	switch {
	case volatileEntities[entity]:
		amplitude, frequency, trend = 0.4, 0.5, 0.002
	case entity == "market":
		amplitude, frequency, trend = 0.2, 0.3, 0.001
	default:
		amplitude, frequency, trend = 0.3, 0.4, 0.0015
	}

	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -days)

	var points []SentimentPoint
	day := 0

	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		wave := amplitude * math.Sin(frequency*float64(day))
		drift := float64(day) * trend

		positive := 0.4 + wave + drift
		negative := 0.3 - wave/2 - drift

		positive = math.Max(0.1, math.Min(0.8, positive+s.rng.NormFloat64()*0.05))
		negative = math.Max(0.05, math.Min(0.7, negative+s.rng.NormFloat64()*0.05))

		neutral := 1.0 - positive - negative
		if neutral < 0.05 {
			reduction := (0.05 - neutral) / 2
			positive -= reduction
			negative -= reduction
			neutral = 0.05
		}

		weekday := current.Weekday()
		var volume int
		if weekday != time.Saturday && weekday != time.Sunday {
			volume = s.intBetween(20, 50)
		} else {
			volume = s.intBetween(5, 25)
		}

		points = append(points, SentimentPoint{
			Date:     current.Format("2006-01-02"),
			Positive: round3(positive),
			Negative: round3(negative),
			Neutral:  round3(neutral),
			Volume:   volume,
		})

		day++
	}
	return points
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
