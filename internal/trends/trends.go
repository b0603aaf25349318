// Package trends aggregates scored content into dashboard summaries,
// percentage stats and per-entity daily rollups.
package trends

import (
	"math"
	"sort"
	"time"

	"github.com/user/sentimentstream/internal/reddit"
)

// Dashboard bucket thresholds. Looser than the analyzer's own
// classification so mildly tilted posts still count toward a direction
// on the board.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Label buckets a compound score for dashboard counting. Scores at
// exactly +-0.05 stay neutral.
func Label(compound float64) string {
	switch {
	case compound > positiveThreshold:
		return "positive"
	case compound < negativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// Summary counts items per direction.
type Summary struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Summarize buckets compound scores into a Summary.
func Summarize(compounds []float64) Summary {
	var s Summary
	for _, c := range compounds {
		switch {
		case c > positiveThreshold:
			s.Positive++
		case c < negativeThreshold:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	return s
}

// Stats extends a Summary with the total and percentage breakdown.
type Stats struct {
	Summary
	Total       int     `json:"total"`
	PositivePct float64 `json:"positive_pct"`
	NeutralPct  float64 `json:"neutral_pct"`
	NegativePct float64 `json:"negative_pct"`
}

// NewStats buckets compound scores and derives percentages. An empty
// input yields all-zero stats rather than a division by zero.
func NewStats(compounds []float64) Stats {
	st := Stats{Summary: Summarize(compounds), Total: len(compounds)}
	if st.Total == 0 {
		return st
	}
	total := float64(st.Total)
	st.PositivePct = float64(st.Positive) / total * 100
	st.NeutralPct = float64(st.Neutral) / total * 100
	st.NegativePct = float64(st.Negative) / total * 100
	return st
}

// DailyRollup aggregates one entity's scored posts and comments for a
// single day.
type DailyRollup struct {
	Entity          string
	Date            time.Time
	SentimentAvg    float64
	SentimentStdDev float64
	PositiveCount   int
	NegativeCount   int
	NeutralCount    int
	PostCount       int
	CommentCount    int
}

// RollupDay folds a day's post and comment compound scores into a
// DailyRollup for the entity. The spread is the population standard
// deviation over both kinds together.
func RollupDay(entity string, date time.Time, postScores, commentScores []float64) DailyRollup {
	all := make([]float64, 0, len(postScores)+len(commentScores))
	all = append(all, postScores...)
	all = append(all, commentScores...)

	s := Summarize(all)
	r := DailyRollup{
		Entity:        entity,
		Date:          date,
		PositiveCount: s.Positive,
		NegativeCount: s.Negative,
		NeutralCount:  s.Neutral,
		PostCount:     len(postScores),
		CommentCount:  len(commentScores),
	}
	if len(all) == 0 {
		return r
	}

	r.SentimentAvg = mean(all)
	r.SentimentStdDev = stddev(all, r.SentimentAvg)
	return r
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func stddev(vals []float64, mean float64) float64 {
	var sum float64
	for _, v := range vals {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)))
}

// Collector buckets scored items by entity and day so a fetch cycle
// can be folded into rollups in one pass.
type Collector struct {
	buckets map[string]map[string]*dayScores
}

type dayScores struct {
	date     time.Time
	posts    []float64
	comments []float64
}

func NewCollector() *Collector {
	return &Collector{buckets: make(map[string]map[string]*dayScores)}
}

func (c *Collector) day(entity string, date time.Time) *dayScores {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	key := day.Format("2006-01-02")

	days, ok := c.buckets[entity]
	if !ok {
		days = make(map[string]*dayScores)
		c.buckets[entity] = days
	}
	scores, ok := days[key]
	if !ok {
		scores = &dayScores{date: day}
		days[key] = scores
	}
	return scores
}

// AddPost records a post's compound score against the entity for the
// post's day.
func (c *Collector) AddPost(entity string, date time.Time, compound float64) {
	d := c.day(entity, date)
	d.posts = append(d.posts, compound)
}

// AddComment records a comment's compound score against the entity for
// the comment's day.
func (c *Collector) AddComment(entity string, date time.Time, compound float64) {
	d := c.day(entity, date)
	d.comments = append(d.comments, compound)
}

// Rollups folds everything collected so far into rollups, ordered by
// entity then date.
func (c *Collector) Rollups() []DailyRollup {
	var rollups []DailyRollup
	for entity, days := range c.buckets {
		for _, scores := range days {
			rollups = append(rollups, RollupDay(entity, scores.date, scores.posts, scores.comments))
		}
	}
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].Entity != rollups[j].Entity {
			return rollups[i].Entity < rollups[j].Entity
		}
		return rollups[i].Date.Before(rollups[j].Date)
	})
	return rollups
}

// Series carries the trend chart payload as parallel arrays.
type Series struct {
	Dates    []string  `json:"dates"`
	Positive []float64 `json:"positive"`
	Negative []float64 `json:"negative"`
	Neutral  []float64 `json:"neutral"`
	Volume   []int     `json:"volume"`
}

// ChartSeries splits sentiment points into the parallel arrays the
// trend chart consumes.
func ChartSeries(points []reddit.SentimentPoint) Series {
	s := Series{
		Dates:    make([]string, 0, len(points)),
		Positive: make([]float64, 0, len(points)),
		Negative: make([]float64, 0, len(points)),
		Neutral:  make([]float64, 0, len(points)),
		Volume:   make([]int, 0, len(points)),
	}
	for _, p := range points {
		s.Dates = append(s.Dates, p.Date)
		s.Positive = append(s.Positive, p.Positive)
		s.Negative = append(s.Negative, p.Negative)
		s.Neutral = append(s.Neutral, p.Neutral)
		s.Volume = append(s.Volume, p.Volume)
	}
	return s
}

// Pulse returns the average of the rollups' daily sentiment averages
// and the total mention count across them. Days weigh equally
// regardless of how many mentions they carry.
func Pulse(rollups []DailyRollup) (avgSentiment float64, mentions int) {
	if len(rollups) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, r := range rollups {
		sum += r.SentimentAvg
		mentions += r.PostCount + r.CommentCount
	}
	return sum / float64(len(rollups)), mentions
}

// AlignByDate maps rollup averages onto the given dates, zero where the
// entity has no rollup for a date. Price and sentiment charts share an
// axis this way.
func AlignByDate(dates []string, rollups []DailyRollup) []float64 {
	byDate := make(map[string]float64, len(rollups))
	for _, r := range rollups {
		byDate[r.Date.Format("2006-01-02")] = r.SentimentAvg
	}

	out := make([]float64, len(dates))
	for i, d := range dates {
		out[i] = byDate[d]
	}
	return out
}
