package trends

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/sentimentstream/internal/reddit"
)

func TestLabel(t *testing.T) {
	cases := []struct {
		compound float64
		want     string
	}{
		{1.0, "positive"},
		{0.0500001, "positive"},
		{0.05, "neutral"},
		{0.0, "neutral"},
		{-0.05, "neutral"},
		{-0.0500001, "negative"},
		{-1.0, "negative"},

		// Between the dashboard threshold and the analyzer's own
		// 0.15 classification cutoff: counts as directional here.
		{0.1, "positive"},
		{-0.1, "negative"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Label(tc.compound), "Label(%v)", tc.compound)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{0.8, 0.06, 0.05, 0.0, -0.05, -0.06, -0.9})

	assert.Equal(t, 2, s.Positive)
	assert.Equal(t, 3, s.Neutral, "both boundary scores stay neutral")
	assert.Equal(t, 2, s.Negative)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestNewStats(t *testing.T) {
	st := NewStats([]float64{0.8, 0.06, 0.05, 0.0, -0.05, -0.06, -0.9})

	assert.Equal(t, 7, st.Total)
	assert.InDelta(t, 2.0/7.0*100, st.PositivePct, 1e-9)
	assert.InDelta(t, 3.0/7.0*100, st.NeutralPct, 1e-9)
	assert.InDelta(t, 2.0/7.0*100, st.NegativePct, 1e-9)
}

func TestNewStats_EmptyAvoidsDivisionByZero(t *testing.T) {
	st := NewStats(nil)

	assert.Zero(t, st.Total)
	assert.Zero(t, st.PositivePct)
	assert.Zero(t, st.NeutralPct)
	assert.Zero(t, st.NegativePct)
}

func TestRollupDay(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	r := RollupDay("AAPL", day, []float64{0.5, -0.5}, []float64{0.3, 0.1, -0.05})

	assert.Equal(t, "AAPL", r.Entity)
	assert.Equal(t, day, r.Date)
	assert.Equal(t, 2, r.PostCount)
	assert.Equal(t, 3, r.CommentCount)
	assert.Equal(t, 3, r.PositiveCount)
	assert.Equal(t, 1, r.NegativeCount)
	assert.Equal(t, 1, r.NeutralCount)
	assert.InDelta(t, 0.07, r.SentimentAvg, 1e-9)
	assert.InDelta(t, 0.34, r.SentimentStdDev, 1e-9, "population standard deviation")
}

func TestRollupDay_Empty(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	r := RollupDay("GME", day, nil, nil)

	assert.Equal(t, "GME", r.Entity)
	assert.Zero(t, r.SentimentAvg)
	assert.Zero(t, r.SentimentStdDev)
	assert.Zero(t, r.PostCount)
	assert.Zero(t, r.CommentCount)
}

func TestCollector(t *testing.T) {
	morning := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)
	night := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)

	c := NewCollector()
	c.AddPost("AAPL", morning, 0.5)
	c.AddPost("AAPL", night, 0.3)
	c.AddComment("AAPL", morning, -0.2)
	c.AddPost("AAPL", nextDay, 0.1)
	c.AddPost("GME", morning, -0.8)

	rollups := c.Rollups()
	require.Len(t, rollups, 3, "same-day items share a bucket regardless of hour")

	assert.Equal(t, "AAPL", rollups[0].Entity)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), rollups[0].Date)
	assert.Equal(t, 2, rollups[0].PostCount)
	assert.Equal(t, 1, rollups[0].CommentCount)
	assert.InDelta(t, 0.2, rollups[0].SentimentAvg, 1e-9)

	assert.Equal(t, "AAPL", rollups[1].Entity)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), rollups[1].Date)
	assert.Equal(t, 1, rollups[1].PostCount)

	assert.Equal(t, "GME", rollups[2].Entity)
	assert.Equal(t, 1, rollups[2].PostCount)
	assert.InDelta(t, -0.8, rollups[2].SentimentAvg, 1e-9)
}

func TestCollector_EmptyYieldsNoRollups(t *testing.T) {
	assert.Empty(t, NewCollector().Rollups())
}

func TestChartSeries(t *testing.T) {
	points := []reddit.SentimentPoint{
		{Date: "2025-03-10", Positive: 0.41, Negative: 0.28, Neutral: 0.31, Volume: 33},
		{Date: "2025-03-11", Positive: 0.38, Negative: 0.33, Neutral: 0.29, Volume: 21},
	}

	s := ChartSeries(points)

	assert.Equal(t, []string{"2025-03-10", "2025-03-11"}, s.Dates)
	assert.Equal(t, []float64{0.41, 0.38}, s.Positive)
	assert.Equal(t, []float64{0.28, 0.33}, s.Negative)
	assert.Equal(t, []float64{0.31, 0.29}, s.Neutral)
	assert.Equal(t, []int{33, 21}, s.Volume)
}

func TestChartSeries_EmptyMarshalsAsArrays(t *testing.T) {
	s := ChartSeries(nil)

	assert.NotNil(t, s.Dates, "chart payloads need [] rather than null")
	assert.Empty(t, s.Dates)
	assert.NotNil(t, s.Positive)
	assert.NotNil(t, s.Volume)
}

func TestPulse(t *testing.T) {
	rollups := []DailyRollup{
		{SentimentAvg: 0.2, PostCount: 3, CommentCount: 1},
		{SentimentAvg: 0.4, PostCount: 2},
	}

	avg, mentions := Pulse(rollups)

	assert.InDelta(t, 0.3, avg, 1e-9, "days weigh equally")
	assert.Equal(t, 6, mentions)
}

func TestPulse_Empty(t *testing.T) {
	avg, mentions := Pulse(nil)

	assert.Zero(t, avg)
	assert.Zero(t, mentions)
}

func TestAlignByDate(t *testing.T) {
	d1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	rollups := []DailyRollup{
		{Entity: "AAPL", Date: d1, SentimentAvg: 0.25},
		{Entity: "AAPL", Date: d3, SentimentAvg: -0.1},
	}

	aligned := AlignByDate([]string{"2025-03-10", "2025-03-11", "2025-03-12"}, rollups)

	assert.Equal(t, []float64{0.25, 0, -0.1}, aligned)
}
