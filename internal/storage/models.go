// Package storage provides database models and repository functions.
package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/user/sentimentstream/internal/trends"
)

// Post is a persisted submission with its scored sentiment.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RedditID    string    `gorm:"uniqueIndex;size:20;not null" json:"reddit_id"`
	Subreddit   string    `gorm:"size:50;index;not null" json:"subreddit"`
	Title       string    `gorm:"size:300;not null" json:"title"`
	Selftext    string    `gorm:"type:text" json:"selftext"`
	Author      string    `gorm:"size:50" json:"author"`
	URL         string    `gorm:"size:500" json:"url"`
	Permalink   string    `gorm:"size:500" json:"permalink"`
	Score       int       `gorm:"default:0" json:"score"`
	UpvoteRatio float64   `json:"upvote_ratio"`
	NumComments int       `gorm:"default:0" json:"num_comments"`
	CreatedUTC  time.Time `gorm:"index" json:"created_utc"`
	FetchedAt   time.Time `json:"fetched_at"`

	// Sentiment data
	SentimentPositive float64 `json:"sentiment_positive"`
	SentimentNegative float64 `json:"sentiment_negative"`
	SentimentNeutral  float64 `json:"sentiment_neutral"`
	SentimentCompound float64 `json:"sentiment_compound"`
	SentimentLabel    string  `gorm:"size:10" json:"sentiment_label"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

// Comment is a persisted comment with its scored sentiment.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RedditID   string    `gorm:"uniqueIndex;size:20;not null" json:"reddit_id"`
	PostID     uint      `gorm:"index;not null" json:"post_id"`
	ParentID   *uint     `gorm:"index" json:"parent_id,omitempty"`
	Author     string    `gorm:"size:50" json:"author"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	Score      int       `gorm:"default:0" json:"score"`
	CreatedUTC time.Time `json:"created_utc"`

	// Sentiment data
	SentimentPositive float64 `json:"sentiment_positive"`
	SentimentNegative float64 `json:"sentiment_negative"`
	SentimentNeutral  float64 `json:"sentiment_neutral"`
	SentimentCompound float64 `json:"sentiment_compound"`
	SentimentLabel    string  `gorm:"size:10" json:"sentiment_label"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}

// SentimentData is one entity's daily sentiment rollup. Rows are
// upserted on the entity+date pair, so there is no soft delete here.
type SentimentData struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	Entity string    `gorm:"size:100;not null;uniqueIndex:idx_entity_date" json:"entity"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_entity_date" json:"date"`

	// Sentiment counts
	PositiveCount int `gorm:"default:0" json:"positive_count"`
	NegativeCount int `gorm:"default:0" json:"negative_count"`
	NeutralCount  int `gorm:"default:0" json:"neutral_count"`

	// Aggregated sentiment values
	SentimentAvg    float64 `json:"sentiment_avg"`
	SentimentStdDev float64 `json:"sentiment_stddev"`

	PostCount    int `gorm:"default:0" json:"post_count"`
	CommentCount int `gorm:"default:0" json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSentimentData builds a row from a daily rollup.
func NewSentimentData(r trends.DailyRollup) SentimentData {
	return SentimentData{
		Entity:          r.Entity,
		Date:            r.Date,
		PositiveCount:   r.PositiveCount,
		NegativeCount:   r.NegativeCount,
		NeutralCount:    r.NeutralCount,
		SentimentAvg:    r.SentimentAvg,
		SentimentStdDev: r.SentimentStdDev,
		PostCount:       r.PostCount,
		CommentCount:    r.CommentCount,
	}
}

// AsRollup converts the row back to its aggregation form.
func (s SentimentData) AsRollup() trends.DailyRollup {
	return trends.DailyRollup{
		Entity:          s.Entity,
		Date:            s.Date,
		PositiveCount:   s.PositiveCount,
		NegativeCount:   s.NegativeCount,
		NeutralCount:    s.NeutralCount,
		SentimentAvg:    s.SentimentAvg,
		SentimentStdDev: s.SentimentStdDev,
		PostCount:       s.PostCount,
		CommentCount:    s.CommentCount,
	}
}
