package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Repository provides database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository with the given DSN.
func NewRepository(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&Post{},
		&Comment{},
		&SentimentData{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// DB returns the underlying GORM database instance.
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Close closes the database connection.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Post operations

// UpsertPost creates the post or refreshes it when the reddit ID is
// already stored.
func (r *Repository) UpsertPost(ctx context.Context, post *Post) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "reddit_id"}},
		UpdateAll: true,
	}).Create(post).Error
}

// GetPostByRedditID retrieves a post by its reddit ID.
func (r *Repository) GetPostByRedditID(ctx context.Context, redditID string) (*Post, error) {
	var post Post
	err := r.db.WithContext(ctx).Where("reddit_id = ?", redditID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &post, err
}

// ListPostsBySubreddit lists stored posts for a subreddit, newest
// first.
func (r *Repository) ListPostsBySubreddit(ctx context.Context, subreddit string, limit int) ([]Post, error) {
	var posts []Post
	query := r.db.WithContext(ctx).
		Where("subreddit = ?", subreddit).
		Order("created_utc DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&posts).Error
	return posts, err
}

// Comment operations

// UpsertComment creates the comment or refreshes it when the reddit ID
// is already stored.
func (r *Repository) UpsertComment(ctx context.Context, comment *Comment) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "reddit_id"}},
		UpdateAll: true,
	}).Create(comment).Error
}

// ListCommentsByPostID lists a post's comments, highest score first.
func (r *Repository) ListCommentsByPostID(ctx context.Context, postID uint, limit int) ([]Comment, error) {
	var comments []Comment
	query := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("score DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&comments).Error
	return comments, err
}

// SentimentData operations

// UpsertSentimentData writes the rollup, replacing the stored values
// for the entity and date when present.
func (r *Repository) UpsertSentimentData(ctx context.Context, data *SentimentData) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entity"}, {Name: "date"}},
		UpdateAll: true,
	}).Create(data).Error
}

// SentimentSeries lists an entity's rollups from since onward, oldest
// first.
func (r *Repository) SentimentSeries(ctx context.Context, entity string, since time.Time) ([]SentimentData, error) {
	var series []SentimentData
	err := r.db.WithContext(ctx).
		Where("entity = ? AND date >= ?", entity, since).
		Order("date ASC").
		Find(&series).Error
	return series, err
}

// EntityMentions pairs an entity with its mention total.
type EntityMentions struct {
	Entity   string `json:"entity"`
	Mentions int    `json:"mentions"`
}

// TopEntities lists the most mentioned entities from since onward.
func (r *Repository) TopEntities(ctx context.Context, since time.Time, limit int) ([]EntityMentions, error) {
	var out []EntityMentions
	query := r.db.WithContext(ctx).
		Model(&SentimentData{}).
		Select("entity, SUM(post_count + comment_count) AS mentions").
		Where("date >= ?", since).
		Group("entity").
		Order("mentions DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&out).Error
	return out, err
}
