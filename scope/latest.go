package scope

import (
	"errors"
	"github.com/PressKit/go-scopes/models"
	"gorm.io/gorm"
	"time"
)

const defaultLatestLimit = 10

// LatestRequest carries the optional knobs for the Latest scope. Nil fields
// fall back to the defaults: limit 10, count published comments only, and a
// reference instant of now.
type LatestRequest struct {
	Limit             *int       `form:"limit"`
	PublishedComments *bool      `form:"publishedComments"`
	Before            *time.Time `form:"before"`
}

// Latest shapes a post query into the "recent posts" page: posts.* plus the
// author name, a per-post comment count, only posts published at or before
// the reference instant, newest first, capped at the limit.
type Latest struct {
	limit             int
	publishedComments bool
	before            time.Time
}

func NewLatest(req LatestRequest) (*Latest, error) {
	limit := defaultLatestLimit
	if req.Limit != nil {
		if *req.Limit < 1 {
			return nil, errors.New("limit must be at least 1")
		}
		limit = *req.Limit
	}
	publishedComments := true
	if req.PublishedComments != nil {
		publishedComments = *req.PublishedComments
	}
	before := time.Now()
	if req.Before != nil {
		before = *req.Before
	}
	return &Latest{limit: limit, publishedComments: publishedComments, before: before}, nil
}

// Apply keeps a fixed operation order: projection, join, correlated count,
// filter, sort, limit. The count subquery references posts.id, so the
// projection and join must be in place before results are materialized.
func (s *Latest) Apply(tx *gorm.DB) *gorm.DB {
	counts := tx.Session(&gorm.Session{NewDB: true}).
		Model(&models.Comment{}).
		Select("COUNT(*)").
		Where("comments.post_id = posts.id")
	if s.publishedComments {
		counts = counts.Where("comments.published_at <= ?", s.before)
	}

	return tx.
		Select("posts.*, users.name AS author_name, (?) AS comments_count", counts).
		Joins("JOIN users ON users.id = posts.author_id").
		Where("posts.published_at <= ?", s.before).
		Order("posts.published_at DESC").
		Limit(s.limit)
}
