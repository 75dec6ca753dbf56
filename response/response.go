package response

import (
	"github.com/shopspring/decimal"
	"time"
)

// PostOverview is the row shape produced by the Latest scope: post columns
// plus the joined author name and the per-post comment count.
type PostOverview struct {
	ID            uint       `json:"id"`
	AuthorID      uint       `json:"authorID"`
	AuthorName    string     `json:"authorName"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	CommentsCount int64      `json:"commentsCount"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

type AuthorStats struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PostCount    int64           `json:"postCount"`
	CommentCount int64           `json:"commentCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
