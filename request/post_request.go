package request

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"time"
)

type CreatePostRequest struct {
	AuthorID uint             `json:"authorID" binding:"required"`
	Title    string           `json:"title" binding:"required"`
	Slug     *string          `json:"slug"` // generated from the title when omitted
	Body     string           `json:"body"`
	Price    *decimal.Decimal `json:"price"`
	Meta     *string          `json:"meta"`
}

type UpdatePostRequest struct {
	Title  *string          `json:"title"`
	Body   *string          `json:"body"`
	Price  *decimal.Decimal `json:"price"`
	Meta   *string          `json:"meta"`
	Status *string          `json:"status"`
}

type GetPostsRequest struct {
	ID                   *uint                `form:"id"`       // Filter by ID
	AuthorID             *uint                `form:"authorID"` // Filter by author
	Slug                 *string              `form:"slug"`
	Title                *string              `form:"title"` // Substring match
	Statuses             []string             `form:"statuses"`
	IsPublished          *bool                `form:"isPublished"`
	PublishedBefore      *time.Time           `form:"publishedBefore"`
	PublishedAfter       *time.Time           `form:"publishedAfter"`
	PriceAtMost          *decimal.Decimal     `form:"priceAtMost"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func ApplyGetPostsRequest(req GetPostsRequest, query *gorm.DB) *gorm.DB {
	// Apply filters with explicit table name
	if req.ID != nil {
		query = query.Where("posts.id = ?", *req.ID)
	}
	if req.AuthorID != nil {
		query = query.Where("posts.author_id = ?", *req.AuthorID)
	}
	if req.Slug != nil {
		query = query.Where("posts.slug = ?", *req.Slug)
	}
	if req.Title != nil {
		query = query.Where("posts.title LIKE ?", "%"+*req.Title+"%")
	}
	if len(req.Statuses) > 0 {
		query = query.Where("posts.status IN (?)", req.Statuses)
	}
	if req.IsPublished != nil {
		if *req.IsPublished {
			query = query.Where("posts.published_at IS NOT NULL")
		} else {
			query = query.Where("posts.published_at IS NULL")
		}
	}
	if req.PublishedBefore != nil {
		query = query.Where("posts.published_at <= ?", *req.PublishedBefore)
	}
	if req.PublishedAfter != nil {
		query = query.Where("posts.published_at >= ?", *req.PublishedAfter)
	}
	if req.PriceAtMost != nil {
		query = query.Where("posts.price IS NOT NULL AND posts.price <= ?", *req.PriceAtMost)
	}
	return query
}
