package request

import (
	"gorm.io/gorm"
	"time"
)

type CreateCommentRequest struct {
	PostID   uint   `json:"postID" binding:"required"`
	AuthorID uint   `json:"authorID" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

type GetCommentsRequest struct {
	ID                   *uint                `form:"id"`       // Filter by ID
	PostID               *uint                `form:"postID"`   // Filter by post
	AuthorID             *uint                `form:"authorID"` // Filter by author
	Statuses             []string             `form:"statuses"`
	IsPublished          *bool                `form:"isPublished"`
	PublishedBefore      *time.Time           `form:"publishedBefore"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func ApplyGetCommentsRequest(req GetCommentsRequest, query *gorm.DB) *gorm.DB {
	if req.ID != nil {
		query = query.Where("comments.id = ?", *req.ID)
	}
	if req.PostID != nil {
		query = query.Where("comments.post_id = ?", *req.PostID)
	}
	if req.AuthorID != nil {
		query = query.Where("comments.author_id = ?", *req.AuthorID)
	}
	if len(req.Statuses) > 0 {
		query = query.Where("comments.status IN (?)", req.Statuses)
	}
	if req.IsPublished != nil {
		if *req.IsPublished {
			query = query.Where("comments.published_at IS NOT NULL")
		} else {
			query = query.Where("comments.published_at IS NULL")
		}
	}
	if req.PublishedBefore != nil {
		query = query.Where("comments.published_at <= ?", *req.PublishedBefore)
	}
	return query
}
