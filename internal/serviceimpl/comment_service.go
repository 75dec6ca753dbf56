package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/PressKit/go-scopes/models"
	"github.com/PressKit/go-scopes/request"
	"github.com/PressKit/go-scopes/service"
	"gorm.io/gorm"
	"time"
)

type commentService struct {
	DB *gorm.DB
}

var _ service.CommentService = &commentService{}

func NewCommentService(db *gorm.DB) service.CommentService {
	return &commentService{DB: db}
}

// CreateComment creates a pending comment on an existing post
func (s *commentService) CreateComment(req request.CreateCommentRequest) (*models.Comment, error) {
	if req.Body == "" {
		return nil, errors.New("body is required")
	}

	var post models.Post
	if err := s.DB.First(&post, req.PostID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d does not exist", req.PostID)
		}
		return nil, fmt.Errorf("failed to fetch post %d: %w", req.PostID, err)
	}

	var author models.User
	if err := s.DB.First(&author, req.AuthorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author %d does not exist", req.AuthorID)
		}
		return nil, fmt.Errorf("failed to fetch author %d: %w", req.AuthorID, err)
	}

	comment := &models.Comment{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		Body:     req.Body,
		Status:   "pending",
	}

	if err := s.DB.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// GetComments retrieves comments based on dynamic conditions
func (s *commentService) GetComments(req request.GetCommentsRequest) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var count int64

	query := s.DB.Model(&models.Comment{})
	query = request.ApplyGetCommentsRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query = request.ApplySelectFields(query, req.PaginationConditions.SelectFields)
	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Find(&comments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch comments: %w", err)
	}

	return comments, count, nil
}

func (s *commentService) PublishComment(id uint, at *time.Time) (*models.Comment, error) {
	var comment models.Comment
	if err := s.DB.First(&comment, id).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch comment %d: %w", id, err)
	}

	publishedAt := time.Now()
	if at != nil {
		publishedAt = *at
	}

	updates := map[string]interface{}{
		"status":       "published",
		"published_at": publishedAt,
	}

	if err := s.DB.Model(&comment).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to publish comment %d: %w", id, err)
	}
	return &comment, nil
}
