package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/PressKit/go-scopes/models"
	"github.com/PressKit/go-scopes/request"
	"github.com/PressKit/go-scopes/response"
	"github.com/PressKit/go-scopes/scope"
	"github.com/PressKit/go-scopes/service"
	"github.com/PressKit/go-scopes/utils"
	"gorm.io/gorm"
	"time"
)

type postService struct {
	DB *gorm.DB
}

var _ service.PostService = &postService{}

func NewPostService(db *gorm.DB) service.PostService {
	return &postService{DB: db}
}

// CreatePost creates a new draft post for an existing author
func (s *postService) CreatePost(req request.CreatePostRequest) (*models.Post, error) {
	if req.Title == "" {
		return nil, errors.New("title is required")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, errors.New("price cannot be negative")
	}

	var author models.User
	if err := s.DB.First(&author, req.AuthorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author %d does not exist", req.AuthorID)
		}
		return nil, fmt.Errorf("failed to fetch author %d: %w", req.AuthorID, err)
	}

	slug := utils.Slugify(req.Title)
	if req.Slug != nil {
		slug = *req.Slug
	}

	post := &models.Post{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Slug:     slug,
		Body:     req.Body,
		Price:    req.Price,
		Meta:     req.Meta,
		Status:   "draft",
	}

	if err := s.DB.Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetPosts retrieves posts based on dynamic conditions
func (s *postService) GetPosts(req request.GetPostsRequest) ([]models.Post, int64, error) {
	var posts []models.Post
	var count int64

	query := s.DB.Model(&models.Post{})
	query = request.ApplyGetPostsRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query = request.ApplySelectFields(query, req.PaginationConditions.SelectFields)
	query = request.ApplyGroupBy(query, req.PaginationConditions.GroupBy)
	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch posts: %w", err)
	}

	return posts, count, nil
}

// GetLatest runs the Latest scope against the posts table and scans the
// projected overview rows.
func (s *postService) GetLatest(req scope.LatestRequest) ([]response.PostOverview, error) {
	latest, err := scope.NewLatest(req)
	if err != nil {
		return nil, err
	}

	var overviews []response.PostOverview
	query := scope.Tap(s.DB.Model(&models.Post{}), latest)
	if query.Error != nil {
		return nil, fmt.Errorf("failed to build latest posts query: %w", query.Error)
	}
	if err := query.Scan(&overviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch latest posts: %w", err)
	}
	return overviews, nil
}

func (s *postService) UpdatePost(id uint, req request.UpdatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := s.DB.First(&post, id).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch post %d: %w", id, err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, errors.New("price cannot be negative")
		}
		updates["price"] = *req.Price
	}
	if req.Meta != nil {
		updates["meta"] = *req.Meta
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&post).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update post %d: %w", id, err)
		}
	}
	return &post, nil
}

// PublishPost marks a post as published. A nil instant publishes now; a
// future instant schedules the post for the worker to pick up.
func (s *postService) PublishPost(id uint, at *time.Time) (*models.Post, error) {
	var post models.Post
	if err := s.DB.First(&post, id).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch post %d: %w", id, err)
	}

	publishedAt := time.Now()
	if at != nil {
		publishedAt = *at
	}

	updates := map[string]interface{}{
		"published_at": publishedAt,
	}
	if !publishedAt.After(time.Now()) {
		updates["status"] = "published"
	}

	if err := s.DB.Model(&post).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to publish post %d: %w", id, err)
	}
	return &post, nil
}
