package service

import (
	"github.com/PressKit/go-scopes/models"
	"github.com/PressKit/go-scopes/request"
	"github.com/PressKit/go-scopes/response"
	"github.com/PressKit/go-scopes/scope"
	"time"
)

// UserService handles operations related to authors
type UserService interface {
	CreateUser(req request.CreateUserRequest) (*models.User, error)
	GetUsers(req request.GetUsersRequest) ([]models.User, int64, error)
	UpdateUser(id uint, req request.UpdateUserRequest) (*models.User, error)
}

// PostService handles operations related to posts
type PostService interface {
	CreatePost(req request.CreatePostRequest) (*models.Post, error)
	GetPosts(req request.GetPostsRequest) ([]models.Post, int64, error)
	GetLatest(req scope.LatestRequest) ([]response.PostOverview, error)
	UpdatePost(id uint, req request.UpdatePostRequest) (*models.Post, error)
	PublishPost(id uint, at *time.Time) (*models.Post, error)
}

// CommentService handles operations related to comments
type CommentService interface {
	CreateComment(req request.CreateCommentRequest) (*models.Comment, error)
	GetComments(req request.GetCommentsRequest) ([]models.Comment, int64, error)
	PublishComment(id uint, at *time.Time) (*models.Comment, error)
}

type StatsService interface {
	GetAuthorStats(req request.GetUsersRequest) ([]response.AuthorStats, int64, error)
}

// FeedService filters materialized posts through named rule predicates.
type FeedService interface {
	AddRule(name, source string) error
	RemoveRule(name string) error
	GetFeed(req request.GetPostsRequest) ([]models.Post, error)
}

type Worker interface {
	PublishScheduledPosts() error
}
