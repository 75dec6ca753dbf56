package go_scopes

import (
	db2 "github.com/PressKit/go-scopes/internal/db"
	"github.com/PressKit/go-scopes/internal/serviceimpl"
	"github.com/PressKit/go-scopes/service"
	"gorm.io/gorm"
)

type ScopesService struct {
	Users    service.UserService
	Posts    service.PostService
	Comments service.CommentService
	Stats    service.StatsService
	Feed     service.FeedService
	Worker   service.Worker
}

func NewScopesService(db *gorm.DB) *ScopesService {
	db2.Migrate(db)
	return &ScopesService{
		Users:    serviceimpl.NewUserService(db),
		Posts:    serviceimpl.NewPostService(db),
		Comments: serviceimpl.NewCommentService(db),
		Stats:    serviceimpl.NewStatsService(db),
		Feed:     serviceimpl.NewFeedService(db),
		Worker:   serviceimpl.NewWorkerService(db),
	}
}
