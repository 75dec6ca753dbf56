package serviceimpl

import (
	"fmt"
	"github.com/PressKit/go-scopes/models"
	"github.com/PressKit/go-scopes/service"
	"gorm.io/gorm"
	"time"
)

type worker struct {
	DB *gorm.DB
}

var _ service.Worker = &worker{}

func NewWorkerService(db *gorm.DB) service.Worker {
	return &worker{DB: db}
}

// PublishScheduledPosts flips draft posts whose publish instant has passed to
// published. Each post is updated in its own transaction so one failure does
// not hold back the rest of the batch.
func (w *worker) PublishScheduledPosts() error {
	var due []models.Post
	if err := w.DB.
		Where("status = ? AND published_at IS NOT NULL AND published_at <= ?", "draft", time.Now()).
		Find(&due).Error; err != nil {
		return fmt.Errorf("failed to fetch scheduled posts: %w", err)
	}

	for _, post := range due {
		err := w.DB.Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&models.Post{}).
				Where("id = ? AND status = ?", post.ID, "draft").
				Update("status", "published")
			if result.Error != nil {
				return fmt.Errorf("failed to publish post %d: %w", post.ID, result.Error)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
