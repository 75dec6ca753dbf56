package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/PressKit/go-scopes/models"
	"github.com/PressKit/go-scopes/request"
	"github.com/PressKit/go-scopes/service"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

type feedService struct {
	DB    *gorm.DB
	Rules map[string]*vm.Program
}

var _ service.FeedService = &feedService{}

func NewFeedService(db *gorm.DB) service.FeedService {
	return &feedService{DB: db, Rules: map[string]*vm.Program{}}
}

// AddRule compiles a boolean rule expression and registers it under the given
// name. Compilation failures are rejected here so a broken rule can never
// reach GetFeed.
func (s *feedService) AddRule(name, source string) error {
	if name == "" {
		return errors.New("rule name is required")
	}
	program, err := expr.Compile(source, expr.AsBool())
	if err != nil {
		return fmt.Errorf("failed to compile feed rule '%s': %w", name, err)
	}
	s.Rules[name] = program
	return nil
}

func (s *feedService) RemoveRule(name string) error {
	if _, exists := s.Rules[name]; !exists {
		return fmt.Errorf("no feed rule found with name '%s'", name)
	}
	delete(s.Rules, name)
	return nil
}

// GetFeed fetches posts matching the request filters and keeps only those
// satisfying every registered rule.
func (s *feedService) GetFeed(req request.GetPostsRequest) ([]models.Post, error) {
	var posts []models.Post

	query := request.ApplyGetPostsRequest(req, s.DB.Model(&models.Post{}))
	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch feed posts: %w", err)
	}
	if len(s.Rules) == 0 {
		return posts, nil
	}

	filtered := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		keep := true
		for name, program := range s.Rules {
			out, err := vm.Run(program, ruleEnv(post))
			if err != nil {
				return nil, fmt.Errorf("failed to evaluate feed rule '%s': %w", name, err)
			}
			if pass, ok := out.(bool); !ok || !pass {
				keep = false
				break
			}
		}
		if keep {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

// ruleEnv exposes the post fields a rule can reference, plus a meta(path)
// lookup into the post's JSON meta column.
func ruleEnv(post models.Post) map[string]interface{} {
	price := 0.0
	if post.Price != nil {
		price, _ = post.Price.Float64()
	}
	return map[string]interface{}{
		"title":    post.Title,
		"slug":     post.Slug,
		"body":     post.Body,
		"status":   post.Status,
		"authorID": post.AuthorID,
		"price":    price,
		"free":     post.Price == nil,
		"meta": func(path string) string {
			if post.Meta == nil {
				return ""
			}
			return gjson.Get(*post.Meta, path).String()
		},
	}
}
