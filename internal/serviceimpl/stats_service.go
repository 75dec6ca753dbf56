package serviceimpl

import (
	"fmt"
	"github.com/PressKit/go-scopes/request"
	"github.com/PressKit/go-scopes/response"
	"github.com/PressKit/go-scopes/service"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type statsService struct {
	DB *gorm.DB
}

var _ service.StatsService = &statsService{}

func NewStatsService(db *gorm.DB) service.StatsService {
	return &statsService{DB: db}
}

// GetAuthorStats returns per-author post/comment counts and total paywall
// revenue. Revenue is summed in a correlated subquery so the comment join
// cannot inflate it.
func (s *statsService) GetAuthorStats(req request.GetUsersRequest) ([]response.AuthorStats, int64, error) {
	var result []response.AuthorStats
	var totalCount int64

	query := s.DB.Table("users").
		Select(`
			users.id AS id,
			users.name AS name,
			users.email AS email,
			COUNT(DISTINCT p.id) AS post_count,
			COUNT(DISTINCT c.id) AS comment_count,
			COALESCE(CAST((
				SELECT SUM(p2.price) FROM posts p2
				WHERE p2.author_id = users.id AND p2.deleted_at IS NULL
			) AS TEXT), '0') AS total_revenue,
			users.created_at AS created_at,
			users.updated_at AS updated_at
		`).
		Joins(`
			LEFT JOIN posts p ON p.author_id = users.id AND p.deleted_at IS NULL
		`).
		Joins(`
			LEFT JOIN comments c ON c.author_id = users.id AND c.deleted_at IS NULL
		`).
		Where("users.deleted_at IS NULL")

	query = query.Group(`
		users.id, users.name, users.email, users.created_at, users.updated_at
	`)

	// Apply filters
	query = request.ApplyGetUsersRequest(req, query)

	// Count before pagination
	countQuery := s.DB.Table("(?) AS subquery", query).Select("COUNT(*)")
	if err := countQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count author stats: %w", err)
	}

	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	rows, err := query.Rows()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch author stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stats response.AuthorStats
		var totalRevenueStr string

		err := rows.Scan(
			&stats.ID, &stats.Name, &stats.Email,
			&stats.PostCount, &stats.CommentCount, &totalRevenueStr,
			&stats.CreatedAt, &stats.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan author stats: %w", err)
		}

		totalRevenue, convErr := decimal.NewFromString(totalRevenueStr)
		if convErr != nil {
			return nil, 0, fmt.Errorf("failed to parse total_revenue: %w", convErr)
		}

		stats.TotalRevenue = totalRevenue
		result = append(result, stats)
	}

	return result, totalCount, nil
}
