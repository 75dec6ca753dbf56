package serviceimpl

import (
	"errors"
	"fmt"
	"github.com/PressKit/go-scopes/models"
	"github.com/PressKit/go-scopes/request"
	"github.com/PressKit/go-scopes/service"
	"gorm.io/gorm"
)

type userService struct {
	DB *gorm.DB
}

var _ service.UserService = &userService{}

func NewUserService(db *gorm.DB) service.UserService {
	return &userService{DB: db}
}

func (s *userService) CreateUser(req request.CreateUserRequest) (*models.User, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.Email == "" {
		return nil, errors.New("email is required")
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := s.DB.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUsers retrieves users based on dynamic conditions
func (s *userService) GetUsers(req request.GetUsersRequest) ([]models.User, int64, error) {
	var users []models.User
	var count int64

	query := s.DB.Model(&models.User{})
	query = request.ApplyGetUsersRequest(req, query)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query = request.ApplySelectFields(query, req.PaginationConditions.SelectFields)
	query = request.ApplyPaginationConditions(query, req.PaginationConditions)

	if err := query.Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, count, nil
}

func (s *userService) UpdateUser(id uint, req request.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user %d: %w", id, err)
		}
	}
	return &user, nil
}
