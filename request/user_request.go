package request

import "gorm.io/gorm"

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type GetUsersRequest struct {
	ID                   *uint                `form:"id"`   // Filter by ID
	Name                 *string              `form:"name"` // Substring match
	Email                *string              `form:"email"`
	PaginationConditions PaginationConditions `form:"paginationConditions"`
}

func ApplyGetUsersRequest(req GetUsersRequest, query *gorm.DB) *gorm.DB {
	if req.ID != nil {
		query = query.Where("users.id = ?", *req.ID)
	}
	if req.Name != nil {
		query = query.Where("users.name LIKE ?", "%"+*req.Name+"%")
	}
	if req.Email != nil {
		query = query.Where("users.email = ?", *req.Email)
	}
	return query
}
