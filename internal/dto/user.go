package dto

import (
	"github.com/jkim-dev/budget_tracker_app/internal/core/domain"
)

// RegisterUserRequest defines the payload for user registration.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	FullName string `json:"fullName" binding:"max=255"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	UserID      string `json:"userID"`
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	IsActive    bool   `json:"isActive"`
	IsSuperuser bool   `json:"isSuperuser"`
}

// ToUserResponse converts a domain user to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:      user.UserID,
		Email:       user.Email,
		FullName:    user.FullName,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
	}
}
