package dto

import (
	"time"

	"github.com/google/uuid"

	"schooladmin_backend/internals/features/users/model"
)

type RegisterRequest struct {
	UserFullName string `json:"user_full_name" validate:"required,min=3,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email,max=120"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"omitempty,oneof=admin teacher staff"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UpdateUserRequest struct {
	UserFullName *string `json:"user_full_name" validate:"omitempty,min=3,max=100"`
	UserRole     *string `json:"user_role" validate:"omitempty,oneof=admin teacher staff"`
	UserIsActive *bool   `json:"user_is_active"`
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserFullName  string    `json:"user_full_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserFullName:  m.UserFullName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
