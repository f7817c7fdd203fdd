package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/roronge/iuran04/internal/domain/identity"
)

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh attempt
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest represents a password change by the user
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// CreateAdminRequest provisions an administrator for an association
type CreateAdminRequest struct {
	AssociationID uuid.UUID `json:"association_id" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	Password      string    `json:"password" binding:"required,min=8,max=128"`
	Name          string    `json:"name" binding:"required,min=1,max=150"`
}

// CreateResidentRequest creates a login account for a household
type CreateResidentRequest struct {
	HouseholdID uuid.UUID `json:"household_id" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Password    string    `json:"password" binding:"required,min=8,max=128"`
	Name        string    `json:"name" binding:"required,min=1,max=150"`
}

// ChangeEmailRequest changes a user's login email
type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
}

// ResetPasswordRequest resets a user's password without the old one
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// ListFilter carries the user list query parameters
type ListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Role     string `form:"role"`
	Status   string `form:"status"`
}

// UserInfo is the authenticated user's identity payload
type UserInfo struct {
	ID            uuid.UUID  `json:"id"`
	AssociationID *uuid.UUID `json:"association_id,omitempty"`
	HouseholdID   *uuid.UUID `json:"household_id,omitempty"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Role          string     `json:"role"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenResponse represents a refreshed token pair
type RefreshTokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	AssociationID *uuid.UUID `json:"association_id,omitempty"`
	HouseholdID   *uuid.UUID `json:"household_id,omitempty"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ToUserInfo converts a domain user to the identity payload
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:            user.ID,
		AssociationID: optionalUUID(user.AssociationID),
		HouseholdID:   user.HouseholdID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          string(user.Role),
	}
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(user *identity.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		AssociationID: optionalUUID(user.AssociationID),
		HouseholdID:   user.HouseholdID,
		Email:         user.Email,
		Name:          user.Name,
		Role:          string(user.Role),
		Status:        string(user.Status),
		LastLoginAt:   user.LastLoginAt,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func optionalUUID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
