package dto

import "time"

// CreateUserRequest for registering a new member
type CreateUserRequest struct {
	Name string `json:"name" validate:"required"`
}

// UserResponse for user details
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

