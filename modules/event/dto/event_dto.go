package dto

import "time"

// ===================== Request DTOs =====================

// CreateEventRequest for creating a new event
type CreateEventRequest struct {
	Name           string   `json:"name" validate:"required"`
	Type           string   `json:"type"`
	MaxUnavailable int      `json:"max_unavailable" validate:"min=0"`
	Members        []string `json:"members"` // user_ids
}

// UpdateEventRequest for updating event details
type UpdateEventRequest struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	MaxUnavailable *int   `json:"max_unavailable"`
}

// AddMemberRequest for adding or updating a member
type AddMemberRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Required bool   `json:"required"`
}

// ===================== Response DTOs =====================

// EventResponse for event details
type EventResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Type           string           `json:"type,omitempty"`
	MaxUnavailable int              `json:"max_unavailable"`
	ShareSlug      string           `json:"share_slug,omitempty"`
	ShareURL       string           `json:"share_url,omitempty"`
	Members        []MemberResponse `json:"members,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// MemberResponse for membership details
type MemberResponse struct {
	UserID   string `json:"user_id"`
	Required bool   `json:"required"`
}

// EventListResponse for a user's events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}
