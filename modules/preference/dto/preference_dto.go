package dto

import "time"

// SetPreferenceRequest saves a client's last selection
type SetPreferenceRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	EventID string `json:"event_id"`
}

// PreferenceResponse returns the stored selection
type PreferenceResponse struct {
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
