package entity

import "time"

// Preference remembers a client's last selected user and event so the UI
// can restore them on the next visit. Keyed by an opaque client ID.
type Preference struct {
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
