package entity

import (
	"time"

	"availability-api/core/entity"

	"github.com/google/uuid"
)

// Event is a recurring group activity members vote availability on.
//
// MaxUnavailable is the number of unavailable votes a slot occurrence
// tolerates before it is hidden from general view. It is quorum slack,
// not a hard cap: more members than that may be unavailable, the
// occurrence just stops being shown.
type Event struct {
	Name           string `db:"name" json:"name"`
	Type           string `db:"type" json:"type"`
	MaxUnavailable int    `db:"max_unavailable" json:"max_unavailable"`
	ShareSlug      string `db:"share_slug" json:"share_slug"`

	entity.BaseEntity
}

// Membership links a user to an event. A required member's unavailable
// vote vetoes an occurrence's visibility for everyone but themselves.
type Membership struct {
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Required  bool      `db:"required" json:"required"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
