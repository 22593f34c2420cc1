package entity

import (
	"availability-api/core/entity"

	"github.com/google/uuid"
)

// DayOfWeek uses Monday=0 .. Sunday=6, matching how the calendar grid is
// laid out. Note this differs from time.Weekday (Sunday=0).
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// SlotTemplate is a weekly recurring timeslot attached to an event. It has
// no intrinsic date; occurrences are derived by crossing it with calendar
// dates whose weekday matches DayOfWeek.
//
// StartTime and EndTime are zero-padded "HH:MM" (or "HH:MM:SS") strings.
// Slot ordering within a day is lexicographic on StartTime, so callers
// must keep them zero-padded.
type SlotTemplate struct {
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	DayOfWeek DayOfWeek `db:"day_of_week" json:"day_of_week"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	Label     string    `db:"label" json:"label"`

	entity.BaseEntity
}
