package entity

import (
	"time"

	"github.com/google/uuid"
)

// VoteState is the explicit three-valued vote: a stored row is either
// available or unavailable, and a missing row is absent ("no opinion").
// Absent is a real state, not a null.
type VoteState string

const (
	VoteAbsent      VoteState = "absent"
	VoteAvailable   VoteState = "available"
	VoteUnavailable VoteState = "unavailable"
)

// VoteStateOf maps a stored row's boolean to its state.
func VoteStateOf(available bool) VoteState {
	if available {
		return VoteAvailable
	}
	return VoteUnavailable
}

// AvailabilityVote is one user's vote on one slot occurrence. The unique
// key is (UserID, EventID, SlotID, Date); upserts overwrite by key,
// last write wins.
type AvailabilityVote struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	SlotID    uuid.UUID `db:"slot_id" json:"slot_id"`
	Date      Date      `db:"date" json:"date"`
	Available bool      `db:"available" json:"available"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// VoteKey identifies a vote row
type VoteKey struct {
	UserID  uuid.UUID `db:"user_id"`
	EventID uuid.UUID `db:"event_id"`
	SlotID  uuid.UUID `db:"slot_id"`
	Date    Date      `db:"date"`
}

func (v *AvailabilityVote) Key() VoteKey {
	return VoteKey{
		UserID:  v.UserID,
		EventID: v.EventID,
		SlotID:  v.SlotID,
		Date:    v.Date,
	}
}

// OccurrenceKey identifies a slot occurrence within one event
type OccurrenceKey struct {
	SlotID uuid.UUID
	Date   Date
}

// OccurrenceAggregate is the derived per-occurrence tally across all
// members. Counts never double-count a (user, occurrence) pair because
// votes are unique by key.
type OccurrenceAggregate struct {
	AvailableCount     int
	UnavailableCount   int
	UnavailableUserIDs map[uuid.UUID]struct{}
}

// VotedUnavailable reports whether the user has an unavailable vote on
// this occurrence. Safe on the zero value.
func (a OccurrenceAggregate) VotedUnavailable(userID uuid.UUID) bool {
	_, ok := a.UnavailableUserIDs[userID]
	return ok
}

// Aggregates maps occurrence keys to tallies. A missing key yields the
// zero aggregate, so an empty (or reset) map reads as "no votes anywhere",
// which is the fail-open default after a store read failure.
type Aggregates map[OccurrenceKey]OccurrenceAggregate

func (m Aggregates) At(key OccurrenceKey) OccurrenceAggregate {
	return m[key]
}

// Viability classifies an occurrence for a specific viewing user.
type Viability string

const (
	ViabilityNone    Viability = "none"
	ViabilityWithYou Viability = "viable_with_you"
	ViabilityViable  Viability = "viable"
)

// WeekStatus summarizes a user's votes across one week's visible
// occurrences. Mixed doubles as "no decisive state" when the week has no
// visible occurrences at all.
type WeekStatus string

const (
	WeekStatusAllTrue  WeekStatus = "all_true"
	WeekStatusAllFalse WeekStatus = "all_false"
	WeekStatusMixed    WeekStatus = "mixed"
)
