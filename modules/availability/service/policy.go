package service

import (
	"availability-api/modules/availability/entity"

	"github.com/google/uuid"
)

// IsVisible decides whether one slot occurrence is shown to a viewing
// user. Rules, in order:
//
//  1. Past dates are never visible, independent of votes.
//  2. When unavailable votes exceed the event's maxUnavailable slack the
//     occurrence is hidden, unless the viewer personally voted
//     unavailable, so they can still see and revise their own vote.
//  3. A required member's unavailable vote vetoes the occurrence for
//     everyone except that member.
//
// Hiding by any rule is final.
func IsVisible(
	maxUnavailable int,
	date entity.Date,
	today entity.Date,
	viewerID uuid.UUID,
	agg entity.OccurrenceAggregate,
	requiredUserIDs map[uuid.UUID]struct{},
) bool {
	if date.Before(today) {
		return false
	}

	if agg.UnavailableCount > maxUnavailable && !agg.VotedUnavailable(viewerID) {
		return false
	}

	for userID := range requiredUserIDs {
		if userID == viewerID {
			continue
		}
		if agg.VotedUnavailable(userID) {
			return false
		}
	}

	return true
}

// Classify annotates an occurrence with its viability for a viewing user.
// The quorum is requiredAvailable = max(0, totalMembers - maxUnavailable).
// If the viewer's own vote would tip the count over the quorum, the
// occurrence is viable-with-you; a viewer who already voted available
// cannot tip anything, so that case stays none. Read-side only, never
// mutates votes.
func Classify(
	maxUnavailable int,
	totalMembers int,
	agg entity.OccurrenceAggregate,
	viewerVote entity.VoteState,
) entity.Viability {
	requiredAvailable := totalMembers - maxUnavailable
	if requiredAvailable < 0 {
		requiredAvailable = 0
	}

	if totalMembers == 0 || requiredAvailable == 0 {
		return entity.ViabilityNone
	}

	if agg.AvailableCount >= requiredAvailable {
		return entity.ViabilityViable
	}

	if viewerVote != entity.VoteAvailable && agg.AvailableCount+1 >= requiredAvailable {
		return entity.ViabilityWithYou
	}

	return entity.ViabilityNone
}
