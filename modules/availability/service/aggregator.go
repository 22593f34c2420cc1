package service

import (
	"availability-api/modules/availability/entity"

	"github.com/google/uuid"
)

// Aggregate tallies an event's votes per slot occurrence in a single pass,
// partitioned by the vote's boolean. Vote rows are unique by
// (user, event, slot, date), so no (user, occurrence) pair is counted
// twice. Zero votes yields an empty map, not an error.
func Aggregate(votes []entity.AvailabilityVote) entity.Aggregates {
	aggregates := make(entity.Aggregates)

	for _, vote := range votes {
		key := entity.OccurrenceKey{SlotID: vote.SlotID, Date: vote.Date}
		agg := aggregates[key]

		if vote.Available {
			agg.AvailableCount++
		} else {
			agg.UnavailableCount++
			if agg.UnavailableUserIDs == nil {
				agg.UnavailableUserIDs = make(map[uuid.UUID]struct{})
			}
			agg.UnavailableUserIDs[vote.UserID] = struct{}{}
		}

		aggregates[key] = agg
	}

	return aggregates
}
