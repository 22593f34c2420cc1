package service

import (
	"testing"

	"availability-api/modules/availability/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func vote(userID, slotID uuid.UUID, date entity.Date, available bool) entity.AvailabilityVote {
	return entity.AvailabilityVote{
		UserID:    userID,
		SlotID:    slotID,
		Date:      date,
		Available: available,
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)
	assert.Empty(t, agg)

	// a missing key reads as the zero aggregate
	missing := agg.At(entity.OccurrenceKey{SlotID: uuid.New(), Date: "2024-06-03"})
	assert.Equal(t, 0, missing.AvailableCount)
	assert.Equal(t, 0, missing.UnavailableCount)
	assert.False(t, missing.VotedUnavailable(uuid.New()))
}

func TestAggregateGroupsByOccurrence(t *testing.T) {
	u1, u2, u3 := uuid.New(), uuid.New(), uuid.New()
	slotA, slotB := uuid.New(), uuid.New()

	votes := []entity.AvailabilityVote{
		vote(u1, slotA, "2024-06-03", true),
		vote(u2, slotA, "2024-06-03", true),
		vote(u3, slotA, "2024-06-03", false),
		vote(u1, slotA, "2024-06-10", false),
		vote(u1, slotB, "2024-06-03", true),
	}

	agg := Aggregate(votes)
	assert.Len(t, agg, 3)

	a := agg.At(entity.OccurrenceKey{SlotID: slotA, Date: "2024-06-03"})
	assert.Equal(t, 2, a.AvailableCount)
	assert.Equal(t, 1, a.UnavailableCount)
	assert.True(t, a.VotedUnavailable(u3))
	assert.False(t, a.VotedUnavailable(u1))

	b := agg.At(entity.OccurrenceKey{SlotID: slotA, Date: "2024-06-10"})
	assert.Equal(t, 0, b.AvailableCount)
	assert.Equal(t, 1, b.UnavailableCount)
	assert.True(t, b.VotedUnavailable(u1))

	c := agg.At(entity.OccurrenceKey{SlotID: slotB, Date: "2024-06-03"})
	assert.Equal(t, 1, c.AvailableCount)
	assert.Equal(t, 0, c.UnavailableCount)
}

func TestAggregateSameSlotDifferentDates(t *testing.T) {
	u := uuid.New()
	slot := uuid.New()

	agg := Aggregate([]entity.AvailabilityVote{
		vote(u, slot, "2024-06-03", true),
		vote(u, slot, "2024-06-10", true),
	})

	assert.Len(t, agg, 2)
	assert.Equal(t, 1, agg.At(entity.OccurrenceKey{SlotID: slot, Date: "2024-06-03"}).AvailableCount)
	assert.Equal(t, 1, agg.At(entity.OccurrenceKey{SlotID: slot, Date: "2024-06-10"}).AvailableCount)
}
