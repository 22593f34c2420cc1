package service

import (
	"testing"

	coreEntity "availability-api/core/entity"
	"availability-api/modules/availability/entity"
	eventEntity "availability-api/modules/event/entity"
	slotEntity "availability-api/modules/slot/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSlot(eventID uuid.UUID, day slotEntity.DayOfWeek, start, end string) slotEntity.SlotTemplate {
	return slotEntity.SlotTemplate{
		EventID:    eventID,
		DayOfWeek:  day,
		StartTime:  start,
		EndTime:    end,
		BaseEntity: coreEntity.BaseEntity{ID: uuid.New()},
	}
}

func newSnapshot(maxUnavailable, members int, slots ...slotEntity.SlotTemplate) *Snapshot {
	return &Snapshot{
		Event: eventEntity.Event{
			Name:           "badminton",
			MaxUnavailable: maxUnavailable,
			BaseEntity:     coreEntity.BaseEntity{ID: uuid.New()},
		},
		Slots:           slots,
		MemberCount:     members,
		RequiredUserIDs: make(map[uuid.UUID]struct{}),
		Aggregates:      make(entity.Aggregates),
		ViewerID:        uuid.New(),
		ViewerVotes:     make(map[entity.OccurrenceKey]entity.VoteState),
	}
}

func TestProjectCalendarGridShape(t *testing.T) {
	eventID := uuid.New()
	snap := newSnapshot(1, 3, newSlot(eventID, slotEntity.Wednesday, "18:00", "20:00"))

	// 2024-06-05 is a Wednesday; the grid starts on Monday 2024-06-03
	today := entity.Date("2024-06-05")
	cells := ProjectCalendar(snap, today)

	require.Len(t, cells, 35)
	assert.Equal(t, entity.Date("2024-06-03"), cells[0].Date)
	assert.Equal(t, entity.Date("2024-07-07"), cells[34].Date)

	// consecutive dates, Monday first
	for i, cell := range cells {
		assert.Equal(t, cells[0].Date.AddDays(i), cell.Date)
		assert.Equal(t, i%7, cell.Date.Weekday())
	}
}

func TestProjectCalendarStartsOnMondayWhenTodayIsMonday(t *testing.T) {
	snap := newSnapshot(1, 3)
	cells := ProjectCalendar(snap, "2024-06-03")

	require.Len(t, cells, 35)
	assert.Equal(t, entity.Date("2024-06-03"), cells[0].Date)
	assert.True(t, cells[0].IsToday)
	assert.False(t, cells[0].IsPast)
}

func TestProjectCalendarPastAndTodayFlags(t *testing.T) {
	snap := newSnapshot(1, 3)
	today := entity.Date("2024-06-05")
	cells := ProjectCalendar(snap, today)

	assert.True(t, cells[0].IsPast)  // Mon 06-03
	assert.True(t, cells[1].IsPast)  // Tue 06-04
	assert.False(t, cells[2].IsPast) // Wed 06-05, today
	assert.True(t, cells[2].IsToday)
	assert.False(t, cells[3].IsPast)

	for i, cell := range cells {
		if i != 2 {
			assert.False(t, cell.IsToday, "cell %d", i)
		}
	}
}

func TestProjectCalendarPlacesSlotsOnMatchingWeekdays(t *testing.T) {
	eventID := uuid.New()
	wed := newSlot(eventID, slotEntity.Wednesday, "18:00", "20:00")
	sun := newSlot(eventID, slotEntity.Sunday, "09:00", "11:00")
	snap := newSnapshot(1, 3, wed, sun)

	cells := ProjectCalendar(snap, "2024-06-03")

	for _, cell := range cells {
		switch cell.Date.Weekday() {
		case int(slotEntity.Wednesday):
			require.Len(t, cell.Occurrences, 1, "date %s", cell.Date)
			assert.Equal(t, wed.ID, cell.Occurrences[0].SlotID)
		case int(slotEntity.Sunday):
			require.Len(t, cell.Occurrences, 1, "date %s", cell.Date)
			assert.Equal(t, sun.ID, cell.Occurrences[0].SlotID)
		default:
			assert.Empty(t, cell.Occurrences, "date %s", cell.Date)
		}
	}
}

func TestProjectCalendarOrdersSlotsByStartTime(t *testing.T) {
	eventID := uuid.New()
	late := newSlot(eventID, slotEntity.Monday, "18:30", "20:00")
	early := newSlot(eventID, slotEntity.Monday, "09:00", "10:00")
	noon := newSlot(eventID, slotEntity.Monday, "12:15", "13:00")
	snap := newSnapshot(1, 3, late, early, noon)

	cells := ProjectCalendar(snap, "2024-06-03")

	monday := cells[0]
	require.Len(t, monday.Occurrences, 3)
	assert.Equal(t, "09:00", monday.Occurrences[0].StartTime)
	assert.Equal(t, "12:15", monday.Occurrences[1].StartTime)
	assert.Equal(t, "18:30", monday.Occurrences[2].StartTime)
}

func TestProjectCalendarSkipsPastOccurrences(t *testing.T) {
	eventID := uuid.New()
	snap := newSnapshot(1, 3, newSlot(eventID, slotEntity.Monday, "18:00", "20:00"))

	// today is Wednesday, so this week's Monday occurrence is past
	cells := ProjectCalendar(snap, "2024-06-05")

	assert.Empty(t, cells[0].Occurrences)     // Mon 06-03, past
	assert.NotEmpty(t, cells[7].Occurrences)  // Mon 06-10
	assert.NotEmpty(t, cells[14].Occurrences) // Mon 06-17
}

func TestProjectCalendarHidesOverThresholdOccurrences(t *testing.T) {
	eventID := uuid.New()
	slot := newSlot(eventID, slotEntity.Monday, "18:00", "20:00")
	snap := newSnapshot(1, 4, slot)

	// two unavailable votes on Mon 06-10 exceed the slack of one
	hiddenKey := entity.OccurrenceKey{SlotID: slot.ID, Date: "2024-06-10"}
	snap.Aggregates[hiddenKey] = entity.OccurrenceAggregate{
		UnavailableCount: 2,
		UnavailableUserIDs: map[uuid.UUID]struct{}{
			uuid.New(): {},
			uuid.New(): {},
		},
	}

	cells := ProjectCalendar(snap, "2024-06-03")

	assert.Empty(t, cells[7].Occurrences)    // hidden
	assert.NotEmpty(t, cells[0].Occurrences) // other Mondays unaffected
	assert.NotEmpty(t, cells[14].Occurrences)
}

func TestProjectCalendarAnnotatesVoteAndViability(t *testing.T) {
	eventID := uuid.New()
	slot := newSlot(eventID, slotEntity.Monday, "18:00", "20:00")
	snap := newSnapshot(1, 4, slot)

	key := entity.OccurrenceKey{SlotID: slot.ID, Date: "2024-06-10"}
	snap.Aggregates[key] = entity.OccurrenceAggregate{AvailableCount: 2}
	snap.ViewerVotes[key] = entity.VoteUnavailable

	cells := ProjectCalendar(snap, "2024-06-03")

	occ := cells[7].Occurrences[0]
	assert.Equal(t, entity.VoteUnavailable, occ.Vote)
	// quorum is 3; the viewer's vote would make it
	assert.Equal(t, entity.ViabilityWithYou, occ.Viability)
	assert.Equal(t, 2, occ.AvailableCount)
	assert.Equal(t, 0, occ.UnavailableCount)

	// an occurrence with no votes reads as absent
	bare := cells[0].Occurrences[0]
	assert.Equal(t, entity.VoteAbsent, bare.Vote)
}
