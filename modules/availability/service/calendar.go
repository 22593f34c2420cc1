package service

import (
	"sort"

	"availability-api/core/constants"
	"availability-api/modules/availability/entity"
	eventEntity "availability-api/modules/event/entity"
	slotEntity "availability-api/modules/slot/entity"

	"github.com/google/uuid"
)

// Snapshot is everything the policy engine needs about one event for one
// viewing user, loaded fresh per operation. Keeping it explicit (rather
// than ambient service state) lets the projector and the week operator run
// on literal inputs.
type Snapshot struct {
	Event           eventEntity.Event
	Slots           []slotEntity.SlotTemplate
	MemberCount     int
	RequiredUserIDs map[uuid.UUID]struct{}
	Aggregates      entity.Aggregates
	ViewerID        uuid.UUID
	ViewerVotes     map[entity.OccurrenceKey]entity.VoteState

	// ReadFailures names the snapshot parts whose store read failed. Each
	// failed part is reset to empty instead of left stale, so computation
	// proceeds fail-open (empty aggregates make every slot visible).
	ReadFailures []string
}

// ViewerVote returns the viewer's vote on an occurrence, Absent when no
// row exists.
func (s *Snapshot) ViewerVote(key entity.OccurrenceKey) entity.VoteState {
	if state, ok := s.ViewerVotes[key]; ok {
		return state
	}
	return entity.VoteAbsent
}

// Visible applies the visibility rules to one occurrence of this snapshot.
func (s *Snapshot) Visible(slotID uuid.UUID, date entity.Date, today entity.Date) bool {
	key := entity.OccurrenceKey{SlotID: slotID, Date: date}
	return IsVisible(s.Event.MaxUnavailable, date, today, s.ViewerID, s.Aggregates.At(key), s.RequiredUserIDs)
}

// OccurrenceView is one visible slot occurrence annotated for the viewer
type OccurrenceView struct {
	SlotID           uuid.UUID
	Date             entity.Date
	StartTime        string
	EndTime          string
	Label            string
	Vote             entity.VoteState
	Viability        entity.Viability
	AvailableCount   int
	UnavailableCount int
}

// CalendarCell is one date of the projected grid
type CalendarCell struct {
	Date        entity.Date
	IsPast      bool
	IsToday     bool
	Occurrences []OccurrenceView
}

// ProjectCalendar maps the event's weekly slot templates onto a fixed
// window of 5 consecutive weeks starting at the Monday on/before today:
// 35 cells in date order. A template applies to dates whose Mon=0 weekday
// equals its DayOfWeek. Occurrences within a date are ordered by start
// time, comparing the zero-padded strings. Pure; no mutation.
func ProjectCalendar(snap *Snapshot, today entity.Date) []CalendarCell {
	slotsByDay := make(map[int][]slotEntity.SlotTemplate)
	for _, s := range snap.Slots {
		slotsByDay[int(s.DayOfWeek)] = append(slotsByDay[int(s.DayOfWeek)], s)
	}
	for day := range slotsByDay {
		daySlots := slotsByDay[day]
		sort.SliceStable(daySlots, func(i, j int) bool {
			return daySlots[i].StartTime < daySlots[j].StartTime
		})
	}

	start := today.MondayOnOrBefore()
	totalDays := constants.CalendarWeeks * constants.DaysPerWeek

	cells := make([]CalendarCell, 0, totalDays)
	for i := 0; i < totalDays; i++ {
		date := start.AddDays(i)
		cell := CalendarCell{
			Date:    date,
			IsPast:  date.Before(today),
			IsToday: date == today,
		}

		for _, s := range slotsByDay[date.Weekday()] {
			if !snap.Visible(s.ID, date, today) {
				continue
			}

			key := entity.OccurrenceKey{SlotID: s.ID, Date: date}
			agg := snap.Aggregates.At(key)
			vote := snap.ViewerVote(key)

			cell.Occurrences = append(cell.Occurrences, OccurrenceView{
				SlotID:           s.ID,
				Date:             date,
				StartTime:        s.StartTime,
				EndTime:          s.EndTime,
				Label:            s.Label,
				Vote:             vote,
				Viability:        Classify(snap.Event.MaxUnavailable, snap.MemberCount, agg, vote),
				AvailableCount:   agg.AvailableCount,
				UnavailableCount: agg.UnavailableCount,
			})
		}

		cells = append(cells, cell)
	}

	return cells
}
