package service

import (
	"context"
	"sort"
	"sync"

	"availability-api/core/constants"
	"availability-api/core/errors"
	"availability-api/core/logger"
	"availability-api/modules/availability/dto"
	"availability-api/modules/availability/entity"
	slotEntity "availability-api/modules/slot/entity"

	"github.com/google/uuid"
)

// VisibleWeekOccurrences lists the visible, non-past slot occurrences of
// the 7-day window starting at weekStart, in date then start-time order.
// Pure; visibility comes entirely from the snapshot.
func VisibleWeekOccurrences(snap *Snapshot, weekStart entity.Date, today entity.Date) []entity.OccurrenceKey {
	slots := make([]slotEntity.SlotTemplate, len(snap.Slots))
	copy(slots, snap.Slots)
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime < slots[j].StartTime
	})

	var keys []entity.OccurrenceKey

	for i := 0; i < constants.DaysPerWeek; i++ {
		date := weekStart.AddDays(i)
		for _, s := range slots {
			if int(s.DayOfWeek) != date.Weekday() {
				continue
			}
			if !snap.Visible(s.ID, date, today) {
				continue
			}
			keys = append(keys, entity.OccurrenceKey{SlotID: s.ID, Date: date})
		}
	}

	return keys
}

// WeekStatusOf classifies a viewer's week: allTrue when every visible
// non-past occurrence carries an available vote, allFalse analogously,
// mixed otherwise. A week with zero visible occurrences is mixed: there
// is no decisive state to report.
func WeekStatusOf(snap *Snapshot, weekStart entity.Date, today entity.Date) entity.WeekStatus {
	keys := VisibleWeekOccurrences(snap, weekStart, today)
	if len(keys) == 0 {
		return entity.WeekStatusMixed
	}

	allTrue, allFalse := true, true
	for _, key := range keys {
		switch snap.ViewerVote(key) {
		case entity.VoteAvailable:
			allFalse = false
		case entity.VoteUnavailable:
			allTrue = false
		default:
			allTrue, allFalse = false, false
		}
	}

	switch {
	case allTrue:
		return entity.WeekStatusAllTrue
	case allFalse:
		return entity.WeekStatusAllFalse
	default:
		return entity.WeekStatusMixed
	}
}

// SetWeek applies a uniform vote across every visible occurrence of the
// week whose current vote differs from the target (including absent).
// Past dates are never written. Writes affect disjoint rows and are
// issued concurrently; every write is attempted before aggregates are
// refreshed, and one failure does not block the others. Idempotent: a
// second identical call finds nothing left to write.
func (s *AvailabilityService) SetWeek(ctx context.Context, eventID uuid.UUID, req *dto.WeekSetRequest) (*dto.WeekMutationResponse, *errors.AppError) {
	if req.Available == nil {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "available is required", nil)
	}
	target := *req.Available

	userID, weekStart, appErr := parseWeekTarget(req.UserID, req.WeekStart)
	if appErr != nil {
		return nil, appErr
	}

	snap, appErr := s.LoadSnapshot(ctx, eventID, userID)
	if appErr != nil {
		return nil, appErr
	}
	today := entity.DateOf(s.now())

	var toWrite []entity.OccurrenceKey
	for _, key := range VisibleWeekOccurrences(snap, weekStart, today) {
		if snap.ViewerVote(key) != entity.VoteStateOf(target) {
			toWrite = append(toWrite, key)
		}
	}

	var (
		mu       sync.Mutex
		written  int
		failures []dto.OccurrenceFailure
		wg       sync.WaitGroup
	)

	for _, key := range toWrite {
		wg.Add(1)
		go func(key entity.OccurrenceKey) {
			defer wg.Done()

			vote := &entity.AvailabilityVote{
				UserID:    userID,
				EventID:   eventID,
				SlotID:    key.SlotID,
				Date:      key.Date,
				Available: target,
			}

			if err := s.votes.UpsertVote(ctx, vote); err != nil {
				logger.Error("AvailabilityService:SetWeek:UpsertVote", "slot_id", key.SlotID, "date", key.Date, "error", err)
				mu.Lock()
				failures = append(failures, dto.OccurrenceFailure{
					SlotID: key.SlotID.String(),
					Date:   key.Date.String(),
					Reason: err.Error(),
				})
				mu.Unlock()
				return
			}

			mu.Lock()
			written++
			mu.Unlock()
		}(key)
	}
	wg.Wait()

	return s.weekOutcome(ctx, eventID, userID, weekStart, today, written, failures)
}

// ClearWeek deletes the viewer's present votes across the week's visible
// occurrences. When req.Available is set, only votes matching that value
// are cleared. Deletes run concurrently with the same failure isolation
// as SetWeek.
func (s *AvailabilityService) ClearWeek(ctx context.Context, eventID uuid.UUID, req *dto.WeekClearRequest) (*dto.WeekMutationResponse, *errors.AppError) {
	userID, weekStart, appErr := parseWeekTarget(req.UserID, req.WeekStart)
	if appErr != nil {
		return nil, appErr
	}

	snap, appErr := s.LoadSnapshot(ctx, eventID, userID)
	if appErr != nil {
		return nil, appErr
	}
	today := entity.DateOf(s.now())

	var toClear []entity.OccurrenceKey
	for _, key := range VisibleWeekOccurrences(snap, weekStart, today) {
		state := snap.ViewerVote(key)
		if state == entity.VoteAbsent {
			continue
		}
		if req.Available != nil && state != entity.VoteStateOf(*req.Available) {
			continue
		}
		toClear = append(toClear, key)
	}

	var (
		mu       sync.Mutex
		cleared  int
		failures []dto.OccurrenceFailure
		wg       sync.WaitGroup
	)

	for _, key := range toClear {
		wg.Add(1)
		go func(key entity.OccurrenceKey) {
			defer wg.Done()

			voteKey := entity.VoteKey{
				UserID:  userID,
				EventID: eventID,
				SlotID:  key.SlotID,
				Date:    key.Date,
			}

			if err := s.votes.DeleteVote(ctx, voteKey); err != nil {
				logger.Error("AvailabilityService:ClearWeek:DeleteVote", "slot_id", key.SlotID, "date", key.Date, "error", err)
				mu.Lock()
				failures = append(failures, dto.OccurrenceFailure{
					SlotID: key.SlotID.String(),
					Date:   key.Date.String(),
					Reason: err.Error(),
				})
				mu.Unlock()
				return
			}

			mu.Lock()
			cleared++
			mu.Unlock()
		}(key)
	}
	wg.Wait()

	return s.weekOutcome(ctx, eventID, userID, weekStart, today, cleared, failures)
}

// WeekStatus reports the viewer's week classification without mutating
func (s *AvailabilityService) WeekStatus(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, weekStart entity.Date) (*dto.WeekStatusResponse, *errors.AppError) {
	snap, appErr := s.LoadSnapshot(ctx, eventID, userID)
	if appErr != nil {
		return nil, appErr
	}

	today := entity.DateOf(s.now())
	status := WeekStatusOf(snap, weekStart, today)

	return &dto.WeekStatusResponse{
		WeekStart: weekStart.String(),
		Status:    string(status),
		Warnings:  snap.ReadFailures,
	}, nil
}

// weekOutcome refreshes the snapshot after all batch writes settled and
// reports the resulting week status alongside the write tally.
func (s *AvailabilityService) weekOutcome(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, weekStart entity.Date, today entity.Date, updated int, failures []dto.OccurrenceFailure) (*dto.WeekMutationResponse, *errors.AppError) {
	refreshed, appErr := s.LoadSnapshot(ctx, eventID, userID)
	if appErr != nil {
		return nil, appErr
	}

	return &dto.WeekMutationResponse{
		Updated:  updated,
		Failures: failures,
		Status:   string(WeekStatusOf(refreshed, weekStart, today)),
		Warnings: refreshed.ReadFailures,
	}, nil
}

func parseWeekTarget(rawUserID, rawWeekStart string) (uuid.UUID, entity.Date, *errors.AppError) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return uuid.Nil, "", errors.NewAppError(errors.ErrInvalidRequestData, "Invalid user id", err)
	}

	weekStart, err := entity.ParseDate(rawWeekStart)
	if err != nil {
		return uuid.Nil, "", errors.NewAppError(errors.ErrInvalidRequestData, "Invalid week_start, expected YYYY-MM-DD", err)
	}

	return userID, weekStart, nil
}
