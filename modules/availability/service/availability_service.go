package service

import (
	"context"
	"sync"
	"time"

	"availability-api/core/errors"
	"availability-api/core/logger"
	"availability-api/modules/availability/dto"
	"availability-api/modules/availability/entity"
	"availability-api/modules/availability/repository"
	eventRepo "availability-api/modules/event/repository"
	slotRepo "availability-api/modules/slot/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// AvailabilityService orchestrates the aggregation, policy, calendar and
// week-batch operations over the store repositories.
type AvailabilityService struct {
	votes  repository.VoteRepositoryInterface
	slots  slotRepo.SlotRepositoryInterface
	events eventRepo.EventRepositoryInterface

	// now is swappable in tests; "today" is derived from it per operation.
	now func() time.Time
}

// AvailabilityServiceInterface defines the service contract
type AvailabilityServiceInterface interface {
	Calendar(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (*dto.CalendarResponse, *errors.AppError)
	Vote(ctx context.Context, eventID uuid.UUID, req *dto.VoteRequest) *errors.AppError
	Unvote(ctx context.Context, eventID uuid.UUID, req *dto.VoteDeleteRequest) *errors.AppError
	SetWeek(ctx context.Context, eventID uuid.UUID, req *dto.WeekSetRequest) (*dto.WeekMutationResponse, *errors.AppError)
	ClearWeek(ctx context.Context, eventID uuid.UUID, req *dto.WeekClearRequest) (*dto.WeekMutationResponse, *errors.AppError)
	WeekStatus(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, weekStart entity.Date) (*dto.WeekStatusResponse, *errors.AppError)
	PurgeExpired(ctx context.Context, retentionDays int) (int64, error)
}

func NewAvailabilityService(
	votes repository.VoteRepositoryInterface,
	slots slotRepo.SlotRepositoryInterface,
	events eventRepo.EventRepositoryInterface,
) *AvailabilityService {
	return &AvailabilityService{
		votes:  votes,
		slots:  slots,
		events: events,
		now:    time.Now,
	}
}

// LoadSnapshot gathers everything the policy engine needs for one event
// and one viewing user. The five reads are independent and run
// concurrently. Only a failed or missing event fetch is fatal; any other
// failed read resets its part to empty, records the failure, and the
// snapshot is still usable (fail-open).
func (s *AvailabilityService) LoadSnapshot(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (*Snapshot, *errors.AppError) {
	snap := &Snapshot{
		ViewerID:        userID,
		RequiredUserIDs: make(map[uuid.UUID]struct{}),
		Aggregates:      make(entity.Aggregates),
		ViewerVotes:     make(map[entity.OccurrenceKey]entity.VoteState),
	}

	var mu sync.Mutex
	reportFailure := func(part string, err error) {
		logger.Error("AvailabilityService:LoadSnapshot:"+part, err)
		mu.Lock()
		snap.ReadFailures = append(snap.ReadFailures, part)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		event, err := s.events.GetEventByID(gctx, eventID)
		if err != nil {
			return errors.NewAppError(errors.ErrStoreReadFailure, "Failed to load event", err)
		}
		if event == nil {
			return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
		}
		snap.Event = *event
		return nil
	})

	g.Go(func() error {
		slots, err := s.slots.GetByEventID(gctx, eventID)
		if err != nil {
			reportFailure("slots", err)
			return nil
		}
		snap.Slots = slots
		return nil
	})

	g.Go(func() error {
		count, err := s.events.CountMembersByEventID(gctx, eventID)
		if err != nil {
			reportFailure("member_count", err)
			return nil
		}
		snap.MemberCount = count
		return nil
	})

	g.Go(func() error {
		memberships, err := s.events.GetMembershipsByEventID(gctx, eventID, true)
		if err != nil {
			reportFailure("required_members", err)
			return nil
		}
		mu.Lock()
		for _, m := range memberships {
			snap.RequiredUserIDs[m.UserID] = struct{}{}
		}
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		votes, err := s.votes.ListVotes(gctx, repository.VoteFilter{EventID: eventID})
		if err != nil {
			reportFailure("aggregates", err)
			return nil
		}
		snap.Aggregates = Aggregate(votes)
		return nil
	})

	g.Go(func() error {
		votes, err := s.votes.ListVotes(gctx, repository.VoteFilter{EventID: eventID, UserID: &userID})
		if err != nil {
			reportFailure("viewer_votes", err)
			return nil
		}
		mu.Lock()
		for _, v := range votes {
			key := entity.OccurrenceKey{SlotID: v.SlotID, Date: v.Date}
			snap.ViewerVotes[key] = entity.VoteStateOf(v.Available)
		}
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		if appErr, ok := err.(*errors.AppError); ok {
			return nil, appErr
		}
		return nil, errors.NewAppError(errors.ErrStoreReadFailure, "Failed to load event snapshot", err)
	}

	return snap, nil
}

// Calendar projects the 35-cell grid for a viewing user
func (s *AvailabilityService) Calendar(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (*dto.CalendarResponse, *errors.AppError) {
	snap, appErr := s.LoadSnapshot(ctx, eventID, userID)
	if appErr != nil {
		return nil, appErr
	}

	today := entity.DateOf(s.now())
	cells := ProjectCalendar(snap, today)

	resp := &dto.CalendarResponse{
		EventID:  eventID.String(),
		UserID:   userID.String(),
		Today:    today.String(),
		Cells:    make([]dto.CalendarCellResponse, 0, len(cells)),
		Warnings: snap.ReadFailures,
	}

	for _, cell := range cells {
		cellResp := dto.CalendarCellResponse{
			Date:        cell.Date.String(),
			IsPast:      cell.IsPast,
			IsToday:     cell.IsToday,
			Occurrences: make([]dto.OccurrenceResponse, 0, len(cell.Occurrences)),
		}
		for _, occ := range cell.Occurrences {
			cellResp.Occurrences = append(cellResp.Occurrences, dto.OccurrenceResponse{
				SlotID:           occ.SlotID.String(),
				Date:             occ.Date.String(),
				StartTime:        occ.StartTime,
				EndTime:          occ.EndTime,
				Label:            occ.Label,
				Vote:             string(occ.Vote),
				Viability:        string(occ.Viability),
				AvailableCount:   occ.AvailableCount,
				UnavailableCount: occ.UnavailableCount,
			})
		}
		resp.Cells = append(resp.Cells, cellResp)
	}

	return resp, nil
}

// Vote upserts a single availability vote
func (s *AvailabilityService) Vote(ctx context.Context, eventID uuid.UUID, req *dto.VoteRequest) *errors.AppError {
	if req.Available == nil {
		return errors.NewAppError(errors.ErrInvalidRequestData, "available is required", nil)
	}

	userID, slotID, date, appErr := s.parseVoteTarget(ctx, eventID, req.UserID, req.SlotID, req.Date)
	if appErr != nil {
		return appErr
	}

	vote := &entity.AvailabilityVote{
		UserID:    userID,
		EventID:   eventID,
		SlotID:    slotID,
		Date:      date,
		Available: *req.Available,
	}

	if err := s.votes.UpsertVote(ctx, vote); err != nil {
		return errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to save vote", err)
	}

	return nil
}

// Unvote deletes a single vote, returning the user to "no opinion"
func (s *AvailabilityService) Unvote(ctx context.Context, eventID uuid.UUID, req *dto.VoteDeleteRequest) *errors.AppError {
	userID, slotID, date, appErr := s.parseVoteTarget(ctx, eventID, req.UserID, req.SlotID, req.Date)
	if appErr != nil {
		return appErr
	}

	key := entity.VoteKey{
		UserID:  userID,
		EventID: eventID,
		SlotID:  slotID,
		Date:    date,
	}

	if err := s.votes.DeleteVote(ctx, key); err != nil {
		return errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to delete vote", err)
	}

	return nil
}

// parseVoteTarget validates a vote's coordinates: well-formed IDs and
// date, the slot must belong to the event, and the date must fall on the
// slot's weekday.
func (s *AvailabilityService) parseVoteTarget(ctx context.Context, eventID uuid.UUID, rawUserID, rawSlotID, rawDate string) (uuid.UUID, uuid.UUID, entity.Date, *errors.AppError) {
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", errors.NewAppError(errors.ErrInvalidRequestData, "Invalid user id", err)
	}

	slotID, err := uuid.Parse(rawSlotID)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", errors.NewAppError(errors.ErrInvalidRequestData, "Invalid slot id", err)
	}

	date, err := entity.ParseDate(rawDate)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", errors.NewAppError(errors.ErrInvalidRequestData, "Invalid date, expected YYYY-MM-DD", err)
	}

	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		return uuid.Nil, uuid.Nil, "", errors.NewAppError(errors.ErrStoreReadFailure, "Failed to load slot", err)
	}
	if slot == nil || slot.EventID != eventID {
		return uuid.Nil, uuid.Nil, "", errors.NewAppError(errors.ErrNotFound, "Slot not found for event", nil)
	}
	if date.Weekday() != int(slot.DayOfWeek) {
		return uuid.Nil, uuid.Nil, "", errors.NewAppError(errors.ErrInvalidRequestData, "Date does not fall on the slot's weekday", nil)
	}

	return userID, slotID, date, nil
}

// PurgeExpired deletes votes older than the retention horizon. Called by
// the scheduled retention job.
func (s *AvailabilityService) PurgeExpired(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := entity.DateOf(s.now()).AddDays(-retentionDays)
	return s.votes.PurgeBefore(ctx, cutoff)
}
