package service

import (
	"context"
	"regexp"

	"availability-api/core/errors"
	"availability-api/modules/slot/dto"
	"availability-api/modules/slot/entity"
	"availability-api/modules/slot/repository"

	"github.com/google/uuid"
)

// Zero-padded HH:MM with optional :SS. Keeping times zero-padded makes the
// lexicographic slot ordering correct.
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)

// SlotService handles slot template business logic
type SlotService struct {
	repo repository.SlotRepositoryInterface
}

// SlotServiceInterface defines the service contract
type SlotServiceInterface interface {
	Create(ctx context.Context, eventID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, *errors.AppError)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*dto.SlotListResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID) *errors.AppError
}

func NewSlotService(repo repository.SlotRepositoryInterface) SlotServiceInterface {
	return &SlotService{repo: repo}
}

// Create adds a weekly slot template to an event
func (s *SlotService) Create(ctx context.Context, eventID uuid.UUID, req *dto.CreateSlotRequest) (*dto.SlotResponse, *errors.AppError) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "day_of_week must be 0..6 (Mon=0)", nil)
	}
	if !timePattern.MatchString(req.StartTime) || !timePattern.MatchString(req.EndTime) {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "times must be zero-padded HH:MM", nil)
	}
	if req.EndTime <= req.StartTime {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "end_time must be after start_time", nil)
	}

	slot := &entity.SlotTemplate{
		EventID:   eventID,
		DayOfWeek: entity.DayOfWeek(req.DayOfWeek),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Label:     req.Label,
	}

	created, err := s.repo.Create(ctx, slot)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to create slot", err)
	}

	resp := toSlotResponse(created)
	return &resp, nil
}

// GetByEventID returns an event's slot templates
func (s *SlotService) GetByEventID(ctx context.Context, eventID uuid.UUID) (*dto.SlotListResponse, *errors.AppError) {
	slots, err := s.repo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreReadFailure, "Failed to load slots", err)
	}

	result := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, toSlotResponse(&slots[i]))
	}

	return &dto.SlotListResponse{Slots: result}, nil
}

// Delete removes a slot template
func (s *SlotService) Delete(ctx context.Context, id uuid.UUID) *errors.AppError {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to delete slot", err)
	}
	return nil
}

func toSlotResponse(slot *entity.SlotTemplate) dto.SlotResponse {
	return dto.SlotResponse{
		ID:        slot.ID.String(),
		EventID:   slot.EventID.String(),
		DayOfWeek: int(slot.DayOfWeek),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Label:     slot.Label,
	}
}
