package service

import (
	"context"
	"fmt"

	"availability-api/core/config"
	"availability-api/core/errors"
	"availability-api/core/logger"
	"availability-api/core/utils"
	"availability-api/modules/event/dto"
	"availability-api/modules/event/entity"
	"availability-api/modules/event/mapper"
	"availability-api/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventService handles event business logic
type EventService struct {
	repo repository.EventRepositoryInterface
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	GetEventsByUserID(ctx context.Context, userID uuid.UUID) (*dto.EventListResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) *errors.AppError
	AddMember(ctx context.Context, eventID uuid.UUID, req *dto.AddMemberRequest) *errors.AppError
	RemoveMember(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) *errors.AppError
}

func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

// CreateEvent creates a new event with its members
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	if req.MaxUnavailable < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "max_unavailable must be non-negative", nil)
	}

	event := &entity.Event{
		Name:           req.Name,
		Type:           req.Type,
		MaxUnavailable: req.MaxUnavailable,
		ShareSlug:      buildShareSlug(req.Name),
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to create event", err)
	}

	members := make([]entity.Membership, 0)
	for _, userIDStr := range req.Members {
		userID, parseErr := uuid.Parse(userIDStr)
		if parseErr != nil {
			continue
		}

		membership := &entity.Membership{
			EventID: created.ID,
			UserID:  userID,
		}

		if err := s.repo.AddMember(ctx, membership); err != nil {
			logger.Error("EventService:CreateEvent:AddMember:Error:", err)
			continue
		}
		members = append(members, *membership)
	}

	return mapper.ToEventResponse(created, members, s.shareURL(created)), nil
}

// GetEventByID retrieves an event with its members
func (s *EventService) GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreReadFailure, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	members, err := s.repo.GetMembershipsByEventID(ctx, id, false)
	if err != nil {
		logger.Error("EventService:GetEventByID:GetMemberships:Error:", err)
		members = nil
	}

	return mapper.ToEventResponse(event, members, s.shareURL(event)), nil
}

// GetEventsByUserID retrieves all events a user belongs to, oldest first
func (s *EventService) GetEventsByUserID(ctx context.Context, userID uuid.UUID) (*dto.EventListResponse, *errors.AppError) {
	events, err := s.repo.GetEventsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreReadFailure, "Failed to get events", err)
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, *mapper.ToEventResponse(&events[i], nil, s.shareURL(&events[i])))
	}

	return &dto.EventListResponse{Events: result}, nil
}

// UpdateEvent updates event details
func (s *EventService) UpdateEvent(ctx context.Context, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreReadFailure, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if req.Name != "" {
		event.Name = req.Name
	}
	if req.Type != "" {
		event.Type = req.Type
	}
	if req.MaxUnavailable != nil {
		if *req.MaxUnavailable < 0 {
			return nil, errors.NewAppError(errors.ErrInvalidRequestData, "max_unavailable must be non-negative", nil)
		}
		event.MaxUnavailable = *req.MaxUnavailable
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to update event", err)
	}

	members, _ := s.repo.GetMembershipsByEventID(ctx, eventID, false)
	return mapper.ToEventResponse(event, members, s.shareURL(event)), nil
}

// DeleteEvent deletes an event
func (s *EventService) DeleteEvent(ctx context.Context, eventID uuid.UUID) *errors.AppError {
	if err := s.repo.DeleteEvent(ctx, eventID); err != nil {
		return errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to delete event", err)
	}
	return nil
}

// AddMember adds a member or updates their required flag
func (s *EventService) AddMember(ctx context.Context, eventID uuid.UUID, req *dto.AddMemberRequest) *errors.AppError {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidRequestData, "Invalid user id", err)
	}

	membership := &entity.Membership{
		EventID:  eventID,
		UserID:   userID,
		Required: req.Required,
	}

	if err := s.repo.AddMember(ctx, membership); err != nil {
		return errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to add member", err)
	}
	return nil
}

// RemoveMember removes a member from an event
func (s *EventService) RemoveMember(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) *errors.AppError {
	if err := s.repo.RemoveMember(ctx, eventID, userID); err != nil {
		return errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to remove member", err)
	}
	return nil
}

// buildShareSlug derives a URL-safe slug from the event name with a short
// random suffix to keep slugs unique without a lookup.
func buildShareSlug(name string) string {
	return slug.Make(name) + "-" + utils.GenerateID()
}

// shareURL builds the shareable event URL from the configured server host
func (s *EventService) shareURL(event *entity.Event) string {
	if event.ShareSlug == "" {
		return ""
	}

	cfg, isInitialized := config.GetSafe()
	if !isInitialized {
		return ""
	}

	host := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	if cfg.Server.Host != "" && cfg.Server.Host != "0.0.0.0" {
		host = fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	}

	return fmt.Sprintf("%s/e/%s", host, event.ShareSlug)
}
