package repository

import (
	"context"
	"database/sql"

	"availability-api/core/database"
	"availability-api/core/logger"
	"availability-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository handles event and membership database operations
type EventRepository struct {
	DB database.Database
}

// EventRepositoryInterface defines the repository contract
type EventRepositoryInterface interface {
	// Events
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetEventsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// Memberships (event_members table)
	AddMember(ctx context.Context, membership *entity.Membership) error
	RemoveMember(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error
	GetMembershipsByEventID(ctx context.Context, eventID uuid.UUID, requiredOnly bool) ([]entity.Membership, error)
	CountMembersByEventID(ctx context.Context, eventID uuid.UUID) (int, error)
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{DB: db}
}

// ===================== Events =====================

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (name, type, max_unavailable, share_slug)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, type, max_unavailable, share_slug, created_at, updated_at
	`

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Name, event.Type, event.MaxUnavailable, event.ShareSlug)

	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, name, type, max_unavailable, share_slug, created_at, updated_at
		FROM events WHERE id = $1
	`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}

	return &event, nil
}

// GetEventsByUserID returns the events a user is a member of, oldest first
func (r *EventRepository) GetEventsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT e.id, e.name, e.type, e.max_unavailable, e.share_slug, e.created_at, e.updated_at
		FROM events e
		JOIN event_members m ON m.event_id = e.id
		WHERE m.user_id = $1
		ORDER BY e.created_at ASC
	`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, userID)
	if err != nil {
		logger.Error("EventRepository:GetEventsByUserID", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET name = $2, type = $3, max_unavailable = $4, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query, event.ID, event.Name, event.Type, event.MaxUnavailable)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent", err)
		return err
	}

	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM events WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventRepository:DeleteEvent", err)
		return err
	}
	return nil
}

// ===================== Memberships =====================

func (r *EventRepository) AddMember(ctx context.Context, membership *entity.Membership) error {
	query := `
		INSERT INTO event_members (event_id, user_id, required)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id, user_id) DO UPDATE SET required = $3
	`

	err := r.DB.ExecContext(ctx, query,
		membership.EventID, membership.UserID, membership.Required)
	if err != nil {
		logger.Error("EventRepository:AddMember", err)
		return err
	}

	return nil
}

func (r *EventRepository) RemoveMember(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) error {
	query := `DELETE FROM event_members WHERE event_id = $1 AND user_id = $2`
	err := r.DB.ExecContext(ctx, query, eventID, userID)
	if err != nil {
		logger.Error("EventRepository:RemoveMember", err)
		return err
	}
	return nil
}

func (r *EventRepository) GetMembershipsByEventID(ctx context.Context, eventID uuid.UUID, requiredOnly bool) ([]entity.Membership, error) {
	query := `
		SELECT event_id, user_id, required, created_at
		FROM event_members
		WHERE event_id = $1
	`
	if requiredOnly {
		query += ` AND required = true`
	}
	query += ` ORDER BY created_at`

	var memberships []entity.Membership
	err := r.DB.SelectContext(ctx, &memberships, query, eventID)
	if err != nil {
		logger.Error("EventRepository:GetMembershipsByEventID", err)
		return nil, err
	}

	return memberships, nil
}

func (r *EventRepository) CountMembersByEventID(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM event_members WHERE event_id = $1`
	err := r.DB.GetContext(ctx, &count, query, eventID)
	if err != nil {
		logger.Error("EventRepository:CountMembersByEventID", err)
		return 0, err
	}
	return count, nil
}
