package repository

import (
	"context"
	"database/sql"

	"availability-api/core/database"
	"availability-api/core/logger"
	"availability-api/modules/slot/entity"

	"github.com/google/uuid"
)

// SlotRepository handles slot template database operations
type SlotRepository struct {
	DB database.Database
}

// SlotRepositoryInterface defines the repository contract
type SlotRepositoryInterface interface {
	Create(ctx context.Context, slot *entity.SlotTemplate) (*entity.SlotTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SlotTemplate, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.SlotTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func NewSlotRepository(db database.Database) *SlotRepository {
	return &SlotRepository{DB: db}
}

func (r *SlotRepository) Create(ctx context.Context, slot *entity.SlotTemplate) (*entity.SlotTemplate, error) {
	query := `
		INSERT INTO slots (event_id, day_of_week, start_time, end_time, label)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, event_id, day_of_week, start_time, end_time, label, created_at, updated_at
	`

	var created entity.SlotTemplate
	err := r.DB.GetContext(ctx, &created, query,
		slot.EventID, slot.DayOfWeek, slot.StartTime, slot.EndTime, slot.Label)

	if err != nil {
		logger.Error("SlotRepository:Create", err)
		return nil, err
	}

	return &created, nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SlotTemplate, error) {
	query := `
		SELECT id, event_id, day_of_week, start_time, end_time, label, created_at, updated_at
		FROM slots WHERE id = $1
	`

	var slot entity.SlotTemplate
	err := r.DB.GetContext(ctx, &slot, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SlotRepository:GetByID", err)
		return nil, err
	}

	return &slot, nil
}

// GetByEventID returns an event's slot templates ordered by weekday then
// start time (string order; times are zero-padded).
func (r *SlotRepository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.SlotTemplate, error) {
	query := `
		SELECT id, event_id, day_of_week, start_time, end_time, label, created_at, updated_at
		FROM slots
		WHERE event_id = $1
		ORDER BY day_of_week, start_time
	`

	var slots []entity.SlotTemplate
	err := r.DB.SelectContext(ctx, &slots, query, eventID)
	if err != nil {
		logger.Error("SlotRepository:GetByEventID", err)
		return nil, err
	}

	return slots, nil
}

func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM slots WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("SlotRepository:Delete", err)
		return err
	}
	return nil
}
