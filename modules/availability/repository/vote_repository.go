package repository

import (
	"context"
	"fmt"
	"strings"

	"availability-api/core/database"
	"availability-api/core/logger"
	"availability-api/modules/availability/entity"

	"github.com/google/uuid"
)

// VoteFilter selects vote rows. Set fields are AND-combined equality
// predicates; nil fields are unconstrained. EventID is always required.
type VoteFilter struct {
	EventID   uuid.UUID
	UserID    *uuid.UUID
	SlotID    *uuid.UUID
	Date      *entity.Date
	Available *bool
}

// VoteRepository handles availability vote database operations
type VoteRepository struct {
	DB database.Database
}

// VoteRepositoryInterface defines the repository contract
type VoteRepositoryInterface interface {
	ListVotes(ctx context.Context, filter VoteFilter) ([]entity.AvailabilityVote, error)
	UpsertVote(ctx context.Context, vote *entity.AvailabilityVote) error
	DeleteVote(ctx context.Context, key entity.VoteKey) error
	PurgeBefore(ctx context.Context, cutoff entity.Date) (int64, error)
}

func NewVoteRepository(db database.Database) *VoteRepository {
	return &VoteRepository{DB: db}
}

// ListVotes returns all votes matching the filter
func (r *VoteRepository) ListVotes(ctx context.Context, filter VoteFilter) ([]entity.AvailabilityVote, error) {
	conditions := []string{"event_id = $1"}
	args := []any{filter.EventID}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.SlotID != nil {
		args = append(args, *filter.SlotID)
		conditions = append(conditions, fmt.Sprintf("slot_id = $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("date = $%d", len(args)))
	}
	if filter.Available != nil {
		args = append(args, *filter.Available)
		conditions = append(conditions, fmt.Sprintf("available = $%d", len(args)))
	}

	query := `
		SELECT user_id, event_id, slot_id, date, available, created_at, updated_at
		FROM availability
		WHERE ` + strings.Join(conditions, " AND ")

	var votes []entity.AvailabilityVote
	err := r.DB.SelectContext(ctx, &votes, query, args...)
	if err != nil {
		logger.Error("VoteRepository:ListVotes", err)
		return nil, err
	}

	return votes, nil
}

// UpsertVote writes a vote, overwriting any existing row for the same
// (user, event, slot, date) key.
func (r *VoteRepository) UpsertVote(ctx context.Context, vote *entity.AvailabilityVote) error {
	query := `
		INSERT INTO availability (user_id, event_id, slot_id, date, available)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, event_id, slot_id, date)
		DO UPDATE SET available = EXCLUDED.available, updated_at = NOW()
	`

	err := r.DB.ExecContext(ctx, query,
		vote.UserID, vote.EventID, vote.SlotID, vote.Date, vote.Available)
	if err != nil {
		logger.Error("VoteRepository:UpsertVote", err)
		return err
	}

	return nil
}

// DeleteVote removes a vote row, returning the user to "no opinion".
// Deleting a missing row is not an error.
func (r *VoteRepository) DeleteVote(ctx context.Context, key entity.VoteKey) error {
	query := `
		DELETE FROM availability
		WHERE user_id = $1 AND event_id = $2 AND slot_id = $3 AND date = $4
	`

	err := r.DB.ExecContext(ctx, query, key.UserID, key.EventID, key.SlotID, key.Date)
	if err != nil {
		logger.Error("VoteRepository:DeleteVote", err)
		return err
	}

	return nil
}

// PurgeBefore deletes all votes dated strictly before the cutoff, across
// every event. Used by the retention job.
func (r *VoteRepository) PurgeBefore(ctx context.Context, cutoff entity.Date) (int64, error) {
	query := `DELETE FROM availability WHERE date < :cutoff`

	result, err := r.DB.NamedExecContext(ctx, query, map[string]any{"cutoff": cutoff})
	if err != nil {
		logger.Error("VoteRepository:PurgeBefore", err)
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return affected, nil
}
