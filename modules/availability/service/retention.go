package service

import (
	"context"
	"encoding/json"

	"availability-api/core/logger"

	"github.com/hibiken/asynq"
)

// TypeVotePurge is the asynq task type for the retention job
const TypeVotePurge = "availability:purge"

type votePurgePayload struct {
	RetentionDays int `json:"retention_days"`
}

// NewVotePurgeTask builds the periodic retention task
func NewVotePurgeTask(retentionDays int) (*asynq.Task, error) {
	payload, err := json.Marshal(votePurgePayload{RetentionDays: retentionDays})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeVotePurge, payload), nil
}

// HandleVotePurgeTask deletes availability rows older than the retention
// horizon. Past-date votes no longer affect any visible occurrence, so
// purging them only bounds table growth.
func (s *AvailabilityService) HandleVotePurgeTask(ctx context.Context, t *asynq.Task) error {
	var payload votePurgePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	purged, err := s.PurgeExpired(ctx, payload.RetentionDays)
	if err != nil {
		logger.Error("AvailabilityService:HandleVotePurgeTask", err)
		return err
	}

	logger.Info("AvailabilityService:HandleVotePurgeTask:Done",
		"purged", purged,
		"retention_days", payload.RetentionDays,
	)
	return nil
}
