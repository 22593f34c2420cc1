package repository

import (
	"context"
	"encoding/json"
	"time"

	"availability-api/core/logger"
	"availability-api/modules/preference/entity"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "pref:"
	ttl       = 180 * 24 * time.Hour
)

// PreferenceRepository stores client preferences in Redis
type PreferenceRepository struct {
	client *redis.Client
}

// PreferenceRepositoryInterface defines the repository contract
type PreferenceRepositoryInterface interface {
	Get(ctx context.Context, clientID string) (*entity.Preference, error)
	Set(ctx context.Context, clientID string, pref *entity.Preference) error
	Delete(ctx context.Context, clientID string) error
}

func NewPreferenceRepository(client *redis.Client) *PreferenceRepository {
	return &PreferenceRepository{client: client}
}

// Get returns the stored preference, or nil when none exists
func (r *PreferenceRepository) Get(ctx context.Context, clientID string) (*entity.Preference, error) {
	data, err := r.client.Get(ctx, keyPrefix+clientID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Error("PreferenceRepository:Get", err)
		return nil, err
	}

	var pref entity.Preference
	if err := json.Unmarshal(data, &pref); err != nil {
		logger.Error("PreferenceRepository:Get:Unmarshal", err)
		return nil, err
	}

	return &pref, nil
}

// Set saves the preference, refreshing its TTL
func (r *PreferenceRepository) Set(ctx context.Context, clientID string, pref *entity.Preference) error {
	data, err := json.Marshal(pref)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, keyPrefix+clientID, data, ttl).Err(); err != nil {
		logger.Error("PreferenceRepository:Set", err)
		return err
	}

	return nil
}

// Delete removes the stored preference
func (r *PreferenceRepository) Delete(ctx context.Context, clientID string) error {
	if err := r.client.Del(ctx, keyPrefix+clientID).Err(); err != nil {
		logger.Error("PreferenceRepository:Delete", err)
		return err
	}
	return nil
}
