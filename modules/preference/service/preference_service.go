package service

import (
	"context"
	"time"

	"availability-api/core/errors"
	"availability-api/modules/preference/dto"
	"availability-api/modules/preference/entity"
	"availability-api/modules/preference/repository"

	"github.com/google/uuid"
)

// PreferenceService handles client selection persistence
type PreferenceService struct {
	repo repository.PreferenceRepositoryInterface
}

// PreferenceServiceInterface defines the service contract
type PreferenceServiceInterface interface {
	Get(ctx context.Context, clientID string) (*dto.PreferenceResponse, *errors.AppError)
	Set(ctx context.Context, clientID string, req *dto.SetPreferenceRequest) (*dto.PreferenceResponse, *errors.AppError)
	Delete(ctx context.Context, clientID string) *errors.AppError
}

func NewPreferenceService(repo repository.PreferenceRepositoryInterface) PreferenceServiceInterface {
	return &PreferenceService{repo: repo}
}

func (s *PreferenceService) Get(ctx context.Context, clientID string) (*dto.PreferenceResponse, *errors.AppError) {
	pref, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreReadFailure, "Failed to load preference", err)
	}
	if pref == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "No preference stored", nil)
	}

	return toPreferenceResponse(pref), nil
}

func (s *PreferenceService) Set(ctx context.Context, clientID string, req *dto.SetPreferenceRequest) (*dto.PreferenceResponse, *errors.AppError) {
	if _, err := uuid.Parse(req.UserID); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Invalid user id", err)
	}
	if req.EventID != "" {
		if _, err := uuid.Parse(req.EventID); err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Invalid event id", err)
		}
	}

	pref := &entity.Preference{
		UserID:    req.UserID,
		EventID:   req.EventID,
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Set(ctx, clientID, pref); err != nil {
		return nil, errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to save preference", err)
	}

	return toPreferenceResponse(pref), nil
}

func (s *PreferenceService) Delete(ctx context.Context, clientID string) *errors.AppError {
	if err := s.repo.Delete(ctx, clientID); err != nil {
		return errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to delete preference", err)
	}
	return nil
}

func toPreferenceResponse(pref *entity.Preference) *dto.PreferenceResponse {
	return &dto.PreferenceResponse{
		UserID:    pref.UserID,
		EventID:   pref.EventID,
		UpdatedAt: pref.UpdatedAt,
	}
}
