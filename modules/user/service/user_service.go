package service

import (
	"context"

	coreEntity "availability-api/core/entity"
	"availability-api/core/errors"
	"availability-api/core/logger"
	"availability-api/core/params"
	"availability-api/modules/user/dto"
	"availability-api/modules/user/entity"
	"availability-api/modules/user/repository"

	"github.com/google/uuid"
)

type UserService struct {
	repo repository.UserRepositoryInterface
}

// UserServiceInterface defines the service contract
type UserServiceInterface interface {
	List(ctx context.Context, p params.QueryParams) (*coreEntity.Pagination[dto.UserResponse], *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, *errors.AppError)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, *errors.AppError)
}

func NewUserService(repo repository.UserRepositoryInterface) UserServiceInterface {
	return &UserService{repo: repo}
}

// List returns one page of users ordered by name, for the user picker
func (s *UserService) List(ctx context.Context, p params.QueryParams) (*coreEntity.Pagination[dto.UserResponse], *errors.AppError) {
	users, err := s.repo.List(ctx, p)
	if err != nil {
		logger.Error("UserService:List:Error:", err)
		return nil, errors.NewAppError(errors.ErrStoreReadFailure, "Failed to load users", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		logger.Error("UserService:List:Count:Error:", err)
		return nil, errors.NewAppError(errors.ErrStoreReadFailure, "Failed to count users", err)
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(&u))
	}

	return &coreEntity.Pagination[dto.UserResponse]{
		Items:      items,
		TotalItems: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreReadFailure, "Failed to load user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, *errors.AppError) {
	user := &entity.User{Name: req.Name}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrStoreWriteFailure, "Failed to create user", err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
