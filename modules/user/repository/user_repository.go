package repository

import (
	"context"
	"database/sql"

	"availability-api/core/database"
	"availability-api/core/logger"
	"availability-api/core/params"
	"availability-api/modules/user/entity"

	"github.com/google/uuid"
)

type UserRepository struct {
	db database.Database
}

// UserRepositoryInterface defines the repository contract
type UserRepositoryInterface interface {
	List(ctx context.Context, p params.QueryParams) ([]entity.User, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// List returns one page of users ordered by name ascending
func (r *UserRepository) List(ctx context.Context, p params.QueryParams) ([]entity.User, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM users
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	offset := (p.PageNumber - 1) * p.PageSize

	var users []entity.User
	err := r.db.SelectContext(ctx, &users, query, p.PageSize, offset)
	if err != nil {
		logger.Error("UserRepository:List:Error:", err)
		return nil, err
	}

	return users, nil
}

// Count returns the total number of users
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users`
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		logger.Error("UserRepository:Count:Error:", err)
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID:Error:", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name)
		VALUES (:name)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, user)
	if err != nil {
		logger.Error("UserRepository:Create:Error:", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&user.ID)
	}
	return nil
}
