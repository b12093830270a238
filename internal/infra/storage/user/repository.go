package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/driveshare/DS-RentalService/internal/domain"
	"github.com/driveshare/DS-RentalService/pkg/dbmetrics"
	"github.com/driveshare/DS-RentalService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const pgUniqueViolation = "23505"

// Repository PostgreSQL-репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя.
// Уникальность email гарантируется unique constraint в БД.
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("id", "name", "email", "role", "avatar", "balance").
		Values(user.ID, user.Name, user.Email, user.Role, user.Avatar, user.Balance).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getByColumn(ctx, "id", id)
}

// GetByEmail получает пользователя по точному совпадению email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getByColumn(ctx, "email", email)
}

func (r *Repository) getByColumn(ctx context.Context, column, value string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "role", "avatar", "balance").
		From("users").
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.Avatar,
		&user.Balance,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByColumn - scan user: %v", ErrScanRow, err)
	}

	return &user, nil
}
