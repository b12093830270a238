package review

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/driveshare/DS-RentalService/internal/domain"
	"github.com/driveshare/DS-RentalService/pkg/dbmetrics"
	"github.com/driveshare/DS-RentalService/pkg/psqlbuilder"
)

// Repository PostgreSQL-репозиторий отзывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет новый отзыв. Отзывы append-only: обновления и
// удаления не поддерживаются.
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("id", "car_id", "user_id", "user_name", "rating", "comment", "review_date").
		Values(
			review.ID,
			review.CarID,
			review.UserID,
			review.UserName,
			review.Rating,
			review.Comment,
			review.Date,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// GetByCarID получает отзывы на автомобиль в порядке добавления
func (r *Repository) GetByCarID(ctx context.Context, carID string) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "car_id", "user_id", "user_name", "rating", "comment", "review_date").
		From("reviews").
		Where(squirrel.Eq{"car_id": carID}).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCarID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCarID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

func scanReviews(rows *sql.Rows) ([]*domain.Review, error) {
	reviews := make([]*domain.Review, 0)

	for rows.Next() {
		var review domain.Review
		err := rows.Scan(
			&review.ID,
			&review.CarID,
			&review.UserID,
			&review.UserName,
			&review.Rating,
			&review.Comment,
			&review.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReviews - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReviews - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}
