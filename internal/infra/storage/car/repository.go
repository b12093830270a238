package car

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/driveshare/DS-RentalService/internal/domain"
	"github.com/driveshare/DS-RentalService/pkg/dbmetrics"
	"github.com/driveshare/DS-RentalService/pkg/psqlbuilder"
)

var carColumns = []string{
	"id",
	"owner_id",
	"listing_type",
	"category",
	"brand",
	"model",
	"year",
	"price_per_day",
	"city",
	"description",
	"images",
	"available",
}

// Repository PostgreSQL-репозиторий каталога автомобилей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет новое объявление в каталог
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(carColumns...).
		Values(
			car.ID,
			car.OwnerID,
			car.Type,
			car.Category,
			car.Brand,
			car.Model,
			car.Year,
			car.PricePerDay,
			car.City,
			car.Description,
			pq.StringArray(car.Images),
			car.Available,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return car, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	car, err := scanCarRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	return car, nil
}

// GetAll получает автомобили с учетом фильтра поиска.
// Порядок результата - порядок добавления в каталог (seq ASC).
func (r *Repository) GetAll(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(carColumns...).
		From("cars").
		OrderBy("seq ASC")

	// Фильтрация по городу - подстрока без учета регистра
	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"city": "%" + *filter.City + "%"})
	}

	// Фильтрация по классу автомобиля - точное совпадение
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}

	// Только доступные
	if filter.AvailableOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// GetByOwnerID получает все автомобили владельца в порядке добавления
func (r *Repository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// Update частично обновляет объявление: nil-поля сохраняют текущее значение
func (r *Repository) Update(ctx context.Context, id string, upd domain.CarUpdate) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("cars").Where(squirrel.Eq{"id": id})

	if upd.Type != nil {
		updateBuilder = updateBuilder.Set("listing_type", *upd.Type)
	}
	if upd.Category != nil {
		updateBuilder = updateBuilder.Set("category", *upd.Category)
	}
	if upd.Brand != nil {
		updateBuilder = updateBuilder.Set("brand", *upd.Brand)
	}
	if upd.Model != nil {
		updateBuilder = updateBuilder.Set("model", *upd.Model)
	}
	if upd.Year != nil {
		updateBuilder = updateBuilder.Set("year", *upd.Year)
	}
	if upd.PricePerDay != nil {
		updateBuilder = updateBuilder.Set("price_per_day", *upd.PricePerDay)
	}
	if upd.City != nil {
		updateBuilder = updateBuilder.Set("city", *upd.City)
	}
	if upd.Description != nil {
		updateBuilder = updateBuilder.Set("description", *upd.Description)
	}
	if upd.Images != nil {
		updateBuilder = updateBuilder.Set("images", pq.StringArray(upd.Images))
	}
	if upd.Available != nil {
		updateBuilder = updateBuilder.Set("available", *upd.Available)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrCarNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete удаляет объявление из каталога.
// Удаление идемпотентно: отсутствие записи ошибкой не считается.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCarRow(row rowScanner) (*domain.Car, error) {
	var car domain.Car
	var images pq.StringArray

	err := row.Scan(
		&car.ID,
		&car.OwnerID,
		&car.Type,
		&car.Category,
		&car.Brand,
		&car.Model,
		&car.Year,
		&car.PricePerDay,
		&car.City,
		&car.Description,
		&images,
		&car.Available,
	)
	if err != nil {
		return nil, err
	}

	car.Images = []string(images)
	return &car, nil
}

func scanCars(rows *sql.Rows) ([]*domain.Car, error) {
	cars := make([]*domain.Car, 0)

	for rows.Next() {
		car, err := scanCarRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCars - scan row: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCars - rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}
