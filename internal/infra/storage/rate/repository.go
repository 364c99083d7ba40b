package rate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/pkg/dbmetrics"
	"github.com/staysuite/pricing-service/pkg/psqlbuilder"
)

var rateColumns = []string{
	"id",
	"room_id",
	"name",
	"start_date",
	"end_date",
	"price_per_night",
	"priority",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сезонными ставками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сезонных ставок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByRoomID получает все сезонные ставки комнаты
// Порядок (priority DESC, id ASC) совпадает с порядком разрешения ставок,
// чтобы списки в API читались так же, как считает движок
func (r *Repository) GetByRoomID(ctx context.Context, roomID int64) ([]*domain.SeasonalRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rateColumns...).
		From("seasonal_rates").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("priority DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRates(rows)
}

// GetByID получает сезонную ставку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SeasonalRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rateColumns...).
		From("seasonal_rates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rate, err := scanRate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rate: %v", ErrScanRow, err)
	}

	return rate, nil
}

// GetOverlapping получает ставки комнаты с тем же приоритетом, пересекающиеся
// с диапазоном [start, end] включительно. excludeID исключает саму ставку при
// обновлении
func (r *Repository) GetOverlapping(ctx context.Context, roomID int64, start, end time.Time, priority int, excludeID *int64) ([]*domain.SeasonalRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rateColumns...).
		From("seasonal_rates").
		Where(squirrel.Eq{"room_id": roomID, "priority": priority}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		OrderBy("id ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRates(rows)
}

// Create создает новую сезонную ставку
func (r *Repository) Create(ctx context.Context, rate *domain.SeasonalRate) (*domain.SeasonalRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("seasonal_rates").
		Columns(
			"room_id",
			"name",
			"start_date",
			"end_date",
			"price_per_night",
			"priority",
		).
		Values(
			rate.RoomID,
			rate.Name,
			rate.StartDate,
			rate.EndDate,
			rate.PricePerNight,
			rate.Priority,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rate.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rate.CreatedAt = createdAt.Time
	rate.UpdatedAt = updatedAt.Time

	return rate, nil
}

// Update обновляет сезонную ставку
func (r *Repository) Update(ctx context.Context, rate *domain.SeasonalRate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("seasonal_rates").
		Set("name", rate.Name).
		Set("start_date", rate.StartDate).
		Set("end_date", rate.EndDate).
		Set("price_per_night", rate.PricePerNight).
		Set("priority", rate.Priority).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rate.ID, "room_id": rate.RoomID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRateNotFound
	}

	return nil
}

// Delete удаляет сезонную ставку комнаты
func (r *Repository) Delete(ctx context.Context, roomID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("seasonal_rates").
		Where(squirrel.Eq{"id": id, "room_id": roomID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRateNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRate сканирует одну строку в доменную модель ставки
func scanRate(row rowScanner) (*domain.SeasonalRate, error) {
	var rate domain.SeasonalRate
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rate.ID,
		&rate.RoomID,
		&rate.Name,
		&rate.StartDate,
		&rate.EndDate,
		&rate.PricePerNight,
		&rate.Priority,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rate.CreatedAt = createdAt.Time
	rate.UpdatedAt = updatedAt.Time

	return &rate, nil
}

// scanRates сканирует результаты запроса в слайс ставок
func scanRates(rows *sql.Rows) ([]*domain.SeasonalRate, error) {
	rates := make([]*domain.SeasonalRate, 0)

	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRates - scan row: %v", ErrScanRow, err)
		}
		rates = append(rates, rate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRates - rows error: %v", ErrScanRow, err)
	}

	return rates, nil
}
