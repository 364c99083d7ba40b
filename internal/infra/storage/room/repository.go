package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/pkg/dbmetrics"
	"github.com/staysuite/pricing-service/pkg/psqlbuilder"
)

var roomColumns = []string{
	"id",
	"tenant_id",
	"property_id",
	"name",
	"currency",
	"pricing_mode",
	"base_price_per_night",
	"additional_person_rate",
	"child_price_per_night",
	"child_free_until_age",
	"child_age_limit",
	"max_guests",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с комнатами и их ценовой конфигурацией
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// GetByIDs получает несколько комнат за один запрос
// Отсутствующие ID не являются ошибкой, вызывающий сверяет результат сам
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(ids) == 0 {
		return []*domain.Room{}, nil
	}

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0, len(ids))
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// UpdatePricing обновляет ценовую конфигурацию комнаты
func (r *Repository) UpdatePricing(ctx context.Context, room *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("pricing_mode", room.PricingMode).
		Set("base_price_per_night", room.BasePricePerNight).
		Set("additional_person_rate", room.AdditionalPersonRate).
		Set("child_price_per_night", room.ChildPricePerNight).
		Set("child_free_until_age", room.ChildFreeUntilAge).
		Set("child_age_limit", room.ChildAgeLimit).
		Set("max_guests", room.MaxGuests).
		Set("is_active", room.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRoom сканирует одну строку в доменную модель комнаты
func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.TenantID,
		&room.PropertyID,
		&room.Name,
		&room.Currency,
		&room.PricingMode,
		&room.BasePricePerNight,
		&room.AdditionalPersonRate,
		&room.ChildPricePerNight,
		&room.ChildFreeUntilAge,
		&room.ChildAgeLimit,
		&room.MaxGuests,
		&room.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}
