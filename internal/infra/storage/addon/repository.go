package addon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/pkg/dbmetrics"
	"github.com/staysuite/pricing-service/pkg/psqlbuilder"
)

var addonColumns = []string{
	"id",
	"property_id",
	"room_id",
	"name",
	"description",
	"image_url",
	"price",
	"pricing_type",
	"max_quantity",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с дополнительными услугами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория дополнительных услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByPropertyID получает активные услуги собственности для каталога
func (r *Repository) GetActiveByPropertyID(ctx context.Context, propertyID int64) ([]*domain.Addon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addons").
		Where(squirrel.Eq{"property_id": propertyID, "is_active": true}).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPropertyID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPropertyID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAddons(rows)
}

// GetByIDs получает несколько услуг за один запрос
// Отсутствующие ID не являются ошибкой, вызывающий сверяет результат сам
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Addon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(ids) == 0 {
		return []*domain.Addon{}, nil
	}

	query, args, err := psqlbuilder.Select(addonColumns...).
		From("addons").
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

	return scanAddons(rows)
}

// scanAddons сканирует результаты запроса в слайс услуг
func scanAddons(rows *sql.Rows) ([]*domain.Addon, error) {
	addons := make([]*domain.Addon, 0)

	for rows.Next() {
		var addon domain.Addon
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&addon.ID,
			&addon.PropertyID,
			&addon.RoomID,
			&addon.Name,
			&addon.Description,
			&addon.ImageURL,
			&addon.Price,
			&addon.PricingType,
			&addon.MaxQuantity,
			&addon.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAddons - scan row: %v", ErrScanRow, err)
		}

		addon.CreatedAt = createdAt.Time
		addon.UpdatedAt = updatedAt.Time

		addons = append(addons, &addon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAddons - rows error: %v", ErrScanRow, err)
	}

	return addons, nil
}
