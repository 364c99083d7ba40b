package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/pkg/dbmetrics"
	"github.com/staysuite/pricing-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со снимками комнат и услуг.
// Вставки идут в три таблицы, поэтому вызывающий обязан передать активную
// транзакцию через контекст (usecase оборачивает вызов в txmanager)
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"tenant_id",
			"property_id",
			"user_id",
			"guest_email",
			"check_in",
			"check_out",
			"status",
			"rooms_subtotal",
			"addons_subtotal",
			"discount_amount",
			"grand_total",
			"currency",
			"notes",
		).
		Values(
			booking.TenantID,
			booking.PropertyID,
			booking.UserID,
			booking.GuestEmail,
			booking.CheckIn,
			booking.CheckOut,
			booking.Status,
			booking.RoomsSubtotal,
			booking.AddonsSubtotal,
			booking.DiscountAmount,
			booking.GrandTotal,
			booking.Currency,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	for i := range booking.Rooms {
		booking.Rooms[i].BookingID = booking.ID
		if err := r.createRoom(ctx, executor, &booking.Rooms[i]); err != nil {
			return nil, err
		}
	}

	for i := range booking.Addons {
		booking.Addons[i].BookingID = booking.ID
		if err := r.createAddon(ctx, executor, &booking.Addons[i]); err != nil {
			return nil, err
		}
	}

	return booking, nil
}

// createRoom вставляет снимок одной комнаты бронирования
func (r *Repository) createRoom(ctx context.Context, executor DBExecutor, room *domain.BookingRoom) error {
	query, args, err := psqlbuilder.Insert("booking_rooms").
		Columns(
			"booking_id",
			"room_id",
			"room_name",
			"adults",
			"children",
			"children_ages",
			"subtotal",
			"adjusted_total",
		).
		Values(
			room.BookingID,
			room.RoomID,
			room.RoomName,
			room.Adults,
			room.Children,
			pq.Array(room.ChildrenAges),
			room.Subtotal,
			room.AdjustedTotal,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: createRoom - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&room.ID); err != nil {
		return fmt.Errorf("%w: createRoom - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// createAddon вставляет снимок одной выбранной услуги
func (r *Repository) createAddon(ctx context.Context, executor DBExecutor, addon *domain.BookingAddon) error {
	query, args, err := psqlbuilder.Insert("booking_addons").
		Columns(
			"booking_id",
			"addon_id",
			"name",
			"pricing_type",
			"unit_price",
			"quantity",
			"charge",
		).
		Values(
			addon.BookingID,
			addon.AddonID,
			addon.Name,
			addon.PricingType,
			addon.UnitPrice,
			addon.Quantity,
			addon.Charge,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: createAddon - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&addon.ID); err != nil {
		return fmt.Errorf("%w: createAddon - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает бронирование вместе с комнатами и услугами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"property_id",
		"user_id",
		"guest_email",
		"check_in",
		"check_out",
		"status",
		"rooms_subtotal",
		"addons_subtotal",
		"discount_amount",
		"grand_total",
		"currency",
		"notes",
		"created_at",
		"updated_at",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.TenantID,
		&booking.PropertyID,
		&booking.UserID,
		&booking.GuestEmail,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Status,
		&booking.RoomsSubtotal,
		&booking.AddonsSubtotal,
		&booking.DiscountAmount,
		&booking.GrandTotal,
		&booking.Currency,
		&booking.Notes,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	rooms, err := r.getRooms(ctx, executor, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Rooms = rooms

	addons, err := r.getAddons(ctx, executor, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Addons = addons

	return &booking, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// getRooms получает снимки комнат бронирования
func (r *Repository) getRooms(ctx context.Context, executor DBExecutor, bookingID int64) ([]domain.BookingRoom, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"room_id",
		"room_name",
		"adults",
		"children",
		"children_ages",
		"subtotal",
		"adjusted_total",
	).
		From("booking_rooms").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookingRooms := make([]domain.BookingRoom, 0)
	for rows.Next() {
		var room domain.BookingRoom

		err := rows.Scan(
			&room.ID,
			&room.BookingID,
			&room.RoomID,
			&room.RoomName,
			&room.Adults,
			&room.Children,
			pq.Array(&room.ChildrenAges),
			&room.Subtotal,
			&room.AdjustedTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getRooms - scan row: %v", ErrScanRow, err)
		}

		bookingRooms = append(bookingRooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getRooms - rows error: %v", ErrScanRow, err)
	}

	return bookingRooms, nil
}

// getAddons получает снимки услуг бронирования
func (r *Repository) getAddons(ctx context.Context, executor DBExecutor, bookingID int64) ([]domain.BookingAddon, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"addon_id",
		"name",
		"pricing_type",
		"unit_price",
		"quantity",
		"charge",
	).
		From("booking_addons").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getAddons - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getAddons - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookingAddons := make([]domain.BookingAddon, 0)
	for rows.Next() {
		var addon domain.BookingAddon

		err := rows.Scan(
			&addon.ID,
			&addon.BookingID,
			&addon.AddonID,
			&addon.Name,
			&addon.PricingType,
			&addon.UnitPrice,
			&addon.Quantity,
			&addon.Charge,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getAddons - scan row: %v", ErrScanRow, err)
		}

		bookingAddons = append(bookingAddons, addon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getAddons - rows error: %v", ErrScanRow, err)
	}

	return bookingAddons, nil
}
