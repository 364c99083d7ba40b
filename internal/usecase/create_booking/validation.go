package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/internal/pricing"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if err := validateGuestEmail(req.GuestEmail); err != nil {
		return err
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !domain.DateOnly(req.CheckOut).After(domain.DateOnly(req.CheckIn)) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidDateRange)
	}

	nights := pricing.StayRequest{CheckIn: req.CheckIn, CheckOut: req.CheckOut}.NightCount()
	if nights > domain.MaxStayNights {
		return fmt.Errorf("%w: stay must not exceed %d nights", ErrStayTooLong, domain.MaxStayNights)
	}

	if len(req.Rooms) == 0 {
		return fmt.Errorf("%w: at least one room is required", ErrInvalidInput)
	}

	if err := validateRooms(req.Rooms); err != nil {
		return err
	}

	if err := validateAddons(req.Addons); err != nil {
		return err
	}

	if req.DiscountAmount < 0 {
		return fmt.Errorf("%w: discountAmount must be non-negative", ErrInvalidInput)
	}

	if req.ClientTotal < 0 {
		return fmt.Errorf("%w: clientTotal must be non-negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateGuestEmail проверяет email гостя
// Полная проверка адреса - задача внешнего сервиса уведомлений, здесь
// отсекается только очевидный мусор
func validateGuestEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: guestEmail is required", ErrInvalidInput)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: guestEmail is malformed", ErrInvalidInput)
	}

	return nil
}

// validateRooms проверяет комнаты бронирования
func validateRooms(rooms []RoomRequest) error {
	seen := make(map[int64]struct{}, len(rooms))

	for _, room := range rooms {
		if room.RoomID <= 0 {
			return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
		}

		if _, ok := seen[room.RoomID]; ok {
			return fmt.Errorf("%w: room id=%d is listed twice", ErrInvalidInput, room.RoomID)
		}
		seen[room.RoomID] = struct{}{}

		if room.Adults < 1 {
			return fmt.Errorf("%w: at least one adult is required in room id=%d", ErrInvalidInput, room.RoomID)
		}

		if room.Children < 0 {
			return fmt.Errorf("%w: children must be non-negative in room id=%d", ErrInvalidInput, room.RoomID)
		}

		for _, age := range room.ChildrenAges {
			if age < 0 || age > domain.MaxGuestAge {
				return fmt.Errorf("%w: child age must be between 0 and %d", ErrInvalidInput, domain.MaxGuestAge)
			}
		}

		if room.AdjustedTotal != nil && *room.AdjustedTotal < 0 {
			return fmt.Errorf("%w: adjustedTotal must be non-negative for room id=%d", ErrInvalidInput, room.RoomID)
		}
	}

	return nil
}

// validateAddons проверяет дополнительные услуги бронирования
func validateAddons(addons []AddonRequest) error {
	seen := make(map[int64]struct{}, len(addons))

	for _, addon := range addons {
		if addon.AddonID <= 0 {
			return fmt.Errorf("%w: addonID must be positive", ErrInvalidInput)
		}

		if _, ok := seen[addon.AddonID]; ok {
			return fmt.Errorf("%w: addon id=%d is listed twice", ErrInvalidInput, addon.AddonID)
		}
		seen[addon.AddonID] = struct{}{}
	}

	return nil
}

// validateCheckInNotPast проверяет, что дата заезда не в прошлом
// Расчет стоимости прошедших дат допустим, создание бронирования - нет
func validateCheckInNotPast(checkIn, now time.Time) error {
	if domain.DateOnly(checkIn).Before(domain.DateOnly(now)) {
		return ErrDateInPast
	}
	return nil
}

// guestTotal суммирует гостей по всем комнатам бронирования
func guestTotal(rooms []RoomRequest) int {
	total := 0
	for _, room := range rooms {
		total += room.Adults + room.Children
	}
	return total
}
