package get_stay_quote

import (
	"fmt"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/internal/pricing"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID <= 0 {
		return fmt.Errorf("%w: tenantID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
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

	if req.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidInput)
	}

	if req.Children < 0 {
		return fmt.Errorf("%w: children must be non-negative", ErrInvalidInput)
	}

	for _, age := range req.ChildrenAges {
		if age < 0 || age > domain.MaxGuestAge {
			return fmt.Errorf("%w: child age must be between 0 and %d", ErrInvalidInput, domain.MaxGuestAge)
		}
	}

	return nil
}
