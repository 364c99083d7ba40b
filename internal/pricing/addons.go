package pricing

import "github.com/staysuite/pricing-service/internal/domain"

// AddonCharge computes one addon's contribution for the given scope.
// guestCount is the headcount of whatever the addon is attached to: one room
// for single-room stays, all rooms for a multi-room checkout.
//
// Quantity clamping to [1, MaxQuantity] is the caller's job; a quantity at or
// below zero simply contributes nothing.
func AddonCharge(addon *domain.Addon, quantity, nightCount, guestCount int) float64 {
	if quantity <= 0 {
		return 0
	}
	if nightCount < 0 {
		nightCount = 0
	}
	if guestCount < 0 {
		guestCount = 0
	}

	amount := addon.Price * float64(quantity)

	switch addon.PricingType {
	case domain.AddonPerBooking:
		return amount
	case domain.AddonPerNight:
		return amount * float64(nightCount)
	case domain.AddonPerGuest:
		return amount * float64(guestCount)
	case domain.AddonPerGuestPerNight:
		return amount * float64(guestCount) * float64(nightCount)
	}

	return 0
}
