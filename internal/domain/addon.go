package domain

import "time"

// AddonPricingType is the proration basis for an addon's charge
type AddonPricingType string

const (
	AddonPerBooking       AddonPricingType = "per_booking"
	AddonPerNight         AddonPricingType = "per_night"
	AddonPerGuest         AddonPricingType = "per_guest"
	AddonPerGuestPerNight AddonPricingType = "per_guest_per_night"
)

// IsValid returns true if the pricing type is one of the supported bases
func (t AddonPricingType) IsValid() bool {
	switch t {
	case AddonPerBooking, AddonPerNight, AddonPerGuest, AddonPerGuestPerNight:
		return true
	}
	return false
}

// Addon represents an optional extra charge item offered by a property
type Addon struct {
	ID          int64
	PropertyID  int64
	RoomID      *int64 // nil => available for every room of the property
	Name        string
	Description *string
	ImageURL    *string
	Price       float64
	PricingType AddonPricingType
	MaxQuantity int
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClampQuantity bounds a requested quantity to [1, MaxQuantity]
func (a *Addon) ClampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}
	if a.MaxQuantity > 0 && quantity > a.MaxQuantity {
		return a.MaxQuantity
	}
	return quantity
}
