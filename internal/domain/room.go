package domain

import "time"

// PricingMode is the billing model applied to a room's nightly rate
type PricingMode string

const (
	PricingPerUnit          PricingMode = "per_unit"
	PricingPerPerson        PricingMode = "per_person"
	PricingPerPersonSharing PricingMode = "per_person_sharing"
)

// IsValid returns true if the mode is one of the supported billing models
func (m PricingMode) IsValid() bool {
	switch m {
	case PricingPerUnit, PricingPerPerson, PricingPerPersonSharing:
		return true
	}
	return false
}

// Room represents a bookable room type together with its pricing configuration
type Room struct {
	ID         int64
	TenantID   int64
	PropertyID int64
	Name       string
	Currency   string

	PricingMode          PricingMode
	BasePricePerNight    float64
	AdditionalPersonRate *float64 // required when PricingMode = per_person_sharing
	ChildPricePerNight   *float64 // nil => children pay the mode's adult-equivalent rate
	ChildFreeUntilAge    *int     // nil => no free tier
	ChildAgeLimit        int      // ages >= this are billed as adults
	MaxGuests            int
	IsActive             bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BelongsToTenant returns true if the room is owned by the given tenant
func (r *Room) BelongsToTenant(tenantID int64) bool {
	return r.TenantID == tenantID
}

// CanHost returns true if the guest count fits the room's capacity
func (r *Room) CanHost(guests int) bool {
	return guests > 0 && guests <= r.MaxGuests
}

// EffectiveChildAgeLimit returns the configured age limit, falling back to
// DefaultChildAgeLimit when the room has none set
func (r *Room) EffectiveChildAgeLimit() int {
	if r.ChildAgeLimit <= 0 {
		return DefaultChildAgeLimit
	}
	return r.ChildAgeLimit
}

// HasFreeChildTier returns true if children below some age stay for free
func (r *Room) HasFreeChildTier() bool {
	return r.ChildFreeUntilAge != nil && *r.ChildFreeUntilAge > 0
}
