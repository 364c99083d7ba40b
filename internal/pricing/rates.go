package pricing

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
)

// NightRate is the resolved price for a single calendar night.
// RateName is nil when the room's base price applied.
type NightRate struct {
	Price    float64
	RateName *string
}

// ResolveNightlyRate overlays the room's seasonal rates onto its base price
// for one night. Among rates covering the night the highest Priority wins;
// equal priorities resolve to the lowest ID (first-inserted rate), so the
// result does not depend on slice order.
func ResolveNightlyRate(room *domain.Room, rates []*domain.SeasonalRate, night time.Time) NightRate {
	var best *domain.SeasonalRate
	for _, rate := range rates {
		if rate == nil || !rate.Covers(night) {
			continue
		}
		if best == nil || wins(rate, best) {
			best = rate
		}
	}

	if best == nil {
		return NightRate{Price: room.BasePricePerNight}
	}

	name := best.Name
	return NightRate{Price: best.PricePerNight, RateName: &name}
}

// wins returns true if candidate takes precedence over current
func wins(candidate, current *domain.SeasonalRate) bool {
	if candidate.Priority != current.Priority {
		return candidate.Priority > current.Priority
	}
	return candidate.ID < current.ID
}
