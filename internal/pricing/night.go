package pricing

import "github.com/staysuite/pricing-service/internal/domain"

// PriceForNight applies the room's pricing mode to one night's resolved rate.
// Free children contribute 0 in every mode. No rounding happens here; amounts
// stay plain decimal values in the room's currency.
func PriceForNight(room *domain.Room, nightlyRate float64, cls GuestClassification) float64 {
	switch room.PricingMode {
	case domain.PricingPerPerson:
		// Each paying adult pays the full nightly rate, children pay the
		// child rate when one is configured.
		childRate := nightlyRate
		if room.ChildPricePerNight != nil {
			childRate = *room.ChildPricePerNight
		}
		return nightlyRate*float64(cls.PayingAdults) + childRate*float64(cls.PayingChildren)

	case domain.PricingPerPersonSharing:
		// The nightly rate covers the first paying adult, every further
		// adult pays the additional-person rate. A missing additional rate
		// is a degraded configuration and charges 0 for extras.
		var extraRate float64
		if room.AdditionalPersonRate != nil {
			extraRate = *room.AdditionalPersonRate
		}
		childRate := extraRate
		if room.ChildPricePerNight != nil {
			childRate = *room.ChildPricePerNight
		}
		extraAdults := cls.PayingAdults - 1
		if extraAdults < 0 {
			extraAdults = 0
		}
		return nightlyRate + extraRate*float64(extraAdults) + childRate*float64(cls.PayingChildren)

	default:
		// per_unit: flat price for the whole unit, guest counts do not
		// change the amount.
		return nightlyRate
	}
}
