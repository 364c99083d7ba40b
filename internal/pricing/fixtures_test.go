package pricing

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/pkg/ptr"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func perUnitRoom(base float64) *domain.Room {
	return &domain.Room{
		ID:                101,
		TenantID:          1,
		PropertyID:        11,
		Name:              "Garden Studio",
		Currency:          "EUR",
		PricingMode:       domain.PricingPerUnit,
		BasePricePerNight: base,
		ChildAgeLimit:     domain.DefaultChildAgeLimit,
		MaxGuests:         4,
		IsActive:          true,
	}
}

func perPersonRoom(base float64) *domain.Room {
	room := perUnitRoom(base)
	room.PricingMode = domain.PricingPerPerson
	return room
}

func sharingRoom(base, additionalPersonRate float64) *domain.Room {
	room := perUnitRoom(base)
	room.PricingMode = domain.PricingPerPersonSharing
	room.AdditionalPersonRate = ptr.Ptr(additionalPersonRate)
	return room
}

func seasonalRate(id int64, name string, start, end time.Time, price float64, priority int) *domain.SeasonalRate {
	return &domain.SeasonalRate{
		ID:            id,
		RoomID:        101,
		Name:          name,
		StartDate:     start,
		EndDate:       end,
		PricePerNight: price,
		Priority:      priority,
	}
}

func stay(checkIn, checkOut time.Time, adults, children int, ages ...int) StayRequest {
	return StayRequest{
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Adults:       adults,
		Children:     children,
		ChildrenAges: ages,
	}
}
