// Package pricing is the stay pricing engine: pure, synchronous computation
// of nightly prices, stay quotes, addon charges and checkout totals from
// in-memory room data. It performs no I/O, reads no clock and keeps no state,
// so identical inputs always produce identical quotes and concurrent calls
// never interfere.
package pricing

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
)

// QuoteSource tags how a quote was produced
type QuoteSource string

const (
	// SourceFull marks an authoritative quote computed from the room's
	// complete pricing configuration and seasonal rates.
	SourceFull QuoteSource = "full"
	// SourceEstimated marks the degraded flat fallback used when full
	// pricing data is unavailable.
	SourceEstimated QuoteSource = "estimated"
)

// StayRequest describes one stay to be priced. CheckIn and CheckOut are
// calendar dates; CheckOut is exclusive, so a stay covers the nights of
// [CheckIn, CheckOut).
type StayRequest struct {
	CheckIn      time.Time
	CheckOut     time.Time
	Adults       int
	Children     int
	ChildrenAges []int
}

// NightCount returns the number of nights the request covers
func (s StayRequest) NightCount() int {
	n := int(domain.DateOnly(s.CheckOut).Sub(domain.DateOnly(s.CheckIn)).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// NightLine is the priced entry for a single night of a stay.
// RateName is nil when the base price applied that night.
type NightLine struct {
	Date     time.Time
	Price    float64
	RateName *string
}

// Quote is a fully priced stay. It is immutable once built; a changed
// request produces a new quote instead of mutating an old one.
type Quote struct {
	RoomID     int64
	RoomName   string
	Nights     []NightLine
	Subtotal   float64
	Currency   string
	NightCount int
	Source     QuoteSource
}

// BuildQuote prices every night of the stay in chronological order and sums
// the per-night prices into a subtotal. CheckOut at or before CheckIn yields
// an empty quote with zero nights and zero subtotal; preventing zero-night
// stays is the caller's validation concern.
func BuildQuote(room *domain.Room, rates []*domain.SeasonalRate, stay StayRequest) *Quote {
	// Guest composition does not change between nights of one stay, so it is
	// classified once up front.
	cls := ClassifyGuests(room, stay.Adults, stay.Children, stay.ChildrenAges)

	quote := &Quote{
		RoomID:   room.ID,
		RoomName: room.Name,
		Nights:   []NightLine{},
		Currency: room.Currency,
		Source:   SourceFull,
	}

	checkIn := domain.DateOnly(stay.CheckIn)
	checkOut := domain.DateOnly(stay.CheckOut)

	for night := checkIn; night.Before(checkOut); night = night.AddDate(0, 0, 1) {
		rate := ResolveNightlyRate(room, rates, night)
		price := PriceForNight(room, rate.Price, cls)

		quote.Nights = append(quote.Nights, NightLine{
			Date:     night,
			Price:    price,
			RateName: rate.RateName,
		})
		quote.Subtotal += price
	}

	quote.NightCount = len(quote.Nights)
	return quote
}

// Estimate builds the degraded fallback quote: the room's base price flat per
// night, ignoring pricing mode, guest composition and seasonal rates. It is
// the per-unit degenerate case of BuildQuote, tagged so callers can tell an
// estimate from an authoritative quote.
func Estimate(room *domain.Room, stay StayRequest) *Quote {
	flat := *room
	flat.PricingMode = domain.PricingPerUnit

	quote := BuildQuote(&flat, nil, stay)
	quote.Source = SourceEstimated
	return quote
}
