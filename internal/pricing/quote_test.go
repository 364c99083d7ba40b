package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/pkg/ptr"
)

func TestBuildQuoteFlatThreeNights(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(1000)
	request := stay(date(2026, 7, 10), date(2026, 7, 13), 2, 0)

	quote := BuildQuote(room, nil, request)

	require.Equal(t, 3, quote.NightCount)
	require.Equal(t, 3000.0, quote.Subtotal)
	require.Equal(t, "EUR", quote.Currency)
	require.Equal(t, SourceFull, quote.Source)
	require.Len(t, quote.Nights, 3)
	for i, line := range quote.Nights {
		require.Equal(t, date(2026, 7, 10+i), line.Date, "nights must stay chronological")
		require.Equal(t, 1000.0, line.Price)
		require.Nil(t, line.RateName)
	}
}

func TestBuildQuoteSeasonalRateOnMiddleNight(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(1000)
	rates := []*domain.SeasonalRate{
		seasonalRate(1, "Peak", date(2026, 7, 11), date(2026, 7, 11), 1500, 1),
	}
	request := stay(date(2026, 7, 10), date(2026, 7, 13), 2, 0)

	quote := BuildQuote(room, rates, request)

	require.Equal(t, 3500.0, quote.Subtotal)
	require.Equal(t, []float64{1000, 1500, 1000}, nightPrices(quote))
	require.Nil(t, quote.Nights[0].RateName)
	require.Equal(t, "Peak", *quote.Nights[1].RateName)
	require.Nil(t, quote.Nights[2].RateName)
}

func TestBuildQuoteZeroNights(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(1000)

	sameDay := BuildQuote(room, nil, stay(date(2026, 7, 10), date(2026, 7, 10), 2, 0))
	require.Zero(t, sameDay.NightCount)
	require.Zero(t, sameDay.Subtotal)
	require.Empty(t, sameDay.Nights)

	inverted := BuildQuote(room, nil, stay(date(2026, 7, 13), date(2026, 7, 10), 2, 0))
	require.Zero(t, inverted.NightCount)
	require.Zero(t, inverted.Subtotal)
	require.Empty(t, inverted.Nights)
}

func TestBuildQuoteSharingTwoAdults(t *testing.T) {
	t.Parallel()

	room := sharingRoom(800, 200)
	request := stay(date(2026, 7, 10), date(2026, 7, 11), 2, 0)

	quote := BuildQuote(room, nil, request)

	require.Equal(t, 1, quote.NightCount)
	require.Equal(t, 1000.0, quote.Subtotal)
}

func TestBuildQuoteFreeChildPerPerson(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)
	room.ChildFreeUntilAge = ptr.Ptr(5)
	request := stay(date(2026, 7, 10), date(2026, 7, 11), 2, 1, 4)

	quote := BuildQuote(room, nil, request)

	require.Equal(t, 1000.0, quote.Subtotal, "the 4-year-old stays free")
}

func TestBuildQuoteIsDeterministic(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)
	room.ChildFreeUntilAge = ptr.Ptr(5)
	room.ChildPricePerNight = ptr.Ptr(250.0)
	rates := []*domain.SeasonalRate{
		seasonalRate(1, "Summer", date(2026, 6, 1), date(2026, 8, 31), 650, 1),
		seasonalRate(2, "Weekend", date(2026, 7, 11), date(2026, 7, 12), 700, 2),
	}
	request := stay(date(2026, 7, 9), date(2026, 7, 14), 2, 2, 3, 9)

	first := BuildQuote(room, rates, request)
	second := BuildQuote(room, rates, request)

	require.Equal(t, first, second)
}

func TestBuildQuoteClassifiesGuestsOncePerStay(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(400)
	room.ChildFreeUntilAge = ptr.Ptr(6)
	request := stay(date(2026, 7, 10), date(2026, 7, 14), 1, 1, 3)

	quote := BuildQuote(room, nil, request)

	// Every night carries the same composition, so every line is equal.
	require.Len(t, quote.Nights, 4)
	for _, line := range quote.Nights {
		require.Equal(t, 400.0, line.Price)
	}
}

func TestEstimateIsFlatAndTagged(t *testing.T) {
	t.Parallel()

	// A per-person room with guests and seasonal rates: the estimate must
	// ignore all of it and charge the flat base price per night.
	room := perPersonRoom(500)
	request := stay(date(2026, 7, 10), date(2026, 7, 13), 3, 1, 9)

	quote := Estimate(room, request)

	require.Equal(t, SourceEstimated, quote.Source)
	require.Equal(t, 3, quote.NightCount)
	require.Equal(t, 1500.0, quote.Subtotal)
	for _, line := range quote.Nights {
		require.Equal(t, 500.0, line.Price)
		require.Nil(t, line.RateName)
	}
}

func TestEstimateDoesNotMutateRoom(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)
	_ = Estimate(room, stay(date(2026, 7, 10), date(2026, 7, 12), 2, 0))

	require.Equal(t, domain.PricingPerPerson, room.PricingMode)
}

func nightPrices(quote *Quote) []float64 {
	prices := make([]float64, 0, len(quote.Nights))
	for _, line := range quote.Nights {
		prices = append(prices, line.Price)
	}
	return prices
}
