package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/internal/domain"
)

func TestResolveNightlyRateUsesBasePriceWithoutRates(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(1000)

	got := ResolveNightlyRate(room, nil, date(2026, 7, 10))
	require.Equal(t, 1000.0, got.Price)
	require.Nil(t, got.RateName)
}

func TestResolveNightlyRateSingleCoveringRateWins(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(1000)
	rates := []*domain.SeasonalRate{
		seasonalRate(1, "Peak", date(2026, 7, 11), date(2026, 7, 11), 1500, 1),
	}

	got := ResolveNightlyRate(room, rates, date(2026, 7, 11))
	require.Equal(t, 1500.0, got.Price)
	require.NotNil(t, got.RateName)
	require.Equal(t, "Peak", *got.RateName)

	// Nights outside the range keep the base price.
	outside := ResolveNightlyRate(room, rates, date(2026, 7, 12))
	require.Equal(t, 1000.0, outside.Price)
	require.Nil(t, outside.RateName)
}

func TestResolveNightlyRateRangeIsInclusiveOnBothEnds(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(900)
	rates := []*domain.SeasonalRate{
		seasonalRate(1, "Festival", date(2026, 8, 1), date(2026, 8, 3), 1200, 1),
	}

	for _, night := range []int{1, 2, 3} {
		got := ResolveNightlyRate(room, rates, date(2026, 8, night))
		require.Equal(t, 1200.0, got.Price, "night %d must be covered", night)
	}

	after := ResolveNightlyRate(room, rates, date(2026, 8, 4))
	require.Equal(t, 900.0, after.Price)
	require.Nil(t, after.RateName)
}

func TestResolveNightlyRateHighestPriorityWins(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(1000)
	rates := []*domain.SeasonalRate{
		seasonalRate(1, "Summer", date(2026, 6, 1), date(2026, 8, 31), 1100, 1),
		seasonalRate(2, "August Peak", date(2026, 8, 1), date(2026, 8, 15), 1400, 5),
	}

	got := ResolveNightlyRate(room, rates, date(2026, 8, 10))
	require.Equal(t, 1400.0, got.Price)
	require.Equal(t, "August Peak", *got.RateName)

	// Outside the high-priority window the broader rate applies again.
	june := ResolveNightlyRate(room, rates, date(2026, 6, 20))
	require.Equal(t, 1100.0, june.Price)
	require.Equal(t, "Summer", *june.RateName)
}

func TestResolveNightlyRateEqualPriorityPrefersFirstInserted(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(1000)
	older := seasonalRate(7, "Old Promo", date(2026, 9, 1), date(2026, 9, 10), 800, 3)
	newer := seasonalRate(12, "New Promo", date(2026, 9, 5), date(2026, 9, 15), 700, 3)

	got := ResolveNightlyRate(room, []*domain.SeasonalRate{older, newer}, date(2026, 9, 7))
	require.Equal(t, "Old Promo", *got.RateName)
	require.Equal(t, 800.0, got.Price)

	// The pick must not depend on slice order.
	reversed := ResolveNightlyRate(room, []*domain.SeasonalRate{newer, older}, date(2026, 9, 7))
	require.Equal(t, got, reversed)
}

func TestResolveNightlyRateIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(1000)
	rates := []*domain.SeasonalRate{
		seasonalRate(1, "Peak", date(2026, 7, 11), date(2026, 7, 11), 1500, 1),
	}

	lateEvening := date(2026, 7, 11).Add(23*time.Hour + 45*time.Minute)
	got := ResolveNightlyRate(room, rates, lateEvening)
	require.Equal(t, 1500.0, got.Price)
}
