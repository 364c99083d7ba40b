package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonalRateCoversInclusiveRange(t *testing.T) {
	t.Parallel()

	rate := SeasonalRate{
		StartDate: day(2026, 8, 1),
		EndDate:   day(2026, 8, 3),
	}

	require.False(t, rate.Covers(day(2026, 7, 31)))
	require.True(t, rate.Covers(day(2026, 8, 1)))
	require.True(t, rate.Covers(day(2026, 8, 2)))
	require.True(t, rate.Covers(day(2026, 8, 3)))
	require.False(t, rate.Covers(day(2026, 8, 4)))
}

func TestSeasonalRateCoversIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	rate := SeasonalRate{
		StartDate: day(2026, 8, 1),
		EndDate:   day(2026, 8, 1),
	}

	require.True(t, rate.Covers(time.Date(2026, 8, 1, 23, 59, 0, 0, time.UTC)))
}

func TestSeasonalRateOverlapsRange(t *testing.T) {
	t.Parallel()

	rate := SeasonalRate{
		StartDate: day(2026, 8, 10),
		EndDate:   day(2026, 8, 20),
	}

	require.True(t, rate.OverlapsRange(day(2026, 8, 1), day(2026, 8, 10)), "touching the start day overlaps")
	require.True(t, rate.OverlapsRange(day(2026, 8, 20), day(2026, 8, 25)), "touching the end day overlaps")
	require.True(t, rate.OverlapsRange(day(2026, 8, 12), day(2026, 8, 14)), "contained range overlaps")
	require.True(t, rate.OverlapsRange(day(2026, 8, 1), day(2026, 8, 31)), "containing range overlaps")
	require.False(t, rate.OverlapsRange(day(2026, 8, 1), day(2026, 8, 9)))
	require.False(t, rate.OverlapsRange(day(2026, 8, 21), day(2026, 8, 31)))
}

func TestDateOnlyNormalizesToUTCMidnight(t *testing.T) {
	t.Parallel()

	moscow := time.FixedZone("MSK", 3*60*60)
	stamp := time.Date(2026, 8, 1, 1, 30, 0, 0, moscow) // 2026-07-31 22:30 UTC

	require.Equal(t, day(2026, 7, 31), DateOnly(stamp))
}
