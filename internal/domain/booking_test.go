package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBookingNightCount(t *testing.T) {
	t.Parallel()

	booking := Booking{
		CheckIn:  day(2026, 7, 10),
		CheckOut: day(2026, 7, 13),
	}
	require.Equal(t, 3, booking.NightCount())

	sameDay := Booking{CheckIn: day(2026, 7, 10), CheckOut: day(2026, 7, 10)}
	require.Zero(t, sameDay.NightCount())

	inverted := Booking{CheckIn: day(2026, 7, 13), CheckOut: day(2026, 7, 10)}
	require.Zero(t, inverted.NightCount())
}

func TestBookingGuestCount(t *testing.T) {
	t.Parallel()

	booking := Booking{
		Rooms: []BookingRoom{
			{Adults: 2, Children: 1},
			{Adults: 1, Children: 0},
		},
	}
	require.Equal(t, 4, booking.GuestCount())
}

func TestBookingStatusPredicates(t *testing.T) {
	t.Parallel()

	for _, status := range []BookingStatus{StatusPending, StatusConfirmed} {
		booking := Booking{Status: status}
		require.True(t, booking.IsActive(), "status %s", status)
		require.True(t, booking.CanBeCancelled(), "status %s", status)
	}

	cancelled := Booking{Status: StatusCancelled}
	require.False(t, cancelled.IsActive())
	require.False(t, cancelled.CanBeCancelled())
}

func TestBookingRoomTotalPrefersAdjusted(t *testing.T) {
	t.Parallel()

	adjusted := 2500.0
	room := BookingRoom{Subtotal: 3000, AdjustedTotal: &adjusted}
	require.Equal(t, 2500.0, room.Total())

	plain := BookingRoom{Subtotal: 3000}
	require.Equal(t, 3000.0, plain.Total())
}

func TestAddonClampQuantity(t *testing.T) {
	t.Parallel()

	addon := Addon{MaxQuantity: 3}

	require.Equal(t, 1, addon.ClampQuantity(0))
	require.Equal(t, 1, addon.ClampQuantity(-5))
	require.Equal(t, 2, addon.ClampQuantity(2))
	require.Equal(t, 3, addon.ClampQuantity(7))
}

func TestRoomEffectiveChildAgeLimit(t *testing.T) {
	t.Parallel()

	unset := Room{}
	require.Equal(t, DefaultChildAgeLimit, unset.EffectiveChildAgeLimit())

	configured := Room{ChildAgeLimit: 16}
	require.Equal(t, 16, configured.EffectiveChildAgeLimit())
}
