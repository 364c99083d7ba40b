package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/pkg/ptr"
)

func TestTotalizeSumsRoomsAndAddons(t *testing.T) {
	t.Parallel()

	rooms := []RoomCharge{
		{Subtotal: 3000},
		{Subtotal: 1800},
	}
	addons := []float64{240, 60}

	got := Totalize(rooms, addons, 0)

	require.Equal(t, 4800.0, got.RoomsSubtotal)
	require.Equal(t, 300.0, got.AddonsSubtotal)
	require.Equal(t, 5100.0, got.GrandTotal)
}

func TestTotalizeAdjustedTotalOverridesSubtotal(t *testing.T) {
	t.Parallel()

	rooms := []RoomCharge{
		{Subtotal: 3000, AdjustedTotal: ptr.Ptr(2500.0)},
		{Subtotal: 1000},
	}

	got := Totalize(rooms, nil, 0)

	require.Equal(t, 3500.0, got.RoomsSubtotal)
	require.Equal(t, 3500.0, got.GrandTotal)
}

func TestTotalizeAppliesDiscount(t *testing.T) {
	t.Parallel()

	got := Totalize([]RoomCharge{{Subtotal: 2000}}, []float64{300}, 500)

	require.Equal(t, 1800.0, got.GrandTotal)
}

func TestTotalizeGrandTotalNeverNegative(t *testing.T) {
	t.Parallel()

	got := Totalize([]RoomCharge{{Subtotal: 2000}}, []float64{300}, 5000)

	require.Equal(t, 2000.0, got.RoomsSubtotal)
	require.Equal(t, 300.0, got.AddonsSubtotal)
	require.Zero(t, got.GrandTotal)
}

func TestTotalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	rooms := []RoomCharge{{Subtotal: 1200, AdjustedTotal: ptr.Ptr(1100.0)}}
	addons := []float64{75}

	first := Totalize(rooms, addons, 150)
	second := Totalize(rooms, addons, 150)

	require.Equal(t, first, second)
}

func TestTotalizeEmptyInputs(t *testing.T) {
	t.Parallel()

	got := Totalize(nil, nil, 0)

	require.Zero(t, got.RoomsSubtotal)
	require.Zero(t, got.AddonsSubtotal)
	require.Zero(t, got.GrandTotal)
}
