package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/pkg/ptr"
)

func TestClassifyGuestsSplitsChildrenByAge(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)
	room.ChildFreeUntilAge = ptr.Ptr(5)
	room.ChildAgeLimit = 12

	// Ages 3 => free, 8 => paying child, 14 => billed as adult.
	got := ClassifyGuests(room, 2, 3, []int{3, 8, 14})

	require.Equal(t, 3, got.PayingAdults)
	require.Equal(t, 1, got.PayingChildren)
	require.Equal(t, 1, got.FreeChildren)
	require.Equal(t, 1, got.ChildrenCountedAsAdults)
	require.Equal(t, 5, got.TotalGuests())
}

func TestClassifyGuestsNoFreeTier(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)
	room.ChildFreeUntilAge = nil

	got := ClassifyGuests(room, 1, 2, []int{2, 9})

	require.Equal(t, 1, got.PayingAdults)
	require.Equal(t, 2, got.PayingChildren)
	require.Zero(t, got.FreeChildren)
}

func TestClassifyGuestsAgeMismatchDegradesToPayingChildren(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)
	room.ChildFreeUntilAge = ptr.Ptr(5)

	// Two children declared but only one age supplied: without per-child data
	// nobody is reclassified, every child pays.
	got := ClassifyGuests(room, 2, 2, []int{3})

	require.Equal(t, 2, got.PayingAdults)
	require.Equal(t, 2, got.PayingChildren)
	require.Zero(t, got.FreeChildren)
	require.Zero(t, got.ChildrenCountedAsAdults)
}

func TestClassifyGuestsDefaultAgeLimit(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)
	room.ChildAgeLimit = 0 // unset configuration falls back to the default

	got := ClassifyGuests(room, 1, 2, []int{11, 12})

	require.Equal(t, 2, got.PayingAdults, "a 12-year-old is billed as an adult by default")
	require.Equal(t, 1, got.PayingChildren)
	require.Equal(t, 1, got.ChildrenCountedAsAdults)
}

func TestClassifyGuestsClampsNegativeCounts(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)

	got := ClassifyGuests(room, -3, -1, nil)

	require.Zero(t, got.PayingAdults)
	require.Zero(t, got.PayingChildren)
	require.Zero(t, got.TotalGuests())
}
