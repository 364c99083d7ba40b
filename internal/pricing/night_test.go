package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/pkg/ptr"
)

func TestPriceForNightPerUnitIgnoresGuests(t *testing.T) {
	t.Parallel()

	room := perUnitRoom(1000)

	compositions := []GuestClassification{
		{PayingAdults: 1},
		{PayingAdults: 4},
		{PayingAdults: 2, PayingChildren: 2},
		{PayingAdults: 2, FreeChildren: 3},
	}
	for _, cls := range compositions {
		require.Equal(t, 1000.0, PriceForNight(room, 1000, cls), "composition %+v", cls)
	}
}

func TestPriceForNightPerPersonChargesEveryPayingGuest(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)
	room.ChildPricePerNight = ptr.Ptr(300.0)

	cls := GuestClassification{PayingAdults: 2, PayingChildren: 2, FreeChildren: 1}

	// 2 adults at 500 plus 2 children at 300, the free child adds nothing.
	require.Equal(t, 1600.0, PriceForNight(room, 500, cls))
}

func TestPriceForNightPerPersonChildrenDefaultToAdultRate(t *testing.T) {
	t.Parallel()

	room := perPersonRoom(500)
	room.ChildPricePerNight = nil

	cls := GuestClassification{PayingAdults: 1, PayingChildren: 2}

	require.Equal(t, 1500.0, PriceForNight(room, 500, cls))
}

func TestPriceForNightSharingAdditivity(t *testing.T) {
	t.Parallel()

	room := sharingRoom(800, 200)

	for adults := 1; adults <= 4; adults++ {
		want := 800 + 200*float64(adults-1)
		cls := GuestClassification{PayingAdults: adults}
		t.Run(fmt.Sprintf("%d adults", adults), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, want, PriceForNight(room, 800, cls))
		})
	}
}

func TestPriceForNightSharingChildrenDefaultToAdditionalRate(t *testing.T) {
	t.Parallel()

	room := sharingRoom(800, 200)

	cls := GuestClassification{PayingAdults: 1, PayingChildren: 2, FreeChildren: 1}

	// First adult covered by the nightly rate, children pay the
	// additional-person rate when no child price is configured.
	require.Equal(t, 1200.0, PriceForNight(room, 800, cls))
}

func TestPriceForNightSharingWithChildPrice(t *testing.T) {
	t.Parallel()

	room := sharingRoom(800, 200)
	room.ChildPricePerNight = ptr.Ptr(100.0)

	cls := GuestClassification{PayingAdults: 2, PayingChildren: 1}

	require.Equal(t, 1100.0, PriceForNight(room, 800, cls))
}

func TestPriceForNightSharingMissingAdditionalRate(t *testing.T) {
	t.Parallel()

	room := sharingRoom(800, 200)
	room.AdditionalPersonRate = nil

	cls := GuestClassification{PayingAdults: 3, PayingChildren: 1}

	// Degraded configuration: extras and children charge nothing rather
	// than panicking on the missing rate.
	require.Equal(t, 800.0, PriceForNight(room, 800, cls))
}

func TestPriceForNightSharingNoPayingAdults(t *testing.T) {
	t.Parallel()

	room := sharingRoom(800, 200)

	cls := GuestClassification{PayingAdults: 0, FreeChildren: 2}

	require.Equal(t, 800.0, PriceForNight(room, 800, cls))
}

func TestPriceForNightFreeChildrenContributeNothing(t *testing.T) {
	t.Parallel()

	rooms := map[string]func() *domain.Room{
		"per_unit":           func() *domain.Room { return perUnitRoom(600) },
		"per_person":         func() *domain.Room { return perPersonRoom(600) },
		"per_person_sharing": func() *domain.Room { return sharingRoom(600, 150) },
	}

	for name, build := range rooms {
		build := build
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			room := build()

			without := PriceForNight(room, 600, GuestClassification{PayingAdults: 2})
			with := PriceForNight(room, 600, GuestClassification{PayingAdults: 2, FreeChildren: 3})

			require.Equal(t, without, with)
		})
	}
}
