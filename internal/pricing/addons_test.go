package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/internal/domain"
)

func testAddon(pricingType domain.AddonPricingType, price float64) *domain.Addon {
	return &domain.Addon{
		ID:          1,
		PropertyID:  11,
		Name:        "Breakfast",
		Price:       price,
		PricingType: pricingType,
		MaxQuantity: 5,
		IsActive:    true,
	}
}

func TestAddonChargeBases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		addon      *domain.Addon
		quantity   int
		nightCount int
		guestCount int
		want       float64
	}{
		{
			name:       "per_booking",
			addon:      testAddon(domain.AddonPerBooking, 120),
			quantity:   2,
			nightCount: 3,
			guestCount: 4,
			want:       240,
		},
		{
			name:       "per_night",
			addon:      testAddon(domain.AddonPerNight, 25),
			quantity:   1,
			nightCount: 3,
			guestCount: 4,
			want:       75,
		},
		{
			name:       "per_guest",
			addon:      testAddon(domain.AddonPerGuest, 30),
			quantity:   1,
			nightCount: 3,
			guestCount: 4,
			want:       120,
		},
		{
			name:       "per_guest_per_night",
			addon:      testAddon(domain.AddonPerGuestPerNight, 50),
			quantity:   1,
			nightCount: 3,
			guestCount: 4,
			want:       600,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := AddonCharge(tc.addon, tc.quantity, tc.nightCount, tc.guestCount)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAddonChargePerBookingIndependentOfScope(t *testing.T) {
	t.Parallel()

	addon := testAddon(domain.AddonPerBooking, 99)

	base := AddonCharge(addon, 1, 1, 1)
	require.Equal(t, base, AddonCharge(addon, 1, 14, 1))
	require.Equal(t, base, AddonCharge(addon, 1, 1, 9))
	require.Equal(t, base, AddonCharge(addon, 1, 14, 9))
}

func TestAddonChargeZeroQuantity(t *testing.T) {
	t.Parallel()

	addon := testAddon(domain.AddonPerGuestPerNight, 50)

	require.Zero(t, AddonCharge(addon, 0, 3, 4))
	require.Zero(t, AddonCharge(addon, -2, 3, 4))
}

func TestAddonChargeNegativeScopeClamped(t *testing.T) {
	t.Parallel()

	addon := testAddon(domain.AddonPerGuestPerNight, 50)

	require.Zero(t, AddonCharge(addon, 1, -1, 4))
	require.Zero(t, AddonCharge(addon, 1, 3, -4))
}

func TestAddonChargeUnknownTypeChargesNothing(t *testing.T) {
	t.Parallel()

	addon := testAddon("per_hour", 50)

	require.Zero(t, AddonCharge(addon, 2, 3, 4))
}
