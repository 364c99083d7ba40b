package pricing

// RoomCharge is one room's contribution to a checkout total. AdjustedTotal,
// when set, overrides the computed subtotal (coupon or manual adjustment).
type RoomCharge struct {
	Subtotal      float64
	AdjustedTotal *float64
}

// Amount returns the effective charge for the room
func (c RoomCharge) Amount() float64 {
	if c.AdjustedTotal != nil {
		return *c.AdjustedTotal
	}
	return c.Subtotal
}

// Totals is the money summary of a checkout
type Totals struct {
	RoomsSubtotal  float64
	AddonsSubtotal float64
	GrandTotal     float64
}

// Totalize combines room charges, addon charges and a discount into checkout
// totals. It is a full re-derivation from its inputs, so recomputing with
// unchanged inputs returns the same totals. The grand total never goes below
// zero, however large the discount.
func Totalize(roomCharges []RoomCharge, addonCharges []float64, discount float64) Totals {
	var totals Totals

	for _, charge := range roomCharges {
		totals.RoomsSubtotal += charge.Amount()
	}
	for _, charge := range addonCharges {
		totals.AddonsSubtotal += charge
	}

	grand := totals.RoomsSubtotal + totals.AddonsSubtotal - discount
	if grand < 0 {
		grand = 0
	}
	totals.GrandTotal = grand

	return totals
}
