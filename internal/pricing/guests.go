package pricing

import "github.com/staysuite/pricing-service/internal/domain"

// GuestClassification splits a stay's guests into billing classes.
// PayingAdults already includes ChildrenCountedAsAdults.
type GuestClassification struct {
	PayingAdults            int
	PayingChildren          int
	FreeChildren            int
	ChildrenCountedAsAdults int
}

// TotalGuests returns the headcount across all classes
func (c GuestClassification) TotalGuests() int {
	return c.PayingAdults + c.PayingChildren + c.FreeChildren
}

// ClassifyGuests assigns each child to a billing class by age: free below the
// room's free tier, billed as an adult at or above the room's age limit,
// otherwise a paying child.
//
// When the ages list does not match the children count there is nothing to
// classify by, so every child is treated as a paying child. That is the safe
// degraded path, not an error.
func ClassifyGuests(room *domain.Room, adults, children int, childrenAges []int) GuestClassification {
	if adults < 0 {
		adults = 0
	}
	if children < 0 {
		children = 0
	}

	cls := GuestClassification{PayingAdults: adults}

	if len(childrenAges) != children {
		cls.PayingChildren = children
		return cls
	}

	ageLimit := room.EffectiveChildAgeLimit()
	for _, age := range childrenAges {
		switch {
		case room.HasFreeChildTier() && age < *room.ChildFreeUntilAge:
			cls.FreeChildren++
		case age >= ageLimit:
			cls.ChildrenCountedAsAdults++
		default:
			cls.PayingChildren++
		}
	}

	cls.PayingAdults += cls.ChildrenCountedAsAdults
	return cls
}
