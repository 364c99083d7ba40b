package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a persisted stay reservation with its verified totals.
// Room and addon prices are snapshotted at creation time so later pricing
// changes never rewrite history.
type Booking struct {
	ID         int64
	TenantID   int64
	PropertyID int64
	UserID     int64
	GuestEmail string

	CheckIn  time.Time
	CheckOut time.Time
	Status   BookingStatus

	RoomsSubtotal  float64
	AddonsSubtotal float64
	DiscountAmount float64
	GrandTotal     float64
	Currency       string

	Notes *string

	Rooms  []BookingRoom
	Addons []BookingAddon

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NightCount returns the number of nights between check-in and check-out
func (b *Booking) NightCount() int {
	n := int(DateOnly(b.CheckOut).Sub(DateOnly(b.CheckIn)).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	for _, status := range ActiveStatuses {
		if b.Status == status {
			return true
		}
	}
	return false
}

// GuestCount returns the total guest count across all booked rooms
func (b *Booking) GuestCount() int {
	total := 0
	for _, room := range b.Rooms {
		total += room.Adults + room.Children
	}
	return total
}

// BookingRoom is one booked room with its guest composition and priced total
type BookingRoom struct {
	ID        int64
	BookingID int64
	RoomID    int64

	// Denormalized data for history
	RoomName string

	Adults       int
	Children     int
	ChildrenAges []int64 // ages at booking time

	Subtotal      float64
	AdjustedTotal *float64 // manual/coupon override of the computed subtotal
}

// Total returns the amount this room contributes to the booking
func (br *BookingRoom) Total() float64 {
	if br.AdjustedTotal != nil {
		return *br.AdjustedTotal
	}
	return br.Subtotal
}

// BookingAddon is one selected addon with its charge snapshot
type BookingAddon struct {
	ID        int64
	BookingID int64
	AddonID   int64

	// Denormalized data for history
	Name        string
	PricingType AddonPricingType
	UnitPrice   float64

	Quantity int
	Charge   float64
}
