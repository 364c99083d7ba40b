package domain

// Default configuration values
const (
	// DefaultChildAgeLimit applies when a room's configuration leaves the
	// limit unset. Guests at or above this age are billed as adults.
	DefaultChildAgeLimit = 12
)

// Business validation constants
const (
	MinStayNights  = 1
	MaxStayNights  = 366 // leap year
	MaxGuestAge    = 17  // ages above this do not belong in childrenAges
	MaxNotesLength = 500
	MaxNameLength  = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов активных бронирований
// Только активные бронирования можно отменить
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
