package domain

import "time"

// SeasonalRate overrides a room's nightly price over an inclusive date range.
// Ranges of different rates may overlap; the resolver picks at most one per
// night (highest Priority, then lowest ID).
type SeasonalRate struct {
	ID            int64
	RoomID        int64
	Name          string
	StartDate     time.Time // inclusive
	EndDate       time.Time // inclusive
	PricePerNight float64
	Priority      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers returns true if the rate's inclusive range contains the given night.
// Comparison is at calendar-day granularity, time of day is ignored.
func (s *SeasonalRate) Covers(night time.Time) bool {
	d := DateOnly(night)
	return !d.Before(DateOnly(s.StartDate)) && !d.After(DateOnly(s.EndDate))
}

// OverlapsRange returns true if the rate's range shares at least one day
// with the inclusive range [start, end]
func (s *SeasonalRate) OverlapsRange(start, end time.Time) bool {
	return !DateOnly(s.EndDate).Before(DateOnly(start)) &&
		!DateOnly(s.StartDate).After(DateOnly(end))
}

// DateOnly truncates a timestamp to its calendar date in UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
