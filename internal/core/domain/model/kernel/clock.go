package kernel

import "time"

// Clock is the time source for timestamps written into aggregates and for age calculations.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Used by tests and replays.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
