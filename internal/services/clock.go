package services

import "time"

// Timestamp layouts used for every stored date. Local time, microsecond precision.
const (
	TimestampLayout = "2006-01-02T15:04:05.000000"
	DateLayout      = "2006-01-02"
)

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// SystemClock reads the wall clock in local time.
func SystemClock() time.Time { return time.Now() }

// Timestamp formats the clock's current time as a stored timestamp.
func (c Clock) Timestamp() string {
	return c().Format(TimestampLayout)
}

// Today formats the clock's current date.
func (c Clock) Today() string {
	return c().Format(DateLayout)
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
