package matcher

import "time"

// Clock supplies the current local time for the time/date reply.
// A zero time means the clock is unavailable.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the local wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// TimestampLayout renders e.g. "Jan 05, 2025 14:30".
const TimestampLayout = "Jan 02, 2006 15:04"
