package steplog

import "time"

// Clock supplies the instants timers are measured against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. Readings carry a monotonic component,
// so elapsed intervals never go negative.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
