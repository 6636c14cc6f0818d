package engine

import "time"

// Clock supplies wall time for frame-rate accounting
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time with monotonic clock readings
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}
