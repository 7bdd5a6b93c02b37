package clocks

import "time"

// Clock is the only source of "now" for the schedulers
type Clock interface {
	Now() time.Time
}

type Real struct{}

var _ Clock = Real{}

func (Real) Now() time.Time {
	return time.Now()
}

// IsPast reports whether t is set and not after now
func IsPast(clock Clock, t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.After(clock.Now())
}

// IsOlderThan reports whether t lies at least d before now
func IsOlderThan(clock Clock, t time.Time, d time.Duration) bool {
	return clock.Now().Sub(t) >= d
}

// FromNow is the deadline d after now
func FromNow(clock Clock, d time.Duration) time.Time {
	return clock.Now().Add(d)
}
