// Package clock supplies the time used to stamp stored characters
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/pathfinder-stats/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// UTC reads the system clock, normalized to UTC and truncated to
// microseconds so stamps survive a JSON round trip unchanged
type UTC struct{}

// Now returns the current time
func (UTC) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// New returns the system clock
func New() Clock {
	return UTC{}
}
