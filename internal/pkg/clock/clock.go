// Package clock abstracts the time source so business code never calls
// time.Now directly and tests can pin the clock.
package clock

import "time"

// Clocker is the time source dependency injected across the application.
type Clocker interface {
	Now() time.Time
}

// SystemClock reads the real system time.
type SystemClock struct{}

// New returns the production clock.
func New() *SystemClock {
	return &SystemClock{}
}

func (*SystemClock) Now() time.Time {
	return time.Now()
}
