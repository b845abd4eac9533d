package util

import "time"

// Clock returns the current wall-clock time. Swapped out in tests.
type Clock func() time.Time

// SystemClock reads the host wall clock. Callers that know the user's zone convert with In.
func SystemClock() Clock {
	return time.Now
}
