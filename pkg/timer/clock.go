package timer

import "time"

// processEpoch anchors every clock reading taken by this package. All
// readings share one monotonic timeline for the life of the process.
var processEpoch = time.Now()

// nowNanos returns the current monotonic clock reading in nanoseconds.
// time.Since subtracts on the monotonic component of processEpoch, so
// readings never go backward even across wall-clock adjustments.
func nowNanos() int64 {
	return time.Since(processEpoch).Nanoseconds()
}
