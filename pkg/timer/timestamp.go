package timer

import "time"

// Timestamp is one immutable capture in a measurement series: an event
// label, a monotonic clock reading, and the identity of the goroutine
// that recorded it. The clock is read at construction; callers never
// supply it. Goroutine is zero when the owning Timer runs without
// locking.
type Timestamp[L Label] struct {
	Label     L
	Nanos     int64
	Goroutine uint64
}

func newTimestamp[L Label](label L, gid uint64) Timestamp[L] {
	return Timestamp[L]{Label: label, Nanos: nowNanos(), Goroutine: gid}
}

// Diff returns the elapsed time between two captures. The caller must
// pass a first that was recorded at or before last in the same series;
// ordering is guaranteed by the append discipline and not re-checked
// here.
func Diff[L Label](first, last Timestamp[L]) time.Duration {
	return time.Duration(last.Nanos - first.Nanos)
}
