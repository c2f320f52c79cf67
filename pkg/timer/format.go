package timer

import (
	"strconv"
	"time"
)

// Tier boundaries, chosen so the printed magnitude stays roughly in
// [0.1, 100) of its unit.
const (
	secondFloor      = 100_000_000
	millisecondFloor = 100_000
	microsecondFloor = 100
)

// FormatDuration renders d in the most readable unit: at least 100ms
// prints seconds, at least 100µs prints milliseconds, at least 100ns
// prints microseconds, anything smaller prints nanoseconds. The value
// is printed in the shortest form that round-trips, with no fixed
// decimal places.
func FormatDuration(d time.Duration) string {
	ns := d.Nanoseconds()
	switch {
	case ns >= secondFloor:
		return formatFloat(float64(ns)/1e9) + "s"
	case ns >= millisecondFloor:
		return formatFloat(float64(ns)/1e6) + "ms"
	case ns >= microsecondFloor:
		return formatFloat(float64(ns)/1e3) + "µs"
	default:
		return formatFloat(float64(ns)) + "ns"
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
