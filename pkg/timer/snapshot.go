package timer

import (
	"fmt"
	"time"
)

// Measurement is one row of a series snapshot: the derived values for
// a single event, decoupled from the generic label type so callers can
// render or marshal it.
type Measurement struct {
	Label      string        `json:"label" yaml:"label"`
	SinceLast  time.Duration `json:"since_last_ns" yaml:"since_last_ns"`
	SinceStart time.Duration `json:"since_start_ns" yaml:"since_start_ns"`
	// Goroutine is the discovery-order index of the recording
	// goroutine, or -1 when only one goroutine ever appended.
	Goroutine int `json:"goroutine" yaml:"goroutine"`
}

// Snapshot projects the series into one Measurement per event after
// the reference event, in append order. Same contract as Log: do not
// call while appends are in flight.
func (t *Timer[L]) Snapshot() []Measurement {
	if len(t.stamps) == 0 {
		return nil
	}
	rows := make([]Measurement, 0, len(t.stamps)-1)
	for i := 1; i < len(t.stamps); i++ {
		g := -1
		if t.annotated() {
			g = t.GoroutineIndex(t.stamps[i].Goroutine)
		}
		rows = append(rows, Measurement{
			Label:      fmt.Sprint(t.stamps[i].Label),
			SinceLast:  t.SinceLast(i),
			SinceStart: t.SinceStart(i),
			Goroutine:  g,
		})
	}
	return rows
}
