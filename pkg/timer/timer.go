// Package timer is a lightweight instrumentation primitive for ad-hoc
// performance diagnostics: an in-process event timer that records a
// series of named monotonic timestamps and reports the elapsed time
// between consecutive events and since initialization, in
// human-readable units. It is not a profiler, a metrics aggregator, or
// a tracer.
package timer

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Timer holds one measurement series: an append-only log of labeled,
// monotonically stamped events. Initialize records the reference event
// that anchors "since start"; Add and AddAuto append further events;
// PrintCurrent and Log report intervals.
//
// Appends are serialized by an internal guard, so goroutines may call
// Add concurrently. The read-only queries take no lock by contract:
// call them only after concurrent appending has finished, for example
// at the end of a parallel phase.
type Timer[L Label] struct {
	stamps []Timestamp[L]

	// next value for auto-labeled events
	id int

	// goroutine ids in discovery order; position is the display index
	goroutines []uint64

	guard    locker
	checks   checker
	out      io.Writer
	annotate bool
}

// New creates an empty series. The default configuration locks appends,
// performs no usage checks, and prints to os.Stdout.
func New[L Label](opts ...Option) *Timer[L] {
	cfg := config{out: os.Stdout, lock: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Timer[L]{out: cfg.out, annotate: cfg.lock}
	if cfg.lock {
		t.guard = &sync.Mutex{}
	} else {
		t.guard = noopLocker{}
	}
	if cfg.strict {
		t.checks = &strictChecker{}
	} else {
		t.checks = noopChecker{}
	}
	return t
}

// Reset clears the series back to empty so Initialize can start a new
// session. Initialize resets on its own when records exist, so calling
// Reset first is never required.
func (t *Timer[L]) Reset() {
	t.guard.Lock()
	defer t.guard.Unlock()
	t.resetLocked()
}

func (t *Timer[L]) resetLocked() {
	t.checks.reset()
	t.stamps = t.stamps[:0]
	t.id = 0
	t.goroutines = t.goroutines[:0]
}

// Initialize records the reference event whose timestamp anchors every
// "since start" value. A series that already holds records is reset
// first, so re-initializing always starts a fresh session. Must be
// called before any Add.
func (t *Timer[L]) Initialize() {
	t.guard.Lock()
	defer t.guard.Unlock()
	if len(t.stamps) > 0 {
		t.resetLocked()
	}
	t.checks.markInitialized()
	t.appendLocked(autoLabel[L](t.id))
	t.id++
}

// Add appends one named event. The series must be initialized; in the
// strict configuration calling Add first returns ErrNotInitialized.
func (t *Timer[L]) Add(label L) error {
	t.guard.Lock()
	defer t.guard.Unlock()
	if err := t.checks.checkInitialized(); err != nil {
		return err
	}
	t.appendLocked(label)
	return nil
}

// AddAuto appends an auto-numbered event: integral label types get the
// counter value itself, string types its decimal form, yielding
// 0, 1, 2, ... across a session no matter how many named Adds are
// interleaved.
func (t *Timer[L]) AddAuto() error {
	t.guard.Lock()
	defer t.guard.Unlock()
	if err := t.checks.checkInitialized(); err != nil {
		return err
	}
	t.appendLocked(autoLabel[L](t.id))
	t.id++
	return nil
}

// appendLocked captures and inserts one record. Caller holds the guard,
// so capture order equals insertion order and stamps are non-decreasing.
func (t *Timer[L]) appendLocked(label L) {
	t.checks.markEvent()
	var gid uint64
	if t.annotate {
		gid = goroutineID()
		t.observeGoroutine(gid)
	}
	t.stamps = append(t.stamps, newTimestamp(label, gid))
}

// observeGoroutine records gid in discovery order. Caller holds the
// guard. Linear scan: the set of distinct recording goroutines is
// expected to stay tiny.
func (t *Timer[L]) observeGoroutine(gid uint64) {
	for _, known := range t.goroutines {
		if known == gid {
			return
		}
	}
	t.goroutines = append(t.goroutines, gid)
}

// Len returns the number of records, reference event included.
func (t *Timer[L]) Len() int { return len(t.stamps) }

// SinceStart returns the elapsed time from the reference event to the
// record at index i.
func (t *Timer[L]) SinceStart(i int) time.Duration {
	return Diff(t.stamps[0], t.stamps[i])
}

// SinceLast returns the elapsed time from record i-1 to record i.
func (t *Timer[L]) SinceLast(i int) time.Duration {
	return Diff(t.stamps[i-1], t.stamps[i])
}

// GoroutineIndex returns the discovery-order index of gid among the
// goroutines that have appended to this series, or -1 if it never has.
// Indices are stable within a session but are an artifact of discovery
// order and differ across runs. Not meaningful while appends are still
// in flight.
func (t *Timer[L]) GoroutineIndex(gid uint64) int {
	for i, known := range t.goroutines {
		if known == gid {
			return i
		}
	}
	return -1
}

// annotated reports whether output lines carry a goroutine clause:
// only once more than one goroutine has appended.
func (t *Timer[L]) annotated() bool { return len(t.goroutines) > 1 }

func (t *Timer[L]) goroutineClause(ts Timestamp[L]) string {
	if !t.annotated() {
		return ""
	}
	return fmt.Sprintf(" in goroutine : %d", t.GoroutineIndex(ts.Goroutine))
}

// PrintCurrent writes one line describing the most recent event: its
// label, the interval since the previous event, and the total since
// the reference event. In the strict configuration it returns
// ErrNoMeasurements when only the reference event exists.
func (t *Timer[L]) PrintCurrent() error {
	if err := t.checks.checkLoggable(); err != nil {
		return err
	}
	i := len(t.stamps) - 1
	fmt.Fprintf(t.out, "Timer : %v after %s at %s%s\n",
		t.stamps[i].Label,
		FormatDuration(t.SinceLast(i)),
		FormatDuration(t.SinceStart(i)),
		t.goroutineClause(t.stamps[i]))
	return nil
}

// Log writes a header line followed by one line per event after the
// reference event, in append order, in the same shape as PrintCurrent.
// Like every query it takes no lock: call it after appending has
// quiesced.
func (t *Timer[L]) Log() {
	fmt.Fprintf(t.out, "Timer :\n")
	for i := 1; i < len(t.stamps); i++ {
		fmt.Fprintf(t.out, "\t%v after %s at %s%s\n",
			t.stamps[i].Label,
			FormatDuration(t.SinceLast(i)),
			FormatDuration(t.SinceStart(i)),
			t.goroutineClause(t.stamps[i]))
	}
}
