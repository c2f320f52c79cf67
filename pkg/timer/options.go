package timer

import "io"

// locker guards the append path. The concurrent variant is a plain
// sync.Mutex; the single-goroutine variant is a no-op that trades
// safety for zero overhead.
type locker interface {
	Lock()
	Unlock()
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}

// checker tracks usage state in the strict configuration. The
// production variant does nothing and always passes.
type checker interface {
	reset()
	markInitialized()
	markEvent()
	checkInitialized() error
	checkLoggable() error
}

type noopChecker struct{}

func (noopChecker) reset()                  {}
func (noopChecker) markInitialized()        {}
func (noopChecker) markEvent()              {}
func (noopChecker) checkInitialized() error { return nil }
func (noopChecker) checkLoggable() error    { return nil }

// strictChecker validates call ordering and reports the usage errors
// from errors.go. State mutations happen on the append path, under the
// series guard.
type strictChecker struct {
	initialized bool
	events      int
}

func (c *strictChecker) reset() {
	c.initialized = false
	c.events = 0
}

func (c *strictChecker) markInitialized() { c.initialized = true }

func (c *strictChecker) markEvent() { c.events++ }

func (c *strictChecker) checkInitialized() error {
	if !c.initialized {
		return ErrNotInitialized
	}
	return nil
}

func (c *strictChecker) checkLoggable() error {
	// The first event is the reference event, not a measurement.
	if c.events <= 1 {
		return ErrNoMeasurements
	}
	return nil
}

type config struct {
	out    io.Writer
	lock   bool
	strict bool
}

// Option configures a Timer at construction. Both the locking and the
// checking behavior are resolved once here; there is no runtime
// switching.
type Option func(*config)

// WithOutput directs measurement output to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithoutLocking removes the append guard and with it the goroutine
// annotations. Only safe when a single goroutine ever touches the
// timer.
func WithoutLocking() Option {
	return func(c *config) { c.lock = false }
}

// WithStrictChecks makes operations validate their preconditions and
// return the errors from errors.go instead of assuming correct usage.
func WithStrictChecks() Option {
	return func(c *config) { c.strict = true }
}
