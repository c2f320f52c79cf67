package timer

import "errors"

// Usage errors reported by the strict configuration (WithStrictChecks).
// The production configuration performs none of these checks; misuse
// there is undefined behavior, not a recoverable error.
var (
	// ErrNotInitialized reports Add or AddAuto called before Initialize.
	ErrNotInitialized = errors.New("timer: add called before initialize")

	// ErrNoMeasurements reports a query on a series holding only the
	// reference event.
	ErrNoMeasurements = errors.New("timer: no measurements recorded after the reference event")
)
