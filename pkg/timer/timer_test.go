package timer

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCount(t *testing.T) {
	tm := New[int](WithOutput(io.Discard))
	tm.Initialize()
	for i := 0; i < 5; i++ {
		require.NoError(t, tm.Add(i))
	}
	require.Equal(t, 6, tm.Len(), "reference event plus one record per Add")
}

func TestElapsedAdditivity(t *testing.T) {
	tm := New[int](WithOutput(io.Discard))
	tm.Initialize()
	for i := 0; i < 10; i++ {
		require.NoError(t, tm.AddAuto())
	}
	for i := 1; i < tm.Len(); i++ {
		require.GreaterOrEqual(t, tm.SinceLast(i), time.Duration(0))
		require.GreaterOrEqual(t, tm.SinceStart(i), time.Duration(0))
		require.Equal(t, tm.SinceStart(i-1)+tm.SinceLast(i), tm.SinceStart(i))
	}
}

func TestAutoLabelSequenceInt(t *testing.T) {
	tm := New[int](WithOutput(io.Discard))
	tm.Initialize() // reference event takes auto label 0
	require.NoError(t, tm.AddAuto())
	require.NoError(t, tm.Add(99))
	require.NoError(t, tm.AddAuto())
	require.NoError(t, tm.Add(-1))
	require.NoError(t, tm.AddAuto())

	labels := make([]int, tm.Len())
	for i, ts := range tm.stamps {
		labels[i] = ts.Label
	}
	require.Equal(t, []int{0, 1, 99, 2, -1, 3}, labels,
		"named adds must not advance the auto counter")
}

func TestAutoLabelSequenceString(t *testing.T) {
	tm := New[string](WithOutput(io.Discard))
	tm.Initialize()
	require.NoError(t, tm.AddAuto())
	require.NoError(t, tm.Add("named"))
	require.NoError(t, tm.AddAuto())

	labels := make([]string, tm.Len())
	for i, ts := range tm.stamps {
		labels[i] = ts.Label
	}
	require.Equal(t, []string{"0", "1", "named", "2"}, labels)
}

func TestStrictAddBeforeInitialize(t *testing.T) {
	tm := New[string](WithStrictChecks(), WithOutput(io.Discard))
	require.ErrorIs(t, tm.Add("early"), ErrNotInitialized)
	require.ErrorIs(t, tm.AddAuto(), ErrNotInitialized)

	tm.Initialize()
	require.NoError(t, tm.Add("on time"))
}

func TestStrictPrintCurrentWithoutMeasurements(t *testing.T) {
	tm := New[string](WithStrictChecks(), WithOutput(io.Discard))
	tm.Initialize()
	require.ErrorIs(t, tm.PrintCurrent(), ErrNoMeasurements)

	require.NoError(t, tm.Add("one"))
	require.NoError(t, tm.PrintCurrent())
}

func TestProductionConfigurationSkipsChecks(t *testing.T) {
	tm := New[string](WithOutput(io.Discard))
	// Undefined usage, but the production configuration never reports it.
	require.NoError(t, tm.Add("before initialize"))
}

func TestInitializeResetsExistingSession(t *testing.T) {
	tm := New[int](WithOutput(io.Discard))
	tm.Initialize()
	require.NoError(t, tm.AddAuto())
	require.NoError(t, tm.AddAuto())
	require.Equal(t, 3, tm.Len())

	tm.Initialize()
	require.Equal(t, 1, tm.Len())
	require.Equal(t, 0, tm.stamps[0].Label, "auto counter restarts with the session")
}

func TestResetThenReuse(t *testing.T) {
	tm := New[string](WithStrictChecks(), WithOutput(io.Discard))
	tm.Initialize()
	require.NoError(t, tm.Add("a"))

	tm.Reset()
	require.Equal(t, 0, tm.Len())
	require.ErrorIs(t, tm.Add("too early"), ErrNotInitialized)

	tm.Initialize()
	require.NoError(t, tm.Add("b"))
	require.Equal(t, 2, tm.Len())
}

func TestPrintCurrentFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	tm := New[string](WithOutput(buf))
	tm.Initialize()
	require.NoError(t, tm.Add("phase"))
	require.NoError(t, tm.PrintCurrent())

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "Timer : phase after "), "got %q", line)
	assert.Contains(t, line, " at ")
	assert.NotContains(t, line, "goroutine", "single recording goroutine must not be annotated")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestLogIdempotent(t *testing.T) {
	buf := &bytes.Buffer{}
	tm := New[string](WithOutput(buf))
	tm.Initialize()
	require.NoError(t, tm.Add("a"))
	require.NoError(t, tm.Add("b"))

	tm.Log()
	first := buf.String()
	buf.Reset()
	tm.Log()
	require.Equal(t, first, buf.String())

	require.True(t, strings.HasPrefix(first, "Timer :\n"))
	require.Equal(t, 3, strings.Count(first, "\n"), "header plus one line per event")
}

func TestLogOnlyReferenceEvent(t *testing.T) {
	buf := &bytes.Buffer{}
	tm := New[int](WithOutput(buf))
	tm.Initialize()
	tm.Log()
	require.Equal(t, "Timer :\n", buf.String())
}

func TestSleepScenario(t *testing.T) {
	buf := &bytes.Buffer{}
	tm := New[string](WithOutput(buf))
	tm.Initialize()
	time.Sleep(150 * time.Millisecond)
	require.NoError(t, tm.Add("First"))
	require.NoError(t, tm.PrintCurrent())
	require.NoError(t, tm.Add("Second"))

	require.GreaterOrEqual(t, tm.SinceLast(1), 150*time.Millisecond)
	require.Less(t, tm.SinceLast(2), 50*time.Millisecond, "back-to-back add")
	require.GreaterOrEqual(t, tm.SinceStart(2), 150*time.Millisecond)
	// 150ms falls in the seconds tier of the formatter
	require.Contains(t, buf.String(), "s at ")
}

func TestWithoutLockingOmitsGoroutines(t *testing.T) {
	buf := &bytes.Buffer{}
	tm := New[string](WithOutput(buf), WithoutLocking())
	tm.Initialize()
	require.NoError(t, tm.Add("solo"))
	require.NoError(t, tm.PrintCurrent())

	require.NotContains(t, buf.String(), "goroutine")
	require.Equal(t, uint64(0), tm.stamps[1].Goroutine)
}

func TestConcurrentAddLinearizes(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 50

	tm := New[int](WithOutput(io.Discard))
	tm.Initialize()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				_ = tm.Add(g)
			}
		}(g)
	}
	wg.Wait()

	require.Equal(t, 1+goroutines*perGoroutine, tm.Len())
	for i := 1; i < tm.Len(); i++ {
		require.LessOrEqual(t, tm.stamps[i-1].Nanos, tm.stamps[i].Nanos,
			"capture order must match insertion order")
		require.NotEqual(t, -1, tm.GoroutineIndex(tm.stamps[i].Goroutine))
	}
	// the initializing goroutine plus at most one entry per worker
	require.LessOrEqual(t, len(tm.goroutines), goroutines+1)
}

func TestGoroutineClauseAppearsWithSecondGoroutine(t *testing.T) {
	buf := &bytes.Buffer{}
	tm := New[string](WithOutput(buf))
	tm.Initialize()
	require.NoError(t, tm.Add("main"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = tm.Add("worker")
	}()
	<-done

	tm.Log()
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines[1:] {
		assert.Contains(t, line, " in goroutine : ")
	}
}

func TestGoroutineIndexStability(t *testing.T) {
	tm := New[int](WithOutput(io.Discard))
	tm.Initialize()
	main := goroutineID()
	require.Equal(t, 0, tm.GoroutineIndex(main))

	for i := 0; i < 3; i++ {
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = tm.AddAuto()
		}()
		<-done
		// discovering new goroutines never moves an assigned index
		require.Equal(t, 0, tm.GoroutineIndex(main))
	}
	require.Equal(t, -1, tm.GoroutineIndex(^uint64(0)))
}
