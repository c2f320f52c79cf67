package timer

import (
	"fmt"
	"io"
	"os"
)

// Section times one block of code without a full measurement series.
// It records a start timestamp immediately; the returned finisher
// takes a second timestamp and prints
// "Code section : <name> took <duration>". Intended use:
//
//	defer timer.Section("rebuild index")()
func Section(name string) func() {
	return SectionTo(os.Stdout, name)
}

// SectionTo is Section with an explicit output writer.
func SectionTo(w io.Writer, name string) func() {
	start := newTimestamp(name, 0)
	return func() {
		end := newTimestamp("", 0)
		fmt.Fprintf(w, "Code section : %s took %s\n",
			name, FormatDuration(Diff(start, end)))
	}
}
