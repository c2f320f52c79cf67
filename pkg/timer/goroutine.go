package timer

import (
	"bytes"
	"runtime"
	"strconv"
)

var goroutinePrefix = []byte("goroutine ")

// goroutineID extracts the numeric id of the calling goroutine from
// the runtime stack header ("goroutine 42 [running]:"). The runtime
// exposes no direct accessor; the id is treated as opaque, since only
// equality and set membership are ever needed.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	i := bytes.IndexByte(header, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(header[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
