package timer

import "strconv"

// Label constrains the event label types a Timer can carry. The set is
// closed so that auto-numbering can dispatch on the concrete type:
// integral labels receive the counter value itself, string labels its
// decimal form.
type Label interface {
	int | int64 | string
}

// autoLabel produces the label for an unnamed event from the series
// counter.
func autoLabel[L Label](id int) L {
	var v any
	switch any(*new(L)).(type) {
	case int:
		v = id
	case int64:
		v = int64(id)
	case string:
		v = strconv.Itoa(id)
	}
	return v.(L)
}
