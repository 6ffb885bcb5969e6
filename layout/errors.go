package layout

import "fmt"

// RangeError is returned when a value does not fit the width of its field.
type RangeError struct {
	Field string
	Value uint64
	Width uint
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("field `%v`: value %d does not fit in %d bit(s)", err.Field, err.Value, err.Width)
}
