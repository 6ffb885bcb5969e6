package bitfifo

import (
	"errors"
	"fmt"
)

// ErrInvalidBitPattern is returned when popped bits do not form a valid
// value of the requested type.
var ErrInvalidBitPattern = errors.New("invalid bit pattern")

// DecodeError reports the type and the offending pattern of a failed decode.
type DecodeError struct {
	Type    string
	Pattern BitBucket
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("decode %v: %v %v", err.Type, ErrInvalidBitPattern, err.Pattern)
}

func (err *DecodeError) Unwrap() error {
	return ErrInvalidBitPattern
}
