// Package bitstream moves the content of a bitfifo.Fifo to and from byte
// streams, following the MSB pattern: the earliest bit of the fifo is the
// most-significant bit of the first byte.
package bitstream

import (
	"bytes"

	"github.com/spacemeshos/bitfifo"
)

// Bit is the value used to pad the last byte of a stream.
type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// Encode drains f into a byte slice, padding the last byte with pad.
func Encode(f *bitfifo.Fifo, pad Bit) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if _, err := WriteTo(buf, f, pad); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode pushes numBits bits of data into f. A numBits of 0 pushes all of data.
func Decode(data []byte, f *bitfifo.Fifo, numBits uint) error {
	_, err := ReadFrom(bytes.NewReader(data), f, numBits)
	return err
}

// NumBytes returns the number of bytes needed to hold numBits bits.
func NumBytes(numBits uint) uint {
	return (numBits + 7) / 8
}
