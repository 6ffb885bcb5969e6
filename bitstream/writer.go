package bitstream

import (
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/spacemeshos/bitfifo"
	"github.com/spacemeshos/bitfifo/shared"
)

// WriteTo drains every bit of f into w. If the bit count is not a multiple
// of 8, the last byte is filled with pad. It returns the number of bytes
// written.
func WriteTo(w io.Writer, f *bitfifo.Fifo, pad Bit) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bitio.NewWriter(cw)

	total := f.Count()
	for f.Count() > 0 {
		bits, n := f.PopUint(shared.Min(f.Count(), bitfifo.WordBits))
		if err := bw.WriteBits(uint64(bits), uint8(n)); err != nil {
			return cw.n, fmt.Errorf("write bits: %w", err)
		}
	}

	// Fill the pending byte with the pad bit.
	for i := total % 8; i > 0 && i < 8; i++ {
		if err := bw.WriteBool(bool(pad)); err != nil {
			return cw.n, fmt.Errorf("write padding: %w", err)
		}
	}

	if err := bw.Close(); err != nil {
		return cw.n, fmt.Errorf("flush: %w", err)
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
