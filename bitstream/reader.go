package bitstream

import (
	"errors"
	"io"

	"github.com/icza/bitio"

	"github.com/spacemeshos/bitfifo"
	"github.com/spacemeshos/bitfifo/shared"
)

// ReadFrom reads numBits bits from r and pushes them into f.
// A numBits of 0 reads until r is exhausted.
//
// It returns the number of bits pushed. A bounded read that runs out of
// input returns io.ErrUnexpectedEOF.
func ReadFrom(r io.Reader, f *bitfifo.Fifo, numBits uint) (uint, error) {
	br := bitio.NewReader(r)

	var read uint
	for numBits == 0 || read < numBits {
		chunk := uint(8)
		if numBits > 0 {
			chunk = shared.Min(shared.SafeSub(numBits, read), 8)
		}

		bits, err := br.ReadBits(uint8(chunk))
		if errors.Is(err, io.EOF) {
			if numBits == 0 {
				return read, nil
			}
			return read, io.ErrUnexpectedEOF
		}
		if err != nil {
			return read, err
		}

		f.PushUint(uint(bits), chunk)
		read += chunk
	}

	return read, nil
}
