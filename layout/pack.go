package layout

import (
	"fmt"

	"github.com/spacemeshos/bitfifo"
	"github.com/spacemeshos/bitfifo/bitstream"
)

// Value is a decoded field.
type Value struct {
	Field
	Value uint64
}

// Pack pushes one record into f. values are given in field order.
func (l *Layout) Pack(f *bitfifo.Fifo, values []uint64) error {
	if len(values) != len(l.Fields) {
		return fmt.Errorf("%w; expected: %d, given: %d", ErrValueCount, len(l.Fields), len(values))
	}

	items := make([]bitfifo.Pushable, len(values))
	for i, fd := range l.Fields {
		item, err := fd.item(values[i])
		if err != nil {
			return err
		}
		items[i] = item
	}

	// Push only once every value is known to fit, so a bad record leaves f untouched.
	for i, fd := range l.Fields {
		f.PushLimit(items[i], bitfifo.Bits(fd.BitCount()))
	}
	return nil
}

// Unpack pops one record from f.
func (l *Layout) Unpack(f *bitfifo.Fifo) ([]Value, error) {
	if f.Count() < l.BitCount() {
		return nil, fmt.Errorf("%w; expected: %d bits, available: %d", ErrShortRecord, l.BitCount(), f.Count())
	}

	values := make([]Value, 0, len(l.Fields))
	for _, fd := range l.Fields {
		v, err := fd.pop(f)
		if err != nil {
			return values, fmt.Errorf("field `%v`: %w", fd.Name, err)
		}
		values = append(values, Value{Field: fd, Value: v})
	}
	return values, nil
}

// PackRecords packs records back to back and returns the bytes, the last
// one padded with pad.
func PackRecords(l *Layout, records [][]uint64, pad bitstream.Bit) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	f := bitfifo.New()
	for i, rec := range records {
		if err := l.Pack(f, rec); err != nil {
			return nil, fmt.Errorf("record #%d: %w", i, err)
		}
	}
	return bitstream.Encode(f, pad)
}

// UnpackRecords decodes every whole record held in data. Trailing bits that
// do not form a whole record are ignored.
func UnpackRecords(l *Layout, data []byte) ([][]Value, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	f := bitfifo.New()
	if err := bitstream.Decode(data, f, 0); err != nil {
		return nil, err
	}

	numRecords := f.Count() / l.BitCount()
	records := make([][]Value, 0, numRecords)
	for i := uint(0); i < numRecords; i++ {
		rec, err := l.Unpack(f)
		if err != nil {
			return records, fmt.Errorf("record #%d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (fd Field) item(v uint64) (bitfifo.Pushable, error) {
	width := fd.BitCount()
	if width < 64 && v>>width != 0 {
		return nil, &RangeError{Field: fd.Name, Value: v, Width: width}
	}

	switch fd.Kind {
	case KindBool:
		if v > 1 {
			return nil, &RangeError{Field: fd.Name, Value: v, Width: 1}
		}
		if width == 1 {
			return bitfifo.Bool(v == 1), nil
		}
		return bitfifo.Raw{Bits: uint(v), Count: width}, nil
	case KindUint8:
		return bitfifo.Uint8(v), nil
	case KindUint16:
		return bitfifo.Uint16(v), nil
	case KindUint32:
		return bitfifo.Uint32(v), nil
	case KindUint64:
		return bitfifo.Uint64(v), nil
	case KindUint:
		return bitfifo.Uint(v), nil
	case KindBits:
		return bitfifo.Raw{Bits: uint(v), Count: width}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, fd.Kind)
	}
}

func (fd Field) pop(f *bitfifo.Fifo) (uint64, error) {
	limit := bitfifo.Bits(fd.BitCount())

	switch fd.Kind {
	case KindBool:
		b, err := bitfifo.ParseBool(f.PopBitBucket(fd.BitCount()))
		if err != nil {
			return 0, err
		}
		if b {
			return 1, nil
		}
		return 0, nil
	case KindUint8:
		return popUnsigned[bitfifo.Uint8](f, limit)
	case KindUint16:
		return popUnsigned[bitfifo.Uint16](f, limit)
	case KindUint32:
		return popUnsigned[bitfifo.Uint32](f, limit)
	case KindUint64:
		return popUnsigned[bitfifo.Uint64](f, limit)
	case KindUint:
		return popUnsigned[bitfifo.Uint](f, limit)
	case KindBits:
		raw, _, err := bitfifo.PopLimit[bitfifo.Raw](f, limit)
		return uint64(raw.Bits), err
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, fd.Kind)
	}
}

func popUnsigned[T interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	bitfifo.Poppable[T]
}](f *bitfifo.Fifo, limit bitfifo.Limit) (uint64, error) {
	x, _, err := bitfifo.PopLimit[T](f, limit)
	return uint64(x), err
}
