// Package layout describes fixed records of bit fields and packs them
// through a bitfifo.Fifo.
package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spacemeshos/bitfifo"
)

var (
	ErrEmptyLayout = errors.New("layout has no fields")
	ErrUnknownKind = errors.New("unknown field kind")
	ErrValueCount  = errors.New("value count does not match layout")
	ErrShortRecord = errors.New("not enough bits for a record")
)

// Kind is the type a field is packed as.
type Kind string

const (
	KindBool   Kind = "bool"
	KindUint8  Kind = "u8"
	KindUint16 Kind = "u16"
	KindUint32 Kind = "u32"
	KindUint64 Kind = "u64"
	KindUint   Kind = "uint"
	KindBits   Kind = "bits"
)

// Width returns the natural width of k, 0 for KindBits and unknown kinds.
func (k Kind) Width() uint {
	switch k {
	case KindBool:
		return 1
	case KindUint8:
		return 8
	case KindUint16:
		return 16
	case KindUint32:
		return 32
	case KindUint64:
		return 64
	case KindUint:
		return bitfifo.WordBits
	default:
		return 0
	}
}

// Field is a named bit field. A zero Width means the natural width of Kind;
// a smaller one keeps only the low Width bits of the value.
type Field struct {
	Name  string `yaml:"name"`
	Kind  Kind   `yaml:"kind"`
	Width uint   `yaml:"width,omitempty"`
}

// BitCount returns the number of bits the field occupies.
func (fd Field) BitCount() uint {
	if fd.Width > 0 {
		return fd.Width
	}
	return fd.Kind.Width()
}

func (fd Field) validate() error {
	switch fd.Kind {
	case KindBool, KindBits:
		if fd.Kind == KindBits && fd.Width == 0 {
			return fmt.Errorf("field `%v`: `width` is required for kind %v", fd.Name, fd.Kind)
		}
		if fd.BitCount() > bitfifo.WordBits {
			return fmt.Errorf("field `%v`: invalid `width`; expected: <= %d, given: %d", fd.Name, bitfifo.WordBits, fd.Width)
		}
	case KindUint8, KindUint16, KindUint32, KindUint64, KindUint:
		if fd.Width > fd.Kind.Width() {
			return fmt.Errorf("field `%v`: invalid `width`; expected: <= %d, given: %d", fd.Name, fd.Kind.Width(), fd.Width)
		}
	default:
		return fmt.Errorf("field `%v`: %w: %q", fd.Name, ErrUnknownKind, fd.Kind)
	}
	return nil
}

// Layout is an ordered list of fields forming one record.
type Layout struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (*Layout, error) {
	l := new(Layout)
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Load reads a YAML layout from path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return Parse(data)
}

func (l *Layout) Validate() error {
	if len(l.Fields) == 0 {
		return ErrEmptyLayout
	}

	names := make(map[string]struct{}, len(l.Fields))
	for i, fd := range l.Fields {
		if fd.Name == "" {
			return fmt.Errorf("field #%d: `name` is required", i)
		}
		if _, ok := names[fd.Name]; ok {
			return fmt.Errorf("field `%v`: duplicate name", fd.Name)
		}
		names[fd.Name] = struct{}{}

		if err := fd.validate(); err != nil {
			return err
		}
	}
	return nil
}

// BitCount returns the number of bits in one record.
func (l *Layout) BitCount() uint {
	var sum uint
	for _, fd := range l.Fields {
		sum += fd.BitCount()
	}
	return sum
}
