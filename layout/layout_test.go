package layout_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/bitfifo"
	"github.com/spacemeshos/bitfifo/bitstream"
	"github.com/spacemeshos/bitfifo/layout"
)

const headerYAML = `
name: header
fields:
  - name: version
    kind: u8
    width: 4
  - name: compressed
    kind: bool
  - name: flags
    kind: bits
    width: 3
  - name: length
    kind: u16
`

func TestParse(t *testing.T) {
	r := require.New(t)

	l, err := layout.Parse([]byte(headerYAML))
	r.NoError(err)
	r.Equal("header", l.Name)
	r.Len(l.Fields, 4)
	r.Equal(layout.Field{Name: "version", Kind: layout.KindUint8, Width: 4}, l.Fields[0])
	r.Equal(uint(1), l.Fields[1].BitCount())
	r.Equal(uint(16), l.Fields[3].BitCount())
	r.Equal(uint(24), l.BitCount())
}

func TestLoad(t *testing.T) {
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "header.yaml")
	r.NoError(os.WriteFile(path, []byte(headerYAML), 0o600))

	l, err := layout.Load(path)
	r.NoError(err)
	r.Equal(uint(24), l.BitCount())

	_, err = layout.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	r.ErrorIs(err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		fields []layout.Field
		err    error
	}{
		{name: "empty", fields: nil, err: layout.ErrEmptyLayout},
		{name: "unknown kind", fields: []layout.Field{{Name: "a", Kind: "i8"}}, err: layout.ErrUnknownKind},
		{name: "missing name", fields: []layout.Field{{Kind: layout.KindBool}}},
		{name: "duplicate name", fields: []layout.Field{{Name: "a", Kind: layout.KindBool}, {Name: "a", Kind: layout.KindUint8}}},
		{name: "bits without width", fields: []layout.Field{{Name: "a", Kind: layout.KindBits}}},
		{name: "bits too wide", fields: []layout.Field{{Name: "a", Kind: layout.KindBits, Width: bitfifo.WordBits + 1}}},
		{name: "u8 too wide", fields: []layout.Field{{Name: "a", Kind: layout.KindUint8, Width: 9}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := layout.Layout{Fields: tc.fields}
			err := l.Validate()
			require.Error(t, err)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestPackUnpack(t *testing.T) {
	r := require.New(t)

	l, err := layout.Parse([]byte(headerYAML))
	r.NoError(err)

	f := bitfifo.New()
	r.NoError(l.Pack(f, []uint64{0x9, 1, 0x5, 0xBEEF}))
	r.Equal(uint(24), f.Count())

	values, err := l.Unpack(f)
	r.NoError(err)
	r.Equal(uint(0), f.Count())

	var got []uint64
	for _, v := range values {
		got = append(got, v.Value)
	}
	r.Equal([]uint64{0x9, 1, 0x5, 0xBEEF}, got)
	r.Equal("flags", values[2].Name)
}

func TestPack_Errors(t *testing.T) {
	r := require.New(t)

	l, err := layout.Parse([]byte(headerYAML))
	r.NoError(err)

	f := bitfifo.New()
	err = l.Pack(f, []uint64{1, 2})
	r.ErrorIs(err, layout.ErrValueCount)

	err = l.Pack(f, []uint64{0x10, 0, 0, 0})
	var rangeErr *layout.RangeError
	r.True(errors.As(err, &rangeErr))
	r.Equal("version", rangeErr.Field)
	r.Equal(uint(4), rangeErr.Width)

	err = l.Pack(f, []uint64{0, 2, 0, 0})
	r.True(errors.As(err, &rangeErr))
	r.Equal("compressed", rangeErr.Field)

	// Failed records leave nothing behind.
	r.Equal(uint(0), f.Count())
}

func TestUnpack_Short(t *testing.T) {
	r := require.New(t)

	l, err := layout.Parse([]byte(headerYAML))
	r.NoError(err)

	f := bitfifo.New()
	f.PushUint(0xFF, 8)
	_, err = l.Unpack(f)
	r.ErrorIs(err, layout.ErrShortRecord)
	r.Equal(uint(8), f.Count())
}

func TestUnpack_InvalidBool(t *testing.T) {
	r := require.New(t)

	l := &layout.Layout{Fields: []layout.Field{{Name: "wide", Kind: layout.KindBool, Width: 2}}}
	r.NoError(l.Validate())

	f := bitfifo.New()
	f.PushUint(0x3, 2)
	_, err := l.Unpack(f)
	r.ErrorIs(err, bitfifo.ErrInvalidBitPattern)

	f.Reset()
	r.NoError(l.Pack(f, []uint64{1}))
	values, err := l.Unpack(f)
	r.NoError(err)
	r.Equal(uint64(1), values[0].Value)
}

func TestRecords(t *testing.T) {
	r := require.New(t)

	l := &layout.Layout{
		Name: "sample",
		Fields: []layout.Field{
			{Name: "valid", Kind: layout.KindBool},
			{Name: "channel", Kind: layout.KindUint8, Width: 3},
			{Name: "reading", Kind: layout.KindUint64, Width: 40},
		},
	}
	r.NoError(l.Validate())

	records := [][]uint64{
		{1, 5, 0xAB_CDEF_0123},
		{0, 7, 0},
		{1, 0, 0xFF_FFFF_FFFF},
	}
	data, err := layout.PackRecords(l, records, bitstream.One)
	r.NoError(err)
	r.Len(data, int(bitstream.NumBytes(3*44)))

	decoded, err := layout.UnpackRecords(l, data)
	r.NoError(err)
	r.Len(decoded, len(records))
	for i, rec := range decoded {
		for j, v := range rec {
			r.Equal(records[i][j], v.Value, "record %d field %d", i, j)
		}
	}
}

func TestRecords_Unvalidated(t *testing.T) {
	r := require.New(t)

	empty := &layout.Layout{Name: "empty"}
	_, err := layout.UnpackRecords(empty, []byte{0xFF})
	r.ErrorIs(err, layout.ErrEmptyLayout)
	_, err = layout.PackRecords(empty, nil, bitstream.Zero)
	r.ErrorIs(err, layout.ErrEmptyLayout)

	zeroWidth := &layout.Layout{Fields: []layout.Field{{Name: "a", Kind: layout.KindBits}}}
	_, err = layout.UnpackRecords(zeroWidth, []byte{0xFF})
	r.Error(err)

	tooWide := &layout.Layout{Fields: []layout.Field{{Name: "a", Kind: layout.KindBits, Width: bitfifo.WordBits + 1}}}
	_, err = layout.PackRecords(tooWide, [][]uint64{{1}}, bitstream.Zero)
	r.Error(err)
}
