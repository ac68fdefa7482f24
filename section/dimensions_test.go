package section

import (
	"encoding/binary"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pog/endian"
	"github.com/arloliu/pog/errs"
)

func TestNewDimensions(t *testing.T) {
	d, err := NewDimensions(640, 480)
	require.NoError(t, err)
	require.Equal(t, Dimensions{Width: 640, Height: 480}, d)

	d, err = NewDimensions(0, 0)
	require.NoError(t, err)
	require.True(t, d.IsEmpty())

	_, err = NewDimensions(-1, 10)
	require.ErrorIs(t, err, errs.ErrUnsupportedDimension)

	if strconv.IntSize == 64 {
		var maxDim int64 = math.MaxUint32

		d, err = NewDimensions(int(maxDim), 1)
		require.NoError(t, err)
		require.Equal(t, uint32(math.MaxUint32), d.Width)

		_, err = NewDimensions(int(maxDim)+1, 1)
		require.ErrorIs(t, err, errs.ErrUnsupportedDimension)

		_, err = NewDimensions(1, int(maxDim)+1)
		require.ErrorIs(t, err, errs.ErrUnsupportedDimension)
	}
}

func TestDimensions_AppendTo(t *testing.T) {
	d := Dimensions{Width: 2, Height: 0x01020304}
	require.Equal(t, []byte{2, 0, 0, 0, 4, 3, 2, 1}, d.AppendTo(nil))
}

func TestDimensions_PayloadSize(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimensions
		size uint64
		ok   bool
	}{
		{"Empty", Dimensions{}, 8, true},
		{"Zero height", Dimensions{Width: 100, Height: 0}, 8, true},
		{"2x2", Dimensions{Width: 2, Height: 2}, 24, true},
		{"640x480", Dimensions{Width: 640, Height: 480}, 8 + 4*640*480, true},
		{"Max", Dimensions{Width: math.MaxUint32, Height: math.MaxUint32}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, ok := tt.dim.PayloadSize()
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.size, size)
		})
	}
}

func TestDimensions_Validate(t *testing.T) {
	d := Dimensions{Width: 2, Height: 2}
	require.NoError(t, d.Validate(24))
	require.ErrorIs(t, d.Validate(23), errs.ErrSizeMismatch)
	require.ErrorIs(t, d.Validate(25), errs.ErrSizeMismatch)
	require.ErrorIs(t, d.Validate(-1), errs.ErrSizeMismatch)

	huge := Dimensions{Width: math.MaxUint32, Height: math.MaxUint32}
	require.ErrorIs(t, huge.Validate(8), errs.ErrSizeMismatch)
}

func TestParseDimensions(t *testing.T) {
	d, err := ParseDimensions([]byte{2, 0, 0, 0, 3, 0, 0, 0, 0xFF})
	require.NoError(t, err)
	require.Equal(t, Dimensions{Width: 2, Height: 3}, d)

	_, err = ParseDimensions([]byte{2, 0, 0, 0, 3, 0, 0})
	require.ErrorIs(t, err, errs.ErrSizeMismatch)

	original := Dimensions{Width: 1920, Height: 1080}
	parsed, err := ParseDimensions(original.AppendTo(nil))
	require.NoError(t, err)
	require.Equal(t, original, parsed)
}

func TestParseLegacyDimensions(t *testing.T) {
	payload := make([]byte, DimensionsSize)
	native := endian.GetNativeEngine()
	native.PutUint32(payload[0:4], 300)
	native.PutUint32(payload[4:8], 7)

	d, err := ParseLegacyDimensions(payload)
	require.NoError(t, err)
	require.Equal(t, Dimensions{Width: 300, Height: 7}, d)

	if endian.IsNativeLittleEndian() {
		canonical, err := ParseDimensions(payload)
		require.NoError(t, err)
		require.Equal(t, d, canonical)
	} else {
		require.Equal(t, uint32(300), binary.BigEndian.Uint32(payload[0:4]))
	}

	_, err = ParseLegacyDimensions(payload[:4])
	require.ErrorIs(t, err, errs.ErrSizeMismatch)
}
