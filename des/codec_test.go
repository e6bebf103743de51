package des

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStore(t *testing.T) {
	buf := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

	b, err := StandardOrder.Load(buf)
	require.NoError(t, err)
	assert.Equal(t, Block64(0x0123456789ABCDEF), b)
	assert.Equal(t, buf, StandardOrder.Store(b))

	b, err = ReferenceOrder.Load(buf)
	require.NoError(t, err)
	assert.Equal(t, Block64(0xEFCDAB8967452301), b)
	assert.Equal(t, buf, ReferenceOrder.Store(b))
}

func TestReferenceOrderIsByteReversedStandardOrder(t *testing.T) {
	buf := []byte("sanjay..")
	reversed := make([]byte, len(buf))
	for i := range buf {
		reversed[len(buf)-1-i] = buf[i]
	}

	std, err := StandardOrder.Load(buf)
	require.NoError(t, err)
	ref, err := ReferenceOrder.Load(reversed)
	require.NoError(t, err)
	assert.Equal(t, std, ref)
}

func TestReferenceOrderBitNumbering(t *testing.T) {
	// least significant bit of byte 0 is bit 64, most significant bit of
	// byte 7 is bit 1
	b, err := ReferenceOrder.Load([]byte{0x01, 0, 0, 0, 0, 0, 0, 0x80})
	require.NoError(t, err)
	assert.Equal(t, "1"+strings.Repeat("0", 62)+"1", b.Bits())
}

func TestLoadRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 9, 16} {
		_, err := StandardOrder.Load(make([]byte, n))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInputLength))

		var lengthErr *InputLengthError
		require.True(t, errors.As(err, &lengthErr))
		assert.Equal(t, n, lengthErr.Len)
		assert.Equal(t, "block", lengthErr.Field)
	}
}

func TestParseByteOrder(t *testing.T) {
	type scenario struct {
		input    string
		expected ByteOrder
		wantErr  bool
	}

	scenarios := []scenario{
		{"", StandardOrder, false},
		{"standard", StandardOrder, false},
		{" FIPS ", StandardOrder, false},
		{"reference", ReferenceOrder, false},
		{"Legacy", ReferenceOrder, false},
		{"middle", StandardOrder, true},
	}

	for _, s := range scenarios {
		got, err := ParseByteOrder(s.input)
		if s.wantErr {
			assert.Error(t, err)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, s.expected, got)
		assert.Equal(t, got, mustParse(t, got.String()))
	}
}

func mustParse(t *testing.T, s string) ByteOrder {
	o, err := ParseByteOrder(s)
	require.NoError(t, err)
	return o
}
