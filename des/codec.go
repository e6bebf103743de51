package des

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/go-errors/errors"
)

// BlockSize is the DES block and key size in bytes.
const BlockSize = 8

// ErrInvalidInputLength is matched by every *InputLengthError.
var ErrInvalidInputLength = errors.New("des: input must be exactly 8 bytes")

// InputLengthError reports key or block material that is not 8 bytes.
type InputLengthError struct {
	Field string
	Len   int
}

func (e *InputLengthError) Error() string {
	return fmt.Sprintf("des: invalid %s length %d, want %d bytes", e.Field, e.Len, BlockSize)
}

func (e *InputLengthError) Is(target error) bool {
	return target == ErrInvalidInputLength
}

// ByteOrder fixes how an 8-byte buffer maps onto the bits of a Block64.
type ByteOrder int

const (
	// StandardOrder is the FIPS 46-3 layout: byte 0 holds bits 1..8, most
	// significant bit first.
	StandardOrder ByteOrder = iota
	// ReferenceOrder is the layout of the older bitset console tool: the
	// bytes are read little-endian, so the least significant bit of byte 0
	// becomes bit 64. Use it to exchange data with that tool.
	ReferenceOrder
)

// ParseByteOrder accepts "standard" or "reference".
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "fips":
		return StandardOrder, nil
	case "reference", "legacy":
		return ReferenceOrder, nil
	}
	return StandardOrder, errors.Errorf("unknown byte order %q", s)
}

func (o ByteOrder) String() string {
	if o == ReferenceOrder {
		return "reference"
	}
	return "standard"
}

func (o ByteOrder) binary() binary.ByteOrder {
	if o == ReferenceOrder {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Load reads an 8-byte buffer into a block.
func (o ByteOrder) Load(b []byte) (Block64, error) {
	return o.load("block", b)
}

// Store writes a block into a fresh 8-byte buffer.
func (o ByteOrder) Store(v Block64) []byte {
	out := make([]byte, BlockSize)
	o.binary().PutUint64(out, uint64(v))
	return out
}

func (o ByteOrder) load(field string, b []byte) (Block64, error) {
	if len(b) != BlockSize {
		return 0, &InputLengthError{Field: field, Len: len(b)}
	}
	return Block64(o.binary().Uint64(b)), nil
}
