// Package textcodec turns console input into the 8-byte buffers the des
// package consumes, and renders buffers back for display.
package textcodec

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"DESTool/des"

	"github.com/go-errors/errors"
)

// Encoding is the textual form of a buffer.
type Encoding int

const (
	// Text uses the characters of the string as bytes.
	Text Encoding = iota
	// Hex is two hex digits per byte; spaces are ignored.
	Hex
	// Binary is eight 0/1 digits per byte; spaces are ignored.
	Binary
)

func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "ascii":
		return Text, nil
	case "hex":
		return Hex, nil
	case "binary", "bin", "bits":
		return Binary, nil
	}
	return Text, errors.Errorf("unknown encoding %q", s)
}

func (e Encoding) String() string {
	switch e {
	case Hex:
		return "hex"
	case Binary:
		return "binary"
	default:
		return "text"
	}
}

// LengthPolicy decides what happens to input that is not 8 bytes long.
type LengthPolicy int

const (
	// Reject fails with des.ErrInvalidInputLength.
	Reject LengthPolicy = iota
	// Fit zero-pads short input and truncates long input.
	Fit
)

func ParseLengthPolicy(s string) (LengthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject", "strict":
		return Reject, nil
	case "fit", "pad":
		return Fit, nil
	}
	return Reject, errors.Errorf("unknown length policy %q", s)
}

func (p LengthPolicy) String() string {
	if p == Fit {
		return "fit"
	}
	return "reject"
}

// Decode parses s and applies the length policy. field names the value in
// length errors ("key", "plaintext", ...).
func Decode(field, s string, enc Encoding, policy LengthPolicy) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	switch enc {
	case Hex:
		b, err = hex.DecodeString(stripSpaces(s))
		if err != nil {
			return nil, errors.Errorf("%s: invalid hex: %v", field, err)
		}
	case Binary:
		b, err = decodeBinary(stripSpaces(s))
		if err != nil {
			return nil, errors.Errorf("%s: invalid binary: %v", field, err)
		}
	default:
		b = []byte(s)
	}

	return applyPolicy(field, b, policy)
}

// Encode renders b in the given encoding. Hex output is upper case.
func Encode(b []byte, enc Encoding) string {
	switch enc {
	case Hex:
		return strings.ToUpper(hex.EncodeToString(b))
	case Binary:
		var sb strings.Builder
		for _, c := range b {
			fmt.Fprintf(&sb, "%08b", c)
		}
		return sb.String()
	default:
		return string(b)
	}
}

func applyPolicy(field string, b []byte, policy LengthPolicy) ([]byte, error) {
	if len(b) == des.BlockSize {
		return b, nil
	}
	if policy != Fit {
		return nil, &des.InputLengthError{Field: field, Len: len(b)}
	}

	out := make([]byte, des.BlockSize)
	copy(out, b)
	return out, nil
}

func decodeBinary(s string) ([]byte, error) {
	if len(s)%8 != 0 {
		return nil, errors.Errorf("%d digits is not a whole number of bytes", len(s))
	}
	out := make([]byte, 0, len(s)/8)
	for i := 0; i < len(s); i += 8 {
		v, err := strconv.ParseUint(s[i:i+8], 2, 8)
		if err != nil {
			return nil, err
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
