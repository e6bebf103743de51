// Package des implements the Data Encryption Standard transform of a
// single 64-bit block under a single 64-bit key.
package des

import "fmt"

// Rounds is the number of Feistel rounds and therefore of subkeys.
const Rounds = 16

// Block64 is a 64-bit block. Bit 1 in FIPS numbering is the most
// significant bit.
type Block64 uint64

// HalfBlock32 is the left or right half of a block during the rounds.
type HalfBlock32 uint32

// RoundKey48 is a round subkey held in the low 48 bits.
type RoundKey48 uint64

const (
	mask28 = 1<<28 - 1
	mask48 = 1<<48 - 1
)

// Split returns the first 32 bits as the left half and the rest as the
// right half.
func (b Block64) Split() (left, right HalfBlock32) {
	return HalfBlock32(b >> 32), HalfBlock32(b)
}

// Join concatenates left‖right.
func Join(left, right HalfBlock32) Block64 {
	return Block64(left)<<32 | Block64(right)
}

// Bits renders the block as 64 binary digits, bit 1 first.
func (b Block64) Bits() string {
	return fmt.Sprintf("%064b", uint64(b))
}

func (b Block64) String() string {
	return fmt.Sprintf("%016X", uint64(b))
}

func (h HalfBlock32) String() string {
	return fmt.Sprintf("%08X", uint32(h))
}

func (k RoundKey48) String() string {
	return fmt.Sprintf("%012X", uint64(k))
}

// Bits renders the subkey as eight space separated 6-bit groups, one per
// S-box.
func (k RoundKey48) Bits() string {
	s := fmt.Sprintf("%048b", uint64(k)&mask48)
	out := make([]byte, 0, 48+7)
	for i := 0; i < 48; i += 6 {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i:i+6]...)
	}
	return string(out)
}

// permute builds a word of len(table) bits whose i-th bit (1-based, from
// the top) is source bit table[i] of a srcWidth-bit source.
func permute(src uint64, srcWidth uint, table []uint8) uint64 {
	var out uint64
	for _, n := range table {
		out = out<<1 | (src>>(srcWidth-uint(n)))&1
	}
	return out
}
