package des

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutedChoice1Halves(t *testing.T) {
	cd := permute(0x133457799BBCDFF1, 64, permutedChoice1[:])
	assert.Equal(t, uint64(0xF0CCAAF), cd>>28)
	assert.Equal(t, uint64(0x556678F), cd&mask28)
}

func TestDeriveSubkeys(t *testing.T) {
	type scenario struct {
		round    int
		expected RoundKey48
	}

	scenarios := []scenario{
		{1, 0x1B02EFFC7072},
		{2, 0x79AED9DBC9E5},
		{16, 0xCB3D8B0E17F5},
	}

	keys := DeriveSubkeys(0x133457799BBCDFF1)
	for _, s := range scenarios {
		assert.Equal(t, s.expected, keys[s.round-1], "K%d", s.round)
	}
}

func TestSubkeysAreSixteenFortyEightBitWords(t *testing.T) {
	for _, key := range []Block64{0, 0xFFFFFFFFFFFFFFFF, 0x133457799BBCDFF1, 0x0123456789ABCDEF} {
		keys := DeriveSubkeys(key)
		assert.Len(t, keys, Rounds)
		for _, k := range keys {
			assert.Zero(t, uint64(k)&^mask48)
		}
	}
}

func TestSubkeysAreIndependentCopies(t *testing.T) {
	a := DeriveSubkeys(0x133457799BBCDFF1)
	b := DeriveSubkeys(0x133457799BBCDFF1)
	a[0] = 0
	assert.Equal(t, RoundKey48(0x1B02EFFC7072), b[0])

	c := DeriveSubkeys(0x0E329232EA6D0D73)
	assert.NotEqual(t, b, c)
}

func TestReversed(t *testing.T) {
	keys := DeriveSubkeys(0x133457799BBCDFF1)
	rev := keys.Reversed()
	for i := range keys {
		assert.Equal(t, keys[i], rev[Rounds-1-i])
	}
	assert.Equal(t, keys, rev.Reversed())
}

func TestRotate28(t *testing.T) {
	assert.Equal(t, uint32(0xE19955F), rotate28(0xF0CCAAF, 1))
	assert.Equal(t, uint32(0x0000001), rotate28(0x8000000, 1))
	assert.Equal(t, uint32(0x0000002), rotate28(0x8000000, 2))
}

func TestRoundKeyBits(t *testing.T) {
	assert.Equal(t, "000110 110000 001011 101111 111111 000111 000001 110010", RoundKey48(0x1B02EFFC7072).Bits())
	assert.Equal(t, "1B02EFFC7072", RoundKey48(0x1B02EFFC7072).String())
}
