package des

// Subkeys holds the 16 round subkeys of one master key. It is an array, so
// every copy is independent.
type Subkeys [Rounds]RoundKey48

// DeriveSubkeys runs the key schedule: PC-1, then per round a left
// rotation of both 28-bit halves followed by PC-2.
func DeriveSubkeys(key Block64) Subkeys {
	cd := permute(uint64(key), 64, permutedChoice1[:])
	c, d := uint32(cd>>28)&mask28, uint32(cd)&mask28

	var keys Subkeys
	for i := range keys {
		c = rotate28(c, rotations[i])
		d = rotate28(d, rotations[i])
		keys[i] = RoundKey48(permute(uint64(c)<<28|uint64(d), 56, permutedChoice2[:]))
	}
	return keys
}

// Reversed returns the subkeys in decryption order, K₁₆ first. Decrypt
// runs the rounds over this schedule.
func (s Subkeys) Reversed() Subkeys {
	var out Subkeys
	for i, k := range s {
		out[Rounds-1-i] = k
	}
	return out
}

func rotate28(v uint32, n uint8) uint32 {
	return (v<<n | v>>(28-n)) & mask28
}
