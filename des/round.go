package des

// RoundFunction is f(R, K): expand R to 48 bits, mix in the subkey, run
// the eight S-boxes and permute the result with P.
func RoundFunction(half HalfBlock32, key RoundKey48) HalfBlock32 {
	mixed := expand(half) ^ uint64(key)&mask48
	return HalfBlock32(permute(uint64(substitute(mixed)), 32, permutation[:]))
}

func expand(half HalfBlock32) uint64 {
	return permute(uint64(half), 32, expansion[:])
}

// substitute feeds chunk j (bits 6j+1..6j+6 of the 48-bit input) to S-box
// j. The outer two bits of a chunk select the row, the inner four the
// column.
func substitute(in uint64) uint32 {
	var out uint32
	for j := 0; j < 8; j++ {
		chunk := uint8(in>>(42-6*j)) & 0x3f
		row := chunk>>4&0x2 | chunk&0x1
		col := chunk >> 1 & 0xf
		out = out<<4 | uint32(sBoxes[j][row][col])
	}
	return out
}
