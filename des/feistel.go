package des

// Direction selects the subkey order used by Transform.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// RoundState is the pair of halves after a round, together with the
// subkey that round consumed. After round 16 the halves are the
// pre-output block, left‖right, that IP⁻¹ is applied to.
type RoundState struct {
	Round int
	Left  HalfBlock32
	Right HalfBlock32
	Key   RoundKey48
}

// Transform runs one block through IP, the 16 rounds and IP⁻¹. Decrypt
// walks the subkeys from K₁₆ down to K₁, which makes it the exact inverse
// of Encrypt under the same schedule.
func Transform(block Block64, keys Subkeys, dir Direction) Block64 {
	return cryptBlock(block, keys, dir, nil)
}

// EncryptBlock64 is Transform in the Encrypt direction.
func EncryptBlock64(block Block64, keys Subkeys) Block64 {
	return cryptBlock(block, keys, Encrypt, nil)
}

// DecryptBlock64 is Transform in the Decrypt direction.
func DecryptBlock64(block Block64, keys Subkeys) Block64 {
	return cryptBlock(block, keys, Decrypt, nil)
}

// Trace is Transform that also reports the halves after every round.
func Trace(block Block64, keys Subkeys, dir Direction) (Block64, []RoundState) {
	states := make([]RoundState, 0, Rounds)
	out := cryptBlock(block, keys, dir, func(s RoundState) {
		states = append(states, s)
	})
	return out, states
}

func cryptBlock(block Block64, keys Subkeys, dir Direction, observe func(RoundState)) Block64 {
	left, right := Block64(permute(uint64(block), 64, initialPermutation[:])).Split()

	if dir == Decrypt {
		keys = keys.Reversed()
	}

	for i, k := range keys {
		// the last round keeps its halves in place, so no swap is needed
		// before IP⁻¹
		if i == Rounds-1 {
			left ^= RoundFunction(right, k)
		} else {
			left, right = right, left^RoundFunction(right, k)
		}

		if observe != nil {
			observe(RoundState{Round: i + 1, Left: left, Right: right, Key: k})
		}
	}

	return Block64(permute(uint64(Join(left, right)), 64, finalPermutation[:]))
}
