package des

import (
	"github.com/go-errors/errors"
	"github.com/samber/lo"
)

type tableSpec struct {
	name      string
	entries   []uint8
	srcWidth  int
	expanding bool
}

func permutationTables() []tableSpec {
	return []tableSpec{
		{name: "IP", entries: initialPermutation[:], srcWidth: 64},
		{name: "IP⁻¹", entries: finalPermutation[:], srcWidth: 64},
		{name: "PC-1", entries: permutedChoice1[:], srcWidth: 64},
		{name: "PC-2", entries: permutedChoice2[:], srcWidth: 56},
		{name: "E", entries: expansion[:], srcWidth: 32, expanding: true},
		{name: "P", entries: permutation[:], srcWidth: 32},
	}
}

func init() {
	if err := CheckTables(); err != nil {
		panic(err)
	}
}

// CheckTables verifies the constant tables: index ranges, duplicates,
// coverage, parity handling of PC-1, IP/IP⁻¹ inversion, S-box contents
// and the total key rotation.
func CheckTables() error {
	for _, t := range permutationTables() {
		if err := t.check(); err != nil {
			return err
		}
	}

	for _, n := range permutedChoice1 {
		if n%8 == 0 {
			return errors.Errorf("PC-1: selects parity bit %d", n)
		}
	}

	for i, n := range initialPermutation {
		if int(finalPermutation[n-1]) != i+1 {
			return errors.Errorf("IP⁻¹: does not invert IP at bit %d", i+1)
		}
	}

	for box := range sBoxes {
		for row := range sBoxes[box] {
			if err := checkSBoxRow(sBoxes[box][row][:]); err != nil {
				return errors.Errorf("S%d row %d: %v", box+1, row, err)
			}
		}
	}

	total := 0
	for _, r := range rotations {
		total += int(r)
	}
	if total != 28 {
		return errors.Errorf("rotations: total %d, want 28", total)
	}

	return nil
}

func (t tableSpec) check() error {
	if len(t.entries) == 0 {
		return errors.Errorf("%s: empty table", t.name)
	}
	if lo.Min(t.entries) < 1 || int(lo.Max(t.entries)) > t.srcWidth {
		return errors.Errorf("%s: index out of range [1,%d]", t.name, t.srcWidth)
	}

	distinct := lo.Uniq(t.entries)
	if !t.expanding && len(distinct) != len(t.entries) {
		return errors.Errorf("%s: repeats a source bit", t.name)
	}
	if len(t.entries) >= t.srcWidth && len(distinct) != t.srcWidth {
		return errors.Errorf("%s: covers %d of %d source bits", t.name, len(distinct), t.srcWidth)
	}
	return nil
}

func checkSBoxRow(row []uint8) error {
	if lo.Max(row) > 15 {
		return errors.New("entry exceeds 4 bits")
	}
	if len(lo.Uniq(row)) != len(row) {
		return errors.New("not a permutation of 0..15")
	}
	return nil
}
