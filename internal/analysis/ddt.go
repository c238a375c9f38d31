package analysis

import (
	"errors"
	"fmt"
	"sort"

	"twodes/internal/des"
)

const (
	// Inputs is the number of 6-bit S-box inputs.
	Inputs = 64
	// Outputs is the number of 4-bit S-box outputs.
	Outputs = 16
)

// ErrBadBox is returned for S-box numbers outside 1..8.
var ErrBadBox = errors.New("s-box number must be in 1..8")

// Table is a differential distribution table indexed [dIn][dOut].
type Table struct {
	Box    int
	Counts [Inputs][Outputs]int
}

// Differential is one (input difference, output difference) pair and how many
// of the 64 inputs follow it.
type Differential struct {
	In, Out uint8
	Count   int
}

// Probability returns Count/64.
func (d Differential) Probability() float64 { return float64(d.Count) / Inputs }

// Distribution computes the table for S-box box (1..8).
func Distribution(box int) (Table, error) {
	if box < 1 || box > 8 {
		return Table{}, fmt.Errorf("%w: got %d", ErrBadBox, box)
	}
	t := Table{Box: box}
	for dIn := 0; dIn < Inputs; dIn++ {
		for x := 0; x < Inputs; x++ {
			dOut := des.SubstituteBox(box, uint8(x)) ^ des.SubstituteBox(box, uint8(x^dIn))
			t.Counts[dIn][dOut]++
		}
	}
	return t, nil
}

// Probability returns the fraction of inputs with difference dIn that produce
// output difference dOut. Differences are masked to 6 and 4 bits.
func (t Table) Probability(dIn, dOut uint8) float64 {
	return float64(t.Counts[dIn&0x3f][dOut&0xf]) / Inputs
}

// Top returns the n most frequent pairs with a non-zero input difference,
// ordered by count, then input difference, then output difference. Zero counts
// are never returned. n <= 0 returns all of them.
func (t Table) Top(n int) []Differential {
	var out []Differential
	for dIn := 1; dIn < Inputs; dIn++ {
		for dOut := 0; dOut < Outputs; dOut++ {
			if c := t.Counts[dIn][dOut]; c > 0 {
				out = append(out, Differential{In: uint8(dIn), Out: uint8(dOut), Count: c})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.In != b.In {
			return a.In < b.In
		}
		return a.Out < b.Out
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Solutions returns the x values for which S(x) ^ S(x^dIn) == dOut, in ascending
// order. These are the candidate S-box inputs when a pair is observed to
// follow the differential.
func (t Table) Solutions(dIn, dOut uint8) []uint8 {
	dIn &= 0x3f
	dOut &= 0xf
	var xs []uint8
	for x := 0; x < Inputs; x++ {
		if des.SubstituteBox(t.Box, uint8(x))^des.SubstituteBox(t.Box, uint8(x)^dIn) == dOut {
			xs = append(xs, uint8(x))
		}
	}
	return xs
}
