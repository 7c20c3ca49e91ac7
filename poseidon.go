// Package poseidonbn254 implements the Poseidon hash over the BN254 scalar
// field with the circom-compatible parameter sets (x^5 s-box, 8 full
// rounds, width-dependent partial rounds).
package poseidonbn254

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vocdoni/poseidonbn254/internal/params"
)

// permutation implements the Poseidon permutation for one state width.
type permutation struct {
	params *params.Parameters
}

// newPermutation instantiates a permutation for the given number of input
// limbs. The state width is nInputs+1 (the first limb is the capacity).
func newPermutation(nInputs int) (*permutation, error) {
	p, ok := params.AllParameters[nInputs+1]
	if !ok {
		return nil, fmt.Errorf("poseidonbn254: unsupported input count %d", nInputs)
	}
	if p.Width != nInputs+1 {
		return nil, fmt.Errorf("poseidonbn254: inconsistent parameter set for %d inputs (width %d)", nInputs, p.Width)
	}
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	return &permutation{params: p}, nil
}

// permute mutates the state in place through the full round schedule:
// round constants, then the s-box layer (every limb in full rounds, only
// the capacity limb in partial rounds), then the MDS mix.
func (p *permutation) permute(state []fr.Element) {
	t := p.params.Width
	halfFull := p.params.FullRounds / 2
	partialEnd := halfFull + p.params.PartialRounds

	for r := 0; r < p.params.Rounds(); r++ {
		addArcRow(state, p.params.Arc, r, t)
		if r < halfFull || r >= partialEnd {
			fullSBox(state)
		} else {
			exp5(&state[0])
		}
		p.mixLayer(state)
	}
}

func (p *permutation) mixLayer(state []fr.Element) {
	t := p.params.Width
	newState := make([]fr.Element, t)
	for i := 0; i < t; i++ {
		var sum fr.Element
		rowOffset := i * t
		for j := 0; j < t; j++ {
			var prod fr.Element
			coeff := p.params.MDS[rowOffset+j]
			prod.Mul(&coeff, &state[j])
			sum.Add(&sum, &prod)
		}
		newState[i] = sum
	}
	copy(state, newState)
}

func addArcRow(state []fr.Element, arc []fr.Element, row, width int) {
	offset := row * width
	for i := 0; i < width; i++ {
		state[i].Add(&state[i], &arc[offset+i])
	}
}

func fullSBox(state []fr.Element) {
	for i := range state {
		exp5(&state[i])
	}
}

// exp5 raises x to the fifth power with two squarings and one multiply.
func exp5(x *fr.Element) {
	var x2, x4 fr.Element
	x2.Mul(x, x)
	x4.Mul(&x2, &x2)
	x.Mul(&x4, x)
}
