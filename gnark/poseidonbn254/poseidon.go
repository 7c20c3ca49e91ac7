// Package poseidonbn254 provides the in-circuit form of the native hash:
// the same permutation and parameter tables, emitted as gnark constraints.
package poseidonbn254

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/poseidonbn254/internal/params"
)

const (
	// MaxInputs mirrors the native driver's input bound.
	MaxInputs = 32

	maxDirectInputs = 16
)

// circuitPermutation mirrors the native permutation but emits gnark constraints.
type circuitPermutation struct {
	params *params.Parameters
}

func newCircuitPermutation(nInputs int) (*circuitPermutation, error) {
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
	return &circuitPermutation{params: p}, nil
}

// Hash computes the Poseidon hash of 1 to MaxInputs variables inside a
// gnark circuit, with the same two-level construction as the native
// driver: a single permutation up to 16 inputs, a 16/rest split above.
func Hash(api frontend.API, inputs ...frontend.Variable) (frontend.Variable, error) {
	var zero frontend.Variable
	if len(inputs) < 1 {
		return zero, fmt.Errorf("poseidonbn254: need at least 1 input")
	}
	if len(inputs) > MaxInputs {
		return zero, fmt.Errorf("poseidonbn254: too many inputs (%d > %d)", len(inputs), MaxInputs)
	}
	if len(inputs) <= maxDirectInputs {
		return hashDirect(api, inputs)
	}
	left, err := hashDirect(api, inputs[:maxDirectInputs])
	if err != nil {
		return zero, err
	}
	right, err := hashDirect(api, inputs[maxDirectInputs:])
	if err != nil {
		return zero, err
	}
	return hashDirect(api, []frontend.Variable{left, right})
}

func hashDirect(api frontend.API, inputs []frontend.Variable) (frontend.Variable, error) {
	gadget, err := newCircuitPermutation(len(inputs))
	if err != nil {
		var zero frontend.Variable
		return zero, err
	}
	state := make([]frontend.Variable, gadget.params.Width)
	state[0] = 0
	copy(state[1:], inputs)
	state = gadget.permute(api, state)
	return state[0], nil
}

func (p *circuitPermutation) permute(api frontend.API, state []frontend.Variable) []frontend.Variable {
	t := p.params.Width
	halfFull := p.params.FullRounds / 2
	partialEnd := halfFull + p.params.PartialRounds

	for r := 0; r < p.params.Rounds(); r++ {
		circuitAddArcRow(api, state, p.params.Arc, r, t)
		if r < halfFull || r >= partialEnd {
			circuitFullSBox(api, state)
		} else {
			state[0] = circuitExp5(api, state[0])
		}
		state = circuitMix(api, state, p.params.MDS, t)
	}
	return state
}

func circuitAddArcRow(api frontend.API, state []frontend.Variable, arc []fr.Element, row, width int) {
	offset := row * width
	for i := 0; i < width; i++ {
		state[i] = api.Add(state[i], arc[offset+i])
	}
}

func circuitMix(api frontend.API, state []frontend.Variable, matrix []fr.Element, width int) []frontend.Variable {
	out := make([]frontend.Variable, width)
	for i := 0; i < width; i++ {
		offset := i * width
		sum := api.Mul(state[0], matrix[offset])
		for j := 1; j < width; j++ {
			sum = api.Add(sum, api.Mul(state[j], matrix[offset+j]))
		}
		out[i] = sum
	}
	return out
}

func circuitFullSBox(api frontend.API, state []frontend.Variable) {
	for i := range state {
		state[i] = circuitExp5(api, state[i])
	}
}

func circuitExp5(api frontend.API, v frontend.Variable) frontend.Variable {
	v2 := api.Mul(v, v)
	v4 := api.Mul(v2, v2)
	return api.Mul(v4, v)
}
