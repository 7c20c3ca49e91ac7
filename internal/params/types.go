package params

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Parameters bundles all constants needed by the permutation of one state width.
type Parameters struct {
	Width         int
	FullRounds    int
	PartialRounds int
	Alpha         int

	// Arc holds the round constants in round order: the constants for
	// round r occupy Arc[r*Width : (r+1)*Width].
	Arc []fr.Element
	// MDS holds the mixing matrix row-major: entry (i,j) is MDS[i*Width+j].
	MDS []fr.Element
}

// Rounds returns the total number of rounds in the schedule.
func (p *Parameters) Rounds() int {
	return p.FullRounds + p.PartialRounds
}

// FromMontgomery builds an fr.Element from Montgomery-form limbs.
func FromMontgomery(limbs [4]uint64) fr.Element {
	return fr.Element{limbs[0], limbs[1], limbs[2], limbs[3]}
}
