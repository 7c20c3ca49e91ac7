// Package params holds the fixed Poseidon parameter sets for the BN254
// scalar field: round constants and MDS matrices for every supported state
// width, derived once with the Grain LFSR procedure from the Poseidon
// reference and committed as static tables. Regenerate with:
//
//	go run ./gen
package params

//go:generate go run ./gen

const (
	// MinWidth and MaxWidth bound the supported permutation state widths.
	// Width w hashes w-1 input limbs.
	MinWidth = 2
	MaxWidth = 17

	// FullRounds is the number of full S-box rounds for every width,
	// split evenly before and after the partial phase.
	FullRounds = 8

	// SBoxExponent is the S-box degree for this field (x^5).
	SBoxExponent = 5
)

// PartialRoundCounts lists R_P per width, indexed by width-MinWidth.
// These come from the published round-number computation for a 254-bit
// prime, alpha 5, 128-bit security.
var PartialRoundCounts = [MaxWidth - MinWidth + 1]int{
	56, 57, 56, 60, 60, 63, 64, 63, 60, 66, 60, 65, 70, 60, 64, 68,
}

// AllParameters maps each supported state width to its parameter set.
// The tables referenced here live in the generated table_wNN.go files.
var AllParameters = map[int]*Parameters{
	2:  {Width: 2, FullRounds: FullRounds, PartialRounds: 56, Alpha: SBoxExponent, Arc: arcWidth2, MDS: mdsWidth2},
	3:  {Width: 3, FullRounds: FullRounds, PartialRounds: 57, Alpha: SBoxExponent, Arc: arcWidth3, MDS: mdsWidth3},
	4:  {Width: 4, FullRounds: FullRounds, PartialRounds: 56, Alpha: SBoxExponent, Arc: arcWidth4, MDS: mdsWidth4},
	5:  {Width: 5, FullRounds: FullRounds, PartialRounds: 60, Alpha: SBoxExponent, Arc: arcWidth5, MDS: mdsWidth5},
	6:  {Width: 6, FullRounds: FullRounds, PartialRounds: 60, Alpha: SBoxExponent, Arc: arcWidth6, MDS: mdsWidth6},
	7:  {Width: 7, FullRounds: FullRounds, PartialRounds: 63, Alpha: SBoxExponent, Arc: arcWidth7, MDS: mdsWidth7},
	8:  {Width: 8, FullRounds: FullRounds, PartialRounds: 64, Alpha: SBoxExponent, Arc: arcWidth8, MDS: mdsWidth8},
	9:  {Width: 9, FullRounds: FullRounds, PartialRounds: 63, Alpha: SBoxExponent, Arc: arcWidth9, MDS: mdsWidth9},
	10: {Width: 10, FullRounds: FullRounds, PartialRounds: 60, Alpha: SBoxExponent, Arc: arcWidth10, MDS: mdsWidth10},
	11: {Width: 11, FullRounds: FullRounds, PartialRounds: 66, Alpha: SBoxExponent, Arc: arcWidth11, MDS: mdsWidth11},
	12: {Width: 12, FullRounds: FullRounds, PartialRounds: 60, Alpha: SBoxExponent, Arc: arcWidth12, MDS: mdsWidth12},
	13: {Width: 13, FullRounds: FullRounds, PartialRounds: 65, Alpha: SBoxExponent, Arc: arcWidth13, MDS: mdsWidth13},
	14: {Width: 14, FullRounds: FullRounds, PartialRounds: 70, Alpha: SBoxExponent, Arc: arcWidth14, MDS: mdsWidth14},
	15: {Width: 15, FullRounds: FullRounds, PartialRounds: 60, Alpha: SBoxExponent, Arc: arcWidth15, MDS: mdsWidth15},
	16: {Width: 16, FullRounds: FullRounds, PartialRounds: 64, Alpha: SBoxExponent, Arc: arcWidth16, MDS: mdsWidth16},
	17: {Width: 17, FullRounds: FullRounds, PartialRounds: 68, Alpha: SBoxExponent, Arc: arcWidth17, MDS: mdsWidth17},
}
