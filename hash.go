package poseidonbn254

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const (
	// MaxInputs is the largest number of field elements a single hash
	// call accepts.
	MaxInputs = 32

	// maxDirectInputs is the largest input count hashed with a single
	// permutation. Longer inputs are split into the first
	// maxDirectInputs limbs and the remainder, and the two digests are
	// hashed again.
	maxDirectInputs = 16
)

var (
	// ErrTooManyInputs reports an input sequence longer than MaxInputs.
	ErrTooManyInputs = errors.New("poseidonbn254: too many inputs")

	// ErrNonCanonicalInput reports an input outside [0, p).
	ErrNonCanonicalInput = errors.New("poseidonbn254: input is not a canonical field element")
)

// Hash computes the Poseidon hash of 1 to MaxInputs field elements.
// Up to 16 inputs are absorbed by a single permutation of width len+1;
// longer sequences hash the first 16 limbs and the remainder separately
// and combine the two digests with the width-3 permutation.
func Hash(inputs ...fr.Element) (fr.Element, error) {
	if len(inputs) < 1 {
		return fr.Element{}, fmt.Errorf("poseidonbn254: need at least 1 input")
	}
	if len(inputs) > MaxInputs {
		return fr.Element{}, fmt.Errorf("%w: %d > %d", ErrTooManyInputs, len(inputs), MaxInputs)
	}
	if len(inputs) <= maxDirectInputs {
		return hashDirect(inputs)
	}
	left, err := hashDirect(inputs[:maxDirectInputs])
	if err != nil {
		return fr.Element{}, err
	}
	right, err := hashDirect(inputs[maxDirectInputs:])
	if err != nil {
		return fr.Element{}, err
	}
	return hashDirect([]fr.Element{left, right})
}

// hashDirect runs one permutation over [0, inputs...] and squeezes the
// capacity position.
func hashDirect(inputs []fr.Element) (fr.Element, error) {
	perm, err := newPermutation(len(inputs))
	if err != nil {
		return fr.Element{}, err
	}
	state := make([]fr.Element, perm.params.Width)
	copy(state[1:], inputs)
	perm.permute(state)
	return state[0], nil
}

// HashBig hashes a sequence of arbitrary-precision integers. Every input
// must be canonical, i.e. in [0, p); the length bound is checked before
// canonicality and both are checked before any hashing work starts. The
// result is returned as a fresh big.Int in [0, p).
func HashBig(inputs []*big.Int) (*big.Int, error) {
	if len(inputs) < 1 {
		return nil, fmt.Errorf("poseidonbn254: need at least 1 input")
	}
	if len(inputs) > MaxInputs {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyInputs, len(inputs), MaxInputs)
	}
	mod := fr.Modulus()
	elems := make([]fr.Element, len(inputs))
	for i, in := range inputs {
		if in == nil || in.Sign() < 0 || in.Cmp(mod) >= 0 {
			return nil, fmt.Errorf("%w: input %d", ErrNonCanonicalInput, i)
		}
		elems[i].SetBigInt(in)
	}
	out, err := Hash(elems...)
	if err != nil {
		return nil, err
	}
	return out.BigInt(new(big.Int)), nil
}

// HashBytes hashes an arbitrary byte string by splitting it into 31-byte
// chunks interpreted as big-endian integers; each chunk fits a field
// element. At most MaxInputs chunks (992 bytes) are accepted.
func HashBytes(data []byte) (fr.Element, error) {
	if len(data) == 0 {
		return fr.Element{}, fmt.Errorf("poseidonbn254: need at least 1 byte")
	}
	const chunkSize = 31
	if len(data) > chunkSize*MaxInputs {
		return fr.Element{}, fmt.Errorf("%w: %d bytes > %d", ErrTooManyInputs, len(data), chunkSize*MaxInputs)
	}
	nChunks := (len(data) + chunkSize - 1) / chunkSize
	elems := make([]fr.Element, nChunks)
	for i := range elems {
		end := (i + 1) * chunkSize
		if end > len(data) {
			end = len(data)
		}
		elems[i].SetBytes(data[i*chunkSize : end])
	}
	return Hash(elems...)
}
