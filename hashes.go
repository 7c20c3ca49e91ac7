package poseidonbn254

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Fixed-arity wrappers, one per single-permutation input count.

func Hash1(a fr.Element) (fr.Element, error) {
	return Hash(a)
}

func Hash2(a, b fr.Element) (fr.Element, error) {
	return Hash(a, b)
}

func Hash3(a, b, c fr.Element) (fr.Element, error) {
	return Hash(a, b, c)
}

func Hash4(a, b, c, d fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d)
}

func Hash5(a, b, c, d, e fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e)
}

func Hash6(a, b, c, d, e, f fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f)
}

func Hash7(a, b, c, d, e, f, g fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g)
}

func Hash8(a, b, c, d, e, f, g, h fr.Element) (fr.Element, error) {
	return Hash(a, b, c, d, e, f, g, h)
}
