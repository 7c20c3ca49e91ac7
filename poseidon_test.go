package poseidonbn254

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func mustElement(t *testing.T, s string) fr.Element {
	t.Helper()
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		t.Fatalf("parse element: %v", err)
	}
	return e
}

// seq returns the elements first, first+1, ..., first+n-1.
func seq(first, n int) []fr.Element {
	out := make([]fr.Element, n)
	for i := range out {
		out[i].SetUint64(uint64(first + i))
	}
	return out
}

func TestKnownVectors(t *testing.T) {
	cases := []struct {
		name     string
		inputs   []fr.Element
		expected string
	}{
		{"single-1", seq(1, 1), "18586133768512220936620570745912940619677854269274689475585506675881198879027"},
		{"single-0", seq(0, 1), "19014214495641488759237505126948346942972912379615652741039992445865937985820"},
		{"pair", seq(1, 2), "7853200120776062878684798364095072458815029376092732009249414926327459813530"},
		{"quad", seq(1, 4), "18821383157269793795438455681495246036402687001665670618754263018637548127333"},
		{"sixteen-from-0", seq(0, 16), "12416070427041714118890402457152010846953662431720703103496516574407903181398"},
		{"sixteen-from-1", seq(1, 16), "9989051620750914585850546081941653841776809718687451684622678807385399211877"},
		{"seventeen", seq(1, 17), "8770585823063767024216894608354098830177643380596531891106165958687580947979"},
		{"thirty", seq(0, 30), "4123755143677678663754455867798672266093104048057302051129414708339780424023"},
		{"thirtytwo", seq(0, 32), "18708788434404207473618469226171754884192502487313705499764829178568217508907"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expected := mustElement(t, tc.expected)
			got, err := Hash(tc.inputs...)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(&expected) {
				t.Fatalf("hash mismatch\nexpected %s\ngot      %s", expected.String(), got.String())
			}
		})
	}
}

func TestModulusMinusOne(t *testing.T) {
	in := new(big.Int).Sub(fr.Modulus(), big.NewInt(1))
	got, err := HashBig([]*big.Int{in})
	if err != nil {
		t.Fatal(err)
	}
	expected := "3366645945435192953002076803303112651887535928162668198103357554665518664470"
	if got.String() != expected {
		t.Fatalf("hash mismatch\nexpected %s\ngot      %s", expected, got.String())
	}
}

func TestDeterminism(t *testing.T) {
	inputs := seq(3, 9)
	first, err := Hash(inputs...)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := Hash(inputs...)
		if err != nil {
			t.Fatal(err)
		}
		if !again.Equal(&first) {
			t.Fatalf("run %d differs: %s vs %s", i, again.String(), first.String())
		}
	}
}

func TestLengthBoundary(t *testing.T) {
	if _, err := Hash(seq(1, MaxInputs)...); err != nil {
		t.Fatalf("32 inputs should hash: %v", err)
	}
	_, err := Hash(seq(1, MaxInputs+1)...)
	if !errors.Is(err, ErrTooManyInputs) {
		t.Fatalf("33 inputs: expected ErrTooManyInputs, got %v", err)
	}

	ones := make([]*big.Int, MaxInputs+1)
	for i := range ones {
		ones[i] = big.NewInt(1)
	}
	if _, err := HashBig(ones[:MaxInputs]); err != nil {
		t.Fatalf("32 big inputs should hash: %v", err)
	}
	_, err = HashBig(ones)
	if !errors.Is(err, ErrTooManyInputs) {
		t.Fatalf("33 big inputs: expected ErrTooManyInputs, got %v", err)
	}
}

func TestCanonicalityBoundary(t *testing.T) {
	_, err := HashBig([]*big.Int{new(big.Int).Set(fr.Modulus())})
	if !errors.Is(err, ErrNonCanonicalInput) {
		t.Fatalf("input p: expected ErrNonCanonicalInput, got %v", err)
	}
	_, err = HashBig([]*big.Int{big.NewInt(-1)})
	if !errors.Is(err, ErrNonCanonicalInput) {
		t.Fatalf("negative input: expected ErrNonCanonicalInput, got %v", err)
	}
	_, err = HashBig([]*big.Int{big.NewInt(5), nil})
	if !errors.Is(err, ErrNonCanonicalInput) {
		t.Fatalf("nil input: expected ErrNonCanonicalInput, got %v", err)
	}
}

// Length is a precondition checked before canonicality.
func TestValidationOrder(t *testing.T) {
	inputs := make([]*big.Int, MaxInputs+1)
	for i := range inputs {
		inputs[i] = new(big.Int).Set(fr.Modulus())
	}
	_, err := HashBig(inputs)
	if !errors.Is(err, ErrTooManyInputs) {
		t.Fatalf("expected ErrTooManyInputs before canonicality check, got %v", err)
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := Hash(); err == nil {
		t.Fatal("expected error for zero inputs")
	}
	if _, err := HashBig(nil); err == nil {
		t.Fatal("expected error for zero big inputs")
	}
	if _, err := HashBytes(nil); err == nil {
		t.Fatal("expected error for zero bytes")
	}
}

func TestSensitivity(t *testing.T) {
	base := seq(7, 2) // [7 8]
	swapped := []fr.Element{base[1], base[0]}
	repeated := []fr.Element{base[0], base[0]}

	h1, err := Hash(base...)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Hash(swapped...)
	if err != nil {
		t.Fatal(err)
	}
	h3, err := Hash(repeated...)
	if err != nil {
		t.Fatal(err)
	}
	if h1.Equal(&h2) {
		t.Fatal("swapping inputs did not change the hash")
	}
	if h1.Equal(&h3) || h2.Equal(&h3) {
		t.Fatal("changing one input did not change the hash")
	}

	// Same check across the tree boundary: flip one limb of a 20-input hash.
	long := seq(0, 20)
	h4, err := Hash(long...)
	if err != nil {
		t.Fatal(err)
	}
	long[18].SetUint64(99)
	h5, err := Hash(long...)
	if err != nil {
		t.Fatal(err)
	}
	if h4.Equal(&h5) {
		t.Fatal("changing a limb past position 16 did not change the hash")
	}
}

func TestWrappersAgreeWithHash(t *testing.T) {
	in := seq(11, 8)
	direct, err := Hash(in...)
	if err != nil {
		t.Fatal(err)
	}
	wrapped, err := Hash8(in[0], in[1], in[2], in[3], in[4], in[5], in[6], in[7])
	if err != nil {
		t.Fatal(err)
	}
	if !wrapped.Equal(&direct) {
		t.Fatalf("Hash8 disagrees with Hash: %s vs %s", wrapped.String(), direct.String())
	}

	one := seq(1, 1)
	direct, err = Hash(one...)
	if err != nil {
		t.Fatal(err)
	}
	wrapped, err = Hash1(one[0])
	if err != nil {
		t.Fatal(err)
	}
	if !wrapped.Equal(&direct) {
		t.Fatalf("Hash1 disagrees with Hash: %s vs %s", wrapped.String(), direct.String())
	}
}

func TestHashBigMatchesHash(t *testing.T) {
	bigs := make([]*big.Int, 5)
	elems := make([]fr.Element, 5)
	for i := range bigs {
		bigs[i] = big.NewInt(int64(100 + i))
		elems[i].SetUint64(uint64(100 + i))
	}
	fromBig, err := HashBig(bigs)
	if err != nil {
		t.Fatal(err)
	}
	fromElems, err := Hash(elems...)
	if err != nil {
		t.Fatal(err)
	}
	if fromElems.BigInt(new(big.Int)).Cmp(fromBig) != 0 {
		t.Fatalf("HashBig disagrees with Hash: %s vs %s", fromBig.String(), fromElems.String())
	}
}

func TestHashBytes(t *testing.T) {
	cases := []struct {
		name     string
		data     []byte
		expected string
	}{
		{"short", []byte("poseidon"), "7886228942319289880167949705443355581378680990919745390863412619299911133282"},
		{"two-chunks", counting(40), "16707167693536853776286083868979503067134400293039734892522406911932617765236"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expected := mustElement(t, tc.expected)
			got, err := HashBytes(tc.data)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(&expected) {
				t.Fatalf("hash mismatch\nexpected %s\ngot      %s", expected.String(), got.String())
			}
		})
	}

	if _, err := HashBytes(counting(31*MaxInputs + 1)); !errors.Is(err, ErrTooManyInputs) {
		t.Fatal("expected ErrTooManyInputs for oversized byte input")
	}
}

func counting(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i)
	}
	return out
}
