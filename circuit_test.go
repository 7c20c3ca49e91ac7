package poseidonbn254

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"

	gposeidon "github.com/vocdoni/poseidonbn254/gnark/poseidonbn254"
)

// Circuit that hashes three limbs and checks against an expected native result.
type poseidonCircuit struct {
	Inputs   [3]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *poseidonCircuit) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.Inputs[0], c.Inputs[1], c.Inputs[2])
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

func TestCircuitMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	i1 := mustElement(t, "7553885614632219548127688026174585776320152166623257619763178041781456016062")
	i2 := mustElement(t, "2337838243217876174544784248400816541933405738836087430664765452605435675740")
	i3 := mustElement(t, "4318449279293553393006719276941638490334729643330833590842693275258805886300")

	native, err := Hash3(i1, i2, i3)
	if err != nil {
		t.Fatal(err)
	}

	witness := poseidonCircuit{
		Inputs:   [3]frontend.Variable{i1, i2, i3},
		Expected: native,
	}

	assert.ProverSucceeded(
		&poseidonCircuit{},
		&witness,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

// Circuit over the tree construction: 20 limbs forces the 16/rest split.
type treeCircuit struct {
	Inputs   [20]frontend.Variable
	Expected frontend.Variable `gnark:",public"`
}

func (c *treeCircuit) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, c.Expected)
	return nil
}

func TestTreeCircuitMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	inputs := make([]fr.Element, 20)
	for i := range inputs {
		inputs[i].SetUint64(uint64(i + 1))
	}
	native, err := Hash(inputs...)
	if err != nil {
		t.Fatal(err)
	}

	witness := treeCircuit{Expected: native}
	for i := range inputs {
		witness.Inputs[i] = inputs[i]
	}

	assert.ProverSucceeded(
		&treeCircuit{},
		&witness,
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	)
}

func TestConstraintCounts(t *testing.T) {
	ccs1, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &countCircuit1{})
	if err != nil {
		t.Fatalf("compile 1 input: %v", err)
	}
	ccs2, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &countCircuit2{})
	if err != nil {
		t.Fatalf("compile 2 inputs: %v", err)
	}
	ccs16, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &countCircuit16{})
	if err != nil {
		t.Fatalf("compile 16 inputs: %v", err)
	}
	ccs32, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &countCircuit32{})
	if err != nil {
		t.Fatalf("compile 32 inputs: %v", err)
	}

	t.Logf("1-input constraints: %d", ccs1.GetNbConstraints())
	t.Logf("2-input constraints: %d", ccs2.GetNbConstraints())
	t.Logf("16-input constraints: %d", ccs16.GetNbConstraints())
	t.Logf("32-input constraints: %d", ccs32.GetNbConstraints())
}

type countCircuit1 struct {
	A frontend.Variable
}

func (c *countCircuit1) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.A)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, out)
	return nil
}

type countCircuit2 struct {
	A frontend.Variable
	B frontend.Variable
}

func (c *countCircuit2) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.A, c.B)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, out)
	return nil
}

type countCircuit16 struct {
	Inputs [16]frontend.Variable
}

func (c *countCircuit16) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, out)
	return nil
}

type countCircuit32 struct {
	Inputs [32]frontend.Variable
}

func (c *countCircuit32) Define(api frontend.API) error {
	out, err := gposeidon.Hash(api, c.Inputs[:]...)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, out)
	return nil
}
