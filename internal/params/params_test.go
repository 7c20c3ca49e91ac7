package params

import (
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

func TestWidthCoverage(t *testing.T) {
	for w := MinWidth; w <= MaxWidth; w++ {
		if _, ok := AllParameters[w]; !ok {
			t.Fatalf("missing parameter set for width %d", w)
		}
	}
	if len(AllParameters) != MaxWidth-MinWidth+1 {
		t.Fatalf("unexpected parameter sets: got %d, want %d", len(AllParameters), MaxWidth-MinWidth+1)
	}
}

func TestValidateAll(t *testing.T) {
	for w, p := range AllParameters {
		if p.Width != w {
			t.Fatalf("width %d keyed under %d", p.Width, w)
		}
		if p.PartialRounds != PartialRoundCounts[w-MinWidth] {
			t.Fatalf("width %d: partial rounds %d, want %d", w, p.PartialRounds, PartialRoundCounts[w-MinWidth])
		}
		if err := Validate(p); err != nil {
			t.Fatalf("width %d: %v", w, err)
		}
	}
}

// Spot-checks against the published Grain derivation output.
func TestKnownTableEntries(t *testing.T) {
	checks := []struct {
		name     string
		got      fr.Element
		expected string
	}{
		{"arc[0] width 2", arcWidth2[0], "4417881134626180770308697923359573201005643519861877412381846989312604493735"},
		{"arc[1] width 2", arcWidth2[1], "5433650512959517612316327474713065966758808864213826738576266661723522780033"},
		{"mds[0][0] width 2", mdsWidth2[0], "2910766817845651019878574839501801340070030115151021261302834310722729507541"},
		{"arc[0] width 17", arcWidth17[0], "21579410516734741630578831791708254656585702717204712919233299001262271512412"},
	}
	for _, c := range checks {
		expected := mustElement(t, c.expected)
		if !c.got.Equal(&expected) {
			t.Fatalf("%s mismatch\nexpected %s\ngot      %s", c.name, expected.String(), c.got.String())
		}
	}
}

func TestValidateRejectsBadShapes(t *testing.T) {
	good := AllParameters[2]

	bad := *good
	bad.Alpha = 3
	if err := Validate(&bad); err == nil {
		t.Fatal("expected error for wrong s-box exponent")
	}

	bad = *good
	bad.FullRounds = 7
	if err := Validate(&bad); err == nil {
		t.Fatal("expected error for odd full rounds")
	}

	bad = *good
	bad.Arc = bad.Arc[:len(bad.Arc)-1]
	if err := Validate(&bad); err == nil {
		t.Fatal("expected error for truncated arc")
	}

	bad = *good
	bad.MDS = make([]fr.Element, good.Width*good.Width)
	if err := Validate(&bad); err == nil {
		t.Fatal("expected error for zero mds entries")
	}
}
