package params

import "fmt"

// Validate checks basic shape and sizes of the parameter set.
func Validate(p *Parameters) error {
	if p.Alpha != 5 {
		return fmt.Errorf("poseidonbn254: unsupported s-box exponent %d", p.Alpha)
	}
	if p.Width < 2 {
		return fmt.Errorf("poseidonbn254: state width must be at least 2, got %d", p.Width)
	}
	if p.FullRounds%2 != 0 {
		return fmt.Errorf("poseidonbn254: full rounds must be even, got %d", p.FullRounds)
	}
	if p.PartialRounds < 1 {
		return fmt.Errorf("poseidonbn254: partial rounds must be positive, got %d", p.PartialRounds)
	}
	if len(p.Arc) != p.Rounds()*p.Width {
		return fmt.Errorf("poseidonbn254: arc length mismatch for width %d: got %d, want %d",
			p.Width, len(p.Arc), p.Rounds()*p.Width)
	}
	if len(p.MDS) != p.Width*p.Width {
		return fmt.Errorf("poseidonbn254: mds length mismatch for width %d: got %d, want %d",
			p.Width, len(p.MDS), p.Width*p.Width)
	}
	for i := range p.MDS {
		if p.MDS[i].IsZero() {
			return fmt.Errorf("poseidonbn254: mds entry (%d,%d) is zero", i/p.Width, i%p.Width)
		}
	}
	return nil
}
