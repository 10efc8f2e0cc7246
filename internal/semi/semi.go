// Package semi models the weight of a semi-trailer as cargo is loaded,
// unloaded and moved between trucks. All weights are in pounds.
package semi

import "fmt"

// MaxLegalGross is the U.S. maximum legal gross weight.
const MaxLegalGross = 80000

// Semi tracks a truck's fixed tare weight and its current cargo.
// A Semi is not safe for concurrent use.
type Semi struct {
	tare  int
	cargo int
}

// New returns a semi with the given tare weight and initial cargo.
// Negative cargo is treated as empty.
func New(tare, cargo int) *Semi {
	return &Semi{tare: tare, cargo: max(cargo, 0)}
}

func (s *Semi) Tare() int  { return s.tare }
func (s *Semi) Cargo() int { return s.cargo }

// GrossWeight is tare plus cargo.
func (s *Semi) GrossWeight() int { return s.tare + s.cargo }

// RemainingCapacity is how much cargo can still be added without exceeding
// MaxLegalGross. It is negative for an overloaded semi.
func (s *Semi) RemainingCapacity() int { return MaxLegalGross - s.GrossWeight() }

// Legal reports whether the gross weight is within the limit.
func (s *Semi) Legal() bool { return s.GrossWeight() <= MaxLegalGross }

// Load adds w to the cargo.
func (s *Semi) Load(w int) {
	if w < 0 {
		return
	}
	s.cargo += w
}

// Unload removes w from the cargo, stopping at empty.
func (s *Semi) Unload(w int) {
	if w < 0 {
		return
	}
	s.cargo = max(s.cargo-w, 0)
}

// Transfer moves w pounds of cargo to other when outbound is true, or from
// other to s otherwise. Nothing moves if the sender carries less than w.
func (s *Semi) Transfer(other *Semi, w int, outbound bool) bool {
	if w < 0 || other == nil || other == s {
		return false
	}
	from, to := other, s
	if outbound {
		from, to = s, other
	}
	if from.cargo < w {
		return false
	}
	from.cargo -= w
	to.cargo += w
	return true
}

// LargestCapacity returns whichever of s and other has more remaining
// capacity, s on ties.
func (s *Semi) LargestCapacity(other *Semi) *Semi {
	if other != nil && other.RemainingCapacity() > s.RemainingCapacity() {
		return other
	}
	return s
}

func (s *Semi) String() string {
	return fmt.Sprintf("Semi(tare=%d, cargo=%d, gross=%d)", s.tare, s.cargo, s.GrossWeight())
}
