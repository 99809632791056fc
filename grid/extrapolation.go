package grid

import "errors"

// ErrUnsupportedExtrapolation indicates an extrapolation rule has no
// defined result for the requested derivation (e.g. the integral of a
// boundary-clamped rule). Callers get the explicit failure rather than
// a guessed default.
var ErrUnsupportedExtrapolation = errors.New("grid: unsupported extrapolation derivation")

// ExtrapolationKind enumerates the boundary rules a grid may carry.
type ExtrapolationKind int

const (
	// KindConstant extrapolates with a fixed value outside the domain.
	KindConstant ExtrapolationKind = iota
	// KindPeriodic wraps indices around the domain.
	KindPeriodic
	// KindBoundary clamps to the nearest sampled value.
	KindBoundary
)

// Extrapolation is the rule defining field values outside the sampled
// domain. It is a comparable value type: rules are compared with ==.
type Extrapolation struct {
	Kind  ExtrapolationKind
	Value float64 // used only by KindConstant
}

// The fixed set of rules used by the pressure projection.
var (
	// Zero extrapolates with 0 — a closed domain with no through-flow.
	Zero = Extrapolation{Kind: KindConstant, Value: 0}
	// One extrapolates with 1 — fully accessible beyond the boundary.
	One = Extrapolation{Kind: KindConstant, Value: 1}
	// Periodic wraps around the domain.
	Periodic = Extrapolation{Kind: KindPeriodic}
	// Boundary clamps to the nearest sampled value (Neumann-style).
	Boundary = Extrapolation{Kind: KindBoundary}
)

// Constant returns the rule extrapolating with the fixed value v.
func Constant(v float64) Extrapolation {
	return Extrapolation{Kind: KindConstant, Value: v}
}

// Integral returns the rule one degree of integration up: the boundary
// rule a pressure field inherits from its velocity field. Zero velocity
// through a wall integrates to a clamped (Neumann) pressure, a periodic
// domain stays periodic, and a clamped (open) velocity boundary
// integrates to zero pressure at the border. Every other derivation is
// undefined and returns ErrUnsupportedExtrapolation rather than a guess.
func (e Extrapolation) Integral() (Extrapolation, error) {
	switch {
	case e == Zero:
		return Boundary, nil
	case e.Kind == KindPeriodic:
		return Periodic, nil
	case e.Kind == KindBoundary:
		return Zero, nil
	default:
		return Extrapolation{}, ErrUnsupportedExtrapolation
	}
}

// Accessible maps a velocity extrapolation to the accessibility rule of
// the domain boundary: periodic domains stay periodic, clamped
// boundaries are fully accessible (1), everything else is a wall (0).
func (e Extrapolation) Accessible() Extrapolation {
	switch e.Kind {
	case KindPeriodic:
		return Periodic
	case KindBoundary:
		return One
	default:
		return Zero
	}
}

// wrap maps i into [0,n) by periodic wrapping.
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// clamp maps i into [0,n-1] by saturation.
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
