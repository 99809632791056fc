package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/fluidgrid/fluidgrid/grid"
)

// ErrNotConverged indicates the solve did not reach the requested
// tolerance within the iteration budget.
var ErrNotConverged = errors.New("solver: linear solve did not converge")

// ErrUnknownMethod indicates Config.Method names no implemented solver.
var ErrUnknownMethod = errors.New("solver: unknown method")

// NotConvergedError reports a failed solve together with the iteration
// count and the final L2 residual norm. It unwraps to ErrNotConverged.
type NotConvergedError struct {
	Iterations int
	Residual   float64
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("solver: not converged after %d iterations (residual %.3e)", e.Iterations, e.Residual)
}

func (e *NotConvergedError) Unwrap() error { return ErrNotConverged }

// Operator is a pure linear map from centered grid to centered grid.
// Implementations must not mutate the argument, must not keep state
// between calls, and must return a grid of the argument's shape.
type Operator func(p *grid.CenteredGrid) *grid.CenteredGrid

// Config holds the parameters of one linear solve.
//   - Method: "auto" or "CG" (conjugate gradient). "auto" picks CG.
//   - AbsTol / RelTol: stop when ‖r‖ ≤ max(AbsTol, RelTol·‖y‖).
//   - MaxIterations: iteration budget.
//   - X0: optional initial guess; nil starts from zero with the target's
//     shape and extrapolation. The returned solution inherits X0's
//     extrapolation rule, so pass a guess carrying the rule the result
//     should have.
type Config struct {
	Method        string
	AbsTol        float64
	RelTol        float64
	MaxIterations int
	X0            *grid.CenteredGrid
}

// Default returns the standard solve configuration: conjugate gradient,
// absolute tolerance 1e-5, no relative tolerance, 1000 iterations.
func Default() Config {
	return Config{Method: "auto", AbsTol: 1e-5, RelTol: 0, MaxIterations: 1000}
}

// SolveLinear finds x with op(x) ≈ y within cfg's tolerance using
// conjugate gradient. op must be linear and symmetric in the inner
// product of grid values (the masked Poisson operator is).
//
// Steps:
//  1. x ← X0 (or zero grid shaped like y), r ← y - op(x), d ← r.
//  2. Per iteration: α = (r·r)/(d·op(d)); x += α·d; r -= α·op(d);
//     β = (r'·r')/(r·r); d ← r' + β·d.
//  3. Stop as soon as ‖r‖ ≤ max(AbsTol, RelTol·‖y‖).
//
// On failure the solution is withheld and a *NotConvergedError is
// returned; the caller decides whether a partial answer is acceptable
// by re-running with a looser budget.
func SolveLinear(op Operator, y *grid.CenteredGrid, cfg Config) (*grid.CenteredGrid, error) {
	switch cfg.Method {
	case "", "auto", "CG":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, cfg.Method)
	}

	x := cfg.X0
	if x == nil {
		x = grid.NewCenteredGrid(y.Res, y.Bounds, y.Extrapolation)
	} else {
		x = x.Clone()
	}

	tol := math.Max(cfg.AbsTol, cfg.RelTol*floats.Norm(y.Data, 2))

	r := y.Sub(op(x))
	rs := floats.Dot(r.Data, r.Data)
	if math.Sqrt(rs) <= tol {
		return x, nil
	}

	// Search direction shares x's shape and extrapolation so the
	// operator sees trial vectors with the correct boundary rule.
	d := x.Clone()
	copy(d.Data, r.Data)

	for i := 1; i <= cfg.MaxIterations; i++ {
		ad := op(d)
		dad := floats.Dot(d.Data, ad.Data)
		if dad == 0 {
			return nil, &NotConvergedError{Iterations: i, Residual: math.Sqrt(rs)}
		}
		alpha := rs / dad
		floats.AddScaled(x.Data, alpha, d.Data)
		floats.AddScaled(r.Data, -alpha, ad.Data)

		rsNew := floats.Dot(r.Data, r.Data)
		if math.Sqrt(rsNew) <= tol {
			return x, nil
		}
		beta := rsNew / rs
		floats.Scale(beta, d.Data)
		floats.Add(d.Data, r.Data)
		rs = rsNew
	}
	return nil, &NotConvergedError{Iterations: cfg.MaxIterations, Residual: math.Sqrt(rs)}
}
