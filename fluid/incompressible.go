package fluid

import (
	"github.com/fluidgrid/fluidgrid/grid"
	"github.com/fluidgrid/fluidgrid/solver"
)

// Solve bundles the parameters of the pressure solve.
//   - Config drives the forward solve (see solver.Config; X0 is the
//     optional initial pressure guess).
//   - Gradient holds the separate tolerances an external autodiff layer
//     should use for the backward-pass solve. This package ships no
//     autodiff; the field exists so differentiable callers configure
//     both solves in one place. See BalancePressureAdjoint.
type Solve struct {
	Config   solver.Config
	Gradient solver.Config
}

// DefaultSolve returns the standard projection configuration: forward
// solve at absolute tolerance 1e-5, backward solve at absolute and
// relative tolerance 1e-5.
func DefaultSolve() Solve {
	grad := solver.Default()
	grad.RelTol = 1e-5
	return Solve{Config: solver.Default(), Gradient: grad}
}

// MakeIncompressible projects velocity onto its divergence-free part by
// solving for pressure and subtracting the pressure gradient. Obstacles
// impose no-flow (and, when moving, rigid-body) boundary conditions
// inside the domain. Returns the projected velocity, the solved
// pressure, and any solve error.
//
// Steps:
//  1. Derive the accessibility and pressure extrapolation rules from
//     the velocity's rule.
//  2. Build the active (fluid) cell mask and the accessible face mask
//     at the velocity's resolution and bounds. Masks are recomputed per
//     call, never cached.
//  3. Enforce boundary conditions on the velocity.
//  4. Compute the masked divergence; on closed or periodic domains
//     remove the net mass imbalance so the Poisson problem is solvable.
//  5. Solve Laplacian(p) = div, starting from a zero pressure guess
//     with the derived pressure rule unless Config.X0 is supplied.
//  6. Subtract the masked pressure gradient and restore the original
//     extrapolation rule.
//
// On closed/periodic domains (no fixed-pressure boundary) the returned
// pressure is unique only up to an additive constant. When obstacles
// close off part of such a domain, the faces zeroed by boundary
// enforcement and the faces the pressure gradient may cross do not
// coincide exactly, so the balancer's uniform correction survives the
// projection: the result is divergence-free only up to that per-cell
// compatibility constant.
//
// Errors: grid.ErrUnsupportedExtrapolation if no pressure rule can be
// derived; solver errors (solver.ErrNotConverged, solver.ErrUnknownMethod)
// pass through untouched — no retry, no fallback value.
func MakeIncompressible(velocity *grid.StaggeredGrid, obstacles []Obstacle, solve Solve) (*grid.StaggeredGrid, *grid.CenteredGrid, error) {
	input := velocity
	accessibleExt := input.Extrapolation.Accessible()
	pressureExt, err := input.Extrapolation.Integral()
	if err != nil {
		return nil, nil, err
	}

	active := grid.HardMaskCentered(unionGeometry(obstacles), input.Res, input.Bounds).Complement()
	accessible := active.WithExtrapolation(accessibleExt)
	hardBCs := grid.StaggerMin(accessible, accessibleExt)

	velocity = ApplyBoundaryConditions(velocity, obstacles)
	div := grid.Divergence(velocity).Mul(active)
	if isClosed(input.Extrapolation) {
		div = balanceDivergence(div, active)
	}

	laplace := &Laplacian{Active: active, Accessible: hardBCs, Extrapolation: input.Extrapolation}
	cfg := solve.Config
	if cfg.X0 == nil {
		cfg.X0 = grid.NewCenteredGrid(div.Res, div.Bounds, pressureExt)
	}
	pressure, err := solver.SolveLinear(laplace.Apply, div, cfg)
	if err != nil {
		return nil, nil, err
	}

	gradp := grid.Gradient(pressure).Mul(hardBCs)
	velocity = velocity.Sub(gradp).WithExtrapolation(input.Extrapolation)
	return velocity, pressure, nil
}

// isClosed reports whether the rule describes a domain with no net
// inflow or outflow — exactly then the Poisson problem needs (and
// permits) mass balancing.
func isClosed(e grid.Extrapolation) bool {
	return e == grid.Zero || e == grid.Periodic
}

// balanceDivergence removes the uniform-per-active-cell share of the
// mean divergence, restoring the compatibility condition that a closed
// or periodic Poisson problem requires:
//
//	div' = div - active · mean(div)/mean(active)
func balanceDivergence(div, active *grid.CenteredGrid) *grid.CenteredGrid {
	return div.Sub(active.Scale(div.Mean() / active.Mean()))
}

// BalancePressureAdjoint mass-balances a gradient flowing backward into
// the pressure solve of a closed or periodic domain. An autodiff layer
// differentiating through MakeIncompressible must register this as the
// backward rule of the solve result: it keeps the compatibility
// condition intact under differentiation. The active mask is re-derived
// from the adjoint's own resolution and bounds because the forward-pass
// mask may no longer be available when the backward pass runs.
func BalancePressureAdjoint(dp *grid.CenteredGrid, obstacles []Obstacle) *grid.CenteredGrid {
	active := grid.HardMaskCentered(unionGeometry(obstacles), dp.Res, dp.Bounds).Complement()
	return balanceDivergence(dp, active)
}
