// Package fluid computes divergence-free velocity fields for
// incompressible flow on staggered grids, in the presence of solid and
// moving obstacles.
//
// What:
//
//   - Obstacle: a geometry plus rigid-body motion (linear + angular
//     velocity).
//   - ApplyBoundaryConditions: enforces no-flow-through-solids and
//     moving-obstacle kinematics on a velocity field.
//   - Laplacian: the implicit masked Poisson operator handed to the
//     linear solver.
//   - MakeIncompressible: the projection — solve for pressure, subtract
//     its gradient, return a velocity field with zero divergence inside
//     the active region (up to solver tolerance).
//
// Why:
//
//   - Incompressible flow requires ∇·v = 0 every step; advection and
//     forces break it, the projection restores it. This package is that
//     numerical core; advection, rendering and time stepping live with
//     the caller.
//
// Guarantees & caveats:
//
//   - Every operation is pure: inputs are never mutated, each call is
//     independent and reentrant, there is no shared state.
//   - On a domain with no fixed-pressure boundary (closed or periodic —
//     the pure-Neumann case) pressure is defined only up to an additive
//     constant; do not read absolute pressure values there.
//   - Overlapping MOVING obstacles blend sequentially in list order, so
//     the result depends on obstacle order where they overlap. Known
//     limitation, kept deliberately.
//
// Errors:
//
//   - grid.ErrUnsupportedExtrapolation: the velocity's extrapolation has
//     no derivable pressure rule.
//   - solver.ErrNotConverged: the pressure solve exhausted its budget;
//     surfaced as-is, never retried or papered over.
//
// Complexity: one projection is O(k·N) for N grid cells and k solver
// iterations; all other steps are single passes over the grid.
package fluid
