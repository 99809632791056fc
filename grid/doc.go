// Package grid implements the field types the fluid solver operates on:
// cell-centered scalar grids, staggered vector grids, the extrapolation
// algebra governing values outside the sampled domain, finite-difference
// differential operators, and geometry-mask sampling.
//
// What:
//
//   - Resolution & Bounds: the discrete shape and physical extent shared
//     by all fields of one simulation.
//   - Extrapolation: {constant, periodic, boundary-clamped} rules with
//     the two derived mappings the pressure solve needs — Integral()
//     (velocity rule → pressure rule) and Accessible() (velocity rule →
//     face-accessibility rule).
//   - CenteredGrid: one scalar per cell center.
//   - StaggeredGrid: vector components at face centers — U on x-normal
//     faces, (NX+1)×NY of them, V on y-normal faces, NX×(NY+1).
//   - Divergence and Gradient on the staggered layout, scaled by the
//     physical cell size.
//   - Hard (0/1) and soft (smoothed) geometry masks, rigid-body velocity
//     sampling, stagger-min face combination.
//
// Why:
//
//   - The staggered layout couples pressure and velocity stably: the
//     divergence of a cell reads exactly the faces the pressure gradient
//     writes, which is what makes the projection exact.
//
// Conventions:
//
//   - All operations are pure: they return new grids and never mutate
//     their inputs.
//   - Data is row-major, index = iy*stride + ix.
//   - Shape mismatches between operands are programming errors and panic
//     (matching gonum/floats); they are never returned as errors.
//
// Errors:
//
//   - ErrUnsupportedExtrapolation: Integral() has no defined result for
//     the given rule. Surfaced, never guessed around.
//
// Complexity: every operation in this package is a single pass over the
// cells or faces it touches — O(NX·NY) time, O(NX·NY) memory.
package grid
