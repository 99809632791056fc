// Package geom provides the geometric primitives consumed by the grid and
// fluid packages: 2D vectors, solid shapes with signed distances, and a
// set-union combinator for composing obstacle regions.
//
// What:
//
//   - Vec: a 2D vector value type with the usual arithmetic helpers.
//   - Geometry: the shape contract — Center, Contains, SignedDistance.
//   - Sphere (a circle in 2D) and Box (axis-aligned) shapes.
//   - Union: combines any number of geometries into a single region.
//
// Why:
//
//   - Obstacle masks: fluid boundary conditions sample Contains and
//     SignedDistance to build hard (0/1) and soft (smoothed) masks.
//   - Rigid-body kinematics: moving obstacles rotate about Center.
//
// Conventions:
//
//   - SignedDistance is negative inside the shape, positive outside and
//     zero on the surface. For Union it is the minimum over members.
//   - The empty Union contains nothing; its signed distance is +Inf.
//
// All types are immutable values; none of the operations allocate beyond
// their return value. There are no error conditions in this package —
// degenerate shapes (zero radius, inverted boxes) simply describe empty
// or point-like regions.
package geom
