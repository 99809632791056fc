package geom

import "math"

// Geometry describes a solid 2D region. Implementations must be immutable
// values: the fluid package samples them concurrently and caches nothing.
type Geometry interface {
	// Center returns the reference point of the shape, used as the pivot
	// for rigid-body rotation of moving obstacles.
	Center() Vec

	// Contains reports whether p lies inside the region (surface counts
	// as inside).
	Contains(p Vec) bool

	// SignedDistance returns the distance from p to the region surface:
	// negative inside, positive outside, zero on the surface.
	SignedDistance(p Vec) float64
}

// Sphere is a circle in 2D: all points within Radius of Origin.
type Sphere struct {
	Origin Vec
	Radius float64
}

// Center returns the sphere's origin.
func (s Sphere) Center() Vec { return s.Origin }

// Contains reports whether p lies within the sphere.
func (s Sphere) Contains(p Vec) bool {
	return p.Sub(s.Origin).Norm() <= s.Radius
}

// SignedDistance returns |p-origin| - radius.
func (s Sphere) SignedDistance(p Vec) float64 {
	return p.Sub(s.Origin).Norm() - s.Radius
}

// Box is an axis-aligned rectangle spanning [Lower.X, Upper.X] × [Lower.Y, Upper.Y].
type Box struct {
	Lower, Upper Vec
}

// Center returns the box midpoint.
func (b Box) Center() Vec {
	return b.Lower.Add(b.Upper).Scale(0.5)
}

// Contains reports whether p lies within the box (inclusive).
func (b Box) Contains(p Vec) bool {
	return p.X >= b.Lower.X && p.X <= b.Upper.X &&
		p.Y >= b.Lower.Y && p.Y <= b.Upper.Y
}

// SignedDistance returns the exact Euclidean signed distance to the box
// surface: negative inside, positive outside.
func (b Box) SignedDistance(p Vec) float64 {
	qx := math.Max(b.Lower.X-p.X, p.X-b.Upper.X)
	qy := math.Max(b.Lower.Y-p.Y, p.Y-b.Upper.Y)
	outside := Vec{math.Max(qx, 0), math.Max(qy, 0)}.Norm()
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside
}
