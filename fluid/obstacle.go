package fluid

import "github.com/fluidgrid/fluidgrid/geom"

// Obstacle is a solid region the flow may not pass through, optionally
// moving as a rigid body. It is an immutable per-call value: the
// projection samples it and stores nothing.
type Obstacle struct {
	// Geometry is the solid region.
	Geometry geom.Geometry
	// Velocity is the linear velocity of the body.
	Velocity geom.Vec
	// AngularVelocity is the angular speed about Geometry.Center(),
	// counterclockwise-positive.
	AngularVelocity float64
}

// IsStationary reports whether the obstacle carries no motion at all.
// Stationary obstacles only block flow; moving ones additionally impose
// their rigid-body velocity on nearby fluid.
func (o Obstacle) IsStationary() bool {
	return o.Velocity.IsZero() && o.AngularVelocity == 0
}

// unionGeometry combines all obstacle geometries into one region.
func unionGeometry(obstacles []Obstacle) geom.Geometry {
	gs := make([]geom.Geometry, len(obstacles))
	for i, o := range obstacles {
		gs[i] = o.Geometry
	}
	return geom.Union(gs...)
}
