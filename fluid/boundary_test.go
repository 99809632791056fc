package fluid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluidgrid/fluidgrid/fluid"
	"github.com/fluidgrid/fluidgrid/geom"
	"github.com/fluidgrid/fluidgrid/grid"
)

func unitBounds() grid.Bounds {
	return grid.Bounds{Lower: geom.Vec{}, Upper: geom.Vec{X: 1, Y: 1}}
}

// uniformVelocity returns a staggered field with every face set to (u, v).
func uniformVelocity(res grid.Resolution, e grid.Extrapolation, u, v float64) *grid.StaggeredGrid {
	g := grid.NewStaggeredGrid(res, unitBounds(), e)
	for i := range g.U {
		g.U[i] = u
	}
	for i := range g.V {
		g.V[i] = v
	}
	return g
}

// TestApplyBoundaryConditions_NoObstacles only bakes the extrapolation:
// a zero-rule field gets its wall faces closed, nothing else changes.
func TestApplyBoundaryConditions_NoObstacles(t *testing.T) {
	res := grid.Resolution{NX: 4, NY: 4}
	v := uniformVelocity(res, grid.Zero, 1, 0)

	out := fluid.ApplyBoundaryConditions(v, nil)
	assert.Equal(t, 0.0, out.U[out.UIndex(0, 2)], "left wall closed")
	assert.Equal(t, 0.0, out.U[out.UIndex(4, 2)], "right wall closed")
	assert.Equal(t, 1.0, out.U[out.UIndex(2, 2)], "interior untouched")
	assert.Equal(t, 1.0, v.U[v.UIndex(0, 2)], "input not mutated")
}

// TestApplyBoundaryConditions_StationaryObstacle zeroes all faces inside
// the obstacle and leaves far-away faces alone.
func TestApplyBoundaryConditions_StationaryObstacle(t *testing.T) {
	res := grid.Resolution{NX: 16, NY: 16}
	v := uniformVelocity(res, grid.Zero, 1, 0.5)
	obs := []fluid.Obstacle{{Geometry: geom.Sphere{Origin: geom.Vec{X: 0.5, Y: 0.5}, Radius: 0.2}}}

	out := fluid.ApplyBoundaryConditions(v, obs)

	// Face at the obstacle center must be dead.
	assert.Equal(t, 0.0, out.U[out.UIndex(8, 8)])
	assert.Equal(t, 0.0, out.V[out.VIndex(8, 8)])
	// A face far outside keeps its value.
	assert.Equal(t, 1.0, out.U[out.UIndex(2, 2)])
	assert.Equal(t, 0.5, out.V[out.VIndex(2, 13)])
}

// TestApplyBoundaryConditions_RotatingObstacle checks rigid-body
// kinematics: inside the soft mask the flow follows ω×r, not zero.
func TestApplyBoundaryConditions_RotatingObstacle(t *testing.T) {
	res := grid.Resolution{NX: 32, NY: 32}
	v := grid.NewStaggeredGrid(res, unitBounds(), grid.Zero)
	omega := 1.0
	obs := []fluid.Obstacle{{
		Geometry:        geom.Sphere{Origin: geom.Vec{X: 0.5, Y: 0.5}, Radius: 0.15},
		AngularVelocity: omega,
	}}

	out := fluid.ApplyBoundaryConditions(v, obs)

	// U face (16, 17) sits at (0.5, 0.546875), well inside the mask:
	// expect u = -ω·(y − cy), the rigid rotation.
	p := out.UFaceCenter(16, 17)
	require.InDelta(t, -omega*(p.Y-0.5), out.U[out.UIndex(16, 17)], 1e-12)
	// The matching V face picks up ω·(x − cx).
	q := out.VFaceCenter(17, 16)
	require.InDelta(t, omega*(q.X-0.5), out.V[out.VIndex(17, 16)], 1e-12)
	// Angular motion alone leaves the center face at rest.
	assert.InDelta(t, 0.0, out.U[out.UIndex(16, 16)]+omega*(out.UFaceCenter(16, 16).Y-0.5), 1e-12)
}

// TestApplyBoundaryConditions_TranslatingObstacle imposes the linear
// velocity inside the obstacle.
func TestApplyBoundaryConditions_TranslatingObstacle(t *testing.T) {
	res := grid.Resolution{NX: 16, NY: 16}
	v := grid.NewStaggeredGrid(res, unitBounds(), grid.Zero)
	obs := []fluid.Obstacle{{
		Geometry: geom.Sphere{Origin: geom.Vec{X: 0.5, Y: 0.5}, Radius: 0.2},
		Velocity: geom.Vec{X: 0.3, Y: -0.1},
	}}

	out := fluid.ApplyBoundaryConditions(v, obs)
	assert.InDelta(t, 0.3, out.U[out.UIndex(8, 8)], 1e-12)
	assert.InDelta(t, -0.1, out.V[out.VIndex(8, 8)], 1e-12)
}

// TestApplyBoundaryConditions_OrderDependentBlend documents the known
// limitation: overlapping moving obstacles blend in list order, later
// entries win inside the overlap.
func TestApplyBoundaryConditions_OrderDependentBlend(t *testing.T) {
	res := grid.Resolution{NX: 16, NY: 16}
	v := grid.NewStaggeredGrid(res, unitBounds(), grid.Zero)
	s := geom.Sphere{Origin: geom.Vec{X: 0.5, Y: 0.5}, Radius: 0.2}
	fast := fluid.Obstacle{Geometry: s, Velocity: geom.Vec{X: 1}}
	slow := fluid.Obstacle{Geometry: s, Velocity: geom.Vec{X: -1}}

	out1 := fluid.ApplyBoundaryConditions(v, []fluid.Obstacle{fast, slow})
	out2 := fluid.ApplyBoundaryConditions(v, []fluid.Obstacle{slow, fast})
	assert.InDelta(t, -1.0, out1.U[out1.UIndex(8, 8)], 1e-12)
	assert.InDelta(t, 1.0, out2.U[out2.UIndex(8, 8)], 1e-12)
}

// TestObstacle_IsStationary derives stationarity from the motion fields.
func TestObstacle_IsStationary(t *testing.T) {
	s := geom.Sphere{Origin: geom.Vec{}, Radius: 1}
	assert.True(t, fluid.Obstacle{Geometry: s}.IsStationary())
	assert.False(t, fluid.Obstacle{Geometry: s, Velocity: geom.Vec{X: 1}}.IsStationary())
	assert.False(t, fluid.Obstacle{Geometry: s, AngularVelocity: 0.1}.IsStationary())
}
