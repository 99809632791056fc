package fluid

import "github.com/fluidgrid/fluidgrid/grid"

// ApplyBoundaryConditions enforces obstacle and domain boundary
// conditions on a velocity field and returns the result; the input is
// not modified.
//
// Steps:
//  1. Bake the extrapolation rule into explicit boundary faces, so the
//     masking below operates on concrete stored values.
//  2. Without obstacles, the baked field is the answer.
//  3. Zero all faces inside any obstacle: multiply by the complement of
//     the hard union mask sampled at the velocity's face locations.
//  4. For each non-stationary obstacle, in list order: blend the
//     obstacle's rigid-body velocity field into the flow, weighted by a
//     soft (balance=1) mask of the geometry.
//
// The step-4 fold is sequential: where moving obstacles overlap, later
// list entries win. Order-dependent, kept deliberately.
func ApplyBoundaryConditions(velocity *grid.StaggeredGrid, obstacles []Obstacle) *grid.StaggeredGrid {
	velocity = velocity.BakeExtrapolation()
	if len(obstacles) == 0 {
		return velocity
	}

	bcs := grid.HardMaskStaggered(unionGeometry(obstacles), velocity.Res, velocity.Bounds).Complement()
	velocity = velocity.Mul(bcs)

	for _, o := range obstacles {
		if o.IsStationary() {
			continue
		}
		soft := grid.SoftMaskStaggered(o.Geometry, velocity.Res, velocity.Bounds, 1)
		obsVel := grid.RigidBodyVelocity(o.Geometry.Center(), o.AngularVelocity, o.Velocity,
			velocity.Res, velocity.Bounds)
		velocity = grid.Blend(velocity, obsVel, soft)
	}
	return velocity
}
