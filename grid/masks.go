package grid

import (
	"math"

	"github.com/fluidgrid/fluidgrid/geom"
)

// HardMaskCentered samples a geometry as a 0/1 mask at cell centers:
// 1 inside the geometry, 0 outside. The result carries Zero extrapolation.
func HardMaskCentered(g geom.Geometry, res Resolution, bounds Bounds) *CenteredGrid {
	out := NewCenteredGrid(res, bounds, Zero)
	for iy := 0; iy < res.NY; iy++ {
		for ix := 0; ix < res.NX; ix++ {
			if g.Contains(out.CellCenter(ix, iy)) {
				out.Data[out.Index(ix, iy)] = 1
			}
		}
	}
	return out
}

// HardMaskStaggered samples a geometry as a 0/1 mask at face centers:
// 1 on faces inside the geometry, 0 outside.
func HardMaskStaggered(g geom.Geometry, res Resolution, bounds Bounds) *StaggeredGrid {
	out := NewStaggeredGrid(res, bounds, Zero)
	for iy := 0; iy < res.NY; iy++ {
		for ix := 0; ix <= res.NX; ix++ {
			if g.Contains(out.UFaceCenter(ix, iy)) {
				out.U[out.UIndex(ix, iy)] = 1
			}
		}
	}
	for iy := 0; iy <= res.NY; iy++ {
		for ix := 0; ix < res.NX; ix++ {
			if g.Contains(out.VFaceCenter(ix, iy)) {
				out.V[out.VIndex(ix, iy)] = 1
			}
		}
	}
	return out
}

// SoftMaskStaggered samples a geometry as a smoothed inside/outside
// fraction at face centers, ramping over one cell width of signed
// distance. balance shifts where the ramp sits relative to the surface:
// balance=1 counts surface faces fully as inside, balance=0 counts them
// fully as outside, 0.5 centers the ramp on the surface.
func SoftMaskStaggered(g geom.Geometry, res Resolution, bounds Bounds, balance float64) *StaggeredGrid {
	h := cellSize(res, bounds)
	w := math.Min(h.X, h.Y)
	frac := func(p geom.Vec) float64 {
		f := 0.5 + 0.5*balance - g.SignedDistance(p)/w
		return math.Max(0, math.Min(1, f))
	}
	out := NewStaggeredGrid(res, bounds, Zero)
	for iy := 0; iy < res.NY; iy++ {
		for ix := 0; ix <= res.NX; ix++ {
			out.U[out.UIndex(ix, iy)] = frac(out.UFaceCenter(ix, iy))
		}
	}
	for iy := 0; iy <= res.NY; iy++ {
		for ix := 0; ix < res.NX; ix++ {
			out.V[out.VIndex(ix, iy)] = frac(out.VFaceCenter(ix, iy))
		}
	}
	return out
}

// RigidBodyVelocity samples the velocity field of a rigid body rotating
// with angular speed omega about center while translating with linear:
//
//	v(p) = omega × (p - center) + linear
//
// at every face center. There is no falloff — this is rigid motion, not
// a vortex. The result carries Zero extrapolation.
func RigidBodyVelocity(center geom.Vec, omega float64, linear geom.Vec, res Resolution, bounds Bounds) *StaggeredGrid {
	out := NewStaggeredGrid(res, bounds, Zero)
	for iy := 0; iy < res.NY; iy++ {
		for ix := 0; ix <= res.NX; ix++ {
			p := out.UFaceCenter(ix, iy)
			out.U[out.UIndex(ix, iy)] = -omega*(p.Y-center.Y) + linear.X
		}
	}
	for iy := 0; iy <= res.NY; iy++ {
		for ix := 0; ix < res.NX; ix++ {
			p := out.VFaceCenter(ix, iy)
			out.V[out.VIndex(ix, iy)] = omega*(p.X-center.X) + linear.Y
		}
	}
	return out
}
