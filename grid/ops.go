package grid

import "math"

// Divergence computes the discrete divergence of a staggered velocity
// field at cell centers:
//
//	div[x,y] = (U[x+1,y] - U[x,y])/hx + (V[x,y+1] - V[x,y])/hy
//
// Every face a cell reads is stored explicitly, so the result depends
// only on the sampled values. The result carries Zero extrapolation.
func Divergence(v *StaggeredGrid) *CenteredGrid {
	h := v.CellSize()
	out := NewCenteredGrid(v.Res, v.Bounds, Zero)
	for iy := 0; iy < v.Res.NY; iy++ {
		for ix := 0; ix < v.Res.NX; ix++ {
			du := v.U[v.UIndex(ix+1, iy)] - v.U[v.UIndex(ix, iy)]
			dv := v.V[v.VIndex(ix, iy+1)] - v.V[v.VIndex(ix, iy)]
			out.Data[out.Index(ix, iy)] = du/h.X + dv/h.Y
		}
	}
	return out
}

// Gradient computes the spatial gradient of a centered scalar field on
// the staggered layout: each face holds the difference of its two
// adjacent cell values over the cell size. Values beyond the domain are
// drawn through p's extrapolation rule, so a Boundary (clamped) pressure
// yields zero normal gradient at walls and a Periodic one wraps. The
// result carries Zero extrapolation; rebind as needed.
func Gradient(p *CenteredGrid) *StaggeredGrid {
	h := p.CellSize()
	out := NewStaggeredGrid(p.Res, p.Bounds, Zero)
	for iy := 0; iy < p.Res.NY; iy++ {
		for ix := 0; ix <= p.Res.NX; ix++ {
			out.U[out.UIndex(ix, iy)] = (p.At(ix, iy) - p.At(ix-1, iy)) / h.X
		}
	}
	for iy := 0; iy <= p.Res.NY; iy++ {
		for ix := 0; ix < p.Res.NX; ix++ {
			out.V[out.VIndex(ix, iy)] = (p.At(ix, iy) - p.At(ix, iy-1)) / h.Y
		}
	}
	return out
}

// StaggerMin maps a cell-centered field onto faces by taking the minimum
// of the two adjacent cell values, with outside neighbors drawn through
// the rule e. Applied to a 0/1 accessibility mask this blocks a face as
// soon as either side is blocked, which is exactly the hard boundary
// condition the pressure gradient must respect. The result carries e.
func StaggerMin(c *CenteredGrid, e Extrapolation) *StaggeredGrid {
	cc := c.WithExtrapolation(e)
	out := NewStaggeredGrid(c.Res, c.Bounds, e)
	for iy := 0; iy < c.Res.NY; iy++ {
		for ix := 0; ix <= c.Res.NX; ix++ {
			out.U[out.UIndex(ix, iy)] = math.Min(cc.At(ix-1, iy), cc.At(ix, iy))
		}
	}
	for iy := 0; iy <= c.Res.NY; iy++ {
		for ix := 0; ix < c.Res.NX; ix++ {
			out.V[out.VIndex(ix, iy)] = math.Min(cc.At(ix, iy-1), cc.At(ix, iy))
		}
	}
	return out
}

// MaxAbs returns the largest absolute value over all cells.
func (g *CenteredGrid) MaxAbs() float64 {
	m := 0.0
	for _, v := range g.Data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
