package grid

import (
	"gonum.org/v1/gonum/floats"

	"github.com/fluidgrid/fluidgrid/geom"
)

// StaggeredGrid holds one vector sample per face center: U on x-normal
// faces ((NX+1)×NY values, stride NX+1) and V on y-normal faces
// (NX×(NY+1) values, stride NX). Both boundary faces of each axis are
// stored explicitly; the extrapolation rule governs anything beyond.
type StaggeredGrid struct {
	Res           Resolution
	Bounds        Bounds
	Extrapolation Extrapolation
	U, V          []float64
}

// NewStaggeredGrid allocates a zero-valued staggered grid.
func NewStaggeredGrid(res Resolution, bounds Bounds, extrapolation Extrapolation) *StaggeredGrid {
	return &StaggeredGrid{
		Res:           res,
		Bounds:        bounds,
		Extrapolation: extrapolation,
		U:             make([]float64, (res.NX+1)*res.NY),
		V:             make([]float64, res.NX*(res.NY+1)),
	}
}

// Clone returns an independent deep copy.
func (g *StaggeredGrid) Clone() *StaggeredGrid {
	out := NewStaggeredGrid(g.Res, g.Bounds, g.Extrapolation)
	copy(out.U, g.U)
	copy(out.V, g.V)
	return out
}

// WithExtrapolation returns a copy carrying the given rule.
func (g *StaggeredGrid) WithExtrapolation(e Extrapolation) *StaggeredGrid {
	out := g.Clone()
	out.Extrapolation = e
	return out
}

// UIndex returns the flat index of x-face (ix, iy), ix ∈ [0,NX], iy ∈ [0,NY).
func (g *StaggeredGrid) UIndex(ix, iy int) int { return iy*(g.Res.NX+1) + ix }

// VIndex returns the flat index of y-face (ix, iy), ix ∈ [0,NX), iy ∈ [0,NY].
func (g *StaggeredGrid) VIndex(ix, iy int) int { return iy*g.Res.NX + ix }

// UAt returns the U component at x-face (ix, iy), drawing out-of-range
// requests through the extrapolation rule. Under Periodic the two
// boundary faces of a row are identified, so ix wraps modulo NX.
func (g *StaggeredGrid) UAt(ix, iy int) float64 {
	if ix >= 0 && ix <= g.Res.NX && iy >= 0 && iy < g.Res.NY {
		return g.U[g.UIndex(ix, iy)]
	}
	switch g.Extrapolation.Kind {
	case KindPeriodic:
		return g.U[g.UIndex(wrap(ix, g.Res.NX), wrap(iy, g.Res.NY))]
	case KindBoundary:
		return g.U[g.UIndex(clamp(ix, g.Res.NX+1), clamp(iy, g.Res.NY))]
	default:
		return g.Extrapolation.Value
	}
}

// VAt returns the V component at y-face (ix, iy); see UAt.
func (g *StaggeredGrid) VAt(ix, iy int) float64 {
	if ix >= 0 && ix < g.Res.NX && iy >= 0 && iy <= g.Res.NY {
		return g.V[g.VIndex(ix, iy)]
	}
	switch g.Extrapolation.Kind {
	case KindPeriodic:
		return g.V[g.VIndex(wrap(ix, g.Res.NX), wrap(iy, g.Res.NY))]
	case KindBoundary:
		return g.V[g.VIndex(clamp(ix, g.Res.NX), clamp(iy, g.Res.NY+1))]
	default:
		return g.Extrapolation.Value
	}
}

// CellSize returns the physical size of one cell.
func (g *StaggeredGrid) CellSize() geom.Vec { return cellSize(g.Res, g.Bounds) }

// UFaceCenter returns the physical location of x-face (ix, iy).
func (g *StaggeredGrid) UFaceCenter(ix, iy int) geom.Vec {
	h := g.CellSize()
	return geom.Vec{
		X: g.Bounds.Lower.X + float64(ix)*h.X,
		Y: g.Bounds.Lower.Y + (float64(iy)+0.5)*h.Y,
	}
}

// VFaceCenter returns the physical location of y-face (ix, iy).
func (g *StaggeredGrid) VFaceCenter(ix, iy int) geom.Vec {
	h := g.CellSize()
	return geom.Vec{
		X: g.Bounds.Lower.X + (float64(ix)+0.5)*h.X,
		Y: g.Bounds.Lower.Y + float64(iy)*h.Y,
	}
}

// BakeExtrapolation materializes the extrapolation rule into the stored
// boundary faces, so later masking operates on explicit values:
//
//   - constant rules overwrite the outermost normal faces with the value
//     (a zero rule closes the domain: no flow through walls);
//   - periodic identifies the duplicated wrap faces with their partners;
//   - boundary-clamped rules already equal their stored values, no-op.
func (g *StaggeredGrid) BakeExtrapolation() *StaggeredGrid {
	out := g.Clone()
	switch g.Extrapolation.Kind {
	case KindConstant:
		v := g.Extrapolation.Value
		for iy := 0; iy < g.Res.NY; iy++ {
			out.U[out.UIndex(0, iy)] = v
			out.U[out.UIndex(g.Res.NX, iy)] = v
		}
		for ix := 0; ix < g.Res.NX; ix++ {
			out.V[out.VIndex(ix, 0)] = v
			out.V[out.VIndex(ix, g.Res.NY)] = v
		}
	case KindPeriodic:
		for iy := 0; iy < g.Res.NY; iy++ {
			out.U[out.UIndex(g.Res.NX, iy)] = out.U[out.UIndex(0, iy)]
		}
		for ix := 0; ix < g.Res.NX; ix++ {
			out.V[out.VIndex(ix, g.Res.NY)] = out.V[out.VIndex(ix, 0)]
		}
	}
	return out
}

// Add returns g + o per component. Panics on shape mismatch.
func (g *StaggeredGrid) Add(o *StaggeredGrid) *StaggeredGrid {
	sameShape(g.Res, g.Bounds, o.Res, o.Bounds)
	out := g.Clone()
	floats.Add(out.U, o.U)
	floats.Add(out.V, o.V)
	return out
}

// Sub returns g - o per component. Panics on shape mismatch.
func (g *StaggeredGrid) Sub(o *StaggeredGrid) *StaggeredGrid {
	sameShape(g.Res, g.Bounds, o.Res, o.Bounds)
	out := g.Clone()
	floats.Sub(out.U, o.U)
	floats.Sub(out.V, o.V)
	return out
}

// Mul returns g * o per component. Panics on shape mismatch.
func (g *StaggeredGrid) Mul(o *StaggeredGrid) *StaggeredGrid {
	sameShape(g.Res, g.Bounds, o.Res, o.Bounds)
	out := g.Clone()
	floats.Mul(out.U, o.U)
	floats.Mul(out.V, o.V)
	return out
}

// Scale returns g scaled by s.
func (g *StaggeredGrid) Scale(s float64) *StaggeredGrid {
	out := g.Clone()
	floats.Scale(s, out.U)
	floats.Scale(s, out.V)
	return out
}

// Complement returns 1 - g per face, turning an inside-mask into an
// outside-mask.
func (g *StaggeredGrid) Complement() *StaggeredGrid {
	out := g.Clone()
	for i, v := range out.U {
		out.U[i] = 1 - v
	}
	for i, v := range out.V {
		out.V[i] = 1 - v
	}
	return out
}

// Blend returns (1-w)*a + w*b per face. The weight grid w is typically a
// soft obstacle mask. Panics on shape mismatch.
func Blend(a, b, w *StaggeredGrid) *StaggeredGrid {
	sameShape(a.Res, a.Bounds, b.Res, b.Bounds)
	sameShape(a.Res, a.Bounds, w.Res, w.Bounds)
	out := a.Clone()
	for i, t := range w.U {
		out.U[i] += t * (b.U[i] - a.U[i])
	}
	for i, t := range w.V {
		out.V[i] += t * (b.V[i] - a.V[i])
	}
	return out
}
