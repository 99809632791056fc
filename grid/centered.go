package grid

import (
	"gonum.org/v1/gonum/floats"

	"github.com/fluidgrid/fluidgrid/geom"
)

// CenteredGrid holds one scalar sample per cell center. Data is
// row-major: index = iy*NX + ix. The extrapolation rule defines values
// requested outside [0,NX)×[0,NY).
type CenteredGrid struct {
	Res           Resolution
	Bounds        Bounds
	Extrapolation Extrapolation
	Data          []float64
}

// NewCenteredGrid allocates a zero-valued centered grid.
func NewCenteredGrid(res Resolution, bounds Bounds, extrapolation Extrapolation) *CenteredGrid {
	return &CenteredGrid{
		Res:           res,
		Bounds:        bounds,
		Extrapolation: extrapolation,
		Data:          make([]float64, res.Cells()),
	}
}

// Clone returns an independent deep copy.
func (g *CenteredGrid) Clone() *CenteredGrid {
	out := NewCenteredGrid(g.Res, g.Bounds, g.Extrapolation)
	copy(out.Data, g.Data)
	return out
}

// WithExtrapolation returns a copy carrying the given rule. The sampled
// values are unchanged; only out-of-domain behavior differs.
func (g *CenteredGrid) WithExtrapolation(e Extrapolation) *CenteredGrid {
	out := g.Clone()
	out.Extrapolation = e
	return out
}

// Index returns the flat index of cell (ix, iy). Both must be in range.
func (g *CenteredGrid) Index(ix, iy int) int { return iy*g.Res.NX + ix }

// At returns the value of cell (ix, iy), drawing out-of-range requests
// through the extrapolation rule.
func (g *CenteredGrid) At(ix, iy int) float64 {
	if ix >= 0 && ix < g.Res.NX && iy >= 0 && iy < g.Res.NY {
		return g.Data[g.Index(ix, iy)]
	}
	switch g.Extrapolation.Kind {
	case KindPeriodic:
		return g.Data[g.Index(wrap(ix, g.Res.NX), wrap(iy, g.Res.NY))]
	case KindBoundary:
		return g.Data[g.Index(clamp(ix, g.Res.NX), clamp(iy, g.Res.NY))]
	default:
		return g.Extrapolation.Value
	}
}

// CellSize returns the physical size of one cell.
func (g *CenteredGrid) CellSize() geom.Vec { return cellSize(g.Res, g.Bounds) }

// CellCenter returns the physical location of cell center (ix, iy).
func (g *CenteredGrid) CellCenter(ix, iy int) geom.Vec {
	h := g.CellSize()
	return geom.Vec{
		X: g.Bounds.Lower.X + (float64(ix)+0.5)*h.X,
		Y: g.Bounds.Lower.Y + (float64(iy)+0.5)*h.Y,
	}
}

// Add returns g + o elementwise. Panics on shape mismatch.
func (g *CenteredGrid) Add(o *CenteredGrid) *CenteredGrid {
	sameShape(g.Res, g.Bounds, o.Res, o.Bounds)
	out := g.Clone()
	floats.Add(out.Data, o.Data)
	return out
}

// Sub returns g - o elementwise. Panics on shape mismatch.
func (g *CenteredGrid) Sub(o *CenteredGrid) *CenteredGrid {
	sameShape(g.Res, g.Bounds, o.Res, o.Bounds)
	out := g.Clone()
	floats.Sub(out.Data, o.Data)
	return out
}

// Mul returns g * o elementwise. Panics on shape mismatch.
func (g *CenteredGrid) Mul(o *CenteredGrid) *CenteredGrid {
	sameShape(g.Res, g.Bounds, o.Res, o.Bounds)
	out := g.Clone()
	floats.Mul(out.Data, o.Data)
	return out
}

// Scale returns g scaled by s.
func (g *CenteredGrid) Scale(s float64) *CenteredGrid {
	out := g.Clone()
	floats.Scale(s, out.Data)
	return out
}

// Complement returns 1 - g elementwise, turning an inside-mask into an
// outside-mask.
func (g *CenteredGrid) Complement() *CenteredGrid {
	out := g.Clone()
	for i, v := range out.Data {
		out.Data[i] = 1 - v
	}
	return out
}

// Mean returns the arithmetic mean over all cells.
func (g *CenteredGrid) Mean() float64 {
	return floats.Sum(g.Data) / float64(len(g.Data))
}

// Where returns a grid taking values from a where the mask is nonzero
// and from b elsewhere. All three must share resolution and bounds; the
// result inherits a's extrapolation.
func Where(mask, a, b *CenteredGrid) *CenteredGrid {
	sameShape(mask.Res, mask.Bounds, a.Res, a.Bounds)
	sameShape(a.Res, a.Bounds, b.Res, b.Bounds)
	out := a.Clone()
	for i, m := range mask.Data {
		if m == 0 {
			out.Data[i] = b.Data[i]
		}
	}
	return out
}
