package grid

import (
	"fmt"

	"github.com/fluidgrid/fluidgrid/geom"
)

// Resolution is the per-axis cell count of a grid.
type Resolution struct {
	NX, NY int
}

// Cells returns the total number of cell centers.
func (r Resolution) Cells() int { return r.NX * r.NY }

// Bounds is the physical extent covered by a grid.
type Bounds struct {
	Lower, Upper geom.Vec
}

// Size returns the physical edge lengths of the bounds.
func (b Bounds) Size() geom.Vec { return b.Upper.Sub(b.Lower) }

// cellSize returns the physical size of one cell.
func cellSize(res Resolution, bounds Bounds) geom.Vec {
	s := bounds.Size()
	return geom.Vec{X: s.X / float64(res.NX), Y: s.Y / float64(res.NY)}
}

// sameShape panics unless both resolution/bounds pairs agree. Mask and
// field shapes always derive from one velocity grid, so a mismatch is a
// programming error, not a runtime condition.
func sameShape(ar Resolution, ab Bounds, br Resolution, bb Bounds) {
	if ar != br || ab != bb {
		panic(fmt.Sprintf("grid: shape mismatch: %+v %+v vs %+v %+v", ar, ab, br, bb))
	}
}
