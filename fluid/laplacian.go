package fluid

import "github.com/fluidgrid/fluidgrid/grid"

// Laplacian is the implicit operator of the discrete pressure Poisson
// equation: a tagged closure over the masks and boundary rule captured
// when the solve is set up. All fields are immutable for the duration
// of one solve — the linear solver must treat only the pressure
// argument as variable.
type Laplacian struct {
	// Active is 1 on fluid cells, 0 inside obstacles.
	Active *grid.CenteredGrid
	// Accessible is the per-face 0/1 mask blocking pressure-gradient
	// flux through obstacle and wall faces.
	Accessible *grid.StaggeredGrid
	// Extrapolation is the ORIGINAL input velocity's rule, reassigned
	// to the masked gradient so its divergence at domain boundaries
	// follows the physically correct rule rather than pressure's.
	Extrapolation grid.Extrapolation
}

// Apply evaluates the operator at a candidate pressure field. It is
// linear in p: no branch below depends on p's values, only on the
// captured masks.
//
//	lap = where(active, ∇·(accessible · ∇p), p)
//
// Inside obstacles the operator is the identity, which together with a
// zero right-hand side pins interior obstacle pressure to a stable
// arbitrary value instead of coupling it into the flow equation.
func (l *Laplacian) Apply(p *grid.CenteredGrid) *grid.CenteredGrid {
	grad := grid.Gradient(p)
	grad = grad.Mul(l.Accessible)
	grad = grad.WithExtrapolation(l.Extrapolation)
	div := grid.Divergence(grad)
	return grid.Where(l.Active, div, p)
}
