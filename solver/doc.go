// Package solver provides the matrix-free linear solve used by the
// pressure projection: given a pure linear operator A and a target y,
// find x with A(x) ≈ y within tolerance.
//
// What:
//
//   - Operator: a side-effect-free function from centered grid to
//     centered grid, required to be linear in its input. The operator is
//     invoked once per iteration with different trial vectors and must
//     be safe to call any number of times.
//   - Config: method selection, absolute/relative tolerance, iteration
//     budget and an optional initial guess.
//   - SolveLinear: the conjugate-gradient driver.
//
// Why:
//
//   - The pressure Poisson operator is only ever available implicitly
//     (masks baked into a closure), so the solver must work from
//     operator applications alone — no matrix is assembled.
//
// Convergence: iteration stops when the L2 residual norm drops to
// max(AbsTol, RelTol·‖y‖). Conjugate gradient handles the consistent
// singular (pure-Neumann) systems the projection produces, as long as
// the right-hand side satisfies the compatibility condition.
//
// Complexity: O(k·C) time for k iterations where C is the operator
// cost; O(n) extra memory for the residual and search direction.
//
// Errors:
//
//   - ErrUnknownMethod: Config.Method names no implemented solver.
//   - ErrNotConverged: budget exhausted or a breakdown occurred; the
//     returned *NotConvergedError carries iterations and final residual.
package solver
