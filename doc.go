// Package fluidgrid is an in-memory toolkit for incompressible fluid
// projection on staggered grids — from geometry primitives to the
// pressure solve that makes a velocity field divergence-free.
//
// 🚀 What is fluidgrid?
//
//	A pure-Go numerical library that brings together:
//		• Geometry primitives: spheres, boxes, unions, signed distances
//		• Grid fields: cell-centered scalars & staggered vector fields
//		• Extrapolation algebra: zero, periodic, boundary-clamped rules
//		• Differential operators: divergence & spatial gradient
//		• A matrix-free conjugate-gradient linear solver
//		• Pressure projection: MakeIncompressible with obstacle support
//
// ✨ Why choose fluidgrid?
//
//   - Purely functional – every operation returns a new field, no hidden state
//   - Explicit contracts – sentinel errors, no panics on user configuration
//   - Pure Go – no cgo, numeric kernels built on gonum
//   - Extensible – bring your own solver via the solver.Operator contract
//
// Everything is organized under four subpackages:
//
//	geom/   — Vec, Geometry shapes, union combinator, signed distances
//	grid/   — CenteredGrid, StaggeredGrid, extrapolation, operators, masks
//	solver/ — matrix-free linear solve (conjugate gradient)
//	fluid/  — obstacles, boundary conditions, MakeIncompressible
//
// Quick ASCII sketch of the staggered layout for one cell:
//
//	        V[x,y+1]
//	    ┌──────┴──────┐
//	U[x,y]   p[x,y]  U[x+1,y]
//	    └──────┬──────┘
//	         V[x,y]
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and the full error taxonomy.
//
//	go get github.com/fluidgrid/fluidgrid
package fluidgrid
