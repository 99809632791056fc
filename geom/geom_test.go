package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluidgrid/fluidgrid/geom"
)

// TestVec_Arithmetic exercises the basic vector helpers.
func TestVec_Arithmetic(t *testing.T) {
	a := geom.Vec{X: 3, Y: 4}
	b := geom.Vec{X: 1, Y: -2}

	assert.Equal(t, geom.Vec{X: 4, Y: 2}, a.Add(b))
	assert.Equal(t, geom.Vec{X: 2, Y: 6}, a.Sub(b))
	assert.Equal(t, geom.Vec{X: 6, Y: 8}, a.Scale(2))
	assert.Equal(t, -5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Norm())
	assert.True(t, geom.Vec{}.IsZero())
	assert.False(t, a.IsZero())
}

// TestSphere_SignedDistance verifies the sign convention: negative
// inside, zero on the surface, positive outside.
func TestSphere_SignedDistance(t *testing.T) {
	s := geom.Sphere{Origin: geom.Vec{X: 1, Y: 1}, Radius: 0.5}

	assert.InDelta(t, -0.5, s.SignedDistance(geom.Vec{X: 1, Y: 1}), 1e-12, "center")
	assert.InDelta(t, 0, s.SignedDistance(geom.Vec{X: 1.5, Y: 1}), 1e-12, "surface")
	assert.InDelta(t, 0.5, s.SignedDistance(geom.Vec{X: 2, Y: 1}), 1e-12, "outside")

	assert.True(t, s.Contains(geom.Vec{X: 1.2, Y: 1}))
	assert.True(t, s.Contains(geom.Vec{X: 1.5, Y: 1}), "surface counts as inside")
	assert.False(t, s.Contains(geom.Vec{X: 1.6, Y: 1}))
	assert.Equal(t, geom.Vec{X: 1, Y: 1}, s.Center())
}

// TestBox_SignedDistance checks the exact box SDF in the face, corner
// and interior regimes.
func TestBox_SignedDistance(t *testing.T) {
	b := geom.Box{Lower: geom.Vec{X: 0, Y: 0}, Upper: geom.Vec{X: 2, Y: 1}}

	cases := []struct {
		name string
		p    geom.Vec
		want float64
	}{
		{"DeepInside", geom.Vec{X: 1, Y: 0.5}, -0.5},
		{"FaceOutside", geom.Vec{X: 1, Y: 2}, 1},
		{"CornerOutside", geom.Vec{X: 3, Y: 2}, math.Sqrt2},
		{"OnSurface", geom.Vec{X: 0, Y: 0.5}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, b.SignedDistance(tc.p), 1e-12)
		})
	}

	assert.Equal(t, geom.Vec{X: 1, Y: 0.5}, b.Center())
	assert.True(t, b.Contains(geom.Vec{X: 2, Y: 1}), "upper corner inclusive")
	assert.False(t, b.Contains(geom.Vec{X: 2.1, Y: 1}))
}

// TestUnion verifies membership, signed distance and the empty union.
func TestUnion(t *testing.T) {
	a := geom.Sphere{Origin: geom.Vec{X: 0, Y: 0}, Radius: 1}
	b := geom.Sphere{Origin: geom.Vec{X: 4, Y: 0}, Radius: 1}
	u := geom.Union(a, b)

	assert.True(t, u.Contains(geom.Vec{X: 0.5, Y: 0}))
	assert.True(t, u.Contains(geom.Vec{X: 4.5, Y: 0}))
	assert.False(t, u.Contains(geom.Vec{X: 2, Y: 0}), "gap between members")
	assert.InDelta(t, 1, u.SignedDistance(geom.Vec{X: 2, Y: 0}), 1e-12, "min over members")
	assert.Equal(t, geom.Vec{X: 2, Y: 0}, u.Center(), "mean of member centers")

	empty := geom.Union()
	assert.False(t, empty.Contains(geom.Vec{}))
	assert.True(t, math.IsInf(empty.SignedDistance(geom.Vec{}), 1))
	assert.Equal(t, geom.Vec{}, empty.Center())
}

// TestUnion_SingleMember checks that a one-element union behaves as the
// member itself.
func TestUnion_SingleMember(t *testing.T) {
	s := geom.Sphere{Origin: geom.Vec{X: 1, Y: 2}, Radius: 3}
	u := geom.Union(s)
	assert.Equal(t, s.Center(), u.Center())
	assert.Equal(t, s.SignedDistance(geom.Vec{X: 9, Y: 2}), u.SignedDistance(geom.Vec{X: 9, Y: 2}))
}
