package geom

import "math"

// union is the set union of member geometries. The zero-member union is
// the empty region.
type union struct {
	members []Geometry
}

// Union combines any number of geometries into a single region covering
// all of them. Union() with no arguments yields the empty region:
// Contains is always false and SignedDistance is +Inf everywhere.
func Union(geometries ...Geometry) Geometry {
	if len(geometries) == 1 {
		return geometries[0]
	}
	members := make([]Geometry, len(geometries))
	copy(members, geometries)
	return union{members: members}
}

// Center returns the arithmetic mean of the member centers, or the zero
// vector for the empty union.
func (u union) Center() Vec {
	if len(u.members) == 0 {
		return Vec{}
	}
	var c Vec
	for _, g := range u.members {
		c = c.Add(g.Center())
	}
	return c.Scale(1 / float64(len(u.members)))
}

// Contains reports whether any member contains p.
func (u union) Contains(p Vec) bool {
	for _, g := range u.members {
		if g.Contains(p) {
			return true
		}
	}
	return false
}

// SignedDistance returns the minimum signed distance over all members,
// which is the exact signed distance for disjoint members and a
// conservative lower bound for overlapping ones.
func (u union) SignedDistance(p Vec) float64 {
	sd := math.Inf(1)
	for _, g := range u.members {
		if d := g.SignedDistance(p); d < sd {
			sd = d
		}
	}
	return sd
}
