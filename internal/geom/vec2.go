// Package geom holds the integer 2D position type shared across the engine.
package geom

import "math"

// Vec2 is an integer grid position, (y, x) ordering to match the teacher's
// row-major map convention.
type Vec2 struct {
	Y, X int
}

func New(y, x int) Vec2 { return Vec2{Y: y, X: x} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{Y: v.Y + o.Y, X: v.X + o.X} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{Y: v.Y - o.Y, X: v.X - o.X} }

func (v Vec2) Equal(o Vec2) bool { return v.Y == o.Y && v.X == o.X }

// Less gives a lexicographic order, (Y, X).
func (v Vec2) Less(o Vec2) bool {
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Chebyshev is max(|dy|,|dx|) — used for adjacency/range checks.
func (v Vec2) Chebyshev(o Vec2) int {
	dy, dx := abs(v.Y-o.Y), abs(v.X-o.X)
	if dy > dx {
		return dy
	}
	return dx
}

// Manhattan is |dy|+|dx| — used by some pathfinding heuristics.
func (v Vec2) Manhattan(o Vec2) int {
	return abs(v.Y-o.Y) + abs(v.X-o.X)
}

// Euclidean is the straight-line distance — used for explosion radii.
func (v Vec2) Euclidean(o Vec2) float64 {
	dy, dx := float64(v.Y-o.Y), float64(v.X-o.X)
	return math.Sqrt(dy*dy + dx*dx)
}

// Step returns a unit vector (-1,0,1 per axis) pointing from v toward o.
func (v Vec2) Step(o Vec2) Vec2 {
	d := o.Sub(v)
	return Vec2{Y: sign(d.Y), X: sign(d.X)}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// Dirs8 lists the eight compass neighbors in N, NW, W, SW, S, SE, E, NE order,
// matching original_source's Map.h DIRS table.
var Dirs8 = [8]Vec2{
	{Y: -1, X: 0}, {Y: -1, X: -1}, {Y: 0, X: -1}, {Y: 1, X: -1},
	{Y: 1, X: 0}, {Y: 1, X: 1}, {Y: 0, X: 1}, {Y: -1, X: 1},
}
