package kriging

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// Convex is the convex hull of a set of locations, used to tell
// interpolated predictions from extrapolated ones.
type Convex struct {
	vertices []vec2d.T
	hull     []vec2d.T
	edges    []Edge
}

type Edge struct {
	Start  vec2d.T
	End    vec2d.T
	Normal vec2d.T
}

func NewConvex(vertices []vec2d.T) *Convex {
	c := Convex{vertices, nil, nil}
	return &c
}

func (c *Convex) Rect() vec2d.Rect {
	r := vec2d.Rect{Min: vec2d.MaxVal, Max: vec2d.MinVal}
	for i := range c.Hull() {
		r.Extend(&c.hull[i])
	}
	return r
}

// Hull returns the hull vertices in counter-clockwise order.
func (c *Convex) Hull() []vec2d.T {
	if c.hull == nil {
		if len(c.vertices) == 0 {
			c.hull = []vec2d.T{}
			return c.hull
		}
		minX, maxX := c.getExtremePoints()
		c.hull = append(c.quickHull(c.vertices, maxX, minX), c.quickHull(c.vertices, minX, maxX)...)
	}

	return c.hull
}

// Degenerate reports a hull without area: fewer than three distinct
// vertices or all of them collinear.
func (c *Convex) Degenerate() bool {
	hull := c.Hull()
	if len(hull) < 3 {
		return true
	}
	for i := 2; i < len(hull); i++ {
		if Cross(Subtract(hull[1], hull[0]), Subtract(hull[i], hull[0])) != 0 {
			return false
		}
	}
	return true
}

func (c *Convex) Edges() []Edge {
	if c.edges == nil {
		hull := c.Hull()
		for i, start := range hull {
			nextIndex := i + 1
			if len(hull) <= nextIndex {
				nextIndex = 0
			}
			end := hull[nextIndex]
			dir := vec2d.Sub(&end, &start)
			normal := vec2d.T{dir[1], -dir[0]}
			if normal.Length() > 0 {
				normal.Normalize()
			}
			c.edges = append(c.edges, Edge{
				start,
				end,
				normal})
		}
	}
	return c.edges
}

// Contains reports whether point lies inside the hull or on its boundary.
// A degenerate hull contains nothing.
func (c *Convex) Contains(point vec2d.T) bool {
	if c.Degenerate() {
		return false
	}
	for _, edge := range c.Edges() {
		if OnTheRight(Subtract(point, edge.Start), Subtract(edge.End, edge.Start)) {
			continue
		}
		if Cross(Subtract(point, edge.Start), Subtract(edge.End, edge.Start)) != 0 {
			return false
		}
	}
	return true
}

func (c *Convex) quickHull(points []vec2d.T, start, end vec2d.T) []vec2d.T {
	lhs := c.getLhsPoints(points, start, end)
	if len(lhs) == 0 {
		return []vec2d.T{end}
	}

	farthestPoint := c.getFarthestPoint(lhs, start, end)

	return append(
		c.quickHull(lhs, farthestPoint, end),
		c.quickHull(lhs, start, farthestPoint)...)
}

func Subtract(lhs vec2d.T, rhs vec2d.T) vec2d.T {
	return vec2d.T{lhs[0] - rhs[0], lhs[1] - rhs[1]}
}

func OnTheRight(v vec2d.T, o vec2d.T) bool {
	return Cross(v, o) < 0
}

func Cross(lhs, rhs vec2d.T) float64 {
	return (lhs[0] * rhs[1]) - (lhs[1] * rhs[0])
}

func (c *Convex) getExtremePoints() (minX, maxX vec2d.T) {
	minX = vec2d.T{math.MaxFloat64, 0}
	maxX = vec2d.T{-math.MaxFloat64, 0}

	for _, p := range c.vertices {
		if p[0] < minX[0] || (p[0] == minX[0] && p[1] < minX[1]) {
			minX = p
		}

		if maxX[0] < p[0] || (p[0] == maxX[0] && p[1] > maxX[1]) {
			maxX = p
		}
	}

	return minX, maxX
}

func (c *Convex) getLhsPoints(points []vec2d.T, start, end vec2d.T) []vec2d.T {
	ret := []vec2d.T{}
	for _, point := range points {
		if c.getDistanceIndicator(point, start, end) > 0 {
			ret = append(ret, point)
		}
	}
	return ret
}

func (c *Convex) getDistanceIndicator(point, start, end vec2d.T) float64 {
	vLine := vec2d.Sub(&end, &start)

	vPoint := vec2d.Sub(&point, &start)

	return Cross(vLine, vPoint)
}

func (c *Convex) getFarthestPoint(points []vec2d.T, start, end vec2d.T) (farthestPoint vec2d.T) {
	maxDistanceIndicator := -math.MaxFloat64
	for _, point := range points {
		if d := c.getDistanceIndicator(point, start, end); maxDistanceIndicator < d {
			maxDistanceIndicator = d
			farthestPoint = point
		}
	}

	return farthestPoint
}
