package render

import "github.com/iburimskiy/rosette-field/internal/geom"

// Bezier is one cubic segment: From, two control points, To.
type Bezier struct {
	From, C1, C2, To geom.Vec2
}

// CatmullRom converts a polyline into cubic Bézier segments of a uniform
// Catmull-Rom spline through every point. The end points are duplicated
// as their own neighbours so the curve starts and ends on them.
func CatmullRom(points []geom.Vec2) []Bezier {
	if len(points) < 2 {
		return nil
	}
	last := len(points) - 1
	out := make([]Bezier, 0, last)
	for i := 0; i < last; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, last)]
		out = append(out, Bezier{
			From: p1,
			C1:   p1.Add(p2.Sub(p0).Scale(1.0 / 6)),
			C2:   p2.Sub(p3.Sub(p1).Scale(1.0 / 6)),
			To:   p2,
		})
	}
	return out
}
