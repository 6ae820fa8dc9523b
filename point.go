package glyphweave

import "fmt"

// Point is a position in document space. The y axis points down, as is
// usual for SVG and raster output.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar returns the point at the given distance from center, in the
// direction of angle, which is expressed in degrees. Angles grow clockwise
// in a y-down space, with 0° pointing along the positive x axis.
func Polar(center Point, radius, angle float64) Point {
	return center.Translate(VecFromDegrees(angle).Mul(radius))
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}
