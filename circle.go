package glyphweave

import (
	"iter"
	"math"
)

// circleStart is the angle full circle guides start at: the leftmost point
// of the circle.
const circleStart = 180.0

// Circle is a full circle guide.
type Circle struct {
	Center    Point
	Radius    float64
	Direction Direction
}

func (c Circle) Family() Family { return FamilyCircle }

func (c Circle) Length() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

// PathElements describes the circle as two half arcs. A single SVG arc
// command cannot describe a full circle, as its start and end points would
// coincide.
func (c Circle) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		r := math.Abs(c.Radius)
		sweep := c.Direction != CounterClockwise
		left := Polar(c.Center, r, circleStart)
		right := Polar(c.Center, r, circleStart+180)
		_ = yield(MoveTo(left)) &&
			yield(ArcTo(r, false, sweep, right)) &&
			yield(ArcTo(r, false, sweep, left))
	}
}

func (c Circle) angleAt(s float64) float64 {
	if c.Radius == 0 {
		return circleStart
	}
	return circleStart + radToDeg(s/math.Abs(c.Radius))*c.Direction.sign()
}

func (c Circle) Eval(s float64) (Point, float64) {
	th := c.angleAt(s)
	return Polar(c.Center, math.Abs(c.Radius), th), th + 90*c.Direction.sign()
}

// Position returns the angle at s in the range [0, 360). Text running past
// a full lap maps onto the positions of the first lap.
func (c Circle) Position(s float64) float64 {
	th := math.Mod(c.angleAt(s), 360)
	if th < 0 {
		th += 360
	}
	return th
}

// Ring is the region between two concentric circles.
type Ring struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
	Direction   Direction
}

func (r Ring) Family() Family { return FamilyCircle }

func (r Ring) Bounds() (float64, float64) {
	return min(r.InnerRadius, r.OuterRadius), max(r.InnerRadius, r.OuterRadius)
}

func (r Ring) Guide(radius float64) Guide {
	return Circle{
		Center:    r.Center,
		Radius:    radius,
		Direction: r.Direction,
	}
}

func (r Ring) BleedAllowed(radius float64) bool {
	return radius > 0
}
