package glyphweave

import (
	"iter"
	"math"
)

// Arc is a circular arc guide. The arc covers the angles between
// StartAngle and EndAngle, in degrees. Text reads from StartAngle to
// EndAngle when Direction is [Clockwise], and the other way around
// otherwise.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Direction  Direction
}

func (a Arc) Family() Family { return FamilyArc }

// angles returns the arc's angles ordered so that a0 <= a1.
func (a Arc) angles() (a0, a1 float64) {
	a0, a1 = a.StartAngle, a.EndAngle
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	if a1-a0 > 360 {
		a1 = a0 + 360
	}
	return a0, a1
}

// SweepAngle returns the angle covered by the arc, in degrees.
func (a Arc) SweepAngle() float64 {
	a0, a1 := a.angles()
	return a1 - a0
}

// LargeArc reports whether the arc spans more than 180°.
func (a Arc) LargeArc() bool {
	return a.SweepAngle() > 180
}

// Endpoints returns the first and last point of the arc in reading order.
func (a Arc) Endpoints() (Point, Point) {
	a0, a1 := a.angles()
	p0, p1 := Polar(a.Center, a.Radius, a0), Polar(a.Center, a.Radius, a1)
	if a.Direction == CounterClockwise {
		return p1, p0
	}
	return p0, p1
}

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return math.Abs(a.Radius) * degToRad(a.SweepAngle())
}

func (a Arc) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0, p1 := a.Endpoints()
		_ = yield(MoveTo(p0)) &&
			yield(ArcTo(a.Radius, a.LargeArc(), a.Direction != CounterClockwise, p1))
	}
}

func (a Arc) angleAt(s float64) float64 {
	a0, a1 := a.angles()
	if a.Radius == 0 {
		return a0
	}
	d := radToDeg(s / math.Abs(a.Radius))
	if a.Direction == CounterClockwise {
		return a1 - d
	}
	return a0 + d
}

func (a Arc) Eval(s float64) (Point, float64) {
	th := a.angleAt(s)
	return Polar(a.Center, a.Radius, th), th + 90*a.Direction.sign()
}

func (a Arc) Position(s float64) float64 {
	return a.angleAt(s)
}

// ArcBand is the region between two concentric arcs. Rows are placed at
// radii between InnerRadius and OuterRadius.
type ArcBand struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
	StartAngle  float64
	EndAngle    float64
	Direction   Direction
}

func (b ArcBand) Family() Family { return FamilyArc }

func (b ArcBand) Bounds() (float64, float64) {
	return min(b.InnerRadius, b.OuterRadius), max(b.InnerRadius, b.OuterRadius)
}

func (b ArcBand) Guide(radius float64) Guide {
	return Arc{
		Center:     b.Center,
		Radius:     radius,
		StartAngle: b.StartAngle,
		EndAngle:   b.EndAngle,
		Direction:  b.Direction,
	}
}

func (b ArcBand) BleedAllowed(radius float64) bool {
	return radius > 0
}
