package glyphweave

import (
	"iter"
	"math"
)

// Line is a horizontal line guide at height Y, reading from X0 to X1.
type Line struct {
	Y  float64
	X0 float64
	X1 float64
}

func (l Line) Family() Family { return FamilyLine }

// Length returns the length of the line.
func (l Line) Length() float64 {
	return math.Abs(l.X1 - l.X0)
}

func (l Line) Start() Point { return Pt(l.X0, l.Y) }
func (l Line) End() Point   { return Pt(l.X1, l.Y) }

func (l Line) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.Start())) &&
			yield(LineTo(l.End()))
	}
}

func (l Line) dir() float64 {
	if l.X1 < l.X0 {
		return -1
	}
	return 1
}

func (l Line) Eval(s float64) (Point, float64) {
	if l.dir() < 0 {
		return Pt(l.X0-s, l.Y), 180
	}
	return Pt(l.X0+s, l.Y), 0
}

func (l Line) Position(s float64) float64 {
	return l.X0 + s*l.dir()
}

// Band is the region between two horizontal lines. Rows are placed at y
// coordinates between Top and Bottom.
type Band struct {
	Top    float64
	Bottom float64
	X0     float64
	X1     float64
}

func (b Band) Family() Family { return FamilyLine }

func (b Band) Bounds() (float64, float64) {
	return min(b.Top, b.Bottom), max(b.Top, b.Bottom)
}

func (b Band) Guide(y float64) Guide {
	return Line{Y: y, X0: b.X0, X1: b.X1}
}

// BleedAllowed always reports false; bleed rows only exist for arcs and
// circles.
func (b Band) BleedAllowed(float64) bool {
	return false
}
