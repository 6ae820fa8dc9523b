package glyphweave

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestArcGeometry(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)
	a := Arc{Center: Pt(0, 0), Radius: 100, StartAngle: 225, EndAngle: 315, Direction: Clockwise}
	diff(t, 90.0, a.SweepAngle(), opt)
	diff(t, 50*math.Pi, a.Length(), opt)
	if a.LargeArc() {
		t.Error("90° arc reported as large")
	}

	// Swapped angles describe the same arc.
	b := a
	b.StartAngle, b.EndAngle = b.EndAngle, b.StartAngle
	diff(t, a.Length(), b.Length(), opt)

	// Sweeps are capped at a full turn.
	c := Arc{Radius: 10, StartAngle: 0, EndAngle: 500}
	diff(t, 360.0, c.SweepAngle(), opt)

	if !(Arc{Radius: 10, StartAngle: 0, EndAngle: 270}).LargeArc() {
		t.Error("270° arc not reported as large")
	}
}

func TestArcEval(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)
	a := Arc{Center: Pt(0, 0), Radius: 100, StartAngle: 180, EndAngle: 270, Direction: Clockwise}
	half := a.Length() / 2

	p, angle := a.Eval(0)
	diff(t, Pt(-100, 0), p, opt)
	diff(t, 270.0, angle, opt)
	diff(t, 225.0, a.Position(half), opt)

	a.Direction = CounterClockwise
	p, angle = a.Eval(0)
	diff(t, Pt(0, -100), p, opt)
	diff(t, 180.0, angle, opt)
	p, _ = a.Eval(a.Length())
	diff(t, Pt(-100, 0), p, opt)
	diff(t, 225.0, a.Position(half), opt)

	// Degenerate arcs evaluate to their center.
	z := Arc{Center: Pt(5, 5), StartAngle: 10, EndAngle: 20}
	p, _ = z.Eval(3)
	diff(t, Pt(5, 5), p, opt)
}

func TestArcPathElements(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)
	a := Arc{Center: Pt(50, 50), Radius: 50, StartAngle: 0, EndAngle: 270, Direction: Clockwise}
	want := []PathElement{
		MoveTo(Pt(100, 50)),
		ArcTo(50, true, true, Pt(50, 0)),
	}
	diff(t, want, slices.Collect(a.PathElements()), opt)

	a.Direction = CounterClockwise
	want = []PathElement{
		MoveTo(Pt(50, 0)),
		ArcTo(50, true, false, Pt(100, 50)),
	}
	diff(t, want, slices.Collect(a.PathElements()), opt)
}

func TestArcBand(t *testing.T) {
	b := ArcBand{Center: Pt(10, 20), OuterRadius: 40, InnerRadius: 200, StartAngle: 200, EndAngle: 340, Direction: CounterClockwise}
	start, end := b.Bounds()
	diff(t, []float64{40, 200}, []float64{start, end})
	want := Arc{Center: Pt(10, 20), Radius: 75, StartAngle: 200, EndAngle: 340, Direction: CounterClockwise}
	diff(t, want, b.Guide(75))
	if b.BleedAllowed(0) {
		t.Error("bleed allowed at radius 0")
	}
	if err := CheckSpan(b); err != nil {
		t.Error(err)
	}
}
