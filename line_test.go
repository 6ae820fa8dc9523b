package glyphweave

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineEval(t *testing.T) {
	l := Line{Y: 50, X0: 10, X1: 110}
	if got := l.Length(); got != 100 {
		t.Errorf("got length %v, want 100", got)
	}
	p, angle := l.Eval(25)
	diff(t, Pt(35, 50), p)
	if angle != 0 {
		t.Errorf("got angle %v, want 0", angle)
	}
	if got := l.Position(25); got != 35 {
		t.Errorf("got position %v, want 35", got)
	}

	rev := Line{Y: 50, X0: 110, X1: 10}
	p, angle = rev.Eval(25)
	diff(t, Pt(85, 50), p)
	if angle != 180 {
		t.Errorf("got angle %v, want 180", angle)
	}
	if got := rev.Position(25); got != 85 {
		t.Errorf("got position %v, want 85", got)
	}
}

func TestLinePath(t *testing.T) {
	l := Line{Y: 20, X0: 0, X1: 300}
	want := []PathElement{MoveTo(Pt(0, 20)), LineTo(Pt(300, 20))}
	diff(t, want, slices.Collect(l.PathElements()))
	if got := SVG(l.PathElements(), SVGOptions{}); got != "M0,20 L300,20" {
		t.Errorf("got path data %q", got)
	}
}

func TestBand(t *testing.T) {
	b := Band{Top: 200, Bottom: 40, X0: 10, X1: 90}
	start, end := b.Bounds()
	diff(t, []float64{40, 200}, []float64{start, end})
	if b.BleedAllowed(20) {
		t.Error("line bands must not allow bleed rows")
	}
	diff(t, Line{Y: 120, X0: 10, X1: 90}, b.Guide(120), cmpopts.EquateApprox(0, 1e-12))
	if err := CheckSpan(Band{Top: 10, Bottom: 11}); err == nil {
		t.Error("expected an error for a band narrower than the minimum span")
	}
}
