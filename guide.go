package glyphweave

import (
	"fmt"
	"iter"
)

// MinSpan is the smallest radial or vertical span, in pixels, that can hold
// rows. Regions with a smaller span are rejected with [ErrInsufficientSpace].
const MinSpan = 2.0

// Family identifies the kind of guide path a layout uses.
type Family uint8

const (
	FamilyArc Family = iota + 1
	FamilyCircle
	FamilyLine
)

func (f Family) String() string {
	switch f {
	case FamilyArc:
		return "arc"
	case FamilyCircle:
		return "circle"
	case FamilyLine:
		return "line"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// ParseFamily parses the textual representation of a family.
func ParseFamily(s string) (Family, error) {
	switch s {
	case "arc":
		return FamilyArc, nil
	case "circle":
		return FamilyCircle, nil
	case "line":
		return FamilyLine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
	}
}

func (f Family) MarshalText() ([]byte, error) {
	if f < FamilyArc || f > FamilyLine {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFamily, uint8(f))
	}
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(b []byte) error {
	v, err := ParseFamily(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Direction is the reading direction of text along arcs and circles.
type Direction uint8

const (
	Clockwise Direction = iota + 1
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "clockwise", "cw":
		return Clockwise, nil
	case "counterclockwise", "ccw":
		return CounterClockwise, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	if d != Clockwise && d != CounterClockwise {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// sign returns 1 for clockwise and -1 for counterclockwise travel.
func (d Direction) sign() float64 {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

// Guide is a single guide path that one row of glyphs is laid along.
//
// All guides are parametrized by arc length s, measured from the start of
// the path in its reading direction.
type Guide interface {
	Family() Family
	// Length returns the length of the path.
	Length() float64
	// PathElements returns the path as a sequence of drawing commands.
	PathElements() iter.Seq[PathElement]
	// Eval returns the point at arc length s and the direction of travel
	// at that point, in degrees.
	Eval(s float64) (Point, float64)
	// Position returns the positional coordinate of arc length s that
	// noise is sampled at: the absolute angle in degrees for arcs and
	// circles, and the absolute x coordinate for lines.
	Position(s float64) float64
}

var (
	_ Guide = Arc{}
	_ Guide = Circle{}
	_ Guide = Line{}
)

// Region is the area a family of guides sweeps across. Rows are placed at
// positions along the sweep axis, which is the radius for arcs and circles
// and the y coordinate for lines.
type Region interface {
	Family() Family
	// Bounds returns the inner and outer boundary along the sweep axis.
	Bounds() (start, end float64)
	// Guide returns the guide path for a row placed at placement.
	Guide(placement float64) Guide
	// BleedAllowed reports whether a bleed row can be placed at
	// placement, just outside the start boundary.
	BleedAllowed(placement float64) bool
}

var (
	_ Region = ArcBand{}
	_ Region = Ring{}
	_ Region = Band{}
)

// Span returns the usable span of a region.
func Span(r Region) float64 {
	start, end := r.Bounds()
	return end - start
}

// CheckSpan returns [ErrInsufficientSpace] if the region is too small to
// hold any rows.
func CheckSpan(r Region) error {
	if span := Span(r); !(span >= MinSpan) {
		return fmt.Errorf("%w: %s span of %.3gpx is below %gpx", ErrInsufficientSpace, r.Family(), span, MinSpan)
	}
	return nil
}
