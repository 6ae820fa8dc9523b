package glyphweave

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a circular arc from the current location to the point.
	ArcToKind
)

// PathElement is one drawing command of a guide path. Guide paths only
// consist of straight lines and circular arcs, which map directly onto SVG
// path commands.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	// The end point of the command.
	P0 Point
	// Radius, LargeArc and Sweep are only used by ArcTo.
	Radius   float64
	LargeArc bool
	Sweep    bool
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ArcToKind:
		return fmt.Sprintf("ArcTo(%g, %t, %t, %s)", el.Radius, el.LargeArc, el.Sweep, el.P0)
	default:
		return "InvalidPathElement"
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// ArcTo draws a circular arc of the given radius to pt. largeArc selects the
// arc spanning more than 180°, sweep selects the clockwise (in y-down
// space) of the two candidate arcs.
func ArcTo(radius float64, largeArc, sweep bool, pt Point) PathElement {
	return PathElement{Kind: ArcToKind, P0: pt, Radius: radius, LargeArc: largeArc, Sweep: sweep}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	flag := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case ArcToKind:
			r := format(el.Radius)
			writef("A%s,%s 0 %d,%d %s,%s",
				r, r,
				flag(el.LargeArc), flag(el.Sweep),
				format(el.P0.X), format(el.P0.Y))
		default:
			panic("unreachable")
		}
	}
	return err
}
