package glyphweave

import "math"

const mmPerInch = 25.4

// Rect is an axis-aligned rectangle, used for document bounds.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Contains reports whether pt lies inside the rectangle. Points on the
// lower and right edges are not considered inside.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Document describes the physical size of the artwork.
type Document struct {
	WidthMM  float64
	HeightMM float64
	DPI      float64
}

// Scale returns the number of pixels per millimeter.
func (d Document) Scale() float64 {
	return d.DPI / mmPerInch
}

// PX converts a length in millimeters to pixels.
func (d Document) PX(mm float64) float64 {
	return mm * d.Scale()
}

// Bounds returns the document's extent in pixels, with the origin at the
// top left corner. Sizes are rounded to whole pixels.
func (d Document) Bounds() Rect {
	return Rect{
		X1: math.Round(d.PX(d.WidthMM)),
		Y1: math.Round(d.PX(d.HeightMM)),
	}
}
