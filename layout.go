package glyphweave

import (
	"fmt"
	"math"
)

const (
	// MinFontSize is the smallest base font size, in pixels, a layout may
	// use before it is rejected with [ErrInsufficientSpace].
	MinFontSize = 1.0

	minSizeFactor = 0.3
	maxSizeFactor = 2.0
)

// Variation configures noise-driven variation of row font sizes.
type Variation struct {
	Enabled bool
	// Amount is the relative size change at noise value ±1.
	Amount float64
	// Scale converts row indices to noise coordinates.
	Scale float64
}

// PlanConfig describes the rows to plan.
type PlanConfig struct {
	Rows        int
	LineSpacing float64
	Variation   Variation
	// Adaptive spaces rows by their font size instead of evenly.
	Adaptive bool
	// Bleed adds a row just outside the start boundary, for regions that
	// allow it.
	Bleed bool
}

// Row is one planned row.
//
// Regular rows are numbered from 1. A bleed row, if present, has index 0.
type Row struct {
	Index     int
	FontSize  float64
	Placement float64
	Bleed     bool
}

// RowPlan is the ordered list of rows of one layout pass, from the start
// boundary of the region towards its end boundary.
type RowPlan struct {
	Rows []Row
	// Start and End are the boundaries of the region the plan was made
	// for.
	Start, End float64
}

// Count returns the number of regular rows, not counting a bleed row.
func (p RowPlan) Count() int {
	n := len(p.Rows)
	if n > 0 && p.Rows[0].Bleed {
		n--
	}
	return n
}

// Empty reports whether the plan has no rows at all.
func (p RowPlan) Empty() bool { return len(p.Rows) == 0 }

// PlanRows decides font size and placement for cfg.Rows rows within
// region. Font size variation samples field with noise.
//
// When the rows do not fit, PlanRows returns an empty plan and an error
// wrapping [ErrInsufficientSpace].
func PlanRows(region Region, cfg PlanConfig, field *Field, noise NoiseConfig) (RowPlan, error) {
	start, end := region.Bounds()
	plan := RowPlan{Start: start, End: end}
	if err := CheckSpan(region); err != nil {
		return plan, err
	}
	n := cfg.Rows
	if n < 1 {
		return plan, fmt.Errorf("%w: %d rows", ErrInsufficientSpace, n)
	}
	ls := cfg.LineSpacing
	if !(ls > 0) {
		ls = 1
	}
	span := end - start
	base := span / float64(n) * ls
	if base < MinFontSize {
		return plan, fmt.Errorf("%w: %d rows leave a font size of %.3gpx", ErrInsufficientSpace, n, base)
	}

	size := func(index int) float64 {
		if !cfg.Variation.Enabled || field == nil {
			return base
		}
		v := field.Fractal(0, float64(index)*cfg.Variation.Scale, noise)
		return clamp(base*(1+v*cfg.Variation.Amount), minSizeFactor*base, maxSizeFactor*base)
	}

	rows := make([]Row, n, n+1)
	for i := range rows {
		rows[i] = Row{Index: i + 1, FontSize: size(i + 1)}
	}

	var gap float64
	switch {
	case n == 1:
		rows[0].Placement = start + span/2
		gap = base * ls
	case cfg.Adaptive:
		gap = placeAdaptive(rows, start, end, ls)
	default:
		step := span / float64(n-1)
		for i := range rows {
			rows[i].Placement = start + float64(i)*step
		}
		rows[n-1].Placement = end
		gap = step
	}

	if cfg.Bleed {
		p := start - gap
		if region.BleedAllowed(p) {
			rows = append([]Row{{Index: 0, FontSize: size(0), Placement: p, Bleed: true}}, rows...)
		}
	}
	plan.Rows = rows
	return plan, nil
}

// placeAdaptive spaces rows by font size times line spacing, shrinking all
// spacings uniformly when they exceed the span. It returns the spacing of
// the first row.
func placeAdaptive(rows []Row, start, end, ls float64) float64 {
	spacing := make([]float64, len(rows))
	var total float64
	for i, r := range rows {
		spacing[i] = r.FontSize * ls
		total += spacing[i]
	}
	if span := end - start; total > span {
		f := span / total
		for i := range spacing {
			spacing[i] *= f
		}
	}
	pos := start
	for i := range rows {
		rows[i].Placement = math.Min(pos, end)
		pos += spacing[i]
	}
	return spacing[0]
}
