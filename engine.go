package glyphweave

import (
	"errors"
	"slices"
)

// pathPrecision is the number of decimals of coordinates in path data.
const pathPrecision = 3

// Engine runs layout passes for one seed. It holds no other state; every
// pass is a pure function of the seed, the settings and the time.
//
// An Engine is safe for concurrent use.
type Engine struct {
	seed  Seed
	field *Field
}

// NewEngine returns the engine for seed. The noise field is seeded from the
// first draw of the seed's random stream.
func NewEngine(seed Seed) *Engine {
	return &Engine{
		seed:  seed,
		field: NewField(seed.Rand().Int63()),
	}
}

func (e *Engine) Seed() Seed    { return e.seed }
func (e *Engine) Field() *Field { return e.field }

// passRand returns the random stream for one pass, positioned after the
// draw used to seed the noise field.
func (e *Engine) passRand() *Rand {
	r := e.seed.Rand()
	r.Int63()
	return r
}

// RenderedRow is one row of output, ready for a renderer.
type RenderedRow struct {
	Row   Row
	Guide Guide
	// PathData is the guide as SVG path data.
	PathData string
	// Text is the row's tiled and shifted text.
	Text   string
	Glyphs []GlyphRecord
}

// Artwork is the result of one layout pass.
type Artwork struct {
	Seed string
	// Settings are the normalized settings the pass used.
	Settings Settings
	Bounds   Rect
	Plan     RowPlan
	Rows     []RenderedRow
	// Time is the animation time of the pass, in seconds.
	Time float64
	// Warnings lists recoverable problems: adjusted settings, a replaced
	// seed, or rows that did not fit.
	Warnings []string
	// Err is the reason an artwork has no rows, if any. It wraps
	// [ErrInsufficientSpace].
	Err error
}

// Empty reports whether the artwork has no rows.
func (a *Artwork) Empty() bool { return len(a.Rows) == 0 }

// Glyphs returns the number of glyphs across all rows.
func (a *Artwork) Glyphs() int {
	var n int
	for _, r := range a.Rows {
		n += len(r.Glyphs)
	}
	return n
}

// Render runs a layout pass at time zero.
func (e *Engine) Render(s Settings) *Artwork {
	return e.RenderAt(s, 0)
}

// RenderAt runs a layout pass at animation time t, in seconds.
//
// Rows are generated in plan order, starting with the bleed row. With
// [ShiftRandom], every row consumes one draw of the pass's random stream in
// that order.
func (e *Engine) RenderAt(s Settings, t float64) *Artwork {
	s, adj := s.Normalize()
	s.Seed = e.seed.Token()
	region := s.Region()
	art := &Artwork{
		Seed:     e.seed.Token(),
		Settings: s,
		Bounds:   s.Document().Bounds(),
		Time:     t,
	}
	for _, a := range adj {
		art.Warnings = append(art.Warnings, a.String())
	}

	plan, err := PlanRows(region, s.PlanConfig(), e.field, s.NoiseConfig())
	art.Plan = plan
	if err != nil {
		art.Err = err
		art.Warnings = append(art.Warnings, err.Error())
		return art
	}

	rng := e.passRand()
	motif := []rune(s.Motif)
	profile := ProfileFor(s.Layout)
	rows := plan.Count()
	art.Rows = make([]RenderedRow, 0, len(plan.Rows))
	for _, row := range plan.Rows {
		g := region.Guide(row.Placement)
		req := RowRequest{
			Guide:   g,
			Row:     row,
			Rows:    rows,
			Motif:   motif,
			Field:   e.field,
			Noise:   s.NoiseConfig(),
			Mapping: s.Mapping(),
			Shift:   ShiftAmount(s.Shift, row.Index, len(motif), rng),
			Profile: profile,
			Time:    t,
		}
		art.Rows = append(art.Rows, RenderedRow{
			Row:      row,
			Guide:    g,
			PathData: SVG(g.PathElements(), SVGOptions{MaxPrecision: pathPrecision}),
			Text:     string(req.Text()),
			Glyphs:   GenerateRow(req),
		})
	}
	return art
}

// InsufficientSpace reports whether the artwork is empty because its rows
// did not fit.
func (a *Artwork) InsufficientSpace() bool {
	return errors.Is(a.Err, ErrInsufficientSpace)
}

// Widths returns the width classes of a row's glyphs, in order.
func (r RenderedRow) Widths() []int {
	out := make([]int, len(r.Glyphs))
	for i, g := range r.Glyphs {
		out[i] = g.Width
	}
	return out
}

// Opacities returns the opacity classes of a row's glyphs, in order.
func (r RenderedRow) Opacities() []int {
	out := make([]int, len(r.Glyphs))
	for i, g := range r.Glyphs {
		out[i] = g.Opacity
	}
	return out
}

// Equal reports whether two artworks have identical plans and glyphs.
func (a *Artwork) Equal(b *Artwork) bool {
	if a.Seed != b.Seed || len(a.Rows) != len(b.Rows) || !slices.Equal(a.Plan.Rows, b.Plan.Rows) {
		return false
	}
	for i := range a.Rows {
		if a.Rows[i].PathData != b.Rows[i].PathData || !slices.Equal(a.Rows[i].Glyphs, b.Rows[i].Glyphs) {
			return false
		}
	}
	return true
}
