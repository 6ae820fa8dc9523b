// Package preview rasterizes artworks for quick inspection.
//
// Glyphs are not drawn with a font. Each glyph becomes a mark along its
// row's guide whose width follows the glyph's width class and whose alpha
// follows its opacity class, which is enough to judge the noise pattern
// without the final typeface.
package preview

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"honnef.co/go/glyphweave"
)

// markHeight is the height of a glyph mark relative to the font size.
const markHeight = 0.7

// guideStep is the sampling distance, in document pixels, used to stroke
// guides.
const guideStep = 2.0

// Options specifies optional settings for [Render].
type Options struct {
	// Scale is the number of output pixels per document pixel. Zero means 1.
	Scale      float64
	Background color.Color
	Ink        color.Color
	// Guides strokes every row's guide path.
	Guides bool
}

func (opts Options) withDefaults() Options {
	if !(opts.Scale > 0) {
		opts.Scale = 1
	}
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Ink == nil {
		opts.Ink = color.Black
	}
	return opts
}

// Render draws art and returns the image.
func Render(art *glyphweave.Artwork, opts Options) image.Image {
	return draw(art, opts).Image()
}

// WritePNG draws art and writes it to w as a PNG.
func WritePNG(w io.Writer, art *glyphweave.Artwork, opts Options) error {
	return draw(art, opts).EncodePNG(w)
}

func draw(art *glyphweave.Artwork, opts Options) *gg.Context {
	opts = opts.withDefaults()
	w := max(int(math.Ceil(art.Bounds.Width()*opts.Scale)), 1)
	h := max(int(math.Ceil(art.Bounds.Height()*opts.Scale)), 1)
	dc := gg.NewContext(w, h)
	dc.SetColor(opts.Background)
	dc.Clear()
	dc.Scale(opts.Scale, opts.Scale)

	r, g, b := rgb(opts.Ink)
	if opts.Guides {
		dc.SetRGBA(r, g, b, 0.15)
		dc.SetLineWidth(1 / opts.Scale)
		for _, row := range art.Rows {
			strokeGuide(dc, row.Guide)
		}
	}
	for _, row := range art.Rows {
		drawRow(dc, art.Bounds, row, r, g, b)
	}
	return dc
}

func strokeGuide(dc *gg.Context, guide glyphweave.Guide) {
	length := guide.Length()
	n := max(int(math.Ceil(length/guideStep)), 1)
	for i := 0; i <= n; i++ {
		p, _ := guide.Eval(length * float64(i) / float64(n))
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.Stroke()
}

// drawRow places one mark per glyph, advancing by the estimated glyph
// advance, and returns the number of marks drawn. Glyphs running past the
// end of the guide are dropped, as a textPath renderer would, and so are
// marks that cannot reach into bounds.
func drawRow(dc *gg.Context, bounds glyphweave.Rect, row glyphweave.RenderedRow, r, g, b float64) int {
	advance := row.Row.FontSize * glyphweave.GlyphAdvance
	if !(advance > 0) {
		return 0
	}
	length := row.Guide.Length()
	height := row.Row.FontSize * markHeight
	reach := glyphweave.Rect{
		X0: bounds.X0 - height,
		Y0: bounds.Y0 - height,
		X1: bounds.X1 + height,
		Y1: bounds.Y1 + height,
	}
	var n int
	for i, glyph := range row.Glyphs {
		s := float64(i)*advance + advance/2
		if s > length {
			break
		}
		p, angle := row.Guide.Eval(s)
		if !reach.Contains(p) {
			continue
		}
		n++
		width := advance * float64(glyph.Width) / 100 * 0.5
		dc.Push()
		dc.Translate(p.X, p.Y)
		dc.Rotate(gg.Radians(angle))
		dc.DrawRectangle(-width/2, -height, width, height)
		dc.SetRGBA(r, g, b, float64(glyph.Opacity)/100)
		dc.Fill()
		dc.Pop()
	}
	return n
}

func rgb(c color.Color) (r, g, b float64) {
	cr, cg, cb, _ := c.RGBA()
	return float64(cr) / 0xffff, float64(cg) / 0xffff, float64(cb) / 0xffff
}
