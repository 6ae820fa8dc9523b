package glyphweave

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DocumentOptions specifies optional settings for [WriteDocument].
type DocumentOptions struct {
	// FontFamily names a variable font with a width axis.
	FontFamily string
	// Fill is the text color.
	Fill string
	// Background, if not empty, fills the document.
	Background string
	// ShowGuides strokes the guide paths.
	ShowGuides bool
}

func (opts DocumentOptions) withDefaults() DocumentOptions {
	if opts.FontFamily == "" {
		opts.FontFamily = "sans-serif"
	}
	if opts.Fill == "" {
		opts.Fill = "#111"
	}
	return opts
}

// WriteDocument writes art as an SVG document. Every row becomes a text
// element following its guide path; consecutive glyphs with equal width
// and opacity share a tspan carrying the width as a font variation.
//
// Turning the text into outlines is left to the consumer of the document.
func WriteDocument(w io.Writer, art *Artwork, opts DocumentOptions) error {
	opts = opts.withDefaults()
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	escape := func(s string) string {
		sb := &strings.Builder{}
		xml.EscapeText(sb, []byte(s))
		return sb.String()
	}
	num := func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := art.Settings
	writef("<svg xmlns=%q width=\"%smm\" height=\"%smm\" viewBox=\"0 0 %s %s\">\n",
		"http://www.w3.org/2000/svg",
		num(s.WidthMM), num(s.HeightMM),
		num(art.Bounds.Width()), num(art.Bounds.Height()))
	writef("<desc>seed %s, %s layout, %d rows</desc>\n", escape(art.Seed), s.Layout, art.Plan.Count())
	if opts.Background != "" {
		writef("<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", escape(opts.Background))
	}
	writef("<defs>\n")
	for _, row := range art.Rows {
		writef("<path id=\"%s\" d=\"%s\"/>\n", rowID(row.Row), row.PathData)
	}
	writef("</defs>\n")
	if opts.ShowGuides {
		writef("<g fill=\"none\" stroke=\"#ccc\" stroke-width=\"0.5\">\n")
		for _, row := range art.Rows {
			writef("<use href=\"#%s\"/>\n", rowID(row.Row))
		}
		writef("</g>\n")
	}
	writef("<g font-family=\"%s\" fill=\"%s\">\n", escape(opts.FontFamily), escape(opts.Fill))
	for _, row := range art.Rows {
		writef("<text font-size=\"%s\"><textPath href=\"#%s\">",
			strconv.FormatFloat(row.Row.FontSize, 'f', 2, 64), rowID(row.Row))
		for _, run := range runs(row.Glyphs) {
			writef("<tspan style=\"font-variation-settings:'wdth' %d\"", run.width)
			if run.opacity < Opaque {
				writef(" fill-opacity=\"%s\"", num(float64(run.opacity)/100))
			}
			writef(">%s</tspan>", escape(run.text))
		}
		writef("</textPath></text>\n")
	}
	writef("</g>\n</svg>\n")
	return err
}

func rowID(r Row) string {
	if r.Bleed {
		return "row-bleed"
	}
	return "row-" + strconv.Itoa(r.Index)
}

type glyphRun struct {
	width   int
	opacity int
	text    string
}

// runs groups consecutive glyphs of equal classes.
func runs(glyphs []GlyphRecord) []glyphRun {
	var out []glyphRun
	var sb strings.Builder
	for i, g := range glyphs {
		if i > 0 && (g.Width != glyphs[i-1].Width || g.Opacity != glyphs[i-1].Opacity) {
			prev := glyphs[i-1]
			out = append(out, glyphRun{prev.Width, prev.Opacity, sb.String()})
			sb.Reset()
		}
		sb.WriteRune(g.Char)
	}
	if n := len(glyphs); n > 0 {
		out = append(out, glyphRun{glyphs[n-1].Width, glyphs[n-1].Opacity, sb.String()})
	}
	return out
}
