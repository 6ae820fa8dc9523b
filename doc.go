// Package glyphweave lays repeating glyph sequences along guide paths and
// modulates each glyph's weight and opacity with fractal noise, producing
// the symbolic description of a piece of vector artwork.
//
// # Pipeline
//
// A layout pass turns a [Seed] and [Settings] into an [Artwork]:
//
//   - The seed's random stream ([Seed.Rand]) seeds a noise [Field].
//   - The settings describe a [Region]: a band of concentric arcs
//     ([ArcBand]), a ring of full circles ([Ring]) or a band of horizontal
//     lines ([Band]).
//   - [PlanRows] decides how many rows fit the region, their font sizes and
//     where along the region's sweep axis they sit.
//   - For every row, [GenerateRow] tiles the motif along the row's [Guide],
//     rotates it according to the [ShiftMode] and classifies every glyph's
//     width and opacity by sampling the noise field.
//
// [Engine] runs passes for one seed, [Controller] owns mutable settings and
// hands out copies to passes, and [Scheduler] throttles passes for
// animations.
//
// # Determinism
//
// Identical seed tokens and settings produce identical artworks. Passes
// draw from the seed's random stream in a fixed order: one draw (two 32-bit
// outputs) seeds the noise field, then every row draws once in plan order
// if the shift mode is [ShiftRandom].
//
// # Coordinates
//
// Geometry uses pixels in a y-down space with the origin at the top left
// corner of the document. Angles are in degrees and grow clockwise, with 0°
// pointing along the positive x axis. Settings express lengths in
// millimeters; [Document] converts them using the configured DPI.
//
// # Noise
//
// [Field.Fractal] sums octaves of OpenSimplex noise without dividing by the
// total amplitude, so the range of raw values depends on the octave count
// and persistence. Contrast is applied afterwards and the result is clamped
// to [-1, 1].
//
// # Output
//
// An [Artwork] lists rows of [GlyphRecord] values together with each row's
// guide as SVG path data. [WriteDocument] writes the artwork as an SVG
// document using textPath elements and font variations; the preview
// package rasterizes it. Turning glyphs into outlines is left to other
// tools.
//
// # Errors
//
// Nothing in a pass is fatal. Malformed seed tokens are replaced by fresh
// seeds ([ResolveSeed]), out-of-range settings are clamped
// ([Settings.Normalize]), and regions too small for the requested rows
// yield an empty artwork whose Err wraps [ErrInsufficientSpace].
package glyphweave
