package glyphweave

import "math"

// Opaque is the opacity class of fully opaque glyphs.
const Opaque = 100

// OpacityProfile controls how glyphs fade out across rows.
type OpacityProfile struct {
	// Exponent shapes the row falloff, ((row-1)/(rows-1))^Exponent.
	Exponent float64
	// Levels is the number of discrete opacity levels below full opacity.
	Levels int
	// Step is the opacity difference between levels, in percent.
	Step int
}

// Per width bucket, narrow to wide: how much noise and row position
// contribute to a glyph's opacity. Wider glyphs follow the row position
// more closely.
var opacityWeights = [4]struct{ noise, row float64 }{
	{0.8, 0.2},
	{0.6, 0.4},
	{0.4, 0.6},
	{0.2, 0.8},
}

// Per width bucket, the blended opacity above which a glyph is drawn fully
// opaque.
var opacityThresholds = [4]float64{0.70, 0.60, 0.50, 0.40}

// RowFactor returns how far row is along the plan, shaped by exponent: 0
// for the first regular row, 1 for the last. Layouts with a single row
// always return 0.
func RowFactor(row, rows int, exponent float64) float64 {
	if rows <= 1 {
		return 0
	}
	f := clamp(float64(row-1)/float64(rows-1), 0, 1)
	return math.Pow(f, exponent)
}

// ClassifyOpacity returns the opacity class of a glyph, in percent, given
// its normalized noise value n, its width bucket and its row.
func ClassifyOpacity(n float64, bucket, row, rows int, p OpacityProfile) int {
	bucket = min(max(bucket, 0), len(opacityWeights)-1)
	w := opacityWeights[bucket]
	noiseOpacity := 1 - n
	rowOpacity := 1 - RowFactor(row, rows, p.Exponent)
	blended := w.noise*noiseOpacity + w.row*rowOpacity
	if blended > opacityThresholds[bucket] {
		return Opaque
	}
	levels := max(p.Levels, 1)
	level := int(math.Floor(blended * float64(levels)))
	level = min(max(level, 0), levels-1)
	return min(Opaque, (level+1)*max(p.Step, 1))
}
