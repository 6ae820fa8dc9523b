package glyphweave

import (
	"fmt"
	"math"
)

// GlyphAdvance estimates the average glyph advance relative to the font
// size.
const GlyphAdvance = 0.4

// WidthClasses are the values of the font width axis glyphs are assigned
// to, from narrowest to widest.
var WidthClasses = [4]int{50, 100, 150, 200}

// GlyphRecord is the classification of one glyph of a row.
type GlyphRecord struct {
	// CharIndex is the index of the glyph in the row's text.
	CharIndex int
	Char      rune
	// Width is one of [WidthClasses].
	Width int
	// Opacity is in percent; fully opaque glyphs use [Opaque].
	Opacity int
}

// ShiftMode selects how the motif is rotated from row to row.
type ShiftMode uint8

const (
	ShiftNone ShiftMode = iota
	ShiftForward
	ShiftBackward
	ShiftRandom
)

func (m ShiftMode) String() string {
	switch m {
	case ShiftNone:
		return "none"
	case ShiftForward:
		return "forward"
	case ShiftBackward:
		return "backward"
	case ShiftRandom:
		return "random"
	default:
		return fmt.Sprintf("ShiftMode(%d)", uint8(m))
	}
}

func ParseShiftMode(s string) (ShiftMode, error) {
	switch s {
	case "none", "":
		return ShiftNone, nil
	case "forward":
		return ShiftForward, nil
	case "backward":
		return ShiftBackward, nil
	case "random":
		return ShiftRandom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShiftMode, s)
	}
}

func (m ShiftMode) MarshalText() ([]byte, error) {
	if m > ShiftRandom {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShiftMode, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *ShiftMode) UnmarshalText(b []byte) error {
	v, err := ParseShiftMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ShiftAmount returns by how many characters the text of row is rotated.
// Only [ShiftRandom] draws from r, exactly once per call; r may be nil for
// the other modes.
func ShiftAmount(mode ShiftMode, row, motifLen int, r *Rand) int {
	if motifLen <= 0 {
		return 0
	}
	switch mode {
	case ShiftForward:
		return mod(row, motifLen)
	case ShiftBackward:
		return motifLen - mod(row, motifLen)
	case ShiftRandom:
		return int(math.Floor(r.Float64() * float64(motifLen)))
	default:
		return 0
	}
}

// Tiling controls how often a motif is repeated along a guide.
type Tiling struct {
	// Safety multiplies the number of repetitions that cover the guide.
	Safety int
	// Minimum is the least number of repetitions.
	Minimum int
	// Ceiling, if positive, caps the number of repetitions.
	Ceiling int
	// MaxGlyphs, if positive, caps the length of the tiled text. At least
	// one repetition is kept.
	MaxGlyphs int
}

// Repetitions returns how many times a motif of motifLen glyphs is
// repeated to cover length at fontSize.
func (t Tiling) Repetitions(motifLen int, fontSize, length float64) int {
	reps := max(t.Minimum, 1)
	motifPx := fontSize * GlyphAdvance * float64(motifLen)
	if motifPx > 0 && length > 0 && !math.IsInf(length, 0) {
		reps = max(int(math.Ceil(length/motifPx))*max(t.Safety, 1), reps)
	}
	if t.Ceiling > 0 {
		reps = min(reps, t.Ceiling)
	}
	if t.MaxGlyphs > 0 && motifLen > 0 {
		reps = max(min(reps, t.MaxGlyphs/motifLen), 1)
	}
	return reps
}

// Tile repeats motif reps times.
func Tile(motif []rune, reps int) []rune {
	out := make([]rune, 0, len(motif)*max(reps, 0))
	for range reps {
		out = append(out, motif...)
	}
	return out
}

// Rotate rotates text left by n characters. Negative n rotates right.
func Rotate(text []rune, n int) []rune {
	out := make([]rune, len(text))
	if len(text) == 0 {
		return out
	}
	n = mod(n, len(text))
	copy(out, text[n:])
	copy(out[len(text)-n:], text[:n])
	return out
}

// Profile bundles the per-family constants of glyph generation.
type Profile struct {
	Tiling  Tiling
	Opacity OpacityProfile
}

// maxRowGlyphs bounds the tiled text of a single row.
const maxRowGlyphs = 20000

// ProfileFor returns the profile of a layout family. Circles cap their
// repetitions, since text along a closed path wraps over its own start.
// Arcs and lines generously overshoot instead, as renderers truncate text
// running past the end of its path. Every family caps the glyphs of a row
// at maxRowGlyphs.
func ProfileFor(f Family) Profile {
	switch f {
	case FamilyCircle:
		return Profile{
			Tiling:  Tiling{Safety: 1, Minimum: 1, Ceiling: 120, MaxGlyphs: maxRowGlyphs},
			Opacity: OpacityProfile{Exponent: 0.6, Levels: 20, Step: 5},
		}
	case FamilyLine:
		return Profile{
			Tiling:  Tiling{Safety: 3, Minimum: 10, MaxGlyphs: maxRowGlyphs},
			Opacity: OpacityProfile{Exponent: 2, Levels: 5, Step: 20},
		}
	default:
		return Profile{
			Tiling:  Tiling{Safety: 3, Minimum: 10, MaxGlyphs: maxRowGlyphs},
			Opacity: OpacityProfile{Exponent: 1.5, Levels: 10, Step: 10},
		}
	}
}

// Mapping controls how noise is sampled and mapped to glyph classes.
type Mapping struct {
	// Positional samples noise at a glyph's quantized position along its
	// guide instead of at its index. The cell index is used as the x
	// coordinate as is, without the noise scale.
	Positional bool
	// GridResolution is the cell size positions are quantized to, in
	// degrees for arcs and circles and pixels for lines.
	GridResolution float64
	// YScale stretches the noise coordinate across rows.
	YScale float64
	// Inverse maps high noise values to narrow glyphs.
	Inverse bool
	// Transparency enables opacity classification.
	Transparency bool
	// Drift moves the noise field along x, per second of animation time.
	Drift float64
}

// RowRequest holds the inputs for generating the glyphs of one row.
type RowRequest struct {
	Guide Guide
	Row   Row
	// Rows is the number of regular rows in the plan.
	Rows    int
	Motif   []rune
	Field   *Field
	Noise   NoiseConfig
	Mapping Mapping
	// Shift is the rotation of the tiled text, see [ShiftAmount].
	Shift   int
	Profile Profile
	// Time is the animation time in seconds.
	Time float64
}

// Text returns the row's tiled and shifted text.
func (req RowRequest) Text() []rune {
	reps := req.Profile.Tiling.Repetitions(len(req.Motif), req.Row.FontSize, req.Guide.Length())
	return Rotate(Tile(req.Motif, reps), req.Shift)
}

// GenerateRow tiles the motif along the row's guide and classifies each
// glyph's width and opacity from noise.
func GenerateRow(req RowRequest) []GlyphRecord {
	if len(req.Motif) == 0 || req.Field == nil {
		return nil
	}
	text := req.Text()
	cfg := req.Noise.Clamp()
	advance := req.Row.FontSize * GlyphAdvance
	res := req.Mapping.GridResolution
	if !(res > 0) {
		res = 1
	}
	ny := float64(req.Row.Index) * cfg.Scale * req.Mapping.YScale
	offset := req.Time * req.Mapping.Drift

	out := make([]GlyphRecord, len(text))
	for i, c := range text {
		var nx float64
		if req.Mapping.Positional {
			nx = math.Floor(req.Guide.Position(float64(i)*advance) / res)
		} else {
			nx = float64(i) * cfg.Scale
		}
		n := Normalize(req.Field.Fractal(nx+offset, ny, cfg))
		if req.Mapping.Inverse {
			n = 1 - n
		}
		bucket := WidthBucket(n)
		opacity := Opaque
		if req.Mapping.Transparency {
			opacity = ClassifyOpacity(n, bucket, req.Row.Index, req.Rows, req.Profile.Opacity)
		}
		out[i] = GlyphRecord{
			CharIndex: i,
			Char:      c,
			Width:     WidthClasses[bucket],
			Opacity:   opacity,
		}
	}
	return out
}

// WidthBucket returns the index into [WidthClasses] for a normalized noise
// value.
func WidthBucket(n float64) int {
	b := int(math.Floor(n * float64(len(WidthClasses))))
	return min(max(b, 0), len(WidthClasses)-1)
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
