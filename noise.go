package glyphweave

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

const (
	MinOctaves = 1
	MaxOctaves = 6
)

// NoiseConfig controls fractal noise sampling.
type NoiseConfig struct {
	// Scale converts glyph and row indices to noise coordinates.
	Scale float64
	// Octaves is the number of summed samples, in [1, 6].
	Octaves int
	// Persistence is the amplitude factor between octaves, in [0, 1].
	Persistence float64
	// Lacunarity is the frequency factor between octaves.
	Lacunarity float64
	// Contrast shapes the result as sign(v)·|v|^Contrast.
	Contrast float64
}

// Clamp returns the config with every field moved into its valid range.
// Non-positive lacunarity and contrast fall back to 2 and 1 respectively.
func (cfg NoiseConfig) Clamp() NoiseConfig {
	cfg.Octaves = min(max(cfg.Octaves, MinOctaves), MaxOctaves)
	cfg.Persistence = clamp(cfg.Persistence, 0, 1)
	if !(cfg.Lacunarity > 0) {
		cfg.Lacunarity = 2
	}
	if !(cfg.Contrast > 0) {
		cfg.Contrast = 1
	}
	if !(cfg.Scale >= 0) {
		cfg.Scale = 0
	}
	return cfg
}

// Field is a seeded 2D coherent noise field.
type Field struct {
	seed  int64
	noise opensimplex.Noise
}

// NewField returns the noise field for seed. Fields with equal seeds sample
// identical values.
func NewField(seed int64) *Field {
	return &Field{
		seed:  seed,
		noise: opensimplex.New(seed),
	}
}

// Seed returns the seed the field was created with.
func (f *Field) Seed() int64 { return f.seed }

// Sample2D returns single-octave noise at (x, y), in [-1, 1].
func (f *Field) Sample2D(x, y float64) float64 {
	return clamp(f.noise.Eval2(x, y), -1, 1)
}

// Fractal sums cfg.Octaves samples of [Field.Sample2D] at increasing
// frequency and decreasing amplitude, applies contrast and clamps the
// result to [-1, 1].
//
// The sum is not divided by the total amplitude. Adding octaves widens the
// range of values before clamping.
func (f *Field) Fractal(x, y float64, cfg NoiseConfig) float64 {
	cfg = cfg.Clamp()
	var v float64
	amplitude, frequency := 1.0, 1.0
	for range cfg.Octaves {
		v += amplitude * f.Sample2D(x*frequency, y*frequency)
		amplitude *= cfg.Persistence
		frequency *= cfg.Lacunarity
	}
	if cfg.Contrast != 1 {
		v = math.Copysign(math.Pow(math.Abs(v), cfg.Contrast), v)
	}
	return clamp(v, -1, 1)
}

// Normalize maps a noise value from [-1, 1] to [0, 1].
func Normalize(v float64) float64 {
	return clamp((v+1)/2, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return min(max(v, lo), hi)
}
