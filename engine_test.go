package glyphweave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() Settings {
	s := DefaultSettings()
	s.Seed = "abc123"
	s.Rows = 10
	s.StartAngle, s.EndAngle = 225, 315
	s.NoiseScale = 0.06
	s.Octaves = 3
	s.Persistence = 0.6
	s.Lacunarity = 0.75
	s.Contrast = 0.9
	return s
}

func mustEngine(t *testing.T, token string) *Engine {
	t.Helper()
	seed, err := ParseSeed(token)
	require.NoError(t, err)
	return NewEngine(seed)
}

func TestRenderReproducible(t *testing.T) {
	for _, shift := range []ShiftMode{ShiftNone, ShiftForward, ShiftBackward, ShiftRandom} {
		s := testSettings()
		s.Shift = shift
		s.Transparency = true
		a := mustEngine(t, "abc123").Render(s)
		b := mustEngine(t, "abc123").Render(s)

		require.NoError(t, a.Err)
		assert.Empty(t, a.Warnings)
		assert.Equal(t, 10, a.Plan.Count(), shift.String())
		assert.True(t, a.Equal(b), "%s: independent passes differ", shift)
		assert.Equal(t, a.Plan, b.Plan)
		for i := range a.Rows {
			assert.Equal(t, a.Rows[i].Widths(), b.Rows[i].Widths())
			assert.Equal(t, a.Rows[i].Opacities(), b.Rows[i].Opacities())
			assert.Equal(t, a.Rows[i].Text, b.Rows[i].Text)
		}
	}
}

func TestRenderArtwork(t *testing.T) {
	s := testSettings()
	art := mustEngine(t, "abc123").Render(s)
	require.False(t, art.Empty())
	assert.Equal(t, "abc123", art.Seed)
	assert.Equal(t, "abc123", art.Settings.Seed)

	// The default layout has room for a bleed row inside the inner arc.
	require.Len(t, art.Rows, 11)
	assert.True(t, art.Rows[0].Row.Bleed)
	start, end := art.Plan.Start, art.Plan.End
	for i, r := range art.Rows {
		assert.Equal(t, FamilyArc, r.Guide.Family())
		assert.NotEmpty(t, r.PathData)
		assert.Equal(t, len([]rune(r.Text)), len(r.Glyphs))
		if r.Row.Bleed {
			assert.Less(t, r.Row.Placement, start)
			continue
		}
		assert.Equal(t, i, r.Row.Index)
		assert.GreaterOrEqual(t, r.Row.Placement, start)
		assert.LessOrEqual(t, r.Row.Placement, end)
		for _, g := range r.Glyphs {
			assert.Contains(t, WidthClasses[:], g.Width)
			assert.Equal(t, Opaque, g.Opacity)
		}
	}
	assert.Positive(t, art.Glyphs())
}

func TestRenderSeedsDiffer(t *testing.T) {
	s := testSettings()
	a := mustEngine(t, "abc123").Render(s)
	b := mustEngine(t, "abc124").Render(s)
	assert.False(t, a.Equal(b))
}

func TestRenderSingleRow(t *testing.T) {
	for _, layout := range []Family{FamilyArc, FamilyCircle, FamilyLine} {
		s := testSettings()
		s.Layout = layout
		s.Rows = 1
		art := mustEngine(t, "abc123").Render(s)
		require.NoError(t, art.Err, layout.String())
		assert.Equal(t, 1, art.Plan.Count())
		r := art.Rows[len(art.Rows)-1]
		assert.InDelta(t, (art.Plan.Start+art.Plan.End)/2, r.Row.Placement, 1e-9)
	}
}

func TestRenderInsufficientSpace(t *testing.T) {
	s := testSettings()
	s.InnerDiameterMM = s.OuterDiameterMM
	art := mustEngine(t, "abc123").Render(s)
	assert.True(t, art.Empty())
	assert.True(t, art.InsufficientSpace())
	assert.NotEmpty(t, art.Warnings)
}

func TestRenderLineHasNoBleed(t *testing.T) {
	s := testSettings()
	s.Layout = FamilyLine
	art := mustEngine(t, "abc123").Render(s)
	require.NoError(t, art.Err)
	assert.Len(t, art.Rows, 10)
	for _, r := range art.Rows {
		assert.False(t, r.Row.Bleed)
	}
}

func TestRenderAtDrift(t *testing.T) {
	e := mustEngine(t, "abc123")
	s := testSettings()
	assert.True(t, e.RenderAt(s, 0).Equal(e.RenderAt(s, 3)), "time changed the output without drift")

	s.Drift = 5
	a, b := e.RenderAt(s, 0), e.RenderAt(s, 3)
	assert.Equal(t, 3.0, b.Time)
	assert.False(t, a.Equal(b), "drift did not change the output")
}

func TestRenderReportsAdjustments(t *testing.T) {
	s := testSettings()
	s.Octaves = 40
	art := mustEngine(t, "abc123").Render(s)
	require.NoError(t, art.Err)
	assert.Equal(t, MaxOctaves, art.Settings.Octaves)
	assert.NotEmpty(t, art.Warnings)
}

func TestEngineField(t *testing.T) {
	seed, err := ParseSeed("abc123")
	require.NoError(t, err)
	e := NewEngine(seed)
	assert.Equal(t, seed.Rand().Int63(), e.Field().Seed())

	// Pass streams skip the draw used by the field.
	r := seed.Rand()
	r.Int63()
	assert.Equal(t, r.Uint32(), e.passRand().Uint32())
}
