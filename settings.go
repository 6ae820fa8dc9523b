package glyphweave

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SettingsVersion is the current version of the [Settings] layout.
const SettingsVersion = 1

const (
	maxRows      = 400
	maxMotifLen  = 64
	defaultMotif = "WEAV"
	minDPI       = 36
	maxDPI       = 1200
	maxFrameRate = 120
)

// Settings is the complete, flat configuration of one sketch. It is a
// value type: passes never observe later changes to a Settings they were
// given.
//
// Lengths are in millimeters, angles in degrees.
type Settings struct {
	Version int    `json:"version" toml:"version"`
	Seed    string `json:"seed" toml:"seed"`

	Layout Family `json:"layout" toml:"layout"`
	Motif  string `json:"motif" toml:"motif"`

	// Document.
	WidthMM  float64 `json:"widthMM" toml:"width_mm"`
	HeightMM float64 `json:"heightMM" toml:"height_mm"`
	DPI      float64 `json:"dpi" toml:"dpi"`

	// Arc and circle geometry. The center is given relative to the
	// document size.
	CenterX         float64   `json:"centerX" toml:"center_x"`
	CenterY         float64   `json:"centerY" toml:"center_y"`
	OuterDiameterMM float64   `json:"outerDiameterMM" toml:"outer_diameter_mm"`
	InnerDiameterMM float64   `json:"innerDiameterMM" toml:"inner_diameter_mm"`
	StartAngle      float64   `json:"startAngle" toml:"start_angle"`
	EndAngle        float64   `json:"endAngle" toml:"end_angle"`
	Direction       Direction `json:"direction" toml:"direction"`

	// Line geometry.
	MarginTopMM    float64 `json:"marginTopMM" toml:"margin_top_mm"`
	MarginBottomMM float64 `json:"marginBottomMM" toml:"margin_bottom_mm"`
	MarginSideMM   float64 `json:"marginSideMM" toml:"margin_side_mm"`

	// Rows.
	Rows                int     `json:"rows" toml:"rows"`
	LineSpacing         float64 `json:"lineSpacing" toml:"line_spacing"`
	AdaptiveSpacing     bool    `json:"adaptiveSpacing" toml:"adaptive_spacing"`
	Bleed               bool    `json:"bleed" toml:"bleed"`
	FontSizeVariation   bool    `json:"fontSizeVariation" toml:"font_size_variation"`
	FontVariationAmount float64 `json:"fontVariationAmount" toml:"font_variation_amount"`
	FontVariationScale  float64 `json:"fontVariationScale" toml:"font_variation_scale"`

	// Noise.
	NoiseScale  float64 `json:"noiseScale" toml:"noise_scale"`
	Octaves     int     `json:"octaves" toml:"octaves"`
	Persistence float64 `json:"persistence" toml:"persistence"`
	Lacunarity  float64 `json:"lacunarity" toml:"lacunarity"`
	Contrast    float64 `json:"contrast" toml:"contrast"`

	// Glyph classification.
	PositionalNoise bool      `json:"positionalNoise" toml:"positional_noise"`
	GridResolution  float64   `json:"gridResolution" toml:"grid_resolution"`
	YScale          float64   `json:"yScale" toml:"y_scale"`
	InverseWidth    bool      `json:"inverseWidth" toml:"inverse_width"`
	Transparency    bool      `json:"transparency" toml:"transparency"`
	Shift           ShiftMode `json:"shift" toml:"shift"`

	// Animation.
	Drift     float64 `json:"drift" toml:"drift"`
	FrameRate float64 `json:"frameRate" toml:"frame_rate"`
}

// DefaultSettings returns the documented defaults: a 90° arc of ten rows
// across the top of an A3 landscape sheet.
func DefaultSettings() Settings {
	return Settings{
		Version: SettingsVersion,
		Layout:  FamilyArc,
		Motif:   defaultMotif,

		WidthMM:  420,
		HeightMM: 297,
		DPI:      96,

		CenterX:         0.5,
		CenterY:         0.85,
		OuterDiameterMM: 500,
		InnerDiameterMM: 160,
		StartAngle:      225,
		EndAngle:        315,
		Direction:       Clockwise,

		MarginTopMM:    20,
		MarginBottomMM: 20,
		MarginSideMM:   20,

		Rows:                10,
		LineSpacing:         1,
		AdaptiveSpacing:     true,
		Bleed:               true,
		FontVariationAmount: 0.5,
		FontVariationScale:  0.3,

		NoiseScale:  0.06,
		Octaves:     3,
		Persistence: 0.6,
		Lacunarity:  0.75,
		Contrast:    0.9,

		GridResolution: 2,
		YScale:         1,

		FrameRate: 30,
	}
}

// Adjustment records a setting that [Settings.Normalize] changed.
type Adjustment struct {
	Field string
	From  any
	To    any
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s: %v out of range, using %v", a.Field, a.From, a.To)
}

// Normalize returns the settings with every field moved into its valid
// range, along with the list of changes it made. Unset enumerations take
// their default values.
func (s Settings) Normalize() (Settings, []Adjustment) {
	def := DefaultSettings()
	var adj []Adjustment
	note := func(field string, from, to any) {
		adj = append(adj, Adjustment{Field: field, From: from, To: to})
	}
	clampInt := func(field string, v *int, lo, hi int) {
		if c := min(max(*v, lo), hi); c != *v {
			note(field, *v, c)
			*v = c
		}
	}
	clampFloat := func(field string, v *float64, lo, hi float64) {
		if c := clamp(*v, lo, hi); c != *v {
			note(field, *v, c)
			*v = c
		}
	}
	positive := func(field string, v *float64, fallback float64) {
		if !(*v > 0) {
			note(field, *v, fallback)
			*v = fallback
		}
	}

	if s.Version != SettingsVersion {
		note("version", s.Version, SettingsVersion)
		s.Version = SettingsVersion
	}
	if s.Layout < FamilyArc || s.Layout > FamilyLine {
		note("layout", s.Layout, def.Layout)
		s.Layout = def.Layout
	}
	if s.Direction != Clockwise && s.Direction != CounterClockwise {
		note("direction", s.Direction, def.Direction)
		s.Direction = def.Direction
	}
	if s.Shift > ShiftRandom {
		note("shift", s.Shift, ShiftNone)
		s.Shift = ShiftNone
	}
	motif := NormalizeMotif(s.Motif)
	if motif == "" {
		motif = def.Motif
	}
	if motif != s.Motif {
		note("motif", s.Motif, motif)
		s.Motif = motif
	}

	positive("widthMM", &s.WidthMM, def.WidthMM)
	positive("heightMM", &s.HeightMM, def.HeightMM)
	clampFloat("dpi", &s.DPI, minDPI, maxDPI)
	clampFloat("centerX", &s.CenterX, 0, 1)
	clampFloat("centerY", &s.CenterY, 0, 1)
	clampFloat("outerDiameterMM", &s.OuterDiameterMM, 0, 1e4)
	clampFloat("innerDiameterMM", &s.InnerDiameterMM, 0, s.OuterDiameterMM)
	clampFloat("startAngle", &s.StartAngle, -720, 720)
	clampFloat("endAngle", &s.EndAngle, -720, 720)
	clampFloat("marginTopMM", &s.MarginTopMM, 0, s.HeightMM)
	clampFloat("marginBottomMM", &s.MarginBottomMM, 0, s.HeightMM-s.MarginTopMM)
	clampFloat("marginSideMM", &s.MarginSideMM, 0, s.WidthMM/2)

	clampInt("rows", &s.Rows, 1, maxRows)
	positive("lineSpacing", &s.LineSpacing, def.LineSpacing)
	clampFloat("fontVariationAmount", &s.FontVariationAmount, 0, 1)
	clampFloat("fontVariationScale", &s.FontVariationScale, 0, 100)

	clampFloat("noiseScale", &s.NoiseScale, 0, 100)
	clampInt("octaves", &s.Octaves, MinOctaves, MaxOctaves)
	clampFloat("persistence", &s.Persistence, 0, 1)
	positive("lacunarity", &s.Lacunarity, 2)
	positive("contrast", &s.Contrast, 1)

	positive("gridResolution", &s.GridResolution, def.GridResolution)
	clampFloat("yScale", &s.YScale, 0, 100)
	clampFloat("drift", &s.Drift, -100, 100)
	if !(s.FrameRate > 0) {
		note("frameRate", s.FrameRate, def.FrameRate)
		s.FrameRate = def.FrameRate
	}
	clampFloat("frameRate", &s.FrameRate, 1, maxFrameRate)
	return s, adj
}

// NormalizeMotif returns motif in Unicode normalization form C, without
// surrounding whitespace and truncated to a bounded number of runes.
func NormalizeMotif(motif string) string {
	motif = norm.NFC.String(strings.TrimSpace(motif))
	if r := []rune(motif); len(r) > maxMotifLen {
		motif = string(r[:maxMotifLen])
	}
	return motif
}

// NoiseConfig returns the noise part of the settings.
func (s Settings) NoiseConfig() NoiseConfig {
	return NoiseConfig{
		Scale:       s.NoiseScale,
		Octaves:     s.Octaves,
		Persistence: s.Persistence,
		Lacunarity:  s.Lacunarity,
		Contrast:    s.Contrast,
	}
}

// Document returns the physical document the settings describe.
func (s Settings) Document() Document {
	return Document{WidthMM: s.WidthMM, HeightMM: s.HeightMM, DPI: s.DPI}
}

// Region returns the region rows are laid out in.
func (s Settings) Region() Region {
	doc := s.Document()
	bounds := doc.Bounds()
	center := Pt(bounds.Width()*s.CenterX, bounds.Height()*s.CenterY)
	outer := doc.PX(s.OuterDiameterMM) / 2
	inner := doc.PX(s.InnerDiameterMM) / 2
	switch s.Layout {
	case FamilyCircle:
		return Ring{
			Center:      center,
			OuterRadius: outer,
			InnerRadius: inner,
			Direction:   s.Direction,
		}
	case FamilyLine:
		side := doc.PX(s.MarginSideMM)
		return Band{
			Top:    doc.PX(s.MarginTopMM),
			Bottom: bounds.Height() - doc.PX(s.MarginBottomMM),
			X0:     side,
			X1:     bounds.Width() - side,
		}
	default:
		return ArcBand{
			Center:      center,
			OuterRadius: outer,
			InnerRadius: inner,
			StartAngle:  s.StartAngle,
			EndAngle:    s.EndAngle,
			Direction:   s.Direction,
		}
	}
}

// PlanConfig returns the row planning part of the settings.
func (s Settings) PlanConfig() PlanConfig {
	return PlanConfig{
		Rows:        s.Rows,
		LineSpacing: s.LineSpacing,
		Variation: Variation{
			Enabled: s.FontSizeVariation,
			Amount:  s.FontVariationAmount,
			Scale:   s.FontVariationScale,
		},
		Adaptive: s.AdaptiveSpacing,
		Bleed:    s.Bleed && s.Layout != FamilyLine,
	}
}

// Mapping returns the glyph classification part of the settings.
func (s Settings) Mapping() Mapping {
	return Mapping{
		Positional:     s.PositionalNoise,
		GridResolution: s.GridResolution,
		YScale:         s.YScale,
		Inverse:        s.InverseWidth,
		Transparency:   s.Transparency,
		Drift:          s.Drift,
	}
}
