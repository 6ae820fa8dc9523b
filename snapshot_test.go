package glyphweave

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.Seed = "abc123"
	s.Layout = FamilyCircle
	s.Direction = CounterClockwise
	s.Shift = ShiftRandom
	s.Motif = "ÅBÇ"

	for _, f := range []Format{FormatJSON, FormatTOML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, SaveSettings(&buf, s, f))
			got, err := LoadSettings(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		})
	}
}

func TestLoadSettingsPartial(t *testing.T) {
	got, err := LoadSettings(strings.NewReader(`layout = "line"
rows = 3
shift = "forward"
`), FormatTOML)
	require.NoError(t, err)
	want := DefaultSettings()
	want.Layout = FamilyLine
	want.Rows = 3
	want.Shift = ShiftForward
	assert.Equal(t, want, got)

	got, err = LoadSettings(strings.NewReader(`{"motif": "xy", "direction": "ccw"}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "xy", got.Motif)
	assert.Equal(t, CounterClockwise, got.Direction)
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		f     Format
	}{
		{"unknown TOML key", "colour = 'red'\n", FormatTOML},
		{"unknown JSON key", `{"colour": "red"}`, FormatJSON},
		{"unknown layout", `layout = "spiral"`, FormatTOML},
		{"unknown shift", `{"shift": "sideways"}`, FormatJSON},
		{"malformed", `{`, FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettings(strings.NewReader(tt.input), tt.f)
			assert.Error(t, err)
		})
	}
	_, err := LoadSettings(strings.NewReader(""), Format(9))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSettingsFile(t *testing.T) {
	dir := t.TempDir()
	s := DefaultSettings()
	s.Seed = "file"
	s.Rows = 4

	path := filepath.Join(dir, "sketch.toml")
	require.NoError(t, SaveSettingsFile(path, s))
	got, err := LoadSettingsFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	_, err = FormatFromPath(filepath.Join(dir, "sketch.yaml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadSettingsFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
