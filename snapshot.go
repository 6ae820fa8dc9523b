package glyphweave

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Format is a settings snapshot encoding.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath returns the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// LoadSettings decodes a settings snapshot. Keys missing from the snapshot
// keep their default values; unknown keys are an error. The result is not
// normalized.
func LoadSettings(r io.Reader, f Format) (Settings, error) {
	s := DefaultSettings()
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Settings{}, fmt.Errorf("decoding JSON settings: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(r).DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Settings{}, fmt.Errorf("decoding TOML settings: %w", err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	return s, nil
}

// SaveSettings encodes s as a snapshot.
func SaveSettings(w io.Writer, s Settings, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encoding JSON settings: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(s); err != nil {
			return fmt.Errorf("encoding TOML settings: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	return nil
}

// LoadSettingsFile reads a snapshot, picking the format from the file
// extension.
func LoadSettingsFile(path string) (Settings, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Settings{}, err
	}
	fd, err := os.Open(path)
	if err != nil {
		return Settings{}, err
	}
	defer fd.Close()
	s, err := LoadSettings(fd, f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// SaveSettingsFile writes a snapshot, picking the format from the file
// extension.
func SaveSettingsFile(path string, s Settings) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return SaveSettings(fd, s, f)
}
