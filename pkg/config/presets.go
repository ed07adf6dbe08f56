// ABOUTME: Named format presets loaded from a TOML file with built-in defaults
// ABOUTME: A preset maps a display name to a placeholder template string

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"tabclip-api/core/domain"
)

// presetsFile is the TOML document shape:
//
//	[[preset]]
//	name = "Markdown list"
//	format = "- [%TITLE_MD%](%URL%)"
type presetsFile struct {
	Preset []domain.FormatPreset `toml:"preset"`
}

// DefaultPresets returns the built-in format presets used when no presets
// file is configured.
func DefaultPresets() []domain.FormatPreset {
	return []domain.FormatPreset{
		{Name: "URL only", Format: "%URL%"},
		{Name: "Title and URL", Format: "%TITLE%%EOL%%URL%"},
		{Name: "Markdown", Format: "[%TITLE_MD%](%URL% \"%TITLE_MD_LINK_TITLE%\")"},
		{Name: "Markdown list", Format: "%INDENT(  )%- [%TITLE_MD%](%URL% \"%TITLE_MD_LINK_TITLE%\")"},
		{Name: "Rich link", Format: "%RT%<a href=\"%URL%\">%TITLE_HTML%</a>"},
	}
}

// LoadPresets reads format presets from the given TOML file, or returns the
// defaults when path is empty.
func LoadPresets(path string) ([]domain.FormatPreset, error) {
	if path == "" {
		return DefaultPresets(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}

	var file presetsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing presets file: %w", err)
	}

	for i, p := range file.Preset {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d has no name", i)
		}
		if p.Format == "" {
			return nil, fmt.Errorf("preset %q has no format", p.Name)
		}
	}

	if len(file.Preset) == 0 {
		return DefaultPresets(), nil
	}
	return file.Preset, nil
}

// FindPreset returns the preset with the given name, or false when absent.
func FindPreset(presets []domain.FormatPreset, name string) (domain.FormatPreset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return domain.FormatPreset{}, false
}
