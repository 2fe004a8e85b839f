package config

import (
	"encoding/json"
	"fmt"
	"io"
)

// Naming conventions for resolving link text to a file.
const (
	UniqueFilenames = "uniqueFilenames"
	RelativePaths   = "relativePaths"
)

// Completion label styles under the uniqueFilenames convention.
const (
	StyleRaw         = "raw"
	StyleNoExtension = "noExtension"
	StyleSpaces      = "spaces"
)

type Config struct {
	NamingConvention  string   `json:"naming_convention"`
	CreateMissingNote bool     `json:"create_missing_note"`
	FileExtensions    []string `json:"file_extensions"`
	DefaultExtension  string   `json:"default_extension"`
	SlugCharacter     string   `json:"slug_character"`
	CompletionStyle   string   `json:"completion_style"`
	GlobPattern       string   `json:"glob_pattern"`
	Root              string   `json:"root"` // only for dump!
}

var defaultConfig = Config{
	NamingConvention:  UniqueFilenames,
	CreateMissingNote: true,
	FileExtensions:    []string{".md", ".markdown"},
	DefaultExtension:  ".md",
	SlugCharacter:     "-",
	CompletionStyle:   StyleNoExtension,
	GlobPattern:       "**/*",
	Root:              ".",
}

// Load overlays fields present in v onto the defaults. v is typically the
// raw initializationOptions value handed over by the client.
func Load(v any) (Config, error) {
	cfg := defaultConfig

	data, err := json.Marshal(v)
	if err != nil {
		return Config{}, fmt.Errorf("failed to marshal source: %w", err)
	}

	// only fields present in src will overwrite.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal into Config: %w", err)
	}

	return cfg.validated()
}

// LoadFromJSON reads JSON from r into a Config.
func LoadFromJSON(r io.Reader) (Config, error) {
	cfg := defaultConfig

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, err
	}

	return cfg.validated()
}

func (c Config) validated() (Config, error) {
	switch c.NamingConvention {
	case UniqueFilenames, RelativePaths:
	default:
		return Config{}, fmt.Errorf("unknown naming convention %q", c.NamingConvention)
	}
	if len(c.FileExtensions) == 0 {
		return Config{}, fmt.Errorf("file_extensions must not be empty")
	}
	return c, nil
}
