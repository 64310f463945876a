// Package config loads optional tool defaults from a TOML file.
// Command-line flags always take precedence over file values.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Defaults are the user-configurable default conversion options.
type Defaults struct {
	Output     string  `toml:"output"`
	Format     string  `toml:"format"`
	Endian     string  `toml:"endian"`
	Compressor string  `toml:"compressor"`
	Resolution int     `toml:"resolution"`
	Scale      float64 `toml:"scale"`
}

// New returns the built-in defaults.
func New() *Defaults {
	return &Defaults{
		Output:     "fmesh",
		Format:     "xml",
		Endian:     "big-endian",
		Compressor: "lzma",
		Resolution: 1,
		Scale:      1,
	}
}

// Load reads defaults from a TOML file, keeping built-in values for any
// key the file omits.
func Load(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	d := New()
	if err := toml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return d, nil
}
