package config

import (
	_ "embed"
)

//go:embed seasons/2025-26.yaml
var defaultSeason []byte

// Default returns the season bundled with the binary.
func Default() (*Season, error) {
	return Parse(defaultSeason)
}

// LoadOrDefault loads path, or the bundled season when path is empty.
func LoadOrDefault(path string) (*Season, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
