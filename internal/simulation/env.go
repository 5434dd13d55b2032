package simulation

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override config fields.
const (
	EnvMap          = "TILEWALK_MAP"
	EnvMapsDir      = "TILEWALK_MAPS_DIR"
	EnvSeed         = "TILEWALK_SEED"
	EnvBackend      = "TILEWALK_BACKEND"
	EnvAssetDir     = "TILEWALK_ASSET_DIR"
	EnvAudio        = "TILEWALK_AUDIO"
	EnvLogVerbosity = "TILEWALK_LOG_VERBOSITY"
)

// LoadDotEnv loads .env files into the process environment. Missing files
// are skipped; variables already set are left alone.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ApplyEnv overrides fields from TILEWALK_* variables using lookup
// (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMap); ok && v != "" {
		c.Map = v
	}
	if v, ok := lookup(EnvMapsDir); ok {
		c.MapsDir = v
	}
	if v, ok := lookup(EnvBackend); ok && v != "" {
		c.Backend = v
	}
	if v, ok := lookup(EnvAssetDir); ok && v != "" {
		c.AssetDir = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvAudio); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvAudio, err)
		}
		c.Audio = on
	}
	if v, ok := lookup(EnvLogVerbosity); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLogVerbosity, err)
		}
		c.LogVerbosity = n
	}
	return nil
}
