package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/trackrun/tsp"
)

// ErrBadConfig is returned by Config.Validate.
var ErrBadConfig = errors.New("server: invalid configuration")

// Config holds service settings. The toml tags name the keys read by
// LoadConfig; durations are strings such as "10s".
type Config struct {
	// Addr is the listen address, e.g. ":8000".
	Addr string `toml:"addr"`
	// TracksPath is the catalog file (.json, .yaml or .yml).
	TracksPath string `toml:"tracks"`
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string `toml:"origins"`
	// MaxFlags bounds the flags accepted per solve; the optimizer is exponential.
	MaxFlags int `toml:"max_flags"`
	// ReadTimeout and WriteTimeout bound each HTTP exchange.
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// LoadConfig reads a TOML file over base. Keys absent from the file keep
// base's values; unknown keys are an error.
func LoadConfig(filename string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(filename, &cfg)
	if err != nil {
		return base, fmt.Errorf("server: config %s: %w", filename, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return base, fmt.Errorf("%w: %s: unknown key %q", ErrBadConfig, filename, keys[0].String())
	}

	return cfg, nil
}

// DefaultConfig returns the development defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8000",
		TracksPath:      "tracks.json",
		AllowedOrigins:  []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		MaxFlags:        16,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Validate checks the settings are usable.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.Join(ErrBadConfig, errors.New("addr is empty"))
	case c.MaxFlags < 1:
		return errors.Join(ErrBadConfig, errors.New("max flags must be positive"))
	case c.MaxFlags >= tsp.MaxVertices:
		return errors.Join(ErrBadConfig, fmt.Errorf("max flags must be below %d", tsp.MaxVertices))
	case c.ReadTimeout < 0 || c.WriteTimeout < 0 || c.ShutdownTimeout < 0:
		return errors.Join(ErrBadConfig, errors.New("timeouts must be non-negative"))
	}

	return nil
}
