package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Sonify holds the pipeline settings a command can override per run.
type Sonify struct {
	Tempo        int    `toml:"tempo"`
	TicksPerBeat int    `toml:"ticks_per_beat"`
	Output       string `toml:"output"`
	Limit        int    `toml:"limit"`
}

// Logging selects the verbosity and encoding of diagnostics.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for apisonify.
type Config struct {
	Sonify  Sonify  `toml:"sonify"`
	Logging Logging `toml:"logging"`
}

// Sample returns the annotated sample configuration shipped with the
// binary.
func Sample() string {
	return sampleConfig
}

// DefaultConfigPath returns the location probed when --config is not given.
func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "apisonify", "config.toml"), nil
}

// Load reads the configuration file at path, or the default location when
// path is empty. A missing file is not an error: defaults apply. The
// returned path and exists flag report what was actually used.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	// An explicit --config must exist; the implicit default may not.
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return "", false, fmt.Errorf("config path %s is a directory", path)
		}
		return path, true, nil
	case errors.Is(err, fs.ErrNotExist):
		if explicit {
			return "", false, fmt.Errorf("config file %s does not exist", path)
		}
		return path, false, nil
	default:
		return "", false, fmt.Errorf("stat config: %w", err)
	}
}

// WriteSample writes the sample configuration to path. Unless overwrite is
// set it refuses to clobber an existing file.
func WriteSample(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat config: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
