package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSonify(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSonify() error {
	if c.Sonify.Tempo < minTempo || c.Sonify.Tempo > maxTempo {
		return fmt.Errorf("sonify.tempo must be between %d and %d, got %d", minTempo, maxTempo, c.Sonify.Tempo)
	}
	if c.Sonify.TicksPerBeat < minTicksPerBeat || c.Sonify.TicksPerBeat > maxTicksPerBeat {
		return fmt.Errorf("sonify.ticks_per_beat must be between %d and %d, got %d", minTicksPerBeat, maxTicksPerBeat, c.Sonify.TicksPerBeat)
	}
	if strings.TrimSpace(c.Sonify.Output) == "" {
		return errors.New("sonify.output must be set")
	}
	if c.Sonify.Limit < 0 {
		return errors.New("sonify.limit cannot be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
