package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizrahidaniel/api-sonification/internal/accesslog"
	"github.com/mizrahidaniel/api-sonification/internal/config"
	"github.com/mizrahidaniel/api-sonification/internal/logging"
)

// commandContext holds the persistent flag targets and the resolved
// configuration shared by every subcommand.
type commandContext struct {
	configFlag    string
	logLevelFlag  string
	logFormatFlag string
	noColor       bool

	cfg    *config.Config
	logger *logging.Logger
}

// setup loads the configuration, applies persistent flag overrides and
// builds the logger. Runs once from the root PersistentPreRunE.
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, path, exists, err := config.Load(c.configFlag)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = c.logLevelFlag
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = c.logFormatFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if exists {
		c.logger.Debugw("configuration loaded", "path", path)
	}
	return nil
}

// validateSonify checks per-run settings after flag overrides have been
// merged on top of the configured values.
func (c *commandContext) validateSonify(eff config.Sonify) error {
	check := *c.cfg
	check.Sonify = eff
	return check.Validate()
}

// sonifySettings merges command flags over the configured sonify section.
// Flags win only when the user set them explicitly.
func (c *commandContext) sonifySettings(cmd *cobra.Command, tempo, limit int, output string) (config.Sonify, error) {
	eff := c.cfg.Sonify
	if cmd.Flags().Changed("tempo") {
		eff.Tempo = tempo
	}
	if cmd.Flags().Changed("limit") {
		eff.Limit = limit
	}
	if cmd.Flags().Changed("output") {
		eff.Output = output
	}
	if err := c.validateSonify(eff); err != nil {
		return config.Sonify{}, err
	}
	return eff, nil
}

// buildFilter turns the listen flags into an event filter.
func buildFilter(class, method, pathContains string) (accesslog.Filter, error) {
	if class != "" {
		valid := false
		for _, known := range accesslog.Classes {
			if class == known {
				valid = true
				break
			}
		}
		if !valid {
			return accesslog.Filter{}, fmt.Errorf("invalid class %q: use one of %s",
				class, strings.Join(accesslog.Classes, ", "))
		}
	}
	return accesslog.Filter{
		Class:        class,
		Method:       method,
		PathContains: pathContains,
	}, nil
}
