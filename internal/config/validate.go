package config

import (
	"errors"
	"fmt"
	"strings"

	"jokebot/internal/jokes"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBot(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateBot() error {
	if strings.TrimSpace(c.Bot.Language) == "" {
		return errors.New("bot.language must be set")
	}
	if !jokes.IsSelectable(c.Bot.Category) {
		return fmt.Errorf("bot.category: unsupported value %q (choose one of %s)", c.Bot.Category, strings.Join(jokes.Selectable(), ", "))
	}
	if c.Bot.MaxSteps <= 0 {
		return errors.New("bot.max_steps must be positive")
	}
	if c.Bot.MinApprovedLength <= 0 {
		return errors.New("bot.min_approved_length must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
