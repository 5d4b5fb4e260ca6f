package config

import (
	"fmt"
	"os"
	"strings"

	"jokebot/internal/jokes"
)

func (c *Config) normalize() error {
	if err := c.normalizeBot(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.normalizeMetrics()
}

func (c *Config) normalizeBot() error {
	if value, ok := os.LookupEnv("JOKEBOT_LANGUAGE"); ok && strings.TrimSpace(value) != "" {
		c.Bot.Language = value
	}
	if strings.TrimSpace(c.Bot.Language) == "" {
		c.Bot.Language = defaultLanguage
	}
	lang, err := jokes.NormalizeLanguage(c.Bot.Language)
	if err != nil {
		return fmt.Errorf("bot.language: %w", err)
	}
	c.Bot.Language = lang

	c.Bot.Category = strings.ToLower(strings.TrimSpace(c.Bot.Category))
	if c.Bot.Category == "" {
		c.Bot.Category = defaultCategory
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeMetrics() error {
	var err error
	if c.Metrics.Textfile, err = expandPath(strings.TrimSpace(c.Metrics.Textfile)); err != nil {
		return fmt.Errorf("metrics.textfile: %w", err)
	}
	return nil
}
