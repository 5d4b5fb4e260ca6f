package config

import "jokebot/internal/jokes"

const (
	defaultLanguage          = "en"
	defaultCategory          = jokes.CategoryNeutral
	defaultMaxSteps          = 100
	defaultMinApprovedLength = 40
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"
	defaultConfigPath        = "~/.config/jokebot/config.toml"
	projectConfigName        = "jokebot.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Bot: Bot{
			Language:          defaultLanguage,
			Category:          defaultCategory,
			MaxSteps:          defaultMaxSteps,
			MinApprovedLength: defaultMinApprovedLength,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
