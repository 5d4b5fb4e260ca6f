// Package config loads, normalizes, and validates jokebot configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// JOKEBOT_LANGUAGE. The Config type centralizes every knob the CLI and the
// workflow engine need so they can be discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// canonical language codes, known categories, and clear validation errors.
package config
