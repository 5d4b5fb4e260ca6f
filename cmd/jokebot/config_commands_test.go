package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jokebot/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, env, testsupport.Input(), "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(env.baseDir, "nested", "config.toml")
	out, err = runCLI(t, env, testsupport.Input(), "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, err := runCLI(t, env, testsupport.Input(), "config", "init", "--path", target); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, err := runCLI(t, env, testsupport.Input(), "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	env.configPath = target
	out, err = runCLI(t, env, testsupport.Input(), "config", "validate")
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateMissingFileUsesDefaults(t *testing.T) {
	env := setupCLITestEnv(t)
	env.configPath = filepath.Join(env.baseDir, "missing.toml")

	out, err := runCLI(t, env, testsupport.Input(), "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "defaults were used")
}

func TestConfigValidateReportsBadValues(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[bot]\ncategory = \"puns\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := runCLI(t, env, testsupport.Input(), "config", "validate")
	if err == nil || !strings.Contains(err.Error(), "bot.category") {
		t.Fatalf("expected bot.category error, got %v", err)
	}
}
