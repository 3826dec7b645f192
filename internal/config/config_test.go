package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("default port = %d", cfg.Server.Port)
	}
	if cfg.LLM.Provider != "claude" {
		t.Fatalf("default provider = %s", cfg.LLM.Provider)
	}
	if cfg.Matcher.MaxDescriptionChars != 12000 {
		t.Fatalf("default max description chars = %d", cfg.Matcher.MaxDescriptionChars)
	}
	if cfg.Matcher.AnalysisTimeout != 120*time.Second {
		t.Fatalf("default analysis timeout = %v", cfg.Matcher.AnalysisTimeout)
	}
	if cfg.BackgroundTasks.MaxConcurrentTasks != 20 {
		t.Fatalf("default max concurrent tasks = %d", cfg.BackgroundTasks.MaxConcurrentTasks)
	}
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  port: 9090
llm:
  model: "claude-3-5-sonnet-latest"
  rate_limit: 30
matcher:
  max_description_chars: 8000
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.LLM.Model != "claude-3-5-sonnet-latest" {
		t.Fatalf("model = %s", cfg.LLM.Model)
	}
	if cfg.Matcher.MaxDescriptionChars != 8000 {
		t.Fatalf("max description chars = %d", cfg.Matcher.MaxDescriptionChars)
	}
	// Untouched values keep their defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("host = %s", cfg.Server.Host)
	}
}

func TestLoadConfigExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_PLATFORM_TOKEN", "secret-token")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
platform:
  api_token: "${TEST_PLATFORM_TOKEN}"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Platform.APIToken != "secret-token" {
		t.Fatalf("api token = %q, want expanded env var", cfg.Platform.APIToken)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LLM_MODEL", "claude-3-opus-latest")
	t.Setenv("REDIS_URL", "redis://cache:6379")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Fatalf("port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.LLM.Model != "claude-3-opus-latest" {
		t.Fatalf("model = %s", cfg.LLM.Model)
	}
	if cfg.Redis.URL != "redis://cache:6379" {
		t.Fatalf("redis url = %s", cfg.Redis.URL)
	}
}

func TestExpandEnvVarsLeavesUnknownUntouched(t *testing.T) {
	got := expandEnvVars("token: ${DEFINITELY_NOT_SET_ANYWHERE}")
	if got != "token: ${DEFINITELY_NOT_SET_ANYWHERE}" {
		t.Fatalf("unset vars must pass through, got %q", got)
	}
}
