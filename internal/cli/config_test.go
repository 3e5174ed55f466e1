package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mharmon/rchub/internal/api"
)

func TestConfigSaveAndLoad(t *testing.T) {
	// Use a temp dir as home
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := CLIConfig{
		BaseURL: "http://myhost:9090/api/v1",
		Token:   "testtoken123",
	}

	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Verify file exists
	path := filepath.Join(tmp, ".config", "rchub", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not found: %v", err)
	}

	loaded, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.BaseURL != cfg.BaseURL {
		t.Errorf("base_url = %q, want %q", loaded.BaseURL, cfg.BaseURL)
	}
	if loaded.Token != cfg.Token {
		t.Errorf("token = %q, want %q", loaded.Token, cfg.Token)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg.BaseURL != "" || cfg.Token != "" {
		t.Error("expected zero-value config for missing file")
	}
}

func TestGetBaseURLFromEnv(t *testing.T) {
	t.Setenv("RC_API_URL", "http://custom:1234")
	t.Setenv("HOME", t.TempDir())

	url := getBaseURL()
	if url != "http://custom:1234" {
		t.Errorf("url = %q, want %q", url, "http://custom:1234")
	}
}

func TestGetBaseURLDefault(t *testing.T) {
	t.Setenv("RC_API_URL", "")
	t.Setenv("HOME", t.TempDir())

	url := getBaseURL()
	if url != api.DefaultBaseURL {
		t.Errorf("url = %q, want %q", url, api.DefaultBaseURL)
	}
}

func TestGetTokenFromEnv(t *testing.T) {
	t.Setenv("RC_TOKEN", "envtoken")
	t.Setenv("HOME", t.TempDir())

	token := getToken()
	if token != "envtoken" {
		t.Errorf("token = %q, want %q", token, "envtoken")
	}
}

func TestGetTokenEnvBeatsConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("RC_TOKEN", "envtoken")

	if err := saveConfig(CLIConfig{Token: "configtoken"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	token := getToken()
	if token != "envtoken" {
		t.Errorf("token = %q, want env var to win", token)
	}
}

func TestGetTokenFromConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("RC_TOKEN", "")

	cfg := CLIConfig{Token: "configtoken"}
	if err := saveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	token := getToken()
	if token != "configtoken" {
		t.Errorf("token = %q, want %q", token, "configtoken")
	}
}

func TestRequireTokenMissing(t *testing.T) {
	t.Setenv("RC_TOKEN", "")
	t.Setenv("HOME", t.TempDir())

	if _, err := requireToken(); err == nil {
		t.Fatal("expected error with no token configured")
	}
}
