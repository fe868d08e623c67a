package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DATABASE", "quotetrack")
	t.Setenv("DB_TYPE", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "4000" {
		t.Errorf("default port = %q", cfg.Port)
	}
	if cfg.DBType != "sqlite" {
		t.Errorf("default db type = %q", cfg.DBType)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("default connection limit = %d", cfg.DBConnectionLimit)
	}
	if cfg.OpenAIModel == "" {
		t.Error("analyzer model should have a default")
	}
}

func TestLoadRequiresDatabase(t *testing.T) {
	t.Setenv("DB_DATABASE", "")

	if _, err := Load(); err == nil {
		t.Error("missing DB_DATABASE should fail")
	}
}

func TestLoadRequiresUserForServerDatabases(t *testing.T) {
	t.Setenv("DB_DATABASE", "quotetrack")
	t.Setenv("DB_TYPE", "mysql")
	t.Setenv("DB_USER", "")

	if _, err := Load(); err == nil {
		t.Error("mysql without DB_USER should fail")
	}
}

func TestAPIKeyFallback(t *testing.T) {
	t.Setenv("DB_DATABASE", "quotetrack")
	t.Setenv("API_KEY", "")
	t.Setenv("ESTIMATE_TOOL_API_KEY", "legacy-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "legacy-key" {
		t.Errorf("api key fallback = %q", cfg.APIKey)
	}
}
