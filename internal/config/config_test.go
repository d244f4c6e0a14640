package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.Locale != "he" {
		t.Errorf("expected default locale he, got %q", cfg.Locale)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHOPLIST_ADDR", ":9999")
	t.Setenv("SHOPLIST_LOCALE", "en")

	cfg := Load()
	if cfg.Addr != ":9999" {
		t.Errorf("env addr not applied: %q", cfg.Addr)
	}
	if cfg.Locale != "en" {
		t.Errorf("env locale not applied: %q", cfg.Locale)
	}
}
