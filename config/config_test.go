package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeFile(t, `
app_name: habits-test
server:
  port: 9090
paging:
  max_page_size: 25
hateoas:
  base_url: https://api.example.com
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AppName != "habits-test" || cfg.Port != 9090 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Paging.MaxPageSize != 25 || cfg.Paging.DefaultPageSize != 10 {
		t.Errorf("unexpected paging %+v", cfg.Paging)
	}
	if cfg.Hateoas.BaseURL != "https://api.example.com" {
		t.Errorf("unexpected base url %q", cfg.Hateoas.BaseURL)
	}
	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("HABITS_SERVER_PORT", "7070")
	cfg, err := LoadConfig(writeFile(t, "server:\n  port: 9090\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("expected env override, got %d", cfg.Port)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit file")
	}
}

func TestLoadConfigRejectsBadPaging(t *testing.T) {
	if _, err := LoadConfig(writeFile(t, "paging:\n  default_page_size: 80\n")); err == nil {
		t.Fatal("expected paging validation error")
	}
}

func TestPagingDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	p := getPagingConfig(v)
	if p.DefaultPageSize != 10 || p.MaxPageSize != 50 || p.DefaultLimit != 10 || p.MaxLimit != 50 {
		t.Errorf("unexpected defaults %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadConfigRaisedPagingBounds(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, `
paging:
  default_page_size: 60
  max_page_size: 100
  default_limit: 60
  max_limit: 100
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Paging{DefaultPageSize: 60, MaxPageSize: 100, DefaultLimit: 60, MaxLimit: 100}
	if *cfg.Paging != want {
		t.Errorf("unexpected paging %+v", cfg.Paging)
	}
}
