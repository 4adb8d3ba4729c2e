package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  name: csat
  env: test
  log_level: debug

server:
  port: "9000"

dataset:
  raw_dir: /tmp/raw
  output_dir: /tmp/out
  drop_duplicates: true

scraper:
  base_url: https://books.example.com/
  page_delay: 250ms

model:
  test_ratio: 0.3
  seed: 7
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Name != "csat" || cfg.App.LogLevel != "debug" {
		t.Errorf("app = %+v", cfg.App)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if !cfg.Dataset.DropDuplicates {
		t.Error("drop_duplicates not parsed")
	}
	if cfg.Scraper.PageDelay != 250*time.Millisecond {
		t.Errorf("page_delay = %v", cfg.Scraper.PageDelay)
	}
	if cfg.Model.TestRatio != 0.3 || cfg.Model.Seed != 7 {
		t.Errorf("model = %+v", cfg.Model)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: csat
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("default port = %q", cfg.Server.Port)
	}
	if cfg.Server.StaticDir != "web" {
		t.Errorf("default static_dir = %q", cfg.Server.StaticDir)
	}
	if cfg.Dataset.ProcessedFile != "processed_data.csv" {
		t.Errorf("default processed_file = %q", cfg.Dataset.ProcessedFile)
	}
	if cfg.Scraper.PageDelay != time.Second || cfg.Scraper.Timeout != 30*time.Second {
		t.Errorf("scraper defaults = %+v", cfg.Scraper)
	}
	if cfg.Model.TestRatio != 0.2 || cfg.Model.Seed != 42 || cfg.Model.MaxTextFeatures != 500 {
		t.Errorf("model defaults = %+v", cfg.Model)
	}
	if cfg.Model.ArtifactFile != "champion_model.json" {
		t.Errorf("default artifact_file = %q", cfg.Model.ArtifactFile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.App.Name = "csat"
		cfg.applyDefaults()
		return cfg
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	noName := valid()
	noName.App.Name = ""
	if err := noName.Validate(); err == nil {
		t.Error("expected error for missing app name")
	}

	badRatio := valid()
	badRatio.Model.TestRatio = 1.5
	if err := badRatio.Validate(); err == nil {
		t.Error("expected error for test_ratio out of range")
	}
}
