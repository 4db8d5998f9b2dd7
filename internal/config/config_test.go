package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Documents != DefaultDocumentsDir {
		t.Errorf("Documents = %q, want %q", cfg.Documents, DefaultDocumentsDir)
	}
	if cfg.Gallery.Port != DefaultPort {
		t.Errorf("Gallery.Port = %d, want %d", cfg.Gallery.Port, DefaultPort)
	}
	if cfg.MaxDepth != DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want %d", cfg.MaxDepth, DefaultMaxDepth)
	}
	if !cfg.Gallery.Watch {
		t.Error("Gallery.Watch should default to true")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `name: demo
theme: dark
gallery:
  port: 9000
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want %q", cfg.Name, "demo")
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.Theme, "dark")
	}
	if cfg.Gallery.Port != 9000 {
		t.Errorf("Gallery.Port = %d, want 9000", cfg.Gallery.Port)
	}
	// Untouched fields keep their defaults.
	if cfg.Gallery.Host != DefaultHost {
		t.Errorf("Gallery.Host = %q, want %q", cfg.Gallery.Host, DefaultHost)
	}
	if cfg.Documents != DefaultDocumentsDir {
		t.Errorf("Documents = %q, want %q", cfg.Documents, DefaultDocumentsDir)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("gallery: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"port out of range", func(c *Config) { c.Gallery.Port = 70000 }, true},
		{"negative max depth", func(c *Config) { c.MaxDepth = -1 }, true},
		{"zero max depth disables limit", func(c *Config) { c.MaxDepth = 0 }, false},
		{"s3 without bucket", func(c *Config) { c.Store.Backend = "s3" }, true},
		{"s3 with bucket", func(c *Config) { c.Store.Backend = "s3"; c.Store.Bucket = "docs" }, false},
		{"unknown backend", func(c *Config) { c.Store.Backend = "redis" }, true},
		{"unknown theme", func(c *Config) { c.Theme = "solarized" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Name = "roundtrip"
	cfg.Gallery.Port = 8123
	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "roundtrip" {
		t.Errorf("Name = %q, want %q", loaded.Name, "roundtrip")
	}
	if loaded.Gallery.Port != 8123 {
		t.Errorf("Gallery.Port = %d, want 8123", loaded.Gallery.Port)
	}
}
