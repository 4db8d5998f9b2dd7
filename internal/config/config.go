package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vellum-ui/vellum/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vellum.yaml"

	// DefaultPort is the default gallery server port.
	DefaultPort = 8090

	// DefaultHost is the default gallery server host.
	DefaultHost = "localhost"

	// DefaultDocumentsDir is the default directory for document files.
	DefaultDocumentsDir = "documents"

	// DefaultMaxDepth is the deserialization depth limit applied to
	// documents arriving over the network.
	DefaultMaxDepth = 256
)

// Config represents the complete vellum.yaml configuration.
type Config struct {
	// Name is the project name.
	Name string `yaml:"name,omitempty"`

	// Documents is the directory document files live in.
	Documents string `yaml:"documents,omitempty"`

	// Theme selects the default theme ("light" or "dark").
	Theme string `yaml:"theme,omitempty"`

	// MaxDepth bounds deserialization recursion for untrusted documents.
	// Zero disables the limit.
	MaxDepth int `yaml:"maxDepth"`

	// Gallery contains gallery server settings.
	Gallery GalleryConfig `yaml:"gallery,omitempty"`

	// Store contains document store settings.
	Store StoreConfig `yaml:"store,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// GalleryConfig contains gallery server settings.
type GalleryConfig struct {
	// Port is the port to run the gallery server on.
	Port int `yaml:"port,omitempty"`

	// Host is the host to bind to.
	Host string `yaml:"host,omitempty"`

	// Watch enables live reload when document files change.
	Watch bool `yaml:"watch"`
}

// StoreConfig contains document store settings.
type StoreConfig struct {
	// Backend is "fs" (default) or "s3".
	Backend string `yaml:"backend,omitempty"`

	// Bucket is the S3 bucket name (s3 backend only).
	Bucket string `yaml:"bucket,omitempty"`

	// Prefix is the S3 key prefix (s3 backend only).
	Prefix string `yaml:"prefix,omitempty"`
}

// New returns a config populated with defaults.
func New() *Config {
	return &Config{
		Documents: DefaultDocumentsDir,
		Theme:     "light",
		MaxDepth:  DefaultMaxDepth,
		Gallery: GalleryConfig{
			Port:  DefaultPort,
			Host:  DefaultHost,
			Watch: true,
		},
		Store: StoreConfig{Backend: "fs"},
	}
}

// Load reads vellum.yaml from dir, falling back to defaults when the file
// does not exist.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.FromError(err, "V030")
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.FromError(err, "V030").
			WithSuggestion("check " + path + " for YAML syntax errors")
	}
	cfg.configPath = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config back to its path, or to dir/vellum.yaml when it
// was never loaded from disk.
func (c *Config) Save(dir string) error {
	path := c.configPath
	if path == "" {
		path = filepath.Join(dir, ConfigFileName)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.FromError(err, "V030")
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Gallery.Port < 0 || c.Gallery.Port > 65535 {
		return errors.New("V030").
			WithDetail(fmt.Sprintf("gallery port %d is out of range", c.Gallery.Port)).
			WithSuggestion("use a port between 1 and 65535")
	}
	if c.MaxDepth < 0 {
		return errors.New("V030").
			WithDetail("maxDepth must not be negative").
			WithSuggestion("use 0 to disable the depth limit")
	}
	switch c.Store.Backend {
	case "", "fs":
	case "s3":
		if c.Store.Bucket == "" {
			return errors.New("V030").
				WithDetail("s3 backend needs a bucket name").
				WithSuggestion(`set store.bucket in vellum.yaml`)
		}
	default:
		return errors.New("V030").
			WithDetail(fmt.Sprintf("unknown store backend %q", c.Store.Backend)).
			WithSuggestion(`use "fs" or "s3"`)
	}
	if c.Theme != "" && c.Theme != "light" && c.Theme != "dark" {
		return errors.New("V030").
			WithDetail(fmt.Sprintf("unknown theme %q", c.Theme)).
			WithSuggestion(`use "light" or "dark"`)
	}
	return nil
}

// Addr returns the gallery listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Gallery.Host, c.Gallery.Port)
}
