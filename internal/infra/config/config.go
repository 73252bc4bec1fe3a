// Where: internal/infra/config/config.go
// What: hostenv.yaml load, validation, and defaults.
// Why: Keep namespace and file layout settings out of command handlers.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poruru-code/hostenv/internal/domain/registry"
	"github.com/poruru-code/hostenv/internal/meta"
)

// Config represents the hostenv.yaml tool configuration.
type Config struct {
	Version  int    `yaml:"version"`
	Plugin   string `yaml:"plugin,omitempty"`
	Feature  string `yaml:"feature,omitempty"`
	Registry string `yaml:"registry,omitempty"`
	Template string `yaml:"template,omitempty"`

	// Dir is the directory relative paths in the file resolve against.
	Dir string `yaml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Version:  1,
		Plugin:   meta.DefaultPluginNamespace,
		Feature:  meta.DefaultFeatureNamespace,
		Registry: meta.DefaultRegistryFile,
		Template: meta.DefaultTemplate,
	}
}

// Path returns the registry namespaces the config targets.
func (c Config) Path() registry.Path {
	return registry.Path{Plugin: c.Plugin, Feature: c.Feature}.WithDefaults()
}

// WithDefaults fills unset fields from Default.
func (c Config) WithDefaults() Config {
	def := Default()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if strings.TrimSpace(c.Plugin) == "" {
		c.Plugin = def.Plugin
	}
	if strings.TrimSpace(c.Feature) == "" {
		c.Feature = def.Feature
	}
	if strings.TrimSpace(c.Registry) == "" {
		c.Registry = def.Registry
	}
	if strings.TrimSpace(c.Template) == "" {
		c.Template = def.Template
	}
	return c
}

// Load reads, validates, and defaults the config at path.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Validate(payload); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg = cfg.WithDefaults()
	cfg.Dir = filepath.Dir(path)
	if !filepath.IsAbs(cfg.Registry) {
		cfg.Registry = filepath.Join(cfg.Dir, cfg.Registry)
	}
	return cfg, nil
}

// Resolve loads explicit when set, otherwise hostenv.yaml in dir when present.
// Without a file the defaults are returned relative to dir. The second return
// value is the config file used, or "".
func Resolve(dir, explicit string) (Config, string, error) {
	if strings.TrimSpace(explicit) != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}
	candidate := filepath.Join(dir, meta.ConfigFileName)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.Dir = dir
			cfg.Registry = filepath.Join(dir, cfg.Registry)
			return cfg, "", nil
		}
		return Config{}, "", fmt.Errorf("stat config: %w", err)
	}
	cfg, err := Load(candidate)
	return cfg, candidate, err
}

// TemplatePath resolves a file template against Dir. Builtin names and
// absolute paths are returned unchanged.
func (c Config) TemplatePath(isBuiltin func(string) bool) string {
	ref := c.Template
	if ref == "" || filepath.IsAbs(ref) || (isBuiltin != nil && isBuiltin(ref)) {
		return ref
	}
	return filepath.Join(c.Dir, ref)
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
