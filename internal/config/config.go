package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"

	"github.com/skosovsky/cascade"
)

// Renderer names accepted by Config.Renderer.
const (
	RendererText       = "text"
	RendererHTML       = "html"
	RendererHandlebars = "handlebars"
)

// Config holds all configuration for the cascade command.
type Config struct {
	// Host layout
	BaseDir       string `env:"CASCADE_BASE_DIR" envDefault:"."`
	ThemeDir      string `env:"CASCADE_THEME_DIR"`
	ChildThemeDir string `env:"CASCADE_CHILD_THEME_DIR"`

	// Engine
	TemplatesDir      string   `env:"CASCADE_TEMPLATES_DIR" envDefault:"templates"`
	ThemeTemplatesDir string   `env:"CASCADE_THEME_TEMPLATES_DIR"`
	FileExtension     string   `env:"CASCADE_FILE_EXTENSION" envDefault:"tmpl"`
	Renderer          string   `env:"CASCADE_RENDERER" envDefault:"text"`
	Manifests         []string `env:"CASCADE_MANIFESTS" envSeparator:","`
	Builtins          bool     `env:"CASCADE_BUILTINS" envDefault:"true"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		return errors.New("CASCADE_BASE_DIR is required")
	}

	if c.TemplatesDir == "" {
		return errors.New("CASCADE_TEMPLATES_DIR is required")
	}

	if _, err := cascade.NewFileExtension(c.FileExtension); err != nil {
		return fmt.Errorf("CASCADE_FILE_EXTENSION: %w", err)
	}

	switch c.Renderer {
	case RendererText, RendererHTML, RendererHandlebars:
	default:
		return fmt.Errorf("CASCADE_RENDERER must be one of: %s, %s, %s", RendererText, RendererHTML, RendererHandlebars)
	}

	if c.ChildThemeDir != "" && c.ThemeDir == "" {
		return errors.New("CASCADE_CHILD_THEME_DIR requires CASCADE_THEME_DIR")
	}

	if !isValidLogLevel(c.LogLevel) {
		return errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// Host returns the directory layout as a cascade.Host.
func (c *Config) Host() cascade.DirHost {
	return cascade.DirHost{
		Base:       c.BaseDir,
		Theme:      c.ThemeDir,
		ChildTheme: c.ChildThemeDir,
	}
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{BaseDir=%s, ThemeDir=%s, ChildThemeDir=%s, TemplatesDir=%s, ThemeTemplatesDir=%s, "+
			"FileExtension=%s, Renderer=%s, Manifests=%v, Builtins=%v, LogLevel=%s}",
		c.BaseDir,
		c.ThemeDir,
		c.ChildThemeDir,
		c.TemplatesDir,
		c.ThemeTemplatesDir,
		c.FileExtension,
		c.Renderer,
		c.Manifests,
		c.Builtins,
		c.LogLevel,
	)
}
