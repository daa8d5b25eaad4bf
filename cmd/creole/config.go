package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-creole/internal/fileutil"
	"github.com/alnah/go-creole/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for HTML generation.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Links  LinksConfig  `yaml:"links"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// RenderConfig defines HTML rendering options.
type RenderConfig struct {
	XHTML     bool   `yaml:"xhtml"`     // Self-closing void tags
	FullPage  bool   `yaml:"fullPage"`  // Wrap fragments in a complete document
	Title     string `yaml:"title"`     // Document title (empty = first heading)
	CSSPath   string `yaml:"cssPath"`   // Stylesheet to inject with fullPage
	Highlight string `yaml:"highlight"` // Chroma language for preformatted blocks
}

// LinksConfig defines link resolution options.
type LinksConfig struct {
	BaseURL string `yaml:"baseURL"` // Prefix for non-absolute targets (empty = pass through)
}

// DefaultConfig returns a neutral configuration with all features disabled.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the user config dir.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-creole", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// applyFlags overlays explicitly set flag values onto the config.
// Precedence: flags > config file > defaults.
func (c *Config) applyFlags(f *convertFlags) {
	if f.render.xhtml {
		c.Render.XHTML = true
	}
	if f.render.fullPage {
		c.Render.FullPage = true
	}
	if f.render.title != "" {
		c.Render.Title = f.render.title
	}
	if f.render.cssPath != "" {
		c.Render.CSSPath = f.render.cssPath
	}
	if f.render.highlight != "" {
		c.Render.Highlight = f.render.highlight
	}
	if f.baseURL != "" {
		c.Links.BaseURL = f.baseURL
	}
}
