package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/actionspec/packages/logger"
	"github.com/abdul-hamid-achik/actionspec/packages/route"
	"gopkg.in/yaml.v3"
)

// Config represents the actionspec configuration
type Config struct {
	URLPrefix       string `json:"urlPrefix,omitempty" yaml:"urlPrefix,omitempty"`             // Prefix for generated URLs, "~/" or "/"
	ApplicationPath string `json:"applicationPath,omitempty" yaml:"applicationPath,omitempty"` // Application root for fake contexts
	Routes          string `json:"routes,omitempty" yaml:"routes,omitempty"`                   // Route fixture file
	NoColor         *bool  `json:"noColor,omitempty" yaml:"noColor,omitempty"`
	Verbose         *bool  `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// ApplyLogging switches the package logger to debug level when Verbose is
// set. An unset or false Verbose leaves the LOG_LEVEL choice in place.
func (c *Config) ApplyLogging() {
	if c.GetVerbose() {
		logger.SetVerbose(true)
	}
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".actionspec.json",
	"actionspec.json",
	".actionspec.yaml",
	"actionspec.yaml",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Route fixtures are resolved relative to the config file
	if config.Routes != "" && !filepath.IsAbs(config.Routes) {
		config.Routes = filepath.Join(filepath.Dir(path), config.Routes)
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c

	if other.URLPrefix != "" {
		result.URLPrefix = other.URLPrefix
	}
	if other.ApplicationPath != "" {
		result.ApplicationPath = other.ApplicationPath
	}
	if other.Routes != "" {
		result.Routes = other.Routes
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}

	return &result
}

// LoadRoutes builds the route table named by Routes.
func (c *Config) LoadRoutes() (*route.Table, error) {
	if c.Routes == "" {
		return nil, fmt.Errorf("no route file configured")
	}
	return route.LoadTable(c.Routes)
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
