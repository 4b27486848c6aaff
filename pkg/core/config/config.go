package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "MCLI_CONFIG"

// Input backends
const (
	InputTea      = "tea"
	InputReadline = "readline"
)

// Config holds the complete application configuration
type Config struct {
	Shell   ShellConfig   `toml:"shell" yaml:"shell"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// ShellConfig holds interactive shell settings
type ShellConfig struct {
	Prompt       string `toml:"prompt" yaml:"prompt"`
	Input        string `toml:"input" yaml:"input"`
	ResourcesDir string `toml:"resources_dir" yaml:"resources_dir"`
	HistoryFile  string `toml:"history_file" yaml:"history_file"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from MCLI_CONFIG or the default locations.
// Without any config file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

func defaultPaths() []string {
	paths := []string{
		"./configs/mcli.toml",
		"./mcli.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mcli", "config.toml"))
	}
	return paths
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Shell.Input {
	case InputTea, InputReadline:
	default:
		return fmt.Errorf("invalid shell.input %q (want %q or %q)", c.Shell.Input, InputTea, InputReadline)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Shell
	if c.Shell.Prompt == "" {
		c.Shell.Prompt = "> "
	}
	if c.Shell.Input == "" {
		c.Shell.Input = InputTea
	}
	if c.Shell.ResourcesDir == "" {
		c.Shell.ResourcesDir = defaultResourcesDir()
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Shell.ResourcesDir = os.ExpandEnv(c.Shell.ResourcesDir)
	c.Shell.HistoryFile = os.ExpandEnv(c.Shell.HistoryFile)
	c.Logging.File = os.ExpandEnv(c.Logging.File)
}

// defaultResourcesDir resolves the resources directory next to the
// installed binary.
func defaultResourcesDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "resources"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "resources")
}
