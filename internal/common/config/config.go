package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultCommitMessage is used when no message is configured
const DefaultCommitMessage = "Auto-update: Saving progress"

var (
	ErrConfigNotFound     = errors.New("config file does not exist")
	ErrUnsupportedFormat  = errors.New("unsupported config format: use .yaml, .yml or .toml")
	ErrWorkDirNotFound    = errors.New("working directory does not exist")
	ErrIncompleteIdentity = errors.New("git.user and git.email must be set together")
	ErrNoConfigDir        = errors.New("no config directory: neither XDG_CONFIG_HOME nor HOME is set")
)

// Config represents the application configuration
type Config struct {
	Commit CommitConfig `yaml:"commit" toml:"commit"`
	Git    GitConfig    `yaml:"git" toml:"git"`
}

// CommitConfig holds commit settings
type CommitConfig struct {
	Message string `yaml:"message" toml:"message"`
}

// GitConfig holds git settings. User and Email, when both set, become the
// commit author; otherwise git's own identity applies.
type GitConfig struct {
	User    string `yaml:"user,omitempty" toml:"user,omitempty"`
	Email   string `yaml:"email,omitempty" toml:"email,omitempty"`
	WorkDir string `yaml:"workdir,omitempty" toml:"workdir,omitempty"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Commit: CommitConfig{
			Message: DefaultCommitMessage,
		},
	}
}

// ConfigPaths returns all possible config file paths in priority order
// 1. $XDG_CONFIG_HOME/autopush/config.yaml (XDG standard - priority)
// 2. $XDG_CONFIG_HOME/autopush/config.toml
// 3. ~/.autopush/config.yaml (legacy fallback)
//
// XDG_CONFIG_HOME defaults to ~/.config. Without a home directory only the
// XDG candidates are returned, and only when XDG_CONFIG_HOME is set.
func ConfigPaths() ([]string, error) {
	home, homeErr := os.UserHomeDir()

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		if homeErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoConfigDir, homeErr)
		}
		xdgConfig = filepath.Join(home, ".config")
	}

	paths := []string{
		filepath.Join(xdgConfig, "autopush", "config.yaml"),
		filepath.Join(xdgConfig, "autopush", "config.toml"),
	}
	if homeErr == nil {
		paths = append(paths, filepath.Join(home, ".autopush", "config.yaml"))
	}
	return paths, nil
}

// DefaultConfigPath returns the default config file path (XDG standard)
func DefaultConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// FindConfigPath returns the first existing config file path.
// found is false when none of the candidates exist.
func FindConfigPath() (path string, found bool, err error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", false, err
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, true, nil
		}
	}

	return paths[0], false, nil
}

// Load reads configuration from the first available config file.
// A missing file is not an error: defaults are returned and nothing is written.
// The same holds when no config directory can be resolved at all.
func Load() (*Config, error) {
	configPath, found, err := FindConfigPath()
	if errors.Is(err, ErrNoConfigDir) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	if !found {
		return Default(), nil
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path.
// The format is chosen by file extension.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg := &Config{}
	switch formatOf(path) {
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	case "toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// SaveTo writes configuration to a specific file path
func (c *Config) SaveTo(path string) error {
	format := formatOf(path)
	if format == "" {
		return ErrUnsupportedFormat
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var data []byte
	switch format {
	case "yaml":
		out, err := yaml.Marshal(c)
		if err != nil {
			return err
		}
		data = out
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks for settings that cannot be honoured
func (c *Config) Validate() error {
	if (c.Git.User == "") != (c.Git.Email == "") {
		return ErrIncompleteIdentity
	}
	return nil
}

// Author returns the configured commit author, or empty strings when git's
// own identity should be used.
func (c *Config) Author() (user, email string) {
	if c.Git.User != "" && c.Git.Email != "" {
		return c.Git.User, c.Git.Email
	}
	return "", ""
}

// GetWorkDir returns the working directory to operate in.
// An empty setting means the current directory.
func (c *Config) GetWorkDir() (string, error) {
	path := c.Git.WorkDir
	if path == "" {
		return "", nil
	}

	// Expand home directory if needed
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrWorkDirNotFound, path)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrWorkDirNotFound, path)
	}

	return path, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Commit.Message) == "" {
		c.Commit.Message = DefaultCommitMessage
	}
}

// formatOf maps a file extension to a decoder name
func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
