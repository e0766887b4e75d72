package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxURLLength  = 2048 // Browser limit
	MaxNameLength = 100  // Template and theme names
	MaxPathLength = 4096 // PATH_MAX on Linux
)

// userConfigSubdir is the directory under os.UserConfigDir searched for named configs.
const userConfigSubdir = "go-md2html"

// configExtensions are tried in order when resolving a config by name.
var configExtensions = []string{".yaml", ".yml", ".toml"}

// Config holds all configuration for document generation.
// Empty values mean "use the built-in default".
type Config struct {
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Preamble PreambleConfig `yaml:"preamble" toml:"preamble"`
	Assets   AssetsConfig   `yaml:"assets" toml:"assets"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"` // Empty = next to the source
}

// PreambleConfig defines the HTML head written before the document body.
type PreambleConfig struct {
	Template         string `yaml:"template" toml:"template"`                 // Template name (default: "default")
	MathRendererURL  string `yaml:"mathRendererURL" toml:"mathRendererURL"`   // texme script URL
	HighlightBaseURL string `yaml:"highlightBaseURL" toml:"highlightBaseURL"` // highlight.js release root
	HighlightTheme   string `yaml:"highlightTheme" toml:"highlightTheme"`     // e.g. "atom-one-dark", "github"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath" toml:"basePath"` // Empty = embedded templates only
}

// Validate checks field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"preamble.template", c.Preamble.Template, MaxNameLength},
		{"preamble.mathRendererURL", c.Preamble.MathRendererURL, MaxURLLength},
		{"preamble.highlightBaseURL", c.Preamble.HighlightBaseURL, MaxURLLength},
		{"preamble.highlightTheme", c.Preamble.HighlightTheme, MaxNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}

	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration where every value falls back
// to the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths order.
// Files ending in .toml are decoded as TOML, anything else as YAML.
// Unknown keys are rejected in both formats.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// An empty file of either format yields the defaults.
	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		err = decodeTOML(f, cfg)
	} else {
		err = yamlutil.DecodeStrict(f, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decodeTOML decodes a TOML document, rejecting keys that map to no field.
func decodeTOML(r io.Reader, cfg *Config) error {
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// SearchPaths lists, in order, the files LoadConfig tries for a config name:
// the current directory first, then the user config directory.
func SearchPaths(name string) []string {
	paths := make([]string, 0, len(configExtensions)*2)
	for _, ext := range configExtensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range configExtensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigSubdir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
