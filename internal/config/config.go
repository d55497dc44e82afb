// Package config loads the cyas front-end configuration.
//
// A configuration file is TOML or YAML, chosen by extension. A missing file
// is not an error: the defaults apply.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	cyaserrors "github.com/cyascript/cyascript/internal/errors"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "cyas.toml"

// Output formats understood by the parse command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat determines the configuration format from file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Verbose bool `toml:"verbose" yaml:"verbose"`
	Debug   bool `toml:"debug" yaml:"debug"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	Debounce string `toml:"debounce" yaml:"debounce"`
}

// Config is the front-end configuration.
type Config struct {
	Output    string      `toml:"output" yaml:"output"`
	ShowLines bool        `toml:"show_lines" yaml:"show_lines"`
	Language  string      `toml:"language" yaml:"language"`
	Log       LogConfig   `toml:"log" yaml:"log"`
	Watch     WatchConfig `toml:"watch" yaml:"watch"`

	path string
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output:    OutputText,
		ShowLines: true,
		Watch:     WatchConfig{Debounce: "200ms"},
	}
}

// Load reads the configuration at path on top of the defaults. An empty
// path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, cyaserrors.Wrap(err, cyaserrors.CategoryConfig, "CONFIG_READ_FAILED",
			fmt.Sprintf("failed to read config file %s", path))
	}

	if err := decode(data, DetectFormat(path), cfg); err != nil {
		return nil, cyaserrors.Wrap(err, cyaserrors.CategoryConfig, "CONFIG_PARSE_FAILED",
			fmt.Sprintf("failed to parse config file %s: %v", path, err))
	}
	cfg.path = path
	return cfg, nil
}

func decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %s", undecoded[0])
		}
		return nil
	}
}

// Path returns the file the configuration was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// Validate checks field values. version is the front-end version the
// language constraint is checked against.
func (c *Config) Validate(version string) error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return cyaserrors.InvalidConfig("output", c.Output, "expected text, json or yaml")
	}

	if c.Language != "" {
		constraint, err := semver.NewConstraint(c.Language)
		if err != nil {
			return cyaserrors.InvalidConfig("language", c.Language, err.Error())
		}
		v, err := semver.NewVersion(version)
		if err != nil {
			return cyaserrors.InvalidConfig("language", version, "front-end version is not semantic: "+err.Error())
		}
		if !constraint.Check(v) {
			return cyaserrors.InvalidConfig("language", c.Language,
				fmt.Sprintf("front end version %s does not satisfy the constraint", v))
		}
	}

	if _, err := c.DebounceDuration(); err != nil {
		return cyaserrors.InvalidConfig("watch.debounce", c.Watch.Debounce, err.Error())
	}
	return nil
}

// DebounceDuration parses watch.debounce. Empty means no debounce.
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration")
	}
	return d, nil
}
