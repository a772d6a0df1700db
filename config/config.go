// Package config loads tool configuration for a funs workspace.
// Configuration lives in funs.toml or funs.yaml at the workspace root;
// both formats carry the same schema, and every field has a default so
// a workspace without a config file works out of the box.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Filenames are the recognized configuration file names, in lookup
// order.
var Filenames = []string{"funs.toml", "funs.yaml", "funs.yml"}

type Config struct {
	// SourceDirs lists the directories scanned for .fs files, relative
	// to the workspace root.
	SourceDirs []string `toml:"source_dirs" yaml:"source_dirs"`

	// Exclude lists directory names skipped while scanning.
	Exclude []string `toml:"exclude" yaml:"exclude"`

	// Strict makes check treat warnings as errors.
	Strict bool `toml:"strict" yaml:"strict"`

	UI    UIConfig    `toml:"ui" yaml:"ui"`
	Watch WatchConfig `toml:"watch" yaml:"watch"`
}

type UIConfig struct {
	// Addr is the listen address of the ui server.
	Addr string `toml:"addr" yaml:"addr"`
}

type WatchConfig struct {
	// Interval is the polling interval for file watching, in
	// time.ParseDuration syntax.
	Interval string `toml:"interval" yaml:"interval"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		SourceDirs: []string{"."},
		Exclude:    []string{".git", "out", "lib"},
		UI:         UIConfig{Addr: "localhost:8080"},
		Watch:      WatchConfig{Interval: "500ms"},
	}
}

// Load reads one configuration file. The format follows the file
// extension; anything that is not .yaml or .yml parses as TOML. Values
// absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Discover walks up from dir looking for a configuration file and
// returns the loaded configuration together with the workspace root,
// which is the directory holding the file. When no file exists the
// defaults apply and dir itself is the root.
func Discover(dir string) (*Config, string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}
	for d := abs; ; d = filepath.Dir(d) {
		for _, name := range Filenames {
			path := filepath.Join(d, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err != nil {
					return nil, "", err
				}
				return cfg, d, nil
			}
		}
		if d == filepath.Dir(d) {
			break
		}
	}
	return Default(), abs, nil
}

// WatchInterval returns the parsed polling interval, falling back to
// the default when the configured value does not parse.
func (c *Config) WatchInterval() time.Duration {
	if d, err := time.ParseDuration(c.Watch.Interval); err == nil && d > 0 {
		return d
	}
	return 500 * time.Millisecond
}

// Excluded reports whether a directory name is on the exclude list.
func (c *Config) Excluded(name string) bool {
	for _, e := range c.Exclude {
		if name == e {
			return true
		}
	}
	return false
}
