// Package config loads tugbrowse settings from a YAML or TOML file.
package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/datatug/tugbrowse/pkg/fsutils"
	"github.com/gobwas/glob"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where settings are looked up when no --config is given.
const DefaultPath = "~/.tugbrowse/config.yaml"

// Settings holds everything that can be configured from a file.
// Command line flags override the values read here.
type Settings struct {
	OperatingDir string   `yaml:"operating_dir,omitempty" toml:"operating_dir,omitempty"`
	StartDir     string   `yaml:"start_dir,omitempty" toml:"start_dir,omitempty"`
	Mouse        bool     `yaml:"mouse" toml:"mouse"`
	NoHelp       bool     `yaml:"no_help,omitempty" toml:"no_help,omitempty"`
	DisableHelp  bool     `yaml:"disable_help,omitempty" toml:"disable_help,omitempty"`
	QuickBlank   bool     `yaml:"quick_blank,omitempty" toml:"quick_blank,omitempty"`
	Hide         []string `yaml:"hide,omitempty" toml:"hide,omitempty"`
	LogFile      string   `yaml:"log_file,omitempty" toml:"log_file,omitempty"`
	LogLevel     string   `yaml:"log_level,omitempty" toml:"log_level,omitempty"`
}

// Default returns settings used when no file exists.
func Default() Settings {
	return Settings{
		Mouse:    true,
		LogLevel: "info",
	}
}

// Load reads settings from path on top of Default().
// An empty path means DefaultPath, and a missing default file is not an error.
// Files ending in .toml are decoded as TOML, anything else as YAML.
func Load(path string) (Settings, error) {
	settings := Default()
	required := path != ""
	if path == "" {
		path = DefaultPath
	}
	path = fsutils.ExpandHome(path)
	if err := fsutils.ReadFile(path, required, &settings, decoderFor(path)); err != nil {
		return settings, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if _, err := settings.HideMatcher(); err != nil {
		return settings, err
	}
	return settings, nil
}

func decoderFor(path string) func(r io.Reader) fsutils.Decoder {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return func(r io.Reader) fsutils.Decoder {
			return toml.NewDecoder(r)
		}
	default:
		return func(r io.Reader) fsutils.Decoder {
			return yaml.NewDecoder(r)
		}
	}
}

// GlobMatcher reports whether a name matches any of its compiled patterns.
type GlobMatcher struct {
	patterns []glob.Glob
}

// Match implements browser.Matcher.
func (m *GlobMatcher) Match(name string) bool {
	if m == nil {
		return false
	}
	for _, g := range m.patterns {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// HideMatcher compiles the hide patterns.
// It returns nil when there is nothing to hide.
func (s Settings) HideMatcher() (*GlobMatcher, error) {
	if len(s.Hide) == 0 {
		return nil, nil
	}
	m := &GlobMatcher{patterns: make([]glob.Glob, 0, len(s.Hide))}
	for _, pattern := range s.Hide {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid hide pattern %q: %w", pattern, err)
		}
		m.patterns = append(m.patterns, g)
	}
	return m, nil
}
