// Package config loads and validates the prompt configuration.
//
// Configuration precedence (highest to lowest):
//  1. PULSE_MODE environment variable (mode only)
//  2. User config at ~/.config/pulse/config.yaml
//  3. Global config at /etc/pulse/config.yaml
//  4. Built-in defaults
//
// Later sources override earlier ones per segment name; segments they do
// not mention are kept.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"pulse/internal/clrs"
	"pulse/internal/prompt"
)

const globalConfigPath = "/etc/pulse/config.yaml"

// SegmentSpec is one entry of the segments list as written in YAML.
type SegmentSpec struct {
	Name  string `koanf:"name"`
	Color string `koanf:"color"`
	Text  string `koanf:"text"`
}

// File is the raw YAML shape of a config file.
type File struct {
	Mode     string        `koanf:"mode"`
	Segments []SegmentSpec `koanf:"segments"`
}

// Config is the validated configuration the renderer consumes.
type Config struct {
	Mode     prompt.LayoutMode
	Segments []prompt.Segment
}

// defaults returns the built-in configuration: the classic
// user@host:path [repo : branch] prompt in dual-line mode.
func defaults() *File {
	return &File{
		Mode: "DualLine",
		Segments: []SegmentSpec{
			{Name: "username", Color: "Blue"},
			{Name: "literal", Text: "@", Color: "White"},
			{Name: "hostname", Color: "Green"},
			{Name: "literal", Text: ":", Color: "White"},
			{Name: "current_directory", Color: "Silver"},
			{Name: "literal", Text: " "},
			{Name: "git_branch", Color: "Red"},
		},
	}
}

// Default returns the built-in configuration, validated.
func Default() *Config {
	cfg, err := defaults().build()
	if err != nil {
		// The built-in defaults always validate.
		panic(err)
	}
	return cfg
}

// Load reads, merges and validates the configuration.
//
// When path is non-empty only that file is loaded over the defaults
// (the --config flag). Otherwise the global and user files are merged
// in, each optional. PULSE_MODE overrides the mode in either case.
func Load(path string, log *zap.Logger) (*Config, error) {
	if log == nil {
		log = zap.NewNop()
	}

	raw := defaults()

	paths := []string{globalConfigPath, userConfigPath()}
	if path != "" {
		paths = []string{path}
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		file, err := loadFile(p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		if file == nil {
			continue
		}
		log.Debug("config file loaded", zap.String("path", p))
		raw.merge(file)
	}

	applyEnv(raw)

	return raw.build()
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pulse", "config.yaml")
}

// loadFile parses one YAML config file. A missing file is not an
// error; it simply contributes nothing.
func loadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	var file File
	if err := k.Unmarshal("", &file); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &file, nil
}

// applyEnv overlays environment overrides. Only the mode is settable
// from the environment; segment lists stay file-based.
func applyEnv(raw *File) {
	k := koanf.New(".")
	_ = k.Load(env.Provider("PULSE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PULSE_"))
	}), nil)
	if m := k.String("mode"); m != "" {
		raw.Mode = m
	}
}

// merge overlays other onto f. Segments replace the existing entry of
// the same name; literal entries are keyed by name and text so distinct
// separators survive side by side. Unmatched segments are appended in
// their configured order.
func (f *File) merge(other *File) {
	if other.Mode != "" {
		f.Mode = other.Mode
	}
	for _, inc := range other.Segments {
		replaced := false
		for i, cur := range f.Segments {
			if cur.Name != inc.Name {
				continue
			}
			if cur.Name == "literal" && cur.Text != inc.Text {
				continue
			}
			f.Segments[i] = inc
			replaced = true
			break
		}
		if !replaced {
			f.Segments = append(f.Segments, inc)
		}
	}
}

// build validates the raw file and produces the renderer-facing config.
// Unknown segment names, unknown colors, and literals without text are
// configuration errors; the rendering core never sees them.
func (f *File) build() (*Config, error) {
	mode, err := prompt.ParseMode(f.Mode)
	if err != nil {
		return nil, err
	}

	segs := make([]prompt.Segment, 0, len(f.Segments))
	for _, spec := range f.Segments {
		kind, err := prompt.ParseKind(spec.Name)
		if err != nil {
			return nil, err
		}
		if kind == prompt.KindLiteral && spec.Text == "" {
			return nil, fmt.Errorf("literal segment requires text")
		}

		seg := prompt.Segment{Kind: kind, Text: spec.Text}
		if spec.Color != "" {
			c, err := clrs.Parse(spec.Color)
			if err != nil {
				return nil, err
			}
			seg.Color = c
			seg.Colored = true
		}
		segs = append(segs, seg)
	}

	return &Config{Mode: mode, Segments: segs}, nil
}
