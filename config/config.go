// Package config loads mazepath settings.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults (Default).
//  2. An optional TOML file with [charset], [output] and [log] tables.
//  3. Environment variables MAZEPATH_LOG_LEVEL and MAZEPATH_COLOR, which may
//     themselves be seeded from a .env file.
//
// Example file:
//
//	[charset]
//	wall  = "#"
//	empty = " "
//	start = "O"
//	end   = "X"
//	path  = "+"
//
//	[output]
//	color = "auto"   # auto | always | never
//	stats = true
//
//	[log]
//	level = "info"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/mazepath/asciimaze"
)

// ErrInvalidConfig indicates a value that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvLogLevel = "MAZEPATH_LOG_LEVEL"
	EnvColor    = "MAZEPATH_COLOR"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full settings tree.
type Config struct {
	Charset CharsetConfig `toml:"charset"`
	Output  OutputConfig  `toml:"output"`
	Log     LogConfig     `toml:"log"`
}

// CharsetConfig holds one single-character string per tile.
type CharsetConfig struct {
	Wall  string `toml:"wall"`
	Empty string `toml:"empty"`
	Start string `toml:"start"`
	End   string `toml:"end"`
	Path  string `toml:"path"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Color string `toml:"color"`
	Stats bool   `toml:"stats"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	cs := asciimaze.DefaultCharset()
	return Config{
		Charset: CharsetConfig{
			Wall:  string(cs.Wall),
			Empty: string(cs.Empty),
			Start: string(cs.Start),
			End:   string(cs.End),
			Path:  string(cs.Path),
		},
		Output: OutputConfig{Color: ColorAuto, Stats: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the TOML file at path over Default. An empty path returns the
// defaults. Unknown keys are rejected with ErrInvalidConfig.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" if none)
// into the process environment without overriding variables already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overlays environment overrides read through lookup;
// os.LookupEnv is used when lookup is nil.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		c.Output.Color = strings.ToLower(v)
	}

	return c.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := c.AsciiCharset(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: output.color %q (want auto, always or never)", ErrInvalidConfig, c.Output.Color)
	}

	return nil
}

// AsciiCharset converts the charset table to an asciimaze.Charset.
func (c Config) AsciiCharset() (asciimaze.Charset, error) {
	var cs asciimaze.Charset
	for _, f := range []struct {
		name string
		val  string
		dst  *rune
	}{
		{"wall", c.Charset.Wall, &cs.Wall},
		{"empty", c.Charset.Empty, &cs.Empty},
		{"start", c.Charset.Start, &cs.Start},
		{"end", c.Charset.End, &cs.End},
		{"path", c.Charset.Path, &cs.Path},
	} {
		if utf8.RuneCountInString(f.val) != 1 {
			return asciimaze.Charset{}, fmt.Errorf("%w: charset.%s must be one character, got %q", ErrInvalidConfig, f.name, f.val)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.val)
	}
	if err := cs.Validate(); err != nil {
		return asciimaze.Charset{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cs, nil
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	return lvl, nil
}
