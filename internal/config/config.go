// Package config loads hunkalign's configuration from defaults, an optional TOML file, and HUNKALIGN_* environment variables (in increasing precedence).
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/codalotl/hunkalign/internal/align"
)

// EnvPrefix prefixes environment variables that override configuration. Ex: HUNKALIGN_EXPAND_MAXSTEPS=5 sets expand.maxsteps.
const EnvPrefix = "HUNKALIGN_"

// DefaultPaths are tried, in order, when no explicit config path is given. The first one that exists is loaded.
var DefaultPaths = []string{"./.hunkalign.toml", "$HOME/.hunkalign.toml"}

// Config is hunkalign's configuration.
//
// Keys contain no underscores; see EnvPrefix.
type Config struct {
	Expand struct {
		Up       bool     `koanf:"up" json:"up"`
		Down     bool     `koanf:"down" json:"down"`
		MaxSteps int      `koanf:"maxsteps" json:"maxsteps"`
		Anchors  []string `koanf:"anchors" json:"anchors"`
	} `koanf:"expand" json:"expand"`

	Merge struct {
		Enabled bool `koanf:"enabled" json:"enabled"`
	} `koanf:"merge" json:"merge"`

	Log struct {
		// File receives JSON log lines. Empty disables logging.
		File string `koanf:"file" json:"file"`
	} `koanf:"log" json:"log"`

	// Source is the config file that was loaded, if any.
	Source string `koanf:"-" json:"source,omitempty"`
}

func defaults() map[string]any {
	return map[string]any{
		"expand.up":       true,
		"expand.down":     true,
		"expand.maxsteps": 3,
		"expand.anchors":  append([]string(nil), align.DefaultAnchorPatterns...),
		"merge.enabled":   true,
		"log.file":        "",
	}
}

// Load loads configuration. If path is non-empty it must exist; otherwise DefaultPaths are searched. Environment variables are applied last. The result is
// validated.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	var source string
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
		source = path
	} else {
		for _, p := range DefaultPaths {
			p = os.ExpandEnv(p)
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return Config{}, fmt.Errorf("load config %s: %w", p, err)
			}
			source = p
			break
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Source = source

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKey maps HUNKALIGN_EXPAND_MAXSTEPS to expand.maxsteps.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

// Validate checks cfg and returns an error describing every problem found.
func Validate(cfg Config) error {
	var errs []error
	if cfg.Expand.MaxSteps < 0 {
		errs = append(errs, fmt.Errorf("expand.maxsteps must be >= 0 (got %d)", cfg.Expand.MaxSteps))
	}
	for i, p := range cfg.Expand.Anchors {
		if _, err := regexp.Compile(p); err != nil {
			errs = append(errs, fmt.Errorf("expand.anchors[%d]: %w", i, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
}

// AnchorPatterns compiles cfg.Expand.Anchors. Call Validate first; patterns that fail to compile are skipped.
func (cfg Config) AnchorPatterns() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(cfg.Expand.Anchors))
	for _, p := range cfg.Expand.Anchors {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		out = append(out, re)
	}
	return out
}

// AlignOptions converts cfg's expand settings to align.Options.
func (cfg Config) AlignOptions() align.Options {
	return align.Options{
		Up:       cfg.Expand.Up,
		Down:     cfg.Expand.Down,
		MaxSteps: cfg.Expand.MaxSteps,
		Anchors:  cfg.AnchorPatterns(),
	}
}
