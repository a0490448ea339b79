package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/san-kum/flipcalc/internal/calc"
	"github.com/san-kum/flipcalc/internal/selector"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	DefaultDurationMs  = 400
	DefaultFPS         = 60
	DefaultHistorySize = 64
	DefaultTheme       = "cyberpunk"
	DefaultFile        = "flipcalc.yaml"
	EnvPrefix          = "FLIPCALC_"
)

// Animation styles.
const (
	StyleFade = "fade"
	StyleRoll = "roll"
)

type Config struct {
	Precision string          `yaml:"precision" koanf:"precision"`
	Spacing   string          `yaml:"spacing" koanf:"spacing"`
	Operator  string          `yaml:"operator" koanf:"operator"`
	Theme     string          `yaml:"theme" koanf:"theme"`
	FPS       int             `yaml:"fps" koanf:"fps"`
	LogLevel  string          `yaml:"log_level" koanf:"log_level"`
	LogFile   string          `yaml:"log_file" koanf:"log_file"`
	Animation AnimationConfig `yaml:"animation" koanf:"animation"`
	History   HistoryConfig   `yaml:"history" koanf:"history"`
}

type AnimationConfig struct {
	DurationMs int    `yaml:"duration_ms" koanf:"duration_ms"`
	Style      string `yaml:"style" koanf:"style"`
}

type HistoryConfig struct {
	Size int  `yaml:"size" koanf:"size"`
	Show bool `yaml:"show" koanf:"show"`
}

func DefaultConfig() *Config {
	return &Config{
		Precision: calc.PrecisionRounded.String(),
		Spacing:   selector.SpacingNone.String(),
		Operator:  calc.Add.String(),
		Theme:     DefaultTheme,
		FPS:       DefaultFPS,
		LogLevel:  "info",
		Animation: AnimationConfig{
			DurationMs: DefaultDurationMs,
			Style:      StyleFade,
		},
		History: HistoryConfig{
			Size: DefaultHistorySize,
			Show: true,
		},
	}
}

// Options control where Load looks for values.
type Options struct {
	// File is an explicit config path. When empty, ./flipcalc.yaml is used
	// if present.
	File string
	// Preset is applied over the defaults, below the file.
	Preset string
	// Flags override everything else, but only those explicitly set.
	Flags *pflag.FlagSet
}

// Load layers defaults, preset, file, FLIPCALC_ environment variables and
// changed flags, lowest to highest.
func Load(opts Options) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(toMap(DefaultConfig()), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if opts.Preset != "" {
		p := GetPreset(opts.Preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", opts.Preset, ListPresets())
		}
		if err := k.Load(confmap.Provider(p, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load preset: %w", err)
		}
	}

	path := opts.File
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// FLIPCALC_ANIMATION__DURATION_MS -> animation.duration_ms
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(opts.Flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"precision":    "precision",
	"spacing":      "spacing",
	"operator":     "operator",
	"theme":        "theme",
	"fps":          "fps",
	"log-level":    "log_level",
	"log-file":     "log_file",
	"duration":     "animation.duration_ms",
	"style":        "animation.style",
	"history":      "history.show",
	"history-size": "history.size",
}

func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlv3.Marshal(cfg)
}

// Validate rejects values the widget cannot use.
func (c *Config) Validate() error {
	if _, err := calc.ParsePrecision(c.Precision); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := selector.ParseSpacing(c.Spacing); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := calc.ParseOperator(c.Operator); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("invalid config: fps must be in 1..240, got %d", c.FPS)
	}
	if c.Animation.DurationMs < 0 {
		return fmt.Errorf("invalid config: animation duration must not be negative, got %d", c.Animation.DurationMs)
	}
	if c.Animation.Style != StyleFade && c.Animation.Style != StyleRoll {
		return fmt.Errorf("invalid config: unknown animation style %q", c.Animation.Style)
	}
	if c.History.Size < 0 {
		return fmt.Errorf("invalid config: history size must not be negative, got %d", c.History.Size)
	}
	return nil
}

func (c *Config) PrecisionPolicy() calc.Precision {
	p, _ := calc.ParsePrecision(c.Precision)
	return p
}

func (c *Config) SpacingMode() selector.SpacingMode {
	m, _ := selector.ParseSpacing(c.Spacing)
	return m
}

func (c *Config) InitialOperator() calc.Operator {
	op, _ := calc.ParseOperator(c.Operator)
	return op
}

func (c *Config) Duration() time.Duration {
	return time.Duration(c.Animation.DurationMs) * time.Millisecond
}

func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

func toMap(c *Config) map[string]interface{} {
	return map[string]interface{}{
		"precision":             c.Precision,
		"spacing":               c.Spacing,
		"operator":              c.Operator,
		"theme":                 c.Theme,
		"fps":                   c.FPS,
		"log_level":             c.LogLevel,
		"log_file":              c.LogFile,
		"animation.duration_ms": c.Animation.DurationMs,
		"animation.style":       c.Animation.Style,
		"history.size":          c.History.Size,
		"history.show":          c.History.Show,
	}
}
