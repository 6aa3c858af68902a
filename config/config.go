// Package config loads rasterfx settings from a TOML file.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/nvr-ai/rasterfx/codec"
	"github.com/nvr-ai/rasterfx/images"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "rasterfx.toml"

// Config is the full set of settings.
type Config struct {
	// Thresholds for the parameterized transforms.
	Thresholds Thresholds `toml:"thresholds"`
	// Output controls where and how results are saved.
	Output Output `toml:"output"`
	// Log controls logging.
	Log Log `toml:"log"`
	// Batch controls directory processing.
	Batch Batch `toml:"batch"`
	// Viewer controls on-screen display.
	Viewer Viewer `toml:"viewer"`
}

// Thresholds mirrors images.Options.
type Thresholds struct {
	Cartoon      int `toml:"cartoon"`
	BlackWhite   int `toml:"black_white"`
	RedFloor     int `toml:"red_floor"`
	OtherCeiling int `toml:"other_ceiling"`
}

// Output settings.
type Output struct {
	// Dir is the directory results are written to when no explicit path is given.
	Dir string `toml:"dir"`
	// Format is the default output format name (gif, png, jpeg, ...).
	Format string `toml:"format"`
}

// Log settings.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File, when set, receives a rotated copy of the log.
	File string `toml:"file"`
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `toml:"max_size_mb"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `toml:"max_backups"`
}

// Batch settings.
type Batch struct {
	// Concurrency is the number of files transformed at once.
	Concurrency int `toml:"concurrency"`
}

// Viewer settings.
type Viewer struct {
	// MaxWidth and MaxHeight bound the displayed preview.
	MaxWidth  int `toml:"max_width"`
	MaxHeight int `toml:"max_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	opts := images.DefaultOptions()
	return Config{
		Thresholds: Thresholds{
			Cartoon:      opts.CartoonThreshold,
			BlackWhite:   opts.BlackWhiteThreshold,
			RedFloor:     opts.RedFloor,
			OtherCeiling: opts.OtherCeiling,
		},
		Output: Output{
			Dir:    "out",
			Format: string(codec.FormatGIF),
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Batch: Batch{
			Concurrency: 4,
		},
		Viewer: Viewer{
			MaxWidth:  1280,
			MaxHeight: 960,
		},
	}
}

// Load reads the TOML file at path on top of Default. A missing file is an
// error only when required is true; otherwise the defaults are returned.
//
// Arguments:
// - path: The TOML file to read.
// - required: Whether a missing file is an error.
//
// Returns:
// - The merged, validated configuration.
// - An error if the file cannot be parsed or validation fails.
//
// @example
// cfg, err := config.Load("rasterfx.toml", false)
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return cfg, nil
		}
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return err
	}
	if _, err := codec.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, "output.format")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("log.level %q must be debug, info, warn or error", c.Log.Level)
	}
	if c.Batch.Concurrency < 1 {
		return errors.Errorf("batch.concurrency %d must be at least 1", c.Batch.Concurrency)
	}
	if c.Viewer.MaxWidth < 1 || c.Viewer.MaxHeight < 1 {
		return errors.Errorf("viewer bounds %dx%d must be positive", c.Viewer.MaxWidth, c.Viewer.MaxHeight)
	}
	return nil
}

// Options converts the thresholds into engine options.
func (c Config) Options() images.Options {
	return images.Options{
		CartoonThreshold:    c.Thresholds.Cartoon,
		BlackWhiteThreshold: c.Thresholds.BlackWhite,
		RedFloor:            c.Thresholds.RedFloor,
		OtherCeiling:        c.Thresholds.OtherCeiling,
	}
}

// OutputFormat returns the parsed default output format.
func (c Config) OutputFormat() codec.ImageFormat {
	f, err := codec.ParseFormat(c.Output.Format)
	if err != nil {
		return codec.FormatGIF
	}
	return f
}
