// Package config loads default cat options from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"catkit/internal/catio"
)

// DefaultBufferSize is the output buffer size when none is configured.
const DefaultBufferSize = 64 * 1024

const appName = "catkit"

// File mirrors the on-disk layout.
type File struct {
	Options optionsConfig `toml:"options"`
	Output  outputConfig  `toml:"output"`
}

type optionsConfig struct {
	Number          bool `toml:"number"`
	NumberNonBlank  bool `toml:"number_nonblank"`
	ShowEnds        bool `toml:"show_ends"`
	ShowTabs        bool `toml:"show_tabs"`
	ShowNonPrinting bool `toml:"show_nonprinting"`
	SqueezeBlank    bool `toml:"squeeze_blank"`
}

type outputConfig struct {
	BufferSize int64 `toml:"buffer_size"`
}

// Config is the resolved configuration.
type Config struct {
	Path       string // file it was loaded from, empty for built-in defaults
	Options    catio.Options
	BufferSize int
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{BufferSize: DefaultBufferSize}
}

// DefaultPath returns $XDG_CONFIG_HOME/catkit/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName, "config.toml"), nil
}

// Load reads path. An explicit path must exist; with an empty path the
// default location is tried and a missing file yields Default().
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a config document. Unknown keys are rejected.
func Parse(data string) (Config, error) {
	var f File
	meta, err := toml.Decode(data, &f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return f.resolve(meta)
}

func (f File) resolve(meta toml.MetaData) (Config, error) {
	cfg := Default()
	cfg.Options = f.Options.flags()

	if meta.IsDefined("output", "buffer_size") {
		if f.Output.BufferSize <= 0 {
			return Config{}, fmt.Errorf("[output].buffer_size must be positive, got %d", f.Output.BufferSize)
		}
		n, err := safecast.Conv[int](f.Output.BufferSize)
		if err != nil {
			return Config{}, fmt.Errorf("[output].buffer_size: %w", err)
		}
		cfg.BufferSize = n
	}
	return cfg, nil
}

func (o optionsConfig) flags() catio.Options {
	var opts catio.Options
	if o.Number {
		opts |= catio.NumberAll
	}
	if o.NumberNonBlank {
		opts |= catio.NumberAll | catio.NumberNonBlank
	}
	if o.ShowEnds {
		opts |= catio.ShowEnds
	}
	if o.ShowTabs {
		opts |= catio.ShowTabs
	}
	if o.ShowNonPrinting {
		opts |= catio.ShowNonPrinting
	}
	if o.SqueezeBlank {
		opts |= catio.SqueezeBlank
	}
	return opts
}
