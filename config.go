package cursor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/cursor/theme"
)

// DefaultSize is the nominal cursor size used when none is configured.
const DefaultSize = 24

// Config selects the cursor theme.
type Config struct {
	// Theme is the requested theme name. Empty means theme.DefaultTheme.
	Theme string `yaml:"theme" envconfig:"XCURSOR_THEME"`

	// Size is the requested nominal size in pixels. Zero or negative means
	// DefaultSize.
	Size int `yaml:"size" envconfig:"XCURSOR_SIZE"`

	// Path is a colon separated list of theme base directories. Empty
	// means the standard Xcursor search path.
	Path string `yaml:"path" envconfig:"XCURSOR_PATH"`
}

// DefaultConfig returns the configuration used when nothing is set:
// theme "DMZ-White" at 24 pixels on the standard search path.
func DefaultConfig() Config {
	return Config{
		Theme: theme.DefaultTheme,
		Size:  DefaultSize,
	}
}

// Normalize replaces unset fields with their defaults.
func (c Config) Normalize() Config {
	if c.Theme == "" {
		c.Theme = theme.DefaultTheme
	}
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	return c
}

// Override returns c with every non-zero field of o applied on top.
func (c Config) Override(o Config) Config {
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.Size > 0 {
		c.Size = o.Size
	}
	if o.Path != "" {
		c.Path = o.Path
	}
	return c
}

// SearchPath returns the theme base directories for c.
func (c Config) SearchPath() []string {
	return theme.DefaultSearchPath(c.Path)
}

// LoadConfig reads a YAML config file and merges it over DefaultConfig.
// A missing file is not an error: defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cursor: read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("cursor: parse config %s: %w", path, err)
	}
	return cfg.Override(file).Normalize(), nil
}

// ConfigFromEnv reads XCURSOR_THEME, XCURSOR_SIZE and XCURSOR_PATH and
// merges them over DefaultConfig.
func ConfigFromEnv() (Config, error) {
	env, err := ReadEnv()
	if err != nil {
		return DefaultConfig(), err
	}
	return DefaultConfig().Override(env).Normalize(), nil
}

// ReadEnv returns only the fields set in the environment, for layering
// over a config file with Override.
func ReadEnv() (Config, error) {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		return Config{}, fmt.Errorf("cursor: read environment: %w", err)
	}
	return env, nil
}
