package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Config carries runtime options for turtles.
type Config struct {
	Path        string
	Watch       bool
	Rotate      time.Duration
	NoAltScreen bool
	Palette     Palette
}

func Default() Config {
	return Config{
		Path:        "",
		Watch:       false,
		Rotate:      0,
		NoAltScreen: false,
		Palette:     DefaultPalette(),
	}
}

// Flags returns CLI flags bound to c, each overridable via TURTLES_* env.
func (c *Config) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file with rotate interval and palette overrides",
			Sources:     cli.EnvVars("TURTLES_CONFIG"),
			Destination: &c.Path,
		},
		&cli.BoolFlag{
			Name:        "watch",
			Usage:       "reload the palette when the config file changes",
			Sources:     cli.EnvVars("TURTLES_WATCH"),
			Destination: &c.Watch,
		},
		&cli.DurationFlag{
			Name:        "rotate",
			Usage:       "advance the fun fact automatically at this interval (0 disables)",
			Sources:     cli.EnvVars("TURTLES_ROTATE"),
			Destination: &c.Rotate,
		},
		&cli.BoolFlag{
			Name:        "no-alt-screen",
			Usage:       "render inline instead of in the alternate screen",
			Sources:     cli.EnvVars("TURTLES_NO_ALT_SCREEN"),
			Destination: &c.NoAltScreen,
		},
	}
}

// LogAttrs returns log attributes describing the configuration.
func (c *Config) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("path", c.Path),
		slog.Bool("watch", c.Watch),
		slog.Duration("rotate", c.Rotate),
		slog.Bool("no_alt_screen", c.NoAltScreen),
	}
}

// Validate checks values that may come from flags or env.
func (c *Config) Validate() error {
	if c.Rotate < 0 {
		return goerr.Wrap(ErrInvalidRotate, "rotate must not be negative", goerr.V("rotate", c.Rotate))
	}
	if c.Watch && c.Path == "" {
		return goerr.Wrap(ErrInvalidConfig, "--watch requires --config")
	}
	return nil
}

// Load merges the config file named by c.Path, if any. Values set
// explicitly on the command line (reported by isSet) win over the file.
func (c *Config) Load(isSet func(name string) bool) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Path == "" {
		return nil
	}

	f, err := LoadFile(c.Path)
	if err != nil {
		return err
	}
	return c.Apply(f, isSet != nil && isSet("rotate"))
}

// Apply copies validated file values into c. keepRotate leaves the
// current rotate interval untouched.
func (c *Config) Apply(f *File, keepRotate bool) error {
	pal, err := DefaultPalette().With(f.Palette)
	if err != nil {
		return err
	}
	if !keepRotate && f.Rotate != "" {
		d, err := parseRotate(f.Rotate)
		if err != nil {
			return err
		}
		c.Rotate = d
	}
	c.Palette = pal
	return nil
}

// File is the on-disk TOML layout.
type File struct {
	Rotate  string            `toml:"rotate"`
	Palette map[string]string `toml:"palette"`
}

// Validate checks rotate and every palette entry.
func (f *File) Validate() error {
	if f.Rotate != "" {
		if _, err := parseRotate(f.Rotate); err != nil {
			return err
		}
	}
	if _, err := DefaultPalette().With(f.Palette); err != nil {
		return err
	}
	return nil
}

// LoadFile reads and validates a TOML config file.
func LoadFile(path string) (*File, error) {
	// #nosec G304 - path is provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "failed to read config file", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config", goerr.V("path", path), goerr.V("cause", err.Error()))
	}

	if err := f.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return &f, nil
}

// parseRotate accepts Go durations and bare numbers of seconds.
func parseRotate(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		var err2 error
		if d, err2 = time.ParseDuration(v + "s"); err2 != nil {
			return 0, goerr.Wrap(ErrInvalidRotate, "cannot parse rotate", goerr.V("rotate", v))
		}
	}
	if d < 0 {
		return 0, goerr.Wrap(ErrInvalidRotate, "rotate must not be negative", goerr.V("rotate", v))
	}
	return d, nil
}

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(c.LogAttrs()...)
}
