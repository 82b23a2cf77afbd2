// Package config reads and writes the server configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/render"
)

// FileName is the configuration file name inside the config directory.
const FileName = "yserver.toml"

// Errors reported by Validate.
var (
	ErrInvalidSize     = errors.New("config: width and height must be positive")
	ErrInvalidFontSize = errors.New("config: font size must be positive")
	ErrInvalidFrames   = errors.New("config: frame count must not be negative")
)

// Config is the server configuration.
type Config struct {
	// Driver names the video driver. Empty selects the best available.
	Driver string `toml:"driver"`

	// Mode is the renderer variant the driver hands out.
	Mode render.Mode `toml:"mode"`

	// Width and Height size drivers without a physical display.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Background Color `toml:"background"`

	// Pointer enables the software pointer.
	Pointer bool `toml:"pointer"`

	// HardwarePointer asks the driver to draw the pointer itself.
	HardwarePointer bool `toml:"hardware_pointer"`

	// Font is a TrueType or OpenType file. Empty uses the built-in face.
	Font     string  `toml:"font"`
	FontSize float64 `toml:"font_size"`

	// Image is shown in a demo window when set.
	Image string `toml:"image"`

	LogLevel string `toml:"log_level"`

	// Snapshot is where the memory driver writes its final frame.
	Snapshot string `toml:"snapshot"`

	// Frames limits the number of composited frames. Zero runs until quit.
	Frames int `toml:"frames"`

	FrameInterval Duration `toml:"frame_interval"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Mode:          render.ModeSoftware,
		Width:         640,
		Height:        480,
		Background:    Color(0xFF404080),
		Pointer:       true,
		FontSize:      13,
		LogLevel:      "info",
		FrameInterval: Duration(33 * time.Millisecond),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(filepath.Clean(path), c)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ywin.Logger().Info("config: file not found, using defaults", "path", path)
			return c, nil
		}
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		ywin.Logger().Warn("config: unknown keys", "path", path, "keys", fmt.Sprint(undecoded))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ywin.Logger().Info("config: loaded", "path", path, "driver", c.Driver, "mode", c.Mode)
	return c, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidFontSize, c.FontSize)
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrames, c.Frames)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level is info.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}

// Save writes c to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// Dir returns the configuration directory, honouring XDG_CONFIG_HOME.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "yserver")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "yserver"
	}
	return filepath.Join(home, ".config", "yserver")
}

// DefaultPath is Dir joined with FileName.
func DefaultPath() string {
	return filepath.Join(Dir(), FileName)
}

// Color is an ARGB pixel written as "#rrggbb" or "#rrggbbaa".
type Color uint32

// ParseColor parses a hex colour. Six digits are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint64(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("config: colour %q: %w", s, err)
		}
		alpha = a
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("config: colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color(uint32(alpha)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)), nil
}

// ARGB returns the colour as a pixel value.
func (c Color) ARGB() uint32 { return uint32(c) }

// String formats c as hex, omitting an opaque alpha.
func (c Color) String() string {
	rgb := fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
	if a := uint32(c) >> 24; a != 0xFF {
		return rgb + fmt.Sprintf("%02x", a)
	}
	return rgb
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Duration is a time.Duration written as a Go duration string.
type Duration time.Duration

// D returns d as a time.Duration.
func (d Duration) D() time.Duration { return time.Duration(d) }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("config: duration: %w", err)
	}
	*d = Duration(v)
	return nil
}
