// Package config loads scrollhead settings from TOML.
//
// Every field has a default (see [Default]); a config file only needs the
// keys it overrides:
//
//	[header]
//	collapsed_height = 100
//
//	[snap]
//	easing = "spring"
//	duration = "250ms"
//
//	[content]
//	title = "Lịch sử giao dịch"
//	rows = ["Coffee  -45.000đ", "Top-up  +500.000đ"]
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/scrollhead/pkg/errors"
	"github.com/matzehuels/scrollhead/pkg/header"
	"github.com/matzehuels/scrollhead/pkg/snap"
)

// Duration is a time.Duration that decodes from TOML strings like "150ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the full configuration.
type Config struct {
	Header  Header  `toml:"header"`
	Snap    Snap    `toml:"snap"`
	Scroll  Scroll  `toml:"scroll"`
	Content Content `toml:"content"`
}

// Header configures header geometry in pixels.
type Header struct {
	CollapsedHeight float64 `toml:"collapsed_height"`
	UpperHeight     float64 `toml:"upper_height"`
	LowerHeight     float64 `toml:"lower_height"`
}

// Snap configures the release snap and its animation.
type Snap struct {
	Animated        bool     `toml:"animated"`
	Easing          string   `toml:"easing"`
	Duration        Duration `toml:"duration"`
	SpringFrequency float64  `toml:"spring_frequency"`
	SpringDamping   float64  `toml:"spring_damping"`
	ReleaseIdle     Duration `toml:"release_idle"` // wheel inactivity treated as a release
}

// Scroll configures input handling.
type Scroll struct {
	Step       float64  `toml:"step"`       // pixels per wheel notch or arrow key
	RowHeight  float64  `toml:"row_height"` // pixels per terminal row
	Throttle   Duration `toml:"throttle"`   // frame interval
	Overscroll float64  `toml:"overscroll"` // pixels allowed past either end
}

// Content configures the list under the header.
type Content struct {
	Title string   `toml:"title"`
	Rows  []string `toml:"rows"`
}

// Default returns the built-in configuration.
func Default() Config {
	anim := snap.DefaultAnimationOptions()
	return Config{
		Header: Header{
			CollapsedHeight: header.CollapsedHeight,
			UpperHeight:     header.UpperHeight,
			LowerHeight:     header.LowerHeight,
		},
		Snap: Snap{
			Animated:        true,
			Easing:          string(anim.Easing),
			Duration:        Duration{anim.Duration},
			SpringFrequency: anim.SpringFrequency,
			SpringDamping:   anim.SpringDamping,
			ReleaseIdle:     Duration{150 * time.Millisecond},
		},
		Scroll: Scroll{
			Step:       10,
			RowHeight:  16,
			Throttle:   Duration{16 * time.Millisecond},
			Overscroll: 40,
		},
		Content: Content{
			Title: "Giao dịch gần đây",
			Rows:  defaultRows(),
		},
	}
}

func defaultRows() []string {
	return []string{
		"Highlands Coffee        -45.000đ",
		"Nạp tiền từ ngân hàng  +500.000đ",
		"Điện lực EVN           -312.400đ",
		"Grab                    -62.000đ",
		"Chuyển tiền cho Lan    -150.000đ",
		"Hoàn tiền Shopee        +18.500đ",
		"Nước sạch Sawaco        -96.000đ",
		"Viettel 4G              -70.000đ",
		"Circle K                -23.000đ",
		"Nhận tiền từ Minh      +200.000đ",
		"Baemin                  -89.000đ",
		"Tiki                   -245.000đ",
		"CGV Cinemas            -180.000đ",
		"Rút tiền về ngân hàng  -300.000đ",
		"Phí dịch vụ                  0đ",
		"Be                      -41.000đ",
		"Guardian                -67.500đ",
		"Lazada                 -129.000đ",
		"Nạp điện thoại          -50.000đ",
		"Vinmart                -210.300đ",
		"Nhận tiền từ Hùng      +120.000đ",
		"Phúc Long               -55.000đ",
		"Gojek                   -38.000đ",
		"Bảo hiểm xe máy         -66.000đ",
	}
}

// AnimationOptions converts the snap section into animation options.
// Call Validate first; an unknown easing falls back to the default.
func (c Config) AnimationOptions() snap.AnimationOptions {
	easing, err := snap.ParseEasing(c.Snap.Easing)
	if err != nil {
		easing = snap.EaseCubic
	}
	return snap.AnimationOptions{
		Easing:          easing,
		Duration:        c.Snap.Duration.Duration,
		SpringFrequency: c.Snap.SpringFrequency,
		SpringDamping:   c.Snap.SpringDamping,
	}
}

// Frame interval bounds: 240 fps down to 1 fps.
const (
	minThrottle = time.Second / 240
	maxThrottle = time.Second
)

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Header.CollapsedHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "header.collapsed_height must be positive, got %v", c.Header.CollapsedHeight)
	}
	if c.Header.UpperHeight < 0 || c.Header.LowerHeight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "header heights cannot be negative")
	}
	if _, err := snap.ParseEasing(c.Snap.Easing); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "snap.easing")
	}
	if c.Snap.Duration.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.duration cannot be negative")
	}
	if !(c.Snap.SpringFrequency > 0) || !(c.Snap.SpringDamping > 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.spring_frequency and snap.spring_damping must be positive, got %v and %v", c.Snap.SpringFrequency, c.Snap.SpringDamping)
	}
	if c.Snap.ReleaseIdle.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "snap.release_idle must be positive")
	}
	if c.Scroll.Step <= 0 || c.Scroll.RowHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scroll.step and scroll.row_height must be positive")
	}
	if th := c.Scroll.Throttle.Duration; th < minThrottle || th > maxThrottle {
		return errors.New(errors.ErrCodeInvalidConfig, "scroll.throttle must be between %v and %v, got %v", minThrottle, maxThrottle, th)
	}
	if c.Scroll.Overscroll < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scroll.overscroll cannot be negative")
	}
	if len(c.Content.Rows) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "content.rows cannot be empty")
	}
	return nil
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault loads the config at path if non-empty, otherwise the file in
// the user config directory if it exists, otherwise the defaults. It returns
// the path that was read ("" for defaults).
func LoadDefault(path string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	p, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	if _, err := os.Stat(p); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(p)
	return cfg, p, err
}

// DefaultPath returns $XDG_CONFIG_HOME/scrollhead/config.toml, falling back
// to ~/.config/scrollhead/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "scrollhead", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "scrollhead", "config.toml"), nil
}

// Encode writes cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
