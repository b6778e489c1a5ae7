package alertbar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/jmylchreest/alertbar/internal/geometry"
	"github.com/jmylchreest/alertbar/internal/icon"
)

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "2s", "200ms", "1m", or integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '2s', '200ms' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Colors holds the bar's colors as hex strings.
type Colors struct {
	Background        string  `toml:"background" yaml:"background"`
	BackgroundOpacity float64 `toml:"background_opacity" yaml:"background_opacity"`
	Image             string  `toml:"image" yaml:"image"` // Image tint
	Title             string  `toml:"title" yaml:"title"`
	Body              string  `toml:"body" yaml:"body"`
}

// Animation controls how bars enter and leave.
type Animation struct {
	Enabled  bool     `toml:"enabled" yaml:"enabled"` // Slide down and up
	Fade     bool     `toml:"fade" yaml:"fade"`       // Fade in and out
	Duration Duration `toml:"duration" yaml:"duration"`
}

// Size controls bar dimensions, in points.
type Size struct {
	BaseHeight float64 `toml:"base_height" yaml:"base_height"` // Grows by 2*Padding
	Width      float64 `toml:"width" yaml:"width"`             // 0 = parent width
	Padding    float64 `toml:"padding" yaml:"padding"`
}

// Height returns the full bar height including padding.
func (s Size) Height() float64 {
	return geometry.BarHeight(s.BaseHeight, s.Padding)
}

// Callbacks are optional hooks invoked on the UI loop.
type Callbacks struct {
	// OnTap is called whenever the user taps the bar, regardless of TapToDismiss.
	OnTap func(bar *Bar)
	// OnPresented is called once the bar is presented, after any animation.
	OnPresented func(bar *Bar)
	// OnDismissed is called once the bar is dismissed, after any animation.
	// userInitiated is true when the dismissal came from a tap.
	OnDismissed func(bar *Bar, userInitiated bool)
}

// Options configures a single bar. Attach takes a snapshot, so an Options
// value can be reused for many bars.
type Options struct {
	Colors    Colors    `toml:"colors" yaml:"colors"`
	Animation Animation `toml:"animation" yaml:"animation"`
	Size      Size      `toml:"size" yaml:"size"`
	Callbacks Callbacks `toml:"-" yaml:"-"`

	// Image is the name of a bundled icon; empty for none.
	Image string `toml:"image" yaml:"image"`
	// DismissAfter dismisses the bar automatically. 0 means never.
	DismissAfter Duration `toml:"dismiss_after" yaml:"dismiss_after"`
	// TapToDismiss dismisses the bar when the user taps it.
	TapToDismiss bool `toml:"tap_to_dismiss" yaml:"tap_to_dismiss"`
}

// DefaultOptions returns Options with default values.
func DefaultOptions() Options {
	return Options{
		Colors: Colors{
			Background:        "#000000",
			BackgroundOpacity: 0.85,
			Image:             "#ffffff",
			Title:             "#ffffff",
			Body:              "#ffffff",
		},
		Animation: Animation{
			Enabled:  true,
			Fade:     false,
			Duration: Duration(200 * time.Millisecond),
		},
		Size: Size{
			BaseHeight: 50,
			Width:      0,
			Padding:    5,
		},
		DismissAfter: Duration(2 * time.Second),
		TapToDismiss: true,
	}
}

// Clone returns a copy of o. Callback funcs are shared with the original.
func (o Options) Clone() Options {
	return o
}

// Icon resolves the configured image. The zero Icon means no image.
func (o Options) Icon() (icon.Icon, error) {
	if o.Image == "" {
		return icon.Icon{}, nil
	}
	return icon.Load(o.Image)
}

// Validate checks if the options are usable.
func (o Options) Validate() error {
	colors := map[string]string{
		"background": o.Colors.Background,
		"image":      o.Colors.Image,
		"title":      o.Colors.Title,
		"body":       o.Colors.Body,
	}
	for field, value := range colors {
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("invalid %s color %q: %w", field, value, err)
		}
	}

	if o.Colors.BackgroundOpacity < 0 || o.Colors.BackgroundOpacity > 1 {
		return fmt.Errorf("background_opacity must be between 0 and 1, got %v", o.Colors.BackgroundOpacity)
	}
	if o.Animation.Duration < 0 {
		return fmt.Errorf("animation duration must not be negative, got %s", o.Animation.Duration.Duration())
	}
	if o.Size.BaseHeight <= 0 {
		return fmt.Errorf("base_height must be positive, got %v", o.Size.BaseHeight)
	}
	if o.Size.Width < 0 {
		return fmt.Errorf("width must not be negative, got %v", o.Size.Width)
	}
	if o.Size.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %v", o.Size.Padding)
	}
	if o.DismissAfter < 0 {
		return fmt.Errorf("dismiss_after must not be negative, got %s", o.DismissAfter.Duration())
	}
	if o.Image != "" && !icon.Exists(o.Image) {
		return fmt.Errorf("invalid image %q (available: %s): %w",
			o.Image, strings.Join(icon.Names(), ", "), icon.ErrNotFound)
	}

	return nil
}
