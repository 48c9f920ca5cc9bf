package chip

import (
	"fmt"
	"unicode/utf8"
)

// Option configures a chip widget at construction time. The recognized set
// is closed; validation happens eagerly in New/NewUnowned before any frame
// renders.
type Option func(*config)

// config holds builder state while options are applied.
type config struct {
	separator string
	texts     []string
	style     Style
	frame     bool
	chipSize  Vec2
	icon      string
}

// applyOptions validates the separator, applies all options and validates
// the result.
func applyOptions(separator string, opts []Option) (config, error) {
	if separator == "" {
		return config{}, ErrEmptySeparator
	}
	cfg := config{
		separator: separator,
		style:     DefaultStyle(),
		frame:     true,
		chipSize:  DefaultChipSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.icon != "" && utf8.RuneCountInString(cfg.icon) != 1 {
		return config{}, fmt.Errorf("%w: %q has %d characters",
			ErrInvalidIcon, cfg.icon, utf8.RuneCountInString(cfg.icon))
	}
	return cfg, nil
}

// WithTexts sets the initial chip texts.
// For UnownedChipEdit the initial texts come from the caller's slice and
// this option is ignored.
func WithTexts(texts ...string) Option {
	return func(c *config) { c.texts = texts }
}

// WithStyle replaces the widget's style defaults wholesale.
func WithStyle(style Style) Option {
	return func(c *config) { c.style = style }
}

// WithChipColors sets the background and text colors for the chips.
func WithChipColors(bgColor, textColor uint32) Option {
	return func(c *config) {
		c.style.ChipBgColor = bgColor
		c.style.ChipTextColor = textColor
	}
}

// WithWidgetColors sets the background and foreground colors for the row
// container.
func WithWidgetColors(bgColor, fgColor uint32) Option {
	return func(c *config) {
		c.style.WidgetBgColor = bgColor
		c.style.WidgetFgColor = fgColor
	}
}

// WithFrame controls whether the row container draws a border.
func WithFrame(frame bool) Option {
	return func(c *config) { c.frame = frame }
}

// WithChipSize sets the chip footprint. A zero size means "size to
// content".
func WithChipSize(size Vec2) Option {
	return func(c *config) { c.chipSize = size }
}

// WithIcon sets a single-character leading glyph drawn before each chip's
// text. The empty string removes the icon.
func WithIcon(icon string) Option {
	return func(c *config) { c.icon = icon }
}
