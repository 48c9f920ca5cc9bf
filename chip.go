package chip

import "unicode/utf8"

// ChipKind distinguishes the two unit kinds in a chip sequence.
type ChipKind uint8

const (
	// KindSeparator is a zero-or-more-character delimiter holder between
	// chips (and at both ends of the sequence).
	KindSeparator ChipKind = iota
	// KindText is a chip holding user content.
	KindText
)

// Chip is one unit of a chip sequence. Chips do not own their text: text
// units read and write the caller's text list, separator units the widget's
// separator-text list. AtStart and AtEnd record whether the input cursor
// sat at the text's boundaries last frame; keyboard navigation consumes
// them together with the current cursor position.
type Chip struct {
	Kind    ChipKind
	AtStart bool
	AtEnd   bool

	// Display-only overrides, never state-machine inputs.
	BgColor   uint32 // 0 = widget default
	TextColor uint32 // 0 = widget default
	Size      Vec2   // zero = size to content
	Icon      string // leading glyph, empty = none
}

// NewSeparator returns a separator unit. A point-like unit is considered
// to be at both boundaries at once.
func NewSeparator() Chip {
	return Chip{
		Kind:    KindSeparator,
		AtStart: true,
		AtEnd:   true,
		Size:    DefaultChipSize,
	}
}

// NewChip returns a text unit.
func NewChip(size Vec2, icon string) Chip {
	return Chip{
		Kind: KindText,
		Size: size,
		Icon: icon,
	}
}

// IsSeparator reports whether the unit is a separator.
func (c *Chip) IsSeparator() bool {
	return c.Kind == KindSeparator
}

func (c *Chip) bg(st *Style) uint32 {
	if c.BgColor != 0 {
		return c.BgColor
	}
	return st.ChipBgColor
}

func (c *Chip) fg(st *Style) uint32 {
	if c.TextColor != 0 {
		return c.TextColor
	}
	return st.ChipTextColor
}

// Render delegates the unit to the collaborator. Separators render as an
// always-editable zero-width text box so typing into the gap between chips
// works; text units render the optional leading icon followed by either an
// editable box (focused) or a click-sensitive label.
func (c *Chip) Render(tk Toolkit, focused bool, text *string, st *Style) Output {
	if c.Kind == KindSeparator {
		return tk.RenderText(text, true, TextStyle{
			TextColor: c.fg(st),
			Separator: true,
		})
	}

	style := TextStyle{
		BgColor:   c.bg(st),
		TextColor: c.fg(st),
		Size:      c.Size,
		Frame:     true,
	}
	var iconOut *Output
	if c.Icon != "" {
		o := tk.RenderIcon(c.Icon, style)
		iconOut = &o
	}
	out := tk.RenderText(text, focused, style)
	if iconOut != nil {
		out.Union(*iconOut)
	}
	return out
}

// UpdatePosition recomputes the boundary flags from the frame's reported
// cursor position. Must be called once per frame after Render, after the
// frame state has consumed the output.
func (c *Chip) UpdatePosition(out *Output, text string) {
	c.AtStart = out.cursorAtStart()
	c.AtEnd = out.CursorAt(utf8.RuneCountInString(text))
}
