package chip

import "strings"

// UnownedChipEdit is a chip-style textbox editing a caller-owned text
// list. The widget keeps only presentation state (units, focus, separator
// text); the chips' content stays in the slice the caller passes to Show
// every frame, so the application remains the single source of truth.
//
// The unit list always follows the alternating pattern
// Sep, Text, Sep, Text, …, Sep: a leading and trailing separator with one
// separator between every pair of chips. Zero chips degenerate to a single
// empty separator. Unit index i maps to list slot i/2 in either the
// caller's texts (odd i) or the widget's separator texts (even i).
//
// Pressing Delete or Backspace at a chip boundary merges or removes chips;
// typing the separator inside a chip fans it out into several.
type UnownedChipEdit struct {
	separator     string
	separatorText []string
	units         []Chip

	style    Style
	frame    bool
	chipSize Vec2
	icon     string

	// focused is the unit index holding keyboard focus, noIndex when focus
	// is elsewhere in the UI.
	focused int

	// textsLen is the text count seen last frame; a mismatch means the
	// caller mutated the list and the units must be rebuilt.
	textsLen int
}

// NewUnowned creates an UnownedChipEdit with the given separator.
// Returns ErrEmptySeparator or ErrInvalidIcon on bad configuration.
func NewUnowned(separator string, opts ...Option) (*UnownedChipEdit, error) {
	cfg, err := applyOptions(separator, opts)
	if err != nil {
		return nil, err
	}
	u := newUnowned(cfg)
	var empty []string
	u.rebuild(&empty)
	return u, nil
}

// newUnowned builds the widget from validated configuration without
// touching the unit list.
func newUnowned(cfg config) *UnownedChipEdit {
	return &UnownedChipEdit{
		separator: cfg.separator,
		style:     cfg.style,
		frame:     cfg.frame,
		chipSize:  cfg.chipSize,
		icon:      cfg.icon,
		focused:   noIndex,
	}
}

// Separator returns the configured delimiter string.
func (u *UnownedChipEdit) Separator() string {
	return u.separator
}

// Focused returns the unit index holding keyboard focus, if any.
func (u *UnownedChipEdit) Focused() (int, bool) {
	if u.focused == noIndex {
		return 0, false
	}
	return u.focused, true
}

// Style returns the widget's resolved style defaults.
func (u *UnownedChipEdit) Style() Style {
	return u.style
}

func (u *UnownedChipEdit) rowStyle() RowStyle {
	border := u.style.FaintColor
	if u.focused != noIndex {
		border = u.style.WidgetFgColor
	}
	return RowStyle{
		BgColor:     u.style.WidgetBgColor,
		BorderColor: border,
		Frame:       u.frame,
		Focused:     u.focused != noIndex,
	}
}

// textAt returns the storage slot backing the unit at index.
func (u *UnownedChipEdit) textAt(index int, texts *[]string) *string {
	if u.units[index].Kind == KindSeparator {
		return &u.separatorText[index/2]
	}
	return &(*texts)[index/2]
}

// Show renders the widget for one frame and applies whichever structural
// transition the pass discovered. The returned Output is the union of the
// row container's interaction and every unit's.
//
// Show must not be called twice for the same widget within one frame; all
// mutation of units and focus happens here and nowhere else.
func (u *UnownedChipEdit) Show(tk Toolkit, texts *[]string) Output {
	if u.textsLen != len(*texts) {
		u.rebuild(texts)
	}

	maxIndex := len(u.units) - 1
	outputs := make([]Output, 0, len(u.units))
	state := newFrameState(u.focused)

	tk.BeginRow(u.rowStyle())
	for index := range u.units {
		unit := &u.units[index]
		text := u.textAt(index, texts)

		out := unit.Render(tk, u.focused == index, text, &u.style)
		state.update(maxIndex, index, unit, &out, u.separator, *text)
		if state.focus == index {
			tk.RequestFocus()
		}

		unit.UpdatePosition(&out, *text)
		outputs = append(outputs, out)
	}
	ret := tk.EndRow()

	// Retain focus history for the next frame.
	if state.focusChanged {
		logger.Debug().Int("old", u.focused).Int("new", state.focus).Msg("focus moved")
		u.focused = state.focus
	}

	if state.split != noIndex {
		logger.Debug().Int("index", state.split).Msg("splitting chips")
		u.split(texts)
	} else if state.hasMerge() || state.hasDelete() {
		logger.Debug().
			Int("a", state.mergeA).
			Int("b", state.mergeB).
			Int("delete", state.delete).
			Msg("merging chips")
		u.merge(texts, state.mergeA, state.mergeB, state.delete)
	}

	for i := range outputs {
		ret.Union(outputs[i])
	}
	return ret
}

// SetText replaces the chip contents wholesale and rebuilds the units.
func (u *UnownedChipEdit) SetText(texts *[]string) {
	u.rebuild(texts)
}

// rebuild reconstructs the unit list for the given texts: a leading
// separator, then each chip followed by a separator. The alternating
// invariant holds on every exit.
func (u *UnownedChipEdit) rebuild(texts *[]string) {
	u.units = u.units[:0]
	u.separatorText = u.separatorText[:0]
	n := len(*texts)
	u.textsLen = n

	u.units = append(u.units, NewSeparator())
	u.separatorText = append(u.separatorText, "")
	for i := 0; i < n; i++ {
		c := NewChip(u.chipSize, u.icon)
		c.BgColor = u.style.ChipBgColor
		c.TextColor = u.style.ChipTextColor
		u.units = append(u.units, c)
		if i != n-1 {
			u.units = append(u.units, NewSeparator())
			u.separatorText = append(u.separatorText, "")
		}
	}
	if n > 0 {
		u.units = append(u.units, NewSeparator())
		u.separatorText = append(u.separatorText, "")
	}

	// An external shrink can leave the focus index past the new unit list;
	// treat that as focus moving elsewhere.
	if u.focused > len(u.units)-1 {
		u.focused = noIndex
	}
	logger.Trace().Int("texts", n).Int("units", len(u.units)).Msg("rebuilt units")
}

// split re-derives the flat text list by fanning every unit's text out on
// the delimiter. Empty separators contribute nothing, but a separator the
// user typed into still contributes its literal text: user input is never
// silently discarded.
func (u *UnownedChipEdit) split(texts *[]string) {
	out := make([]string, 0, len(*texts)+1)
	for index := range u.units {
		if u.units[index].Kind == KindSeparator && u.separatorText[index/2] == "" {
			continue
		}
		text := u.textAt(index, texts)
		out = append(out, strings.Split(*text, u.separator)...)
	}
	*texts = out
	u.rebuild(texts)
}

// merge re-derives the flat text list with the unit pair (a, b) collapsed
// into one entry and the unit at delete dropped outright. The larger
// index's text is concatenated onto the entry built for the smaller, so
// the merged chip sits where the left one was. noIndex arguments never
// match a unit and make the corresponding half a no-op.
func (u *UnownedChipEdit) merge(texts *[]string, a, b, delete int) {
	unitMin, unitMax := a, b
	if unitMin > unitMax {
		unitMin, unitMax = unitMax, unitMin
	}

	textMin := 0
	out := make([]string, 0, len(*texts))
	for index := range u.units {
		if index == delete || u.units[index].Kind == KindSeparator {
			continue
		}
		if index == unitMin {
			textMin = len(out)
		}
		if index != unitMax {
			out = append(out, (*texts)[index/2])
		} else {
			out[textMin] += (*texts)[index/2]
		}
	}
	*texts = out
	u.rebuild(texts)
}
