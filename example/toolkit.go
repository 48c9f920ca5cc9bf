package main

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/go-theft-auto/chip"
)

// termToolkit implements chip.Toolkit on a termbox cell grid. It owns the
// real keyboard focus (one control index per frame), routes the frame's
// key event to the focused control, and reports everything back through
// chip.Output the way a full GUI backend would.
type termToolkit struct {
	width int
	x, y  int
	row   chip.RowStyle

	control     int // controls rendered so far this frame
	controls    int // controls rendered last frame
	focused     int // control index holding keyboard focus
	prevFocused int

	cursor  int // rune offset within the focused control's text
	lastLen int // rune length of the last rendered control's text

	ev *termbox.Event // key event driving this frame, consumed once
}

func newTermToolkit() *termToolkit {
	// Start on the first chip (control 1; control 0 is the leading gap).
	return &termToolkit{focused: 1, prevFocused: 1}
}

// beginFrame stores the event for this frame and handles Tab focus
// cycling at the toolkit level, mirroring how a GUI backend moves focus
// between its own widgets.
func (t *termToolkit) beginFrame(ev *termbox.Event) {
	t.ev = ev
	if ev != nil && ev.Type == termbox.EventKey && ev.Key == termbox.KeyTab && t.controls > 0 {
		t.focused = (t.focused + 1) % t.controls
		t.cursor = 0
		t.ev = nil
	}
	t.width, _ = termbox.Size()
}

func (t *termToolkit) BeginRow(style chip.RowStyle) {
	t.row = style
	t.control = 0
	t.x, t.y = 1, 1
}

func (t *termToolkit) RenderText(text *string, editable bool, style chip.TextStyle) chip.Output {
	idx := t.control
	t.control++

	focused := idx == t.focused
	out := chip.Output{
		Focused: focused,
		Gained:  focused && idx != t.prevFocused,
		Lost:    !focused && idx == t.prevFocused,
	}

	if focused && editable {
		out.Changed = t.applyKeys(text, &out.Pressed)
		n := utf8.RuneCountInString(*text)
		if t.cursor > n {
			t.cursor = n
		}
		if t.cursor < 0 {
			t.cursor = 0
		}
		out.Cursor = &chip.CursorRange{Start: t.cursor, End: t.cursor}
	}
	t.lastLen = utf8.RuneCountInString(*text)

	out.Region = t.draw(*text, style, focused, editable)
	return out
}

func (t *termToolkit) RenderIcon(glyph string, style chip.TextStyle) chip.Output {
	region := t.draw(glyph, style, false, false)
	return chip.Output{Region: region}
}

func (t *termToolkit) RequestFocus() {
	idx := t.control - 1
	if idx != t.focused {
		t.focused = idx
		t.cursor = t.lastLen
	}
}

func (t *termToolkit) EndRow() chip.Output {
	t.prevFocused = t.focused
	t.controls = t.control
	return chip.Output{
		Region: chip.Rect{X: 0, Y: 0, W: float32(t.width), H: float32(t.y)},
	}
}

// applyKeys routes the frame's key event into the focused control's text.
// Boundary presses (backspace at offset 0, delete at the end, arrows past
// the edges) leave the text alone but are still reported through Pressed;
// the widget turns those into merges and focus hops.
func (t *termToolkit) applyKeys(text *string, pressed *chip.KeySet) bool {
	ev := t.ev
	if ev == nil || ev.Type != termbox.EventKey {
		return false
	}
	t.ev = nil

	runes := []rune(*text)
	changed := false
	switch {
	case ev.Key == termbox.KeyArrowLeft:
		pressed.Add(chip.KeyLeft)
		if t.cursor > 0 {
			t.cursor--
		}
	case ev.Key == termbox.KeyArrowRight:
		pressed.Add(chip.KeyRight)
		if t.cursor < len(runes) {
			t.cursor++
		}
	case ev.Key == termbox.KeyBackspace, ev.Key == termbox.KeyBackspace2:
		pressed.Add(chip.KeyBackspace)
		if t.cursor > 0 {
			runes = append(runes[:t.cursor-1], runes[t.cursor:]...)
			*text = string(runes)
			t.cursor--
			changed = true
		}
	case ev.Key == termbox.KeyDelete:
		pressed.Add(chip.KeyDelete)
		if t.cursor < len(runes) {
			runes = append(runes[:t.cursor], runes[t.cursor+1:]...)
			*text = string(runes)
			changed = true
		}
	case ev.Key == termbox.KeySpace:
		runes = append(runes[:t.cursor], append([]rune{' '}, runes[t.cursor:]...)...)
		*text = string(runes)
		t.cursor++
		changed = true
	case ev.Ch != 0:
		runes = append(runes[:t.cursor], append([]rune{ev.Ch}, runes[t.cursor:]...)...)
		*text = string(runes)
		t.cursor++
		changed = true
	}
	return changed
}

// draw paints one control at the advancing cursor, wrapping at the
// terminal width, and returns the covered cells as a region.
func (t *termToolkit) draw(text string, style chip.TextStyle, focused, editable bool) chip.Rect {
	cells := text
	if style.Separator && cells == "" {
		cells = " "
	}
	pad := 0
	if style.Frame {
		pad = 1
	}
	w := runewidth.StringWidth(cells) + pad*2

	if t.x+w >= t.width && t.x > 1 {
		t.x = 1
		t.y++
	}

	fg := attr(style.TextColor)
	bg := termbox.ColorDefault
	if style.Frame {
		bg = attr(style.BgColor)
	}
	if focused {
		fg |= termbox.AttrBold
	}

	x := t.x
	for i := 0; i < pad; i++ {
		termbox.SetCell(x, t.y, ' ', fg, bg)
		x++
	}
	cursorX := -1
	for i, r := range []rune(cells) {
		if focused && editable && i == t.cursor {
			cursorX = x
		}
		termbox.SetCell(x, t.y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
	if focused && editable {
		if cursorX < 0 {
			cursorX = x
		}
		termbox.SetCursor(cursorX, t.y)
	}
	for i := 0; i < pad; i++ {
		termbox.SetCell(x, t.y, ' ', fg, bg)
		x++
	}

	region := chip.Rect{X: float32(t.x), Y: float32(t.y), W: float32(w), H: 1}
	t.x = x + 1
	return region
}

// attr maps the small packed-RGBA palette the widget uses onto termbox
// colors.
func attr(c uint32) termbox.Attribute {
	switch c {
	case chip.ColorWhite, chip.ColorLightGray:
		return termbox.ColorWhite
	case chip.ColorBlack:
		return termbox.ColorBlack
	case chip.ColorBlue:
		return termbox.ColorBlue
	case chip.ColorCyan:
		return termbox.ColorCyan
	case chip.ColorGray, chip.ColorDarkGray:
		return termbox.ColorDefault
	}
	return termbox.ColorDefault
}
