package chip

import (
	"strings"
	"unicode/utf8"
)

// noIndex marks an index slot as unset. It never matches a real unit.
const noIndex = -1

// frameState accumulates the one structural transition discovered during a
// render pass. It is rebuilt fresh every frame from the widget's focused
// index and discarded after the pass; nothing here survives a frame.
//
// At most one of split and merge/delete is ever applied: split is guarded
// by "no split yet scheduled" and the keyboard branch that schedules
// merge/delete is mutually exclusive with the split branches for a given
// unit. Scan order is left-to-right, so the first scheduled transition
// wins.
type frameState struct {
	// focus is the unit index to focus next frame. noIndex means focus is
	// elsewhere in the UI.
	focus int

	// focusChanged is true once this frame altered focus.
	focusChanged bool

	// split is the unit index whose text needs re-splitting.
	split int

	// mergeA and mergeB are the unit pair whose text must be concatenated.
	mergeA, mergeB int

	// delete is the unit index to drop during the merge rebuild.
	delete int
}

func newFrameState(focused int) *frameState {
	return &frameState{
		focus:  focused,
		split:  noIndex,
		mergeA: noIndex,
		mergeB: noIndex,
		delete: noIndex,
	}
}

func (s *frameState) setFocus(index int) {
	s.focus = index
	s.focusChanged = true
}

func (s *frameState) clearFocus() {
	s.focus = noIndex
	s.focusChanged = true
}

func (s *frameState) setMerge(a, b int) {
	s.mergeA = a
	s.mergeB = b
}

func (s *frameState) hasMerge() bool {
	return s.mergeA != noIndex
}

func (s *frameState) hasDelete() bool {
	return s.delete != noIndex
}

// update folds one unit's interaction result into the frame state.
// Rules, in priority order:
//
//  1. A separator whose text changed and is now non-empty materializes new
//     chips: schedule a split there and focus the unit just past the fresh
//     separator.
//  2. Any changed unit whose text now contains the delimiter is re-split in
//     place, unless a split is already scheduled.
//  3. Focus tracking: gained-or-clicked focuses this unit; losing focus
//     while this unit was the focused one clears it; otherwise a focus
//     change made by an earlier rule ends processing for this unit.
//  4. Keyboard handling, only while the control holds input focus, first
//     match wins. Delete at the end boundary merges forward (or drops the
//     following chip when standing on a separator); Backspace at the start
//     boundary merges backward (or drops the preceding chip); the arrow
//     keys hop across the neighboring unit boundary.
//
// The boundary conditions require both the previous frame's AtStart/AtEnd
// flag and the current cursor position to agree, so a key press that also
// moved the cursor to the boundary does not trigger a structural change
// until the next press.
func (s *frameState) update(maxIndex, index int, unit *Chip, out *Output, separator, text string) {
	if out.Changed && unit.Kind == KindSeparator && text != "" {
		s.split = index
		s.setFocus(index + 1)
	}

	if s.split == noIndex && out.Changed && strings.Contains(text, separator) {
		s.split = index
		s.setFocus(index)
	}

	if out.TookFocus() {
		s.setFocus(index)
	} else if out.Lost && s.focus == index {
		s.clearFocus()
	} else if s.focusChanged {
		return
	}

	actAtEnd := unit.AtEnd && out.CursorAt(utf8.RuneCountInString(text))
	actAtStart := unit.AtStart && out.cursorAtStart()

	if !out.Focused {
		return
	}

	switch {
	case out.KeyPressed(KeyDelete) && actAtEnd && index < maxIndex:
		s.setFocus(index)
		if unit.Kind == KindSeparator {
			s.delete = index + 1
		} else {
			s.setMerge(index, index+2)
		}
	case out.KeyPressed(KeyBackspace) && actAtStart && index > 1:
		s.setFocus(index - 2)
		if unit.Kind == KindSeparator {
			s.delete = index - 1
		} else {
			s.setMerge(index-2, index)
		}
	case out.KeyPressed(KeyRight) && actAtEnd && index < maxIndex:
		s.setFocus(index + 1)
	case out.KeyPressed(KeyLeft) && actAtStart && index > 0:
		s.setFocus(index - 1)
	}
}
