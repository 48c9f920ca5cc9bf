package chip

// CursorRange is the collaborator-reported cursor span within a text
// control, in rune offsets. Start == End means a plain cursor with no
// selection.
type CursorRange struct {
	Start, End int
}

// Single returns true if the range is a point cursor (no selection).
func (r CursorRange) Single() bool {
	return r.Start == r.End
}

// sortedEnd returns the larger offset of the range.
func (r CursorRange) sortedEnd() int {
	if r.Start > r.End {
		return r.Start
	}
	return r.End
}

// Output is the interaction result for one rendered control.
// A full widget pass renders many controls; the widget's own result is the
// Union of all of them plus the row container's.
type Output struct {
	// Changed is true if the control mutated its text this frame.
	Changed bool
	// Clicked is true if the control was clicked this frame.
	Clicked bool
	// Gained is true if the control received keyboard focus this frame.
	Gained bool
	// Lost is true if the control lost keyboard focus this frame.
	Lost bool
	// Focused is true while the control holds keyboard focus.
	Focused bool
	// Cursor is the cursor span when the control is editable and exactly
	// one cursor exists; nil otherwise.
	Cursor *CursorRange
	// Pressed holds the keys pressed this frame while the control had
	// focus.
	Pressed KeySet
	// Region is the screen area the control covered.
	Region Rect
}

// Union folds another output into this one. Flags accumulate with OR, the
// first non-nil cursor wins, regions expand to cover both.
func (o *Output) Union(other Output) {
	o.Changed = o.Changed || other.Changed
	o.Clicked = o.Clicked || other.Clicked
	o.Gained = o.Gained || other.Gained
	o.Lost = o.Lost || other.Lost
	o.Focused = o.Focused || other.Focused
	o.Pressed = o.Pressed.Union(other.Pressed)
	if o.Cursor == nil {
		o.Cursor = other.Cursor
	}
	o.Region = o.Region.Union(other.Region)
}

// CursorAt returns true if a single cursor sits exactly at the given rune
// offset.
func (o *Output) CursorAt(pos int) bool {
	if o.Cursor == nil {
		return false
	}
	return o.Cursor.Single() && o.Cursor.sortedEnd() == pos
}

// cursorAtStart returns true if a single cursor sits at offset 0.
func (o *Output) cursorAtStart() bool {
	return o.CursorAt(0)
}

// TookFocus returns true if the control gained focus or was clicked.
func (o *Output) TookFocus() bool {
	return o.Gained || o.Clicked
}

// KeyPressed returns true if the key was pressed while the control had
// focus.
func (o *Output) KeyPressed(k Key) bool {
	return o.Pressed.Has(k)
}
