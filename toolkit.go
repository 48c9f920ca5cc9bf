package chip

// Toolkit is the rendering collaborator the widget delegates all drawing,
// layout and text editing to. Implementations wrap a concrete GUI backend;
// the widget only decides which controls to render, in what order, and
// folds the returned Outputs into structural transitions.
//
// Calls arrive in a strict per-frame sequence:
//
//	BeginRow(style)
//	  for each unit:  [RenderIcon]  RenderText  [RequestFocus]
//	EndRow()
//
// The row lays controls out left-to-right and wraps at the container
// width; wrapping is entirely the implementation's concern.
type Toolkit interface {
	// BeginRow opens the wrapping left-to-right row container.
	BeginRow(style RowStyle)

	// RenderText draws an editable text box when editable is true, or a
	// click-sensitive static label otherwise. The text may be mutated in
	// place; Output.Changed reports whether it was.
	RenderText(text *string, editable bool, style TextStyle) Output

	// RenderIcon draws a leading glyph before a chip's text. Its clickable
	// region contributes to the chip's Output via Union.
	RenderIcon(glyph string, style TextStyle) Output

	// RequestFocus moves keyboard focus to the most recently rendered
	// control.
	RequestFocus()

	// EndRow closes the container and reports container-level interaction.
	EndRow() Output
}

// TextStyle carries the display attributes for one control.
type TextStyle struct {
	BgColor   uint32 // chip fill; ignored for separators
	TextColor uint32
	Size      Vec2 // zero = size to content
	Frame     bool // draw the rounded chip bubble
	Separator bool // zero-width boundary gap styling
}

// RowStyle carries the display attributes for the row container.
type RowStyle struct {
	BgColor     uint32
	BorderColor uint32
	Frame       bool // draw the row border
	Focused     bool // some chip currently holds keyboard focus
}
