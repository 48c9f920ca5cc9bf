package chip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputUnionAccumulatesFlags(t *testing.T) {
	out := Output{Changed: true}
	out.Union(Output{Clicked: true, Focused: true})
	out.Union(Output{})

	assert.True(t, out.Changed)
	assert.True(t, out.Clicked)
	assert.True(t, out.Focused)
	assert.False(t, out.Gained)
}

func TestOutputUnionKeepsFirstCursor(t *testing.T) {
	first := &CursorRange{Start: 1, End: 1}
	out := Output{}
	out.Union(Output{Cursor: first})
	out.Union(Output{Cursor: &CursorRange{Start: 5, End: 5}})

	assert.Same(t, first, out.Cursor)
}

func TestOutputUnionMergesKeysAndRegions(t *testing.T) {
	out := Output{
		Pressed: NewKeySet(KeyLeft),
		Region:  Rect{X: 0, Y: 0, W: 10, H: 5},
	}
	out.Union(Output{
		Pressed: NewKeySet(KeyDelete),
		Region:  Rect{X: 10, Y: 0, W: 10, H: 5},
	})

	assert.True(t, out.KeyPressed(KeyLeft))
	assert.True(t, out.KeyPressed(KeyDelete))
	assert.False(t, out.KeyPressed(KeyRight))
	assert.Equal(t, Rect{X: 0, Y: 0, W: 20, H: 5}, out.Region)
}

func TestOutputCursorAt(t *testing.T) {
	out := Output{}
	assert.False(t, out.CursorAt(0))

	out.Cursor = &CursorRange{Start: 2, End: 2}
	assert.True(t, out.CursorAt(2))
	assert.False(t, out.CursorAt(0))
	assert.False(t, out.cursorAtStart())

	// A selection is not a point cursor.
	out.Cursor = &CursorRange{Start: 0, End: 2}
	assert.False(t, out.CursorAt(2))
}

func TestKeySetMembership(t *testing.T) {
	s := NewKeySet(KeyLeft, KeyBackspace)

	assert.True(t, s.Has(KeyLeft))
	assert.True(t, s.Has(KeyBackspace))
	assert.False(t, s.Has(KeyRight))
	assert.False(t, s.Has(KeyNone))

	s.Add(KeyRight)
	assert.True(t, s.Has(KeyRight))
}

func TestRectUnionTreatsEmptyAsIdentity(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}

	assert.Equal(t, r, Rect{}.Union(r))
	assert.Equal(t, r, r.Union(Rect{}))
}
