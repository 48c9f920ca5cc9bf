package chip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unownedWith(t *testing.T, texts []string) (*UnownedChipEdit, *[]string) {
	t.Helper()
	u, err := NewUnowned(",")
	require.NoError(t, err)
	u.rebuild(&texts)
	return u, &texts
}

func TestRebuildAlternatesSeparatorsAndChips(t *testing.T) {
	u, _ := unownedWith(t, []string{"a", "b", "c"})

	require.Len(t, u.units, 7)
	for i, unit := range u.units {
		if i%2 == 0 {
			assert.Equal(t, KindSeparator, unit.Kind, "unit %d", i)
		} else {
			assert.Equal(t, KindText, unit.Kind, "unit %d", i)
		}
	}
	assert.Len(t, u.separatorText, 4)
}

func TestRebuildEmptyListIsSingleSeparator(t *testing.T) {
	u, _ := unownedWith(t, nil)

	require.Len(t, u.units, 1)
	assert.Equal(t, KindSeparator, u.units[0].Kind)
	assert.Len(t, u.separatorText, 1)
}

func TestRebuildClearsStaleSeparatorText(t *testing.T) {
	u, texts := unownedWith(t, []string{"a", "b"})
	u.separatorText[1] = ","

	u.rebuild(texts)

	for i, s := range u.separatorText {
		assert.Empty(t, s, "slot %d", i)
	}
}

func TestRebuildClearsOutOfBoundsFocus(t *testing.T) {
	u, _ := unownedWith(t, []string{"a", "b", "c"})
	u.focused = 5

	shrunk := []string{"a"}
	u.rebuild(&shrunk)

	_, ok := u.Focused()
	assert.False(t, ok)
}

func TestTextAtMapsUnitsToSlots(t *testing.T) {
	u, texts := unownedWith(t, []string{"a", "b"})

	assert.Same(t, &u.separatorText[0], u.textAt(0, texts))
	assert.Same(t, &(*texts)[0], u.textAt(1, texts))
	assert.Same(t, &u.separatorText[1], u.textAt(2, texts))
	assert.Same(t, &(*texts)[1], u.textAt(3, texts))
	assert.Same(t, &u.separatorText[2], u.textAt(4, texts))
}

func TestSplitFansOutOnDelimiter(t *testing.T) {
	u, texts := unownedWith(t, []string{"ab,cd", "e"})

	u.split(texts)

	assert.Equal(t, []string{"ab", "cd", "e"}, *texts)
	assert.Len(t, u.units, 7)
}

func TestSplitWithoutDelimiterKeepsValues(t *testing.T) {
	u, texts := unownedWith(t, []string{"ab", "cd"})

	u.split(texts)

	assert.Equal(t, []string{"ab", "cd"}, *texts)
}

func TestSplitIncludesTypedSeparatorText(t *testing.T) {
	// Typing a bare delimiter into the leading gap materializes two empty
	// chips ahead of the existing ones.
	u, texts := unownedWith(t, []string{"a", "b"})
	u.separatorText[0] = ","

	u.split(texts)

	assert.Equal(t, []string{"", "", "a", "b"}, *texts)
}

func TestSplitKeepsLiteralSeparatorContent(t *testing.T) {
	// Non-delimiter text typed into a gap becomes a chip of its own.
	u, texts := unownedWith(t, []string{"a", "b"})
	u.separatorText[1] = "x"

	u.split(texts)

	assert.Equal(t, []string{"a", "x", "b"}, *texts)
}

func TestMergeConcatenatesPair(t *testing.T) {
	u, texts := unownedWith(t, []string{"a", "b"})

	u.merge(texts, 1, 3, noIndex)

	assert.Equal(t, []string{"ab"}, *texts)
	assert.Len(t, u.units, 3)
}

func TestMergeArgumentOrderIsIrrelevant(t *testing.T) {
	u, texts := unownedWith(t, []string{"a", "b"})

	u.merge(texts, 3, 1, noIndex)

	assert.Equal(t, []string{"ab"}, *texts)
}

func TestMergeDeletesUnit(t *testing.T) {
	u, texts := unownedWith(t, []string{"a", "b"})

	u.merge(texts, noIndex, noIndex, 3)

	assert.Equal(t, []string{"a"}, *texts)
	assert.Len(t, u.units, 3)
}

func TestMergeWithAllSentinelsIsIdentity(t *testing.T) {
	u, texts := unownedWith(t, []string{"a", "b", "c"})

	u.merge(texts, noIndex, noIndex, noIndex)

	assert.Equal(t, []string{"a", "b", "c"}, *texts)
}

func TestMergeMiddlePairKeepsNeighbors(t *testing.T) {
	u, texts := unownedWith(t, []string{"a", "b", "c", "d"})

	u.merge(texts, 3, 5, noIndex)

	assert.Equal(t, []string{"a", "bc", "d"}, *texts)
}
