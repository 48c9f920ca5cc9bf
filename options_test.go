package chip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/chip"
)

func TestNewRejectsEmptySeparator(t *testing.T) {
	_, err := chip.New("")
	assert.ErrorIs(t, err, chip.ErrEmptySeparator)

	_, err = chip.NewUnowned("")
	assert.ErrorIs(t, err, chip.ErrEmptySeparator)
}

func TestNewRejectsMultiRuneIcon(t *testing.T) {
	_, err := chip.New(",", chip.WithIcon("ab"))
	assert.ErrorIs(t, err, chip.ErrInvalidIcon)

	_, err = chip.NewUnowned(",", chip.WithIcon("##"))
	assert.ErrorIs(t, err, chip.ErrInvalidIcon)
}

func TestNewAcceptsSingleRuneIcon(t *testing.T) {
	// A multi-byte rune is still one character.
	edit, err := chip.New(",", chip.WithIcon("✓"))
	require.NoError(t, err)
	assert.Equal(t, ",", edit.Separator())
}

func TestNewAcceptsMultiCharSeparator(t *testing.T) {
	edit, err := chip.New("; ")
	require.NoError(t, err)
	assert.Equal(t, "; ", edit.Separator())
}

func TestNewDefaults(t *testing.T) {
	edit, err := chip.New(",")
	require.NoError(t, err)

	assert.Empty(t, edit.Values())
	_, ok := edit.Focused()
	assert.False(t, ok)
	assert.Equal(t, chip.DefaultStyle(), edit.Style())
}

func TestWithStyleReplacesDefaults(t *testing.T) {
	edit, err := chip.New(",", chip.WithStyle(chip.DarkStyle()))
	require.NoError(t, err)
	assert.Equal(t, chip.DarkStyle(), edit.Style())
}
