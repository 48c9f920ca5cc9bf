package chip

import "slices"

// ChipEdit is a chip-style textbox that owns its text list. It is a thin
// storage adapter over UnownedChipEdit: the reconciliation algorithm lives
// there once, this type just supplies the backing slice.
type ChipEdit struct {
	texts   []string
	unowned UnownedChipEdit
}

// New creates a ChipEdit with the given separator.
// Returns ErrEmptySeparator or ErrInvalidIcon on bad configuration.
//
//	edit, err := chip.New(",",
//	    chip.WithTexts("alpha", "beta"),
//	    chip.WithChipColors(chip.ColorBlue, chip.ColorWhite),
//	    chip.WithFrame(true),
//	)
func New(separator string, opts ...Option) (*ChipEdit, error) {
	cfg, err := applyOptions(separator, opts)
	if err != nil {
		return nil, err
	}
	c := &ChipEdit{
		texts:   slices.Clone(cfg.texts),
		unowned: *newUnowned(cfg),
	}
	c.unowned.rebuild(&c.texts)
	return c, nil
}

// Show renders the widget for one frame. See UnownedChipEdit.Show.
func (c *ChipEdit) Show(tk Toolkit) Output {
	return c.unowned.Show(tk, &c.texts)
}

// Values returns a copy of the current chip texts, in order.
func (c *ChipEdit) Values() []string {
	return slices.Clone(c.texts)
}

// SetText replaces the chip contents wholesale and rebuilds the units.
func (c *ChipEdit) SetText(texts []string) {
	c.texts = slices.Clone(texts)
	c.unowned.rebuild(&c.texts)
}

// Separator returns the configured delimiter string.
func (c *ChipEdit) Separator() string {
	return c.unowned.Separator()
}

// Focused returns the unit index holding keyboard focus, if any.
func (c *ChipEdit) Focused() (int, bool) {
	return c.unowned.Focused()
}

// Style returns the widget's resolved style defaults.
func (c *ChipEdit) Style() Style {
	return c.unowned.Style()
}
