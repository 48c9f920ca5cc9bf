/*
Package chip provides a chip (tag-style) text-editing widget for
immediate-mode GUI toolkits: a wrapping row of small editable text
segments separated by a delimiter.

# Overview

The widget owns the chip segmentation and focus state machine; all
drawing, layout and low-level text editing are delegated to a Toolkit
collaborator supplied by the embedding application. Each frame the widget
walks its units left-to-right, hands every unit to the collaborator, and
folds the returned interaction results into at most one structural
transition:

  - typing the delimiter inside a chip splits it into several chips
  - typing into the gap between chips materializes a new chip there
  - Delete at a chip's end or Backspace at its start merges or removes
    neighboring chips
  - the arrow keys hop focus across chip boundaries

# Quick Start

	edit, err := chip.New(",",
	    chip.WithTexts("alpha", "beta", "gamma"),
	    chip.WithIcon("#"),
	)
	if err != nil {
	    log.Fatal(err)
	}

	// Frame loop
	for running {
	    tk.BeginFrame(pollInput())
	    out := edit.Show(tk) // tk implements chip.Toolkit
	    if out.Changed {
	        fmt.Println(edit.Values())
	    }
	    tk.EndFrame()
	}

ChipEdit owns its text list; UnownedChipEdit edits a slice the caller owns
and passes in every frame. Both run the same reconciliation core.

# Keyboard Reference

With a chip focused:

	Left Arrow   At the chip's start, focus the separator to the left
	Right Arrow  At the chip's end, focus the separator to the right
	Backspace    At the chip's start, merge into the previous chip
	Delete       At the chip's end, merge the next chip into this one

With a separator (the gap between chips) focused:

	Backspace    Remove the chip to the left
	Delete       Remove the chip to the right
	(typing)     Materialize a new chip in the gap; typing the delimiter
	             itself creates empty chips ready for input

All other editing (character entry, selection, clipboard) happens inside
the collaborator's text controls and never reaches this package.
*/
package chip
