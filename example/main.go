// Example demonstrates the chip widget running against a terminal
// collaborator built on termbox.
//
//	go run ./example/
//
// Tab moves keyboard focus to the next control; with a chip focused the
// arrow keys hop across chip boundaries, Backspace at a chip's start
// merges it into the previous chip, and typing a comma splits the chip in
// place. Esc quits.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/go-theft-auto/chip"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("termbox init: %w", err)
	}
	defer termbox.Close()

	edit, err := chip.New(",",
		chip.WithTexts("alpha", "beta", "gamma"),
		chip.WithIcon("#"),
	)
	if err != nil {
		return err
	}

	tk := newTermToolkit()
	var ev *termbox.Event
	for {
		if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
			return err
		}
		termbox.HideCursor()

		tk.beginFrame(ev)
		edit.Show(tk)
		drawStatus(edit)

		if err := termbox.Flush(); err != nil {
			return err
		}

		e := termbox.PollEvent()
		switch {
		case e.Type == termbox.EventKey && (e.Key == termbox.KeyEsc || e.Key == termbox.KeyCtrlC):
			return nil
		case e.Type == termbox.EventResize:
			ev = nil
		default:
			ev = &e
		}
	}
}

func drawStatus(edit *chip.ChipEdit) {
	line := "values: [" + strings.Join(edit.Values(), " | ") + "]"
	help := "Tab: next control   Esc: quit"
	putText(0, 3, line, termbox.ColorWhite)
	putText(0, 4, help, termbox.ColorDefault)
}

func putText(x, y int, text string, fg termbox.Attribute) {
	for _, r := range text {
		termbox.SetCell(x, y, r, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}
