package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/input"
)

// ScreenFrontend plays the game full-screen. Each key press is one guess.
type ScreenFrontend struct {
	screen   *Screen
	renderer *Renderer
	view     View
}

// NewScreenFrontend opens the terminal screen.
func NewScreenFrontend() (*ScreenFrontend, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreenFrontend(screen), nil
}

func newScreenFrontend(screen *Screen) *ScreenFrontend {
	return &ScreenFrontend{
		screen:   screen,
		renderer: NewRenderer(screen),
		view:     View{Prompt: promptText},
	}
}

func (f *ScreenFrontend) Welcome(attempts int) {
	f.view.Welcome = welcomeText(attempts)
	f.view.Attempts = attempts
}

func (f *ScreenFrontend) Show(turnsLeft int, progress string) {
	f.view.TurnsLeft = turnsLeft
	f.view.Progress = progress
	f.renderer.Render(f.view)
}

// Prompt waits for a key press. Runes are guesses; the quit rune, Escape and
// Ctrl-C leave the game.
func (f *ScreenFrontend) Prompt() input.Input {
	for {
		switch ev := f.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if in, ok := keyInput(ev); ok {
				return in
			}
		case *tcell.EventResize:
			f.screen.Sync()
			f.renderer.Render(f.view)
		case nil:
			// Screen finalized underneath us.
			return input.Quit()
		}
	}
}

// keyInput maps a key event to player input. ok is false for keys that
// should be ignored.
func keyInput(ev *tcell.EventKey) (in input.Input, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD:
		return input.Quit(), true
	case tcell.KeyRune:
		if ev.Rune() == input.QuitRune {
			return input.Quit(), true
		}
		return input.Guess(ev.Rune()), true
	}
	return input.Input{}, false
}

func (f *ScreenFrontend) Won(word string) {
	f.finish(wonText(word))
}

func (f *ScreenFrontend) Lost() {
	f.finish(lostText)
}

// finish shows the end message and waits for any key.
func (f *ScreenFrontend) finish(msg string) {
	f.view.Message = msg + "  (press any key)"
	f.renderer.Render(f.view)
	for {
		switch f.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		case *tcell.EventResize:
			f.screen.Sync()
			f.renderer.Render(f.view)
		}
	}
}

// Close restores the terminal.
func (f *ScreenFrontend) Close() {
	f.screen.Close()
}
