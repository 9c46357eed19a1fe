package ui

import "github.com/gdamore/tcell/v2"

// View is everything drawn for one frame.
type View struct {
	Welcome   string
	TurnsLeft int
	Attempts  int
	Progress  string
	Prompt    string
	Message   string // End-of-game message, empty while playing
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws v, one line per element, from the top-left corner.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	width, _ := r.screen.Size()
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.screen.DrawText(1, 1, v.Welcome, white)
	r.drawRule(3, width)
	r.screen.DrawText(1, 4, turnsText(v.TurnsLeft), r.turnsStyle(v.TurnsLeft, v.Attempts))
	r.screen.DrawText(1, 6, v.Progress, white.Bold(true))
	r.drawRule(8, width)

	if v.Message != "" {
		r.screen.DrawText(1, 9, v.Message, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	} else {
		r.screen.DrawText(1, 9, v.Prompt, white)
	}

	r.screen.Show()
}

// turnsStyle colors the turn counter by how much of the budget is left.
func (r *Renderer) turnsStyle(turnsLeft, attempts int) tcell.Style {
	switch {
	case turnsLeft <= 1:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case attempts > 0 && turnsLeft*2 <= attempts:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	}
}

// drawRule draws a horizontal line across the screen at row y.
func (r *Renderer) drawRule(y, width int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, y, tcell.RuneHLine, style)
	}
}
