// Package ui presents the game in a terminal, either line by line or
// full-screen using tcell.
package ui

import (
	"fmt"
	"io"

	"github.com/samdwyer/hangman/internal/input"
)

// Player-facing text shared by both frontends.
const (
	promptText = "Please, enter a letter to guess: "
	lostText   = "Sorry, you lost!"
)

func welcomeText(attempts int) string {
	return fmt.Sprintf("Welcome to Hangman! You start with %d turns and can enter %c to quit the game",
		attempts, input.QuitRune)
}

func turnsText(turnsLeft int) string {
	return fmt.Sprintf("You have %d turns left.", turnsLeft)
}

func wonText(word string) string {
	return fmt.Sprintf("Congrats, you won! The word was %s.", word)
}

// Console is a line-oriented frontend: it prints to out and reads one guess
// per line from in.
type Console struct {
	in  *input.Reader
	out io.Writer
}

// NewConsole creates a console frontend.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: input.NewReader(in), out: out}
}

func (c *Console) Welcome(attempts int) {
	fmt.Fprintln(c.out, welcomeText(attempts))
}

func (c *Console) Show(turnsLeft int, progress string) {
	fmt.Fprintf(c.out, "\n%s\n%s\n", turnsText(turnsLeft), progress)
}

func (c *Console) Prompt() input.Input {
	fmt.Fprintf(c.out, "\n%s\n", promptText)
	return c.in.Read()
}

func (c *Console) Won(word string) {
	fmt.Fprintf(c.out, "\n%s\n", wonText(word))
}

func (c *Console) Lost() {
	fmt.Fprintln(c.out, lostText)
}
