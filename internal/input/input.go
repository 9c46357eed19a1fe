// Package input turns lines typed by the player into guesses.
package input

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"
)

// QuitRune is typed to leave the game.
const QuitRune = '*'

// Kind classifies a line of player input.
type Kind int

const (
	// KindGuess carries a guessed character.
	KindGuess Kind = iota
	// KindQuit is an explicit quit or end of input.
	KindQuit
	// KindInvalid is a blank line or a failed read.
	KindInvalid
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindGuess:
		return "guess"
	case KindQuit:
		return "quit"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Input is the result of reading one line.
type Input struct {
	Kind Kind
	Char rune  // Set for KindGuess
	Err  error // Set for KindInvalid when the read failed
}

// Guess returns a guess input for c.
func Guess(c rune) Input { return Input{Kind: KindGuess, Char: c} }

// Quit returns a quit input.
func Quit() Input { return Input{Kind: KindQuit} }

// Invalid returns an invalid input carrying err, which may be nil.
func Invalid(err error) Input { return Input{Kind: KindInvalid, Err: err} }

// Parse interprets a single line. Only the first character is significant;
// a line that does not start with valid UTF-8 is invalid.
func Parse(line string) Input {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return Invalid(nil)
	}
	c, size := utf8.DecodeRuneInString(line)
	if c == utf8.RuneError && size <= 1 {
		return Invalid(nil)
	}
	if c == QuitRune {
		return Quit()
	}
	return Guess(c)
}

// Reader reads player input one line at a time.
type Reader struct {
	r *bufio.Reader
}

// NewReader creates a reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Read blocks until a line (or end of input) is available.
func (r *Reader) Read() Input {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return Invalid(err)
		}
		if line == "" {
			return Quit()
		}
	}
	return Parse(line)
}
