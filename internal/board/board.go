// Package board tracks which letters of the selected word have been revealed.
package board

import "strings"

const (
	// ProgressLabel prefixes the rendered progress line.
	ProgressLabel = "Progress: "
	// Placeholder is shown in place of a hidden letter.
	Placeholder = '_'
)

// Letter is one character position of the word.
type Letter struct {
	char     rune
	revealed bool
}

// Char returns the letter's character.
func (l Letter) Char() rune { return l.char }

// Revealed reports whether the letter has been guessed.
func (l Letter) Revealed() bool { return l.revealed }

// Board is the ordered set of letters of one word.
type Board struct {
	letters []Letter
}

// New creates a board with one hidden letter per rune of word, in order.
// Repeated runes produce independent letters.
func New(word string) *Board {
	letters := make([]Letter, 0, len(word))
	for _, c := range word {
		letters = append(letters, Letter{char: c})
	}
	return &Board{letters: letters}
}

// Reveal uncovers every letter matching c and reports whether any matched.
func (b *Board) Reveal(c rune) bool {
	matched := false
	for i := range b.letters {
		if b.letters[i].char == c {
			b.letters[i].revealed = true
			matched = true
		}
	}
	return matched
}

// AllRevealed reports whether every letter has been uncovered.
func (b *Board) AllRevealed() bool {
	for _, l := range b.letters {
		if !l.revealed {
			return false
		}
	}
	return true
}

// HiddenCount returns the number of letters not yet uncovered.
func (b *Board) HiddenCount() int {
	count := 0
	for _, l := range b.letters {
		if !l.revealed {
			count++
		}
	}
	return count
}

// Len returns the number of letters on the board.
func (b *Board) Len() int {
	return len(b.letters)
}

// Letters returns a copy of the board's letters.
func (b *Board) Letters() []Letter {
	out := make([]Letter, len(b.letters))
	copy(out, b.letters)
	return out
}

// Progress renders the board as "Progress: " followed by each revealed
// character or placeholder, each followed by a space.
func (b *Board) Progress() string {
	var sb strings.Builder
	sb.WriteString(ProgressLabel)
	for _, l := range b.letters {
		if l.revealed {
			sb.WriteRune(l.char)
		} else {
			sb.WriteRune(Placeholder)
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}
