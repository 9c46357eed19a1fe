// Package game provides the main game loop and state management.
package game

import "github.com/samdwyer/hangman/internal/board"

// Progress is the state of a session after a guess.
type Progress int

const (
	// ProgressInProgress means the player keeps guessing.
	ProgressInProgress Progress = iota
	// ProgressWon means every letter is revealed.
	ProgressWon
	// ProgressLost means the turn budget is exhausted.
	ProgressLost
)

// String returns a human-readable progress name.
func (p Progress) String() string {
	switch p {
	case ProgressInProgress:
		return "in_progress"
	case ProgressWon:
		return "won"
	case ProgressLost:
		return "lost"
	default:
		return "unknown"
	}
}

// CheckProgress derives the progress from the turn budget and board.
// A fully revealed board wins even when no turns are left.
func CheckProgress(turnsLeft int, b *board.Board) Progress {
	if b.AllRevealed() {
		return ProgressWon
	}
	if turnsLeft > 0 {
		return ProgressInProgress
	}
	return ProgressLost
}

// Outcome is how a session ended.
type Outcome int

const (
	// OutcomeWon - the word was revealed
	OutcomeWon Outcome = iota
	// OutcomeLost - the turn budget ran out
	OutcomeLost
	// OutcomeQuit - the player left before the game was decided
	OutcomeQuit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result summarizes a finished session.
type Result struct {
	Outcome   Outcome
	Word      string
	TurnsLeft int
	Guesses   int // Guesses made, hits and misses
}
