package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/hangman/internal/board"
	"github.com/samdwyer/hangman/internal/input"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/words"
)

// Frontend presents a session to the player and collects guesses.
type Frontend interface {
	// Welcome is shown once before the first turn.
	Welcome(attempts int)
	// Show displays the turn budget and board progress.
	Show(turnsLeft int, progress string)
	// Prompt blocks until the player enters something.
	Prompt() input.Input
	Won(word string)
	Lost()
}

// Game runs a single session.
type Game struct {
	ID       string
	cfg      Config
	source   words.Source
	frontend Frontend
	logger   zerolog.Logger
}

// New creates a new game instance.
func New(cfg Config, source words.Source, frontend Frontend) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil || frontend == nil {
		return nil, fmt.Errorf("%w: word source and frontend are required", ErrInvalidConfig)
	}

	id := uuid.NewString()
	return &Game{
		ID:       id,
		cfg:      cfg,
		source:   source,
		frontend: frontend,
		logger:   log.With().Str("session", id).Logger(),
	}, nil
}

// Run selects a word and plays turns until the session is won, lost or quit.
// The returned error is non-nil only when no word could be selected or ctx
// was cancelled between turns.
func (g *Game) Run(ctx context.Context) (Result, error) {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(telemetry.SessionKey.String(g.ID))

	word, err := g.source.SelectWord()
	if err != nil {
		initSpan.RecordError(err)
		initSpan.SetStatus(codes.Error, "word selection failed")
		initSpan.End()
		return Result{}, fmt.Errorf("failed to select word: %w", err)
	}

	b := board.New(word)
	res := Result{Word: word, TurnsLeft: g.cfg.Attempts}

	initSpan.SetAttributes(
		telemetry.WordLengthKey.Int(b.Len()),
		telemetry.AttemptsKey.Int(g.cfg.Attempts),
	)
	initSpan.End()

	g.logger.Debug().Int("word_length", b.Len()).Int("attempts", g.cfg.Attempts).Msg("session started")
	g.frontend.Welcome(g.cfg.Attempts)

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		g.frontend.Show(res.TurnsLeft, b.Progress())

		in := g.frontend.Prompt()
		if in.Kind != input.KindGuess {
			if in.Err != nil {
				g.logger.Warn().Err(in.Err).Msg("input read failed, leaving game")
			}
			res.Outcome = OutcomeQuit
			g.end(ctx, res)
			return res, nil
		}

		hit := g.playTurn(ctx, b, in.Char, &res)

		switch CheckProgress(res.TurnsLeft, b) {
		case ProgressWon:
			res.Outcome = OutcomeWon
			g.frontend.Won(word)
			g.end(ctx, res)
			return res, nil
		case ProgressLost:
			res.Outcome = OutcomeLost
			g.frontend.Lost()
			g.end(ctx, res)
			return res, nil
		}

		g.logger.Debug().Str("guess", string(in.Char)).Bool("hit", hit).Int("turns_left", res.TurnsLeft).Msg("turn played")
	}
}

// playTurn reveals guess on the board and charges a turn on a miss.
func (g *Game) playTurn(ctx context.Context, b *board.Board, guess rune, res *Result) bool {
	_, span := telemetry.Tracer("game").Start(ctx, "game.turn")
	defer span.End()

	hit := b.Reveal(guess)
	if !hit && res.TurnsLeft > 0 {
		res.TurnsLeft--
	}
	res.Guesses++

	span.SetAttributes(
		telemetry.SessionKey.String(g.ID),
		telemetry.GuessKey.String(string(guess)),
		telemetry.HitKey.Bool(hit),
		telemetry.TurnsLeftKey.Int(res.TurnsLeft),
		telemetry.HiddenKey.Int(b.HiddenCount()),
	)
	return hit
}

// end records the session outcome.
func (g *Game) end(ctx context.Context, res Result) {
	_, span := telemetry.Tracer("game").Start(ctx, "game.end")
	span.SetAttributes(
		telemetry.SessionKey.String(g.ID),
		telemetry.OutcomeKey.String(res.Outcome.String()),
		telemetry.GuessesKey.Int(res.Guesses),
		telemetry.TurnsLeftKey.Int(res.TurnsLeft),
	)
	span.End()

	g.logger.Debug().Str("outcome", res.Outcome.String()).Int("guesses", res.Guesses).Msg("session ended")
}
