// Package main is the entry point for hangman.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/samdwyer/hangman/internal/game"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
	"github.com/samdwyer/hangman/internal/words"
)

func main() {
	os.Exit(run())
}

// run plays one session and returns the process exit code. Deferred
// cleanup (terminal restore, span flush) always happens before exit.
func run() int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Debug().Err(err).Msg(".env file not loaded")
	}

	setupLogLevel(os.Getenv("LOG_LEVEL"))

	cfg, err := game.LoadConfig(os.Getenv)
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		return 1
	}

	ctx := context.Background()

	if _, err := telemetry.ConfigureHoneycomb(os.Getenv, os.Setenv); err != nil {
		log.Warn().Err(err).Msg("failed to configure Honeycomb export")
	}
	if telemetry.Enabled(os.Getenv) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, game will run without tracing")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn().Err(err).Msg("error shutting down telemetry")
				}
			}()
		}
	}

	frontend, closeFrontend, err := newFrontend(cfg.UI)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize terminal")
		return 1
	}

	source := words.NewFileSource(cfg.WordsFile, cfg.NewRand())
	g, err := game.New(cfg, source, frontend)
	if err != nil {
		closeFrontend()
		log.Error().Err(err).Msg("failed to initialize game")
		return 1
	}

	res, err := g.Run(ctx)
	// The terminal must be restored before anything is logged.
	closeFrontend()
	if err != nil {
		log.Error().Err(err).Msg("game error")
		return 1
	}
	log.Debug().Str("outcome", res.Outcome.String()).Int("guesses", res.Guesses).Msg("game over")
	return 0
}

// newFrontend builds the frontend for mode. The returned func releases the
// terminal and is safe to call once.
func newFrontend(mode game.UIMode) (game.Frontend, func(), error) {
	if mode == game.UIAuto {
		mode = game.UILine
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			mode = game.UIScreen
		}
	}

	if mode == game.UIScreen {
		f, err := ui.NewScreenFrontend()
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}
	return ui.NewConsole(os.Stdin, os.Stdout), func() {}, nil
}

// setupLogLevel applies LOG_LEVEL, defaulting to warn so diagnostics stay out
// of the way of the game.
func setupLogLevel(level string) {
	if level == "" {
		level = "warn"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown LOG_LEVEL, using warn")
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
