package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// ErrInvalidConfig is returned for configuration values that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// UIMode selects how the game is presented.
type UIMode string

const (
	UILine   UIMode = "line"   // Prompts and guesses on stdin/stdout
	UIScreen UIMode = "screen" // Full-screen terminal UI
	UIAuto   UIMode = "auto"   // Screen when attached to a terminal, line otherwise
)

// Defaults.
const (
	DefaultWordsFile = "words.txt"
	DefaultAttempts  = 5
	DefaultUI        = UILine
)

// Environment variables read by LoadConfig.
const (
	EnvWordsFile = "HANGMAN_WORDS_FILE"
	EnvSeed      = "HANGMAN_SEED"
	EnvAttempts  = "HANGMAN_ATTEMPTS"
	EnvUI        = "HANGMAN_UI"
)

// Config holds game configuration options.
type Config struct {
	// WordsFile is the comma-separated word list to choose from.
	WordsFile string

	// Seed for random number generation. Used for reproducible word selection.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Attempts is the number of incorrect guesses allowed.
	Attempts int

	UI UIMode
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		WordsFile: DefaultWordsFile,
		Attempts:  DefaultAttempts,
		UI:        DefaultUI,
	}
}

// LoadConfig builds a Config from environment lookups, starting from the
// defaults. Pass os.Getenv in production.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	if v := getenv(EnvWordsFile); v != "" {
		cfg.WordsFile = v
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if v := getenv(EnvAttempts); v != "" {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvAttempts, v, err)
		}
		cfg.Attempts = attempts
	}
	if v := getenv(EnvUI); v != "" {
		cfg.UI = UIMode(v)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first unusable value in c.
func (c Config) Validate() error {
	if c.WordsFile == "" {
		return fmt.Errorf("%w: empty words file", ErrInvalidConfig)
	}
	if c.Attempts < 1 {
		return fmt.Errorf("%w: attempts must be positive, got %d", ErrInvalidConfig, c.Attempts)
	}
	switch c.UI {
	case UILine, UIScreen, UIAuto:
	default:
		return fmt.Errorf("%w: unknown ui mode %q", ErrInvalidConfig, c.UI)
	}
	return nil
}

// NewRand returns a random source seeded from c.Seed, or from the clock
// when no seed is set.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
