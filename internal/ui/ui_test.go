package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/input"
)

func TestConsoleTranscript(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("c\n"), &out)

	c.Welcome(5)
	c.Show(5, "Progress: _ _ _ ")
	in := c.Prompt()
	c.Won("cat")

	if in.Kind != input.KindGuess || in.Char != 'c' {
		t.Errorf("Prompt() = %+v, want guess 'c'", in)
	}

	want := "Welcome to Hangman! You start with 5 turns and can enter * to quit the game\n" +
		"\nYou have 5 turns left.\nProgress: _ _ _ \n" +
		"\nPlease, enter a letter to guess: \n" +
		"\nCongrats, you won! The word was cat.\n"
	if got := out.String(); got != want {
		t.Errorf("Console output = %q, want %q", got, want)
	}
}

func TestConsoleLost(t *testing.T) {
	var out bytes.Buffer
	NewConsole(strings.NewReader(""), &out).Lost()

	if got := out.String(); got != "Sorry, you lost!\n" {
		t.Errorf("Lost() output = %q, want %q", got, "Sorry, you lost!\n")
	}
}

func TestConsoleEndOfInputQuits(t *testing.T) {
	c := NewConsole(strings.NewReader(""), &bytes.Buffer{})
	if in := c.Prompt(); in.Kind != input.KindQuit {
		t.Errorf("Prompt() at end of input = %v, want quit", in.Kind)
	}
}

func TestKeyInput(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		ok   bool
		kind input.Kind
		char rune
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), true, input.KindGuess, 'a'},
		{tcell.NewEventKey(tcell.KeyRune, '*', tcell.ModNone), true, input.KindQuit, 0},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true, input.KindQuit, 0},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true, input.KindQuit, 0},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), false, 0, 0},
	}

	for i, tt := range tests {
		in, ok := keyInput(tt.ev)
		if ok != tt.ok {
			t.Errorf("keyInput #%d ok = %v, want %v", i, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if in.Kind != tt.kind || in.Char != tt.char {
			t.Errorf("keyInput #%d = %+v, want kind %v char %q", i, in, tt.kind, tt.char)
		}
	}
}

// rowText returns the runes on row y of a simulation screen.
func rowText(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(string(cell.Runes))
	}
	return sb.String()
}

func newSimScreen(t *testing.T) (tcell.SimulationScreen, *Screen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen() returned error: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(80, 24)
	return sim, screen
}

func TestRendererRender(t *testing.T) {
	sim, screen := newSimScreen(t)
	r := NewRenderer(screen)

	r.Render(View{
		Welcome:   welcomeText(5),
		TurnsLeft: 3,
		Attempts:  5,
		Progress:  "Progress: c _ t ",
		Prompt:    promptText,
	})

	if row := rowText(sim, 4); !strings.Contains(row, "You have 3 turns left.") {
		t.Errorf("Row 4 = %q, want turns line", row)
	}
	if row := rowText(sim, 6); !strings.Contains(row, "Progress: c _ t") {
		t.Errorf("Row 6 = %q, want progress line", row)
	}
	if row := rowText(sim, 9); !strings.Contains(row, promptText[:20]) {
		t.Errorf("Row 9 = %q, want prompt", row)
	}
}

func TestRendererShowsMessageInsteadOfPrompt(t *testing.T) {
	sim, screen := newSimScreen(t)
	NewRenderer(screen).Render(View{Prompt: promptText, Message: lostText})

	row := rowText(sim, 9)
	if !strings.Contains(row, lostText) {
		t.Errorf("Row 9 = %q, want %q", row, lostText)
	}
	if strings.Contains(row, "Please") {
		t.Errorf("Row 9 = %q, prompt should be hidden once a message is set", row)
	}
}

func TestTurnsStyle(t *testing.T) {
	r := &Renderer{}
	tests := []struct {
		turnsLeft, attempts int
		fg                  tcell.Color
	}{
		{5, 5, tcell.ColorGreen},
		{3, 5, tcell.ColorGreen},
		{2, 5, tcell.ColorYellow},
		{1, 5, tcell.ColorRed},
		{0, 5, tcell.ColorRed},
	}

	for _, tt := range tests {
		fg, _, _ := r.turnsStyle(tt.turnsLeft, tt.attempts).Decompose()
		if fg != tt.fg {
			t.Errorf("turnsStyle(%d, %d) fg = %v, want %v", tt.turnsLeft, tt.attempts, fg, tt.fg)
		}
	}
}

// post queues events on the simulation screen ahead of the next PollEvent.
func post(t *testing.T, sim tcell.SimulationScreen, events ...tcell.Event) {
	t.Helper()
	for _, ev := range events {
		if err := sim.PostEvent(ev); err != nil {
			t.Fatalf("PostEvent() returned error: %v", err)
		}
	}
}

func TestScreenFrontendPrompt(t *testing.T) {
	sim, screen := newSimScreen(t)
	f := newScreenFrontend(screen)
	f.Welcome(5)
	f.Show(5, "Progress: _ _ _ ")

	post(t, sim,
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, '*', tcell.ModNone),
	)

	if in := f.Prompt(); in.Kind != input.KindGuess || in.Char != 'a' {
		t.Errorf("Prompt() = %+v, want guess 'a'", in)
	}
	if in := f.Prompt(); in.Kind != input.KindQuit {
		t.Errorf("Prompt() after '*' = %v, want quit", in.Kind)
	}
}

func TestScreenFrontendPromptIgnoresOtherKeys(t *testing.T) {
	sim, screen := newSimScreen(t)
	f := newScreenFrontend(screen)

	post(t, sim,
		tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'e', tcell.ModNone),
	)

	if in := f.Prompt(); in.Kind != input.KindGuess || in.Char != 'e' {
		t.Errorf("Prompt() = %+v, want guess 'e' after KeyUp is skipped", in)
	}
}

func TestScreenFrontendResizeRerenders(t *testing.T) {
	sim, screen := newSimScreen(t)
	f := newScreenFrontend(screen)
	f.Welcome(5)
	f.Show(4, "Progress: _ a _ ")

	// Wipe the buffer so only a re-render can bring the board back.
	screen.Clear()
	screen.Show()

	sim.SetSize(100, 30)
	post(t, sim,
		tcell.NewEventResize(100, 30),
		tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone),
	)

	if in := f.Prompt(); in.Kind != input.KindGuess || in.Char != 'c' {
		t.Fatalf("Prompt() = %+v, want guess 'c'", in)
	}
	if row := rowText(sim, 6); !strings.Contains(row, "Progress: _ a _") {
		t.Errorf("Row 6 after resize = %q, want progress line", row)
	}
	if row := rowText(sim, 4); !strings.Contains(row, "You have 4 turns left.") {
		t.Errorf("Row 4 after resize = %q, want turns line", row)
	}
}

func TestScreenFrontendWonWaitsForKey(t *testing.T) {
	sim, screen := newSimScreen(t)
	f := newScreenFrontend(screen)
	f.Welcome(5)
	f.Show(5, "Progress: c a _ ")

	post(t, sim, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	f.Won("cat")

	if row := rowText(sim, 9); !strings.Contains(row, "Congrats, you won! The word was cat.") {
		t.Errorf("Row 9 = %q, want win message", row)
	}
}

func TestScreenFrontendLostWaitsForKey(t *testing.T) {
	sim, screen := newSimScreen(t)
	f := newScreenFrontend(screen)

	post(t, sim,
		tcell.NewEventResize(80, 24),
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
	)
	f.Lost()

	if row := rowText(sim, 9); !strings.Contains(row, lostText) {
		t.Errorf("Row 9 = %q, want %q", row, lostText)
	}
}
