package input

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindGuess, "guess"},
		{KindQuit, "quit"},
		{KindInvalid, "invalid"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.kind.String()
		if got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		kind Kind
		char rune
	}{
		{"c\n", KindGuess, 'c'},
		{"cat\n", KindGuess, 'c'},
		{"x", KindGuess, 'x'},
		{"é\r\n", KindGuess, 'é'},
		{" a\n", KindGuess, ' '},
		{"*\n", KindQuit, 0},
		{"*abc\n", KindQuit, 0},
		{"\n", KindInvalid, 0},
		{"\r\n", KindInvalid, 0},
		{"", KindInvalid, 0},
		{"\xff\n", KindInvalid, 0},
		{"\xff\xfe\n", KindInvalid, 0},
		{"\xe2\x82\n", KindInvalid, 0}, // truncated multi-byte sequence
		{"a\xff\n", KindGuess, 'a'},
		{"\uFFFD\n", KindGuess, '\uFFFD'},
	}

	for _, tt := range tests {
		got := Parse(tt.line)
		if got.Kind != tt.kind {
			t.Errorf("Parse(%q).Kind = %v, want %v", tt.line, got.Kind, tt.kind)
			continue
		}
		if got.Char != tt.char {
			t.Errorf("Parse(%q).Char = %q, want %q", tt.line, got.Char, tt.char)
		}
	}
}

func TestReaderSequence(t *testing.T) {
	r := NewReader(strings.NewReader("c\nat\n\n*\n"))

	expected := []Input{Guess('c'), Guess('a'), Invalid(nil), Quit(), Quit()}
	for i, want := range expected {
		got := r.Read()
		if got.Kind != want.Kind || got.Char != want.Char {
			t.Errorf("Read() #%d = %+v, want %+v", i, got, want)
		}
	}
}

func TestReaderMalformedLine(t *testing.T) {
	r := NewReader(strings.NewReader("\xff\xfe\nc\n"))

	if got := r.Read(); got.Kind != KindInvalid {
		t.Errorf("Read() of malformed line = %+v, want invalid", got)
	}
	if got := r.Read(); got.Kind != KindGuess || got.Char != 'c' {
		t.Errorf("Read() after malformed line = %+v, want guess 'c'", got)
	}
}

func TestReaderFinalLineWithoutNewline(t *testing.T) {
	r := NewReader(strings.NewReader("t"))

	if got := r.Read(); got.Kind != KindGuess || got.Char != 't' {
		t.Errorf("Read() = %+v, want guess 't'", got)
	}
	if got := r.Read(); got.Kind != KindQuit {
		t.Errorf("Read() at end of input = %v, want quit", got.Kind)
	}
}

func TestReaderError(t *testing.T) {
	boom := errors.New("boom")
	r := NewReader(iotest.ErrReader(boom))

	got := r.Read()
	if got.Kind != KindInvalid {
		t.Fatalf("Read() kind = %v, want invalid", got.Kind)
	}
	if !errors.Is(got.Err, boom) {
		t.Errorf("Read() err = %v, want %v", got.Err, boom)
	}
}
