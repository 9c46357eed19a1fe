// Package words loads word lists and selects the word for a session.
package words

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Delimiter separates entries in a word list file.
const Delimiter = ","

// ErrEmptyList is returned when a word list contains no usable entries.
var ErrEmptyList = errors.New("word list is empty")

// Source provides one word per call.
type Source interface {
	SelectWord() (string, error)
}

// Picker returns a uniform random index in [0, n).
// *rand.Rand satisfies it. Sources with a nil Picker always select the
// first entry.
type Picker interface {
	Intn(n int) int
}

// Parse splits delimited word list content into its entries.
// Surrounding whitespace is trimmed from the content and from every entry,
// and empty entries are dropped.
func Parse(content string) ([]string, error) {
	var out []string
	for _, entry := range strings.Split(strings.TrimSpace(content), Delimiter) {
		w := strings.TrimSpace(entry)
		if w == "" {
			continue
		}
		// Composed and decomposed forms of the same letter must compare equal
		// rune-for-rune against a typed guess.
		out = append(out, norm.NFC.String(w))
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return out, nil
}

// Load reads and parses the word list at path.
func Load(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	list, err := Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse word list %s: %w", path, err)
	}
	return list, nil
}

// FileSource selects a word from a list file. The file is read on every call,
// so a session reads it exactly once.
type FileSource struct {
	Path   string
	Picker Picker
}

// NewFileSource creates a source reading from path.
func NewFileSource(path string, picker Picker) *FileSource {
	return &FileSource{Path: path, Picker: picker}
}

// SelectWord loads the list and returns one entry chosen at random.
func (s *FileSource) SelectWord() (string, error) {
	list, err := Load(s.Path)
	if err != nil {
		return "", err
	}
	return pick(list, s.Picker), nil
}

// ListSource selects a word from an in-memory list.
type ListSource struct {
	Words  []string
	Picker Picker
}

// NewListSource creates a source over words.
func NewListSource(words []string, picker Picker) *ListSource {
	return &ListSource{Words: words, Picker: picker}
}

// SelectWord returns one entry chosen at random.
func (s *ListSource) SelectWord() (string, error) {
	if len(s.Words) == 0 {
		return "", ErrEmptyList
	}
	return pick(s.Words, s.Picker), nil
}

func pick(list []string, picker Picker) string {
	if picker == nil || len(list) == 1 {
		return list[0]
	}
	return list[picker.Intn(len(list))]
}
