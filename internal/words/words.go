// internal/words/words.go
//
// Dictionary loading for the terminal app.
//
// Responsibilities:
//   - Load the dictionary from a file into a hash set for O(1) guess checks.
//   - Normalize words: exactly 5 alphabetic letters, uppercased.
//   - Fall back to the embedded default list when no file is configured.
//
// Resolution order (LoadDefault):
//   1. Explicit path argument (CLI positional argument).
//   2. WORDLE_DICT_FILE environment variable.
//   3. Embedded default list from assets/dictionary.txt.

package words

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/collections"
	"github.com/robalobadob/wordle/apps/go-cli/internal/wordle"
)

// Dictionary is the guessable word set. Words are stored uppercase; the
// loader checks Contains before Insert so a file with duplicate lines does
// not inflate the set.
type Dictionary = collections.HashSet[string]

// LoadDefault resolves the dictionary source (path > env > embedded) and
// loads it. Returns an error when the resolved source is unreadable or
// yields no valid words.
func LoadDefault(path string) (*Dictionary, error) {
	if path == "" {
		path = os.Getenv("WORDLE_DICT_FILE")
	}
	if path != "" {
		return LoadFile(path)
	}

	list, err := assets.DictionaryList()
	if err != nil {
		return nil, fmt.Errorf("embedded dictionary: %w", err)
	}
	return fromList(list)
}

// LoadFile loads a dictionary from a one-word-per-line file.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	var list []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		list = append(list, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	return fromList(list)
}

// fromList filters, normalizes, and inserts words into a fresh set.
func fromList(list []string) (*Dictionary, error) {
	dict := collections.HashSetWithCapacity(collections.StringInfo(), 1024)
	for _, line := range list {
		w := strings.ToUpper(strings.TrimSpace(line))
		if len(w) != wordle.AnswerSize || !isAlpha(w) {
			continue
		}
		if !dict.Contains(w) {
			dict.Insert(w)
		}
	}
	if dict.IsEmpty() {
		return nil, fmt.Errorf("dictionary contains no valid %d-letter words", wordle.AnswerSize)
	}
	return dict, nil
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
