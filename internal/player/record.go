// internal/player/record.go
//
// The on-disk player record format: five "Name: value" lines, with
// collection values comma-separated.
//
//	Username: ben
//	Words Played: CRANE,POURS
//	Number of Guesses: 0,1,0,2,0,0
//	Maximum Win Streak: 3
//	Current Win Streak: 1
//
// Records live in one file per player, <username>.txt, under the data
// directory. A missing file means a new player; a file that does not parse
// is reported as corrupt so the caller can refuse the login rather than
// silently reset the player's history.

package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/internal/collections"
	"github.com/robalobadob/wordle/apps/go-cli/internal/wordle"
)

const fieldDelim = ": "

// RecordPath returns the record file path for a username.
func RecordPath(dataDir, username string) string {
	return filepath.Join(dataDir, username+".txt")
}

// String renders the record in its file format. Words appear in the hash
// set's physical iteration order; the order carries no meaning.
func (p *Info) String() string {
	var b strings.Builder

	b.WriteString("Username: ")
	b.WriteString(p.Username)

	b.WriteString("\nWords Played: ")
	first := true
	for w := p.WordsPlayed.GetNext(nil); w != nil; w = p.WordsPlayed.GetNext(w) {
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(*w)
		first = false
	}

	b.WriteString("\nNumber of Guesses: ")
	for i, n := range p.NumGuesses {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(n), 10))
	}

	fmt.Fprintf(&b, "\nMaximum Win Streak: %d", p.MaxWinStreak)
	fmt.Fprintf(&b, "\nCurrent Win Streak: %d", p.CurWinStreak)
	b.WriteByte('\n')

	return b.String()
}

// Save writes the record to the player's file in the data directory.
func (p *Info) Save(dataDir string) error {
	if p == nil {
		return fmt.Errorf("save: nil player")
	}
	path := RecordPath(dataDir, p.Username)
	if err := os.WriteFile(path, []byte(p.String()), 0o644); err != nil {
		return fmt.Errorf("write player record %s: %w", path, err)
	}
	return nil
}

// Load reads a player record from the data directory. A missing file
// returns (nil, nil): the caller creates a fresh player. Any parse failure
// is a corrupt-record error.
func Load(dataDir, username string) (*Info, error) {
	path := RecordPath(dataDir, username)
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read player record %s: %w", path, err)
	}
	info, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("corrupt player record %s: %w", path, err)
	}
	return info, nil
}

// Parse decodes a record from its file format.
func Parse(raw string) (*Info, error) {
	lines := strings.Split(strings.TrimRight(raw, "\r\n"), "\n")
	if len(lines) != 5 {
		return nil, fmt.Errorf("expected 5 lines, got %d", len(lines))
	}

	username, err := entryValue(lines[0], "Username")
	if err != nil {
		return nil, err
	}

	info := New(username)

	if err := entryCollection(lines[1], "Words Played", func(item string) error {
		// Guard against duplicate lines in a hand-edited record.
		if !info.WordsPlayed.Contains(item) {
			info.WordsPlayed.Insert(item)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	counts := collections.VecWithCapacity(collections.TypeInfo[uint32]{}, wordle.MaxGuesses)
	if err := entryCollection(lines[2], "Number of Guesses", func(item string) error {
		n, err := strconv.ParseUint(item, 10, 32)
		if err != nil {
			return fmt.Errorf("guess count %q: %w", item, err)
		}
		counts.Push(uint32(n))
		return nil
	}); err != nil {
		return nil, err
	}
	if counts.Len() != wordle.MaxGuesses {
		return nil, fmt.Errorf("expected %d guess counts, got %d", wordle.MaxGuesses, counts.Len())
	}
	for i := range info.NumGuesses {
		info.NumGuesses[i] = counts.At(i)
	}

	if info.MaxWinStreak, err = entryUint(lines[3], "Maximum Win Streak"); err != nil {
		return nil, err
	}
	if info.CurWinStreak, err = entryUint(lines[4], "Current Win Streak"); err != nil {
		return nil, err
	}

	return info, nil
}

// entryValue splits a "Name: value" line and checks the field name.
func entryValue(line, name string) (string, error) {
	field, value, found := strings.Cut(line, fieldDelim)
	if !found {
		// A collection line may carry an empty value with no trailing space.
		if line == name+":" {
			return "", nil
		}
		return "", fmt.Errorf("malformed line %q", line)
	}
	if field != name {
		return "", fmt.Errorf("expected field %q, got %q", name, field)
	}
	return value, nil
}

// entryCollection splits a "Name: a,b,c" line and feeds each item to insert.
// An empty value yields no items.
func entryCollection(line, name string, insert func(string) error) error {
	value, err := entryValue(line, name)
	if err != nil {
		return err
	}
	if value == "" {
		return nil
	}
	for _, item := range strings.Split(value, ",") {
		if item == "" {
			continue
		}
		if err := insert(item); err != nil {
			return err
		}
	}
	return nil
}

// entryUint parses a "Name: 42" line.
func entryUint(line, name string) (uint32, error) {
	value, err := entryValue(line, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}
	return uint32(n), nil
}
