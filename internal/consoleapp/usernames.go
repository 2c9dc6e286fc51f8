// internal/consoleapp/usernames.go
//
// The username registry: one lowercase username per line, kept sorted on
// disk by writing the ordered set back after every login and deletion.

package consoleapp

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/internal/collections"
)

// UsernamesFilename is the registry file, relative to the data directory.
const UsernamesFilename = "users.txt"

// LoadUsernames reads the registry into an ordered set. A missing file is
// an empty registry.
func LoadUsernames(dataDir string) (*collections.TreeSet[string], error) {
	users := collections.NewTreeSet(collections.StringInfo())

	path := filepath.Join(dataDir, UsernamesFilename)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return users, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open usernames %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		u := strings.TrimSpace(sc.Text())
		if u != "" {
			users.Insert(u)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read usernames %s: %w", path, err)
	}
	return users, nil
}

// saveUsernames writes the registry back in sorted order.
func (a *App) saveUsernames() error {
	var b strings.Builder
	for u := a.users.GetNext(nil); u != nil; u = a.users.GetNext(u) {
		b.WriteString(*u)
		b.WriteByte('\n')
	}

	path := filepath.Join(a.dataDir, UsernamesFilename)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write usernames %s: %w", path, err)
	}
	return nil
}
