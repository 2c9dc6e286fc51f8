// internal/consoleapp/consoleapp.go
//
// Terminal front end: the login/menu state machine.
// States:
//   - LogIn:      prompt for a username, load or create the player record.
//   - MainMenu:   play, view stats, view leaderboard, log off, delete user.
//   - DeleteUser: remove the player from the username registry and delete
//                 the record file.
//   - Exit:       terminate the loop.
//
// All I/O goes through the injected reader/writer so the whole app is
// scriptable in tests. EOF on the reader is treated as a request to quit,
// matching Ctrl-D at a real terminal.

package consoleapp

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/collections"
	"github.com/robalobadob/wordle/apps/go-cli/internal/leaderboard"
	"github.com/robalobadob/wordle/apps/go-cli/internal/player"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// State is a node of the program state machine.
type State int

const (
	StateLogIn State = iota
	StateMainMenu
	StateDeleteUser
	StateExit
)

// Config wires an App. Results may be nil: the leaderboard degrades to an
// unavailable-message, everything else keeps working.
type Config struct {
	Dictionary *words.Dictionary
	Usernames  *collections.TreeSet[string]
	DataDir    string
	Results    *leaderboard.Store
	Color      bool
	Rand       *rand.Rand
	In         io.Reader
	Out        io.Writer
}

// App is the terminal application. It exclusively owns the username set for
// the duration of Run.
type App struct {
	dict    *words.Dictionary
	users   *collections.TreeSet[string]
	dataDir string
	results *leaderboard.Store
	color   bool
	rng     *rand.Rand
	in      *bufio.Reader
	out     io.Writer
}

// New constructs an App from a Config, filling in defaults for the RNG and
// data directory.
func New(cfg Config) *App {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	return &App{
		dict:    cfg.Dictionary,
		users:   cfg.Usernames,
		dataDir: dataDir,
		results: cfg.Results,
		color:   cfg.Color,
		rng:     rng,
		in:      bufio.NewReader(cfg.In),
		out:     cfg.Out,
	}
}

// Run drives the state machine until exit.
func (a *App) Run() error {
	state := StateLogIn
	var current *player.Info

	for state != StateExit {
		switch state {
		case StateLogIn:
			current = nil
			p, err := a.requestUserLogin()
			if err != nil {
				return err
			}
			if p == nil {
				// User asked to exit, or the login failed.
				state = StateExit
				break
			}
			current = p
			if err := a.saveUsernames(); err != nil {
				fmt.Fprintln(a.out, "Error: could not write to the user database")
				log.Error().Err(err).Msg("saving usernames")
				state = StateExit
				break
			}
			state = StateMainMenu

		case StateMainMenu:
			state = a.runMenu(current)

		case StateDeleteUser:
			state = a.deleteUser(current)
		}
	}
	return nil
}

// readLine reads one line, trimming the trailing newline. io.EOF means the
// user is done with the terminal.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// requestUsername prompts until a valid username is read. Returns "" when
// the user asks to exit (":q" or EOF). New usernames are added to the
// registry.
func (a *App) requestUsername() (string, error) {
	if !a.users.IsEmpty() {
		fmt.Fprintln(a.out, "List of existing users:")
		for u := a.users.GetNext(nil); u != nil; u = a.users.GetNext(u) {
			fmt.Fprintln(a.out, *u)
		}
		fmt.Fprintln(a.out)
	}

	fmt.Fprintln(a.out, "Note: usernames are case-insensitive")
	fmt.Fprintln(a.out, "Type \":q\" to exit")

	for {
		fmt.Fprint(a.out, "Username: ")
		line, err := a.readLine()
		if err != nil {
			return "", nil
		}
		username := strings.ToLower(strings.TrimSpace(line))
		if username == ":q" {
			return "", nil
		}
		if !validUsername(username) {
			fmt.Fprintln(a.out, "Error: usernames are 1-24 characters: letters, numbers, underscore")
			continue
		}
		if !a.users.Contains(username) {
			a.users.Insert(username)
		}
		return username, nil
	}
}

// validUsername bounds the length and restricts the charset; the username
// doubles as the record file name.
func validUsername(u string) bool {
	if len(u) < 1 || len(u) > 24 {
		return false
	}
	for _, r := range u {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// requestUserLogin prompts for a username and loads (or creates) the player
// record. Returns nil when the user asks to exit or the record is corrupt.
func (a *App) requestUserLogin() (*player.Info, error) {
	username, err := a.requestUsername()
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, nil
	}

	p, err := player.Load(a.dataDir, username)
	if err != nil {
		fmt.Fprintf(a.out, "Error: corrupt player database file: %s\n", player.RecordPath(a.dataDir, username))
		log.Error().Err(err).Str("username", username).Msg("loading player record")
		return nil, nil
	}

	fmt.Fprintf(a.out, "Hello, %s\n", username)

	if p == nil {
		// First login for this username.
		p = player.New(username)
	}
	return p, nil
}

// deleteUser removes the current player from the registry and deletes the
// record file, then returns to the login screen.
func (a *App) deleteUser(current *player.Info) State {
	kept := collections.NewTreeSet(collections.StringInfo())
	for u := a.users.GetNext(nil); u != nil; u = a.users.GetNext(u) {
		if *u != current.Username {
			kept.Insert(*u)
		}
	}
	a.users.Drop()
	*a.users = *kept

	path := player.RecordPath(a.dataDir, current.Username)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("removing player record")
	}

	if err := a.saveUsernames(); err != nil {
		fmt.Fprintln(a.out, "Error: could not write to the user database")
		log.Error().Err(err).Msg("saving usernames")
		return StateExit
	}
	return StateLogIn
}
