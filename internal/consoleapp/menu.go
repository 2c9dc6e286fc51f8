// internal/consoleapp/menu.go
//
// The main menu shown after login and the views it dispatches to.

package consoleapp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/player"
)

type userSelection int

const (
	selectPlayGame userSelection = iota + 1
	selectViewStats
	selectLeaderboard
	selectLogOff
	selectDeleteUser
)

// requestSelection prompts until a valid menu selection is read. Returns 0
// on EOF.
func (a *App) requestSelection() userSelection {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "[1] Play a game of Wordle")
	fmt.Fprintln(a.out, "[2] View player statistics")
	fmt.Fprintln(a.out, "[3] View leaderboard")
	fmt.Fprintln(a.out, "[4] Log off")
	fmt.Fprintln(a.out, "[5] Delete user")

	for {
		fmt.Fprint(a.out, "Selection: ")
		line, err := a.readLine()
		if err != nil {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= int(selectPlayGame) && n <= int(selectDeleteUser) {
			fmt.Fprintln(a.out)
			return userSelection(n)
		}
		fmt.Fprintln(a.out, "Error: invalid selection")
	}
}

// runMenu dispatches one menu selection and returns the next state.
func (a *App) runMenu(current *player.Info) State {
	switch a.requestSelection() {
	case selectPlayGame:
		a.playGame(current)
		return StateMainMenu

	case selectViewStats:
		fmt.Fprintln(a.out, current.Stats())
		return StateMainMenu

	case selectLeaderboard:
		a.showLeaderboard()
		return StateMainMenu

	case selectLogOff:
		return StateLogIn

	case selectDeleteUser:
		if a.confirmDelete(current.Username) {
			return StateDeleteUser
		}
		return StateMainMenu

	default:
		// EOF at the selection prompt.
		return StateExit
	}
}

// confirmDelete asks the y/N question before the destructive state.
func (a *App) confirmDelete(username string) bool {
	fmt.Fprintf(a.out, "Are you sure you would like to delete user: %s [y/N] ", username)
	line, err := a.readLine()
	if err != nil {
		return false
	}
	if strings.ToLower(strings.TrimSpace(line)) == "y" {
		return true
	}
	fmt.Fprintln(a.out, "Action aborted")
	return false
}

// showLeaderboard renders the streak leaderboard, or a notice when no
// results database is configured.
func (a *App) showLeaderboard() {
	if a.results == nil {
		fmt.Fprintln(a.out, "Leaderboard is not available")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	top, err := a.results.Top(ctx, 10)
	if err != nil {
		fmt.Fprintln(a.out, "Error: could not load the leaderboard")
		log.Warn().Err(err).Msg("querying leaderboard")
		return
	}
	if len(top) == 0 {
		fmt.Fprintln(a.out, "No games have been recorded yet")
		return
	}

	fmt.Fprintf(a.out, "%-4s %-24s %-12s %-6s %s\n", "#", "Username", "Best Streak", "Wins", "Played")
	for i, row := range top {
		fmt.Fprintf(a.out, "%-4d %-24s %-12d %-6d %d\n", i+1, row.Username, row.BestStreak, row.Wins, row.Played)
	}
}
