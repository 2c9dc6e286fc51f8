// internal/consoleapp/game.go
//
// One interactive game of Wordle: prompt for up to six guesses, render the
// tile line for each, then update and persist the player record and append
// the result to the leaderboard log.

package consoleapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/leaderboard"
	"github.com/robalobadob/wordle/apps/go-cli/internal/player"
	"github.com/robalobadob/wordle/apps/go-cli/internal/wordle"
)

// ANSI tiles: black text on a green/yellow/white background.
const (
	tileGreen  = "\x1b[42;30m"
	tileYellow = "\x1b[43;30m"
	tileGray   = "\x1b[47;30m"
	tileReset  = "\x1b[0m"
)

// playGame runs a full game against a random unplayed word. Quitting at a
// guess prompt (EOF) abandons the game without recording anything.
func (a *App) playGame(p *player.Info) {
	word := p.RandomWord(a.dict, a.rng)
	if word == "" {
		fmt.Fprintln(a.out, "You have played every word in the dictionary!")
		return
	}
	answer := wordle.NewAnswer(word)

	fmt.Fprintf(a.out, "Guess the %d-letter word in %d or fewer guesses.\n", wordle.AnswerSize, wordle.MaxGuesses)
	fmt.Fprintln(a.out, "After each guess, each letter will be given a color:")
	fmt.Fprintln(a.out, "G = Green:\tletter is in that position in the word")
	fmt.Fprintln(a.out, "Y = Yellow:\tletter is in the word, but not that position")
	fmt.Fprintln(a.out, "X = Black:\tthere are no more instances of the letter in the word")
	fmt.Fprintln(a.out)

	won := false
	guesses := 0
	for i := 1; i <= wordle.MaxGuesses; i++ {
		guess, ok := a.readGuess(i)
		if !ok {
			// User quit mid-game; nothing is recorded.
			return
		}

		marks := answer.CheckGuess(guess)
		fmt.Fprintf(a.out, "    %s\n", a.renderMarks(marks))

		if wordle.AllCorrect(marks) {
			won = true
			guesses = i
			break
		}
	}

	if won {
		p.AddWonWord(word, guesses)
		fmt.Fprintf(a.out, "%s! ", wordle.WinMessages[guesses-1])
	} else {
		p.AddLostWord(word)
		fmt.Fprint(a.out, "Too bad! ")
	}
	fmt.Fprintf(a.out, "The word was: %s\n\n", word)

	fmt.Fprintln(a.out, p.Stats())

	if err := p.Save(a.dataDir); err != nil {
		fmt.Fprintln(a.out, "Error: could not write to user database file, progress has not been saved")
		log.Error().Err(err).Str("username", p.Username).Msg("saving player record")
	}

	a.recordResult(p, word, guesses, won)
}

// readGuess prompts until a valid dictionary word is read. ok is false on
// EOF.
func (a *App) readGuess(attempt int) (string, bool) {
	for {
		fmt.Fprintf(a.out, "[%d] ", attempt)
		line, err := a.readLine()
		if err != nil {
			return "", false
		}
		guess := strings.ToUpper(strings.TrimSpace(line))
		if len(guess) != wordle.AnswerSize {
			fmt.Fprintf(a.out, "Error: guess must be %d letters\n", wordle.AnswerSize)
			continue
		}
		if !a.dict.Contains(guess) {
			fmt.Fprintln(a.out, "Error: guess must be a word in the dictionary")
			continue
		}
		return guess, true
	}
}

// renderMarks renders a tile line, colorized when the terminal supports it.
func (a *App) renderMarks(marks [wordle.AnswerSize]wordle.Mark) string {
	var b strings.Builder
	for _, m := range marks {
		if !a.color {
			b.WriteString(m.String())
			continue
		}
		switch m {
		case wordle.Correct:
			b.WriteString(tileGreen)
		case wordle.Present:
			b.WriteString(tileYellow)
		default:
			b.WriteString(tileGray)
		}
		b.WriteString(m.String())
		b.WriteString(tileReset)
	}
	return b.String()
}

// recordResult appends the finished game to the results log. Failures are
// logged and swallowed: the player record is the source of truth.
func (a *App) recordResult(p *player.Info, word string, guesses int, won bool) {
	if a.results == nil {
		return
	}
	if guesses == 0 {
		guesses = wordle.MaxGuesses
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := a.results.RecordResult(ctx, leaderboard.Result{
		Username:  p.Username,
		Word:      word,
		Guesses:   guesses,
		Won:       won,
		CurStreak: int(p.CurWinStreak),
		MaxStreak: int(p.MaxWinStreak),
	})
	if err != nil {
		log.Warn().Err(err).Str("username", p.Username).Msg("recording game result")
	}
}
