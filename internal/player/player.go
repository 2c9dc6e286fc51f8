// internal/player/player.go
//
// Per-player state and statistics.
// Responsibilities:
//   - Track the words a player has seen (hash set), the guess distribution,
//     and the current/maximum win streaks.
//   - Pick a random not-yet-played word from the dictionary.
//   - Render the statistics block shown after each game, including the
//     12-wide guess distribution bars.
//
// Serialization of this state to the on-disk record format lives in
// record.go.

package player

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/internal/collections"
	"github.com/robalobadob/wordle/apps/go-cli/internal/wordle"
)

// Info is the full per-player state. WordsPlayed stores uppercase words; the
// word-history code checks Contains before Insert, since the hash set itself
// does not deduplicate.
type Info struct {
	Username     string
	WordsPlayed  *collections.HashSet[string]
	NumGuesses   [wordle.MaxGuesses]uint32
	MaxWinStreak uint32
	CurWinStreak uint32
}

// New returns a fresh player with an empty word history.
func New(username string) *Info {
	return &Info{
		Username:    username,
		WordsPlayed: collections.NewHashSet(collections.StringInfo()),
	}
}

// RandomWord picks a uniformly random dictionary word the player has not yet
// played. Returns "" when the player has exhausted the dictionary.
func (p *Info) RandomWord(dictionary *collections.HashSet[string], rng *rand.Rand) string {
	if p == nil || dictionary == nil {
		return ""
	}
	unplayed := dictionary.Len() - p.WordsPlayed.Len()
	if unplayed <= 0 {
		return ""
	}
	target := rng.Intn(unplayed)

	i := 0
	for w := dictionary.GetNext(nil); w != nil; w = dictionary.GetNext(w) {
		if p.WordsPlayed.Contains(*w) {
			continue
		}
		if i == target {
			return *w
		}
		i++
	}
	return ""
}

// AddWonWord records a win in numGuesses guesses and extends the streak.
func (p *Info) AddWonWord(word string, numGuesses int) {
	if p == nil || numGuesses < 1 || numGuesses > wordle.MaxGuesses {
		return
	}
	p.recordWord(word)
	p.NumGuesses[numGuesses-1]++
	p.CurWinStreak++
	if p.CurWinStreak > p.MaxWinStreak {
		p.MaxWinStreak = p.CurWinStreak
	}
}

// AddLostWord records a loss and resets the streak.
func (p *Info) AddLostWord(word string) {
	if p == nil {
		return
	}
	p.recordWord(word)
	p.CurWinStreak = 0
}

// recordWord adds word to the history unless already present. The Contains
// check is required: HashSet.Insert stores duplicates unconditionally.
func (p *Info) recordWord(word string) {
	if !p.WordsPlayed.Contains(word) {
		p.WordsPlayed.Insert(word)
	}
}

// Wins returns the total number of games won.
func (p *Info) Wins() uint32 {
	var wins uint32
	for _, n := range p.NumGuesses {
		wins += n
	}
	return wins
}

// Stats renders the statistics block shown after a game:
// words played, win rate, streaks, and the guess distribution with bars
// scaled so the most common count spans 12 characters.
func (p *Info) Stats() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of Words Played: %d\n", p.WordsPlayed.Len())

	winRate := 0
	if !p.WordsPlayed.IsEmpty() {
		winRate = int(math.Round(100 * float64(p.Wins()) / float64(p.WordsPlayed.Len())))
	}
	fmt.Fprintf(&b, "Win Rate: %d%%\n", winRate)
	fmt.Fprintf(&b, "Current Win Streak: %d\n", p.CurWinStreak)
	fmt.Fprintf(&b, "Maximum Win Streak: %d\n", p.MaxWinStreak)
	b.WriteString("Guess Distribution:")

	var maxCount uint32
	for _, n := range p.NumGuesses {
		if n > maxCount {
			maxCount = n
		}
	}
	barFactor := 0.0
	if maxCount > 0 {
		barFactor = 12.0 / float64(maxCount)
	}
	for i, n := range p.NumGuesses {
		bars := int(math.Round(barFactor * float64(n)))
		fmt.Fprintf(&b, "\n%d: %s %d", i+1, strings.Repeat("=", bars), n)
	}

	return b.String()
}
