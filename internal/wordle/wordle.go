// internal/wordle/wordle.go
//
// Guess scoring for a single Wordle answer.
// Responsibilities:
//   - Score guesses with the classic two-pass algorithm (greens first while
//     consuming letter counts, then yellows), correct for repeated letters
//     in both answer and guess.
//   - Render per-letter marks as G/Y/X and pick the win message for the
//     number of guesses taken.
//
// Words handled here are exactly AnswerSize uppercase ASCII letters; the
// console layer validates and normalizes input before scoring.

package wordle

// AnswerSize is the word length; MaxGuesses the number of attempts.
const (
	AnswerSize = 5
	MaxGuesses = 6
)

// Mark is the per-letter result of a guess.
type Mark uint8

const (
	// Correct (green, "G"): the letter is in the word at that position.
	Correct Mark = iota
	// Present (yellow, "Y"): the letter is in the word at another position.
	Present
	// Incorrect (gray, "X"): no more instances of the letter in the word.
	Incorrect
)

// String returns the terminal tile for a mark.
func (m Mark) String() string {
	switch m {
	case Correct:
		return "G"
	case Present:
		return "Y"
	default:
		return "X"
	}
}

// WinMessages is indexed by guesses-taken minus one.
var WinMessages = [MaxGuesses]string{
	"Genius",
	"Magnificent",
	"Impressive",
	"Splendid",
	"Great",
	"Phew",
}

// Answer is the target word of one game. Letter counts are precomputed so a
// guess scores in a single linear pass per phase.
type Answer struct {
	word         string
	letterCounts [26]uint8
}

// NewAnswer builds an Answer from an uppercase AnswerSize-letter word.
func NewAnswer(word string) *Answer {
	a := &Answer{word: word}
	for i := 0; i < len(word); i++ {
		a.letterCounts[word[i]-'A']++
	}
	return a
}

// Word returns the answer word.
func (a *Answer) Word() string {
	return a.word
}

// CheckGuess scores a guess against the answer.
//
// Pass 1 marks exact matches Correct and consumes their letter counts.
// Pass 2 resolves the remaining tiles: a positive remaining count for the
// guessed letter yields Present and consumes one count, otherwise Incorrect.
func (a *Answer) CheckGuess(guess string) [AnswerSize]Mark {
	var marks [AnswerSize]Mark
	counts := a.letterCounts

	for i := 0; i < AnswerSize; i++ {
		if guess[i] == a.word[i] {
			counts[guess[i]-'A']--
			marks[i] = Correct
		} else {
			marks[i] = Incorrect
		}
	}

	for i := 0; i < AnswerSize; i++ {
		if marks[i] != Incorrect {
			continue
		}
		if c := guess[i] - 'A'; c < 26 && counts[c] > 0 {
			marks[i] = Present
			counts[c]--
		}
	}
	return marks
}

// AllCorrect reports whether every tile is a hit.
func AllCorrect(marks [AnswerSize]Mark) bool {
	for _, m := range marks {
		if m != Correct {
			return false
		}
	}
	return true
}
