package consoleapp

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/collections"
	"github.com/robalobadob/wordle/apps/go-cli/internal/player"
)

// newTestApp scripts an App against an in-memory terminal.
func newTestApp(t *testing.T, dictWords []string, input string) (*App, *bytes.Buffer, string) {
	t.Helper()
	dataDir := t.TempDir()

	dict := collections.HashSetFrom(collections.StringInfo(), dictWords)
	users, err := LoadUsernames(dataDir)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app := New(Config{
		Dictionary: dict,
		Usernames:  users,
		DataDir:    dataDir,
		Rand:       rand.New(rand.NewSource(1)),
		In:         strings.NewReader(input),
		Out:        out,
	})
	return app, out, dataDir
}

func TestQuitAtLogin(t *testing.T) {
	app, out, _ := newTestApp(t, []string{"CRANE"}, ":q\n")

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Username: ")
}

func TestEOFAtLoginExits(t *testing.T) {
	app, _, _ := newTestApp(t, []string{"CRANE"}, "")
	require.NoError(t, app.Run())
}

func TestWinningGameSavesRecord(t *testing.T) {
	// Single-word dictionary makes the answer deterministic. Win on the
	// first guess, then log off and quit.
	input := "ben\n1\nCRANE\n4\n:q\n"
	app, out, dataDir := newTestApp(t, []string{"CRANE"}, input)

	require.NoError(t, app.Run())

	s := out.String()
	assert.Contains(t, s, "Hello, ben")
	assert.Contains(t, s, "GGGGG")
	assert.Contains(t, s, "Genius! The word was: CRANE")
	assert.Contains(t, s, "Number of Words Played: 1")
	assert.Contains(t, s, "Win Rate: 100%")

	// Record file round-trips.
	p, err := player.Load(dataDir, "ben")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.WordsPlayed.Contains("CRANE"))
	assert.Equal(t, uint32(1), p.MaxWinStreak)

	// Username registry was written.
	raw, err := os.ReadFile(filepath.Join(dataDir, UsernamesFilename))
	require.NoError(t, err)
	assert.Equal(t, "ben\n", string(raw))
}

func TestLosingGameResetsStreak(t *testing.T) {
	// Six wrong guesses of a valid word.
	guesses := strings.Repeat("POURS\n", 6)
	input := "ben\n1\n" + guesses + "4\n:q\n"
	app, out, dataDir := newTestApp(t, []string{"CRANE", "POURS"}, input)

	// Force the answer away from the guess by playing POURS first.
	seed := player.New("ben")
	seed.AddWonWord("POURS", 1)
	require.NoError(t, seed.Save(dataDir))

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Too bad! The word was: CRANE")

	p, err := player.Load(dataDir, "ben")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), p.CurWinStreak)
	assert.Equal(t, uint32(1), p.MaxWinStreak)
	assert.Equal(t, 2, p.WordsPlayed.Len())
}

func TestInvalidGuessesReprompt(t *testing.T) {
	input := "ben\n1\nAB\nZZZZZ\nCRANE\n4\n:q\n"
	app, out, _ := newTestApp(t, []string{"CRANE"}, input)

	require.NoError(t, app.Run())
	s := out.String()
	assert.Contains(t, s, "Error: guess must be 5 letters")
	assert.Contains(t, s, "Error: guess must be a word in the dictionary")
	assert.Contains(t, s, "GGGGG")
}

func TestInvalidMenuSelectionReprompts(t *testing.T) {
	input := "ben\n9\n0\n4\n:q\n"
	app, out, _ := newTestApp(t, []string{"CRANE"}, input)

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Error: invalid selection")
}

func TestViewStatsFromMenu(t *testing.T) {
	input := "ben\n2\n4\n:q\n"
	app, out, _ := newTestApp(t, []string{"CRANE"}, input)

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Number of Words Played: 0")
	assert.Contains(t, out.String(), "Guess Distribution:")
}

func TestLeaderboardUnavailableWithoutStore(t *testing.T) {
	input := "ben\n3\n4\n:q\n"
	app, out, _ := newTestApp(t, []string{"CRANE"}, input)

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Leaderboard is not available")
}

func TestDeleteUserAborted(t *testing.T) {
	input := "ben\n5\nn\n4\n:q\n"
	app, out, _ := newTestApp(t, []string{"CRANE"}, input)

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Action aborted")
	assert.True(t, app.users.Contains("ben"))
}

func TestDeleteUserRemovesRegistryAndRecord(t *testing.T) {
	input := "ben\n5\ny\n:q\n"
	app, _, dataDir := newTestApp(t, []string{"CRANE"}, input)

	seed := player.New("ben")
	require.NoError(t, seed.Save(dataDir))

	require.NoError(t, app.Run())

	assert.False(t, app.users.Contains("ben"))
	_, err := os.Stat(player.RecordPath(dataDir, "ben"))
	assert.True(t, os.IsNotExist(err))

	raw, err := os.ReadFile(filepath.Join(dataDir, UsernamesFilename))
	require.NoError(t, err)
	assert.Equal(t, "", string(raw))
}

func TestLoginListsExistingUsersSorted(t *testing.T) {
	input := "zoe\n4\n:q\n"
	app, out, _ := newTestApp(t, []string{"CRANE"}, input)
	app.users.Insert("mia")
	app.users.Insert("abe")

	require.NoError(t, app.Run())

	s := out.String()
	assert.Contains(t, s, "List of existing users:")
	assert.Less(t, strings.Index(s, "abe"), strings.Index(s, "mia"))
}

func TestCorruptRecordRefusesLogin(t *testing.T) {
	input := "ben\n"
	app, out, dataDir := newTestApp(t, []string{"CRANE"}, input)
	require.NoError(t, os.WriteFile(player.RecordPath(dataDir, "ben"), []byte("garbage"), 0o644))

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "corrupt player database file")
}

func TestInvalidUsernameReprompts(t *testing.T) {
	input := "bad name!\n:q\n"
	app, out, _ := newTestApp(t, []string{"CRANE"}, input)

	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Error: usernames are 1-24 characters")
}

func TestValidUsername(t *testing.T) {
	assert.True(t, validUsername("ben"))
	assert.True(t, validUsername("ben_42"))
	assert.False(t, validUsername(""))
	assert.False(t, validUsername("has space"))
	assert.False(t, validUsername("UPPER")) // input is lowercased before validation
	assert.False(t, validUsername(strings.Repeat("a", 25)))
}

func TestUsernamesRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	app := New(Config{
		Dictionary: collections.HashSetFrom(collections.StringInfo(), []string{"CRANE"}),
		Usernames:  collections.TreeSetFrom(collections.StringInfo(), []string{"zoe", "abe", "mia"}),
		DataDir:    dataDir,
		In:         strings.NewReader(""),
		Out:        &bytes.Buffer{},
	})
	require.NoError(t, app.saveUsernames())

	raw, err := os.ReadFile(filepath.Join(dataDir, UsernamesFilename))
	require.NoError(t, err)
	assert.Equal(t, "abe\nmia\nzoe\n", string(raw))

	users, err := LoadUsernames(dataDir)
	require.NoError(t, err)
	assert.Equal(t, 3, users.Len())
	assert.True(t, users.Contains("mia"))
}
