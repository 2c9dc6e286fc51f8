package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/consoleapp"
	"github.com/robalobadob/wordle/apps/go-cli/internal/leaderboard"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func main() {
	_ = godotenv.Load()

	tty := isatty.IsTerminal(os.Stdout.Fd())
	if tty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if len(os.Args) > 2 {
		fmt.Println("Wordle")
		fmt.Println("Usage: go-cli [dictionary file name]")
		os.Exit(0)
	}
	dictPath := ""
	if len(os.Args) == 2 {
		dictPath = os.Args[1]
	}

	dict, err := words.LoadDefault(dictPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}

	dataDir := getEnv("WORDLE_DATA_DIR", ".")
	users, err := consoleapp.LoadUsernames(dataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load user database")
	}

	// The results leaderboard is best-effort: without it the app still runs.
	var results *leaderboard.Store
	if db, err := openDB(getEnv("WORDLE_DB", "./data/results.db")); err != nil {
		log.Warn().Err(err).Msg("leaderboard disabled: could not open results database")
	} else if err := migrate(db); err != nil {
		log.Warn().Err(err).Msg("leaderboard disabled: could not migrate results database")
		_ = db.Close()
	} else {
		defer db.Close()
		results = leaderboard.NewStore(db)
	}

	app := consoleapp.New(consoleapp.Config{
		Dictionary: dict,
		Usernames:  users,
		DataDir:    dataDir,
		Results:    results,
		Color:      tty,
		In:         os.Stdin,
		Out:        os.Stdout,
	})
	if err := app.Run(); err != nil {
		log.Fatal().Err(err).Msg("app exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
