// internal/leaderboard/store.go
//
// SQLite-backed results log and streak leaderboard.
// Every finished game appends one row; the leaderboard aggregates rows per
// player. Streak columns are snapshots taken at record time (the player
// record is the source of truth), which keeps the leaderboard query a plain
// GROUP BY instead of a windowed streak reconstruction.

package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
)

// Result is one finished game.
type Result struct {
	Username  string
	Word      string
	Guesses   int
	Won       bool
	CurStreak int
	MaxStreak int
}

// Row is one leaderboard line: a player's best streak with win totals.
type Row struct {
	Username   string
	BestStreak int
	Wins       int
	Played     int
}

// Store wraps the results table.
type Store struct {
	db *sql.DB
}

// NewStore returns a Store over an opened database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RecordResult appends one finished game.
func (s *Store) RecordResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO results (username, word, guesses, won, cur_streak, max_streak)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.Username, r.Word, r.Guesses, r.Won, r.CurStreak, r.MaxStreak,
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// Top returns the best players ordered by best streak, then wins, then
// username. Default limit is 10.
func (s *Store) Top(ctx context.Context, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT username,
               MAX(max_streak)          AS best_streak,
               SUM(won)                 AS wins,
               COUNT(*)                 AS played
        FROM results
        GROUP BY username
        ORDER BY best_streak DESC, wins DESC, username ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	out := make([]Row, 0, limit)
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Username, &r.BestStreak, &r.Wins, &r.Played); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
