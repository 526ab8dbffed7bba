package game

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ScoreRow is one finished run in the high-score table.
type ScoreRow struct {
	ID         string
	Player     string
	Score      int
	FoodEaten  int
	DurationMS int64
	Difficulty string
	GridW      int
	GridH      int
	CreatedAt  time.Time
}

// ScoreStore persists finished runs in a local SQLite database.
type ScoreStore struct {
	db *sql.DB
}

// OpenScoreStore opens or creates the score database at path and runs
// the schema migration.
func OpenScoreStore(path string) (*ScoreStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	st := &ScoreStore{db: db}
	if err := st.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

func (st *ScoreStore) Close() error {
	return st.db.Close()
}

func (st *ScoreStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scores (
		id TEXT PRIMARY KEY,
		player TEXT NOT NULL,
		score INTEGER NOT NULL,
		food_eaten INTEGER NOT NULL DEFAULT 0,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		difficulty TEXT NOT NULL DEFAULT 'normal',
		grid_w INTEGER NOT NULL DEFAULT 0,
		grid_h INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score DESC);
	`
	if _, err := st.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate scores: %w", err)
	}
	return nil
}

// Insert saves one finished run.
func (st *ScoreStore) Insert(r ScoreRow) error {
	_, err := st.db.Exec(`
		INSERT INTO scores (id, player, score, food_eaten, duration_ms, difficulty, grid_w, grid_h)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Player, r.Score, r.FoodEaten, r.DurationMS, r.Difficulty, r.GridW, r.GridH,
	)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

// Top returns the best n runs, highest score first, newest first on
// ties.
func (st *ScoreStore) Top(n int) ([]ScoreRow, error) {
	rows, err := st.db.Query(`
		SELECT id, player, score, food_eaten, duration_ms, difficulty, grid_w, grid_h, created_at
		FROM scores
		ORDER BY score DESC, created_at DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreRow
	for rows.Next() {
		var r ScoreRow
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.FoodEaten, &r.DurationMS,
			&r.Difficulty, &r.GridW, &r.GridH, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan score row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Best returns the highest score ever recorded, zero for an empty
// table.
func (st *ScoreStore) Best() (int, error) {
	var best sql.NullInt64
	if err := st.db.QueryRow(`SELECT MAX(score) FROM scores`).Scan(&best); err != nil {
		return 0, fmt.Errorf("query best score: %w", err)
	}
	return int(best.Int64), nil
}
