package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS blocks (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			title            TEXT NOT NULL,
			type             TEXT NOT NULL CHECK(type IN ('goal', 'task', 'essential')),
			week_start       DATE NOT NULL,
			day              INTEGER NOT NULL CHECK(day BETWEEN 0 AND 6),
			start_minutes    INTEGER NOT NULL CHECK(start_minutes BETWEEN 0 AND 1439),
			duration_minutes INTEGER NOT NULL CHECK(duration_minutes >= 15),
			color            TEXT DEFAULT '',
			goal_id          INTEGER REFERENCES blocks(id) ON DELETE SET NULL,
			created_at       DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_blocks_week ON blocks(week_start);
		CREATE INDEX IF NOT EXISTS idx_blocks_goal ON blocks(goal_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating blocks table: %w", err)
	}

	return nil
}
