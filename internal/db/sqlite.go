// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nmoreau/blockplan/internal/block"
)

// SQLite implements block.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// CreateBlock adds a new block to the repository and fills in its ID.
func (s *SQLite) CreateBlock(ctx context.Context, b *block.Block) error {
	query := `
		INSERT INTO blocks (
			title, type, week_start, day, start_minutes, duration_minutes,
			color, goal_id, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		b.Title,
		b.Type,
		b.WeekStart.Format("2006-01-02"),
		b.Day,
		b.StartMinutes,
		b.DurationMinutes,
		b.Color,
		b.GoalID,
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting block: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	b.ID = id

	return nil
}

// ListWeek returns all blocks for the given week, ordered by day and start.
func (s *SQLite) ListWeek(ctx context.Context, weekStart time.Time) ([]block.Block, error) {
	query := `
		SELECT id, title, type, week_start, day, start_minutes, duration_minutes,
		       color, goal_id, created_at
		FROM blocks
		WHERE week_start = ?
		ORDER BY day, start_minutes
	`

	rows, err := s.db.QueryContext(ctx, query, weekStart.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("querying blocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var blocks []block.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocks: %w", err)
	}

	return blocks, nil
}

// UpdateBlockTimes updates a single block's placement in place.
func (s *SQLite) UpdateBlockTimes(ctx context.Context, id int64, day, startMinutes, durationMinutes int) error {
	query := `UPDATE blocks SET day = ?, start_minutes = ?, duration_minutes = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, day, startMinutes, durationMinutes, id)
	if err != nil {
		return fmt.Errorf("updating block times: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("updating block %d: %w", id, block.ErrBlockNotFound)
	}

	return nil
}

// BatchUpdateTimes applies multiple placement updates atomically in one
// transaction. Used by undo restores, where a whole week snapshot is
// written back at once.
func (s *SQLite) BatchUpdateTimes(ctx context.Context, weekStart time.Time, updates []block.TimeUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE blocks SET day = ?, start_minutes = ?, duration_minutes = ?
		WHERE id = ? AND week_start = ?
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	week := weekStart.Format("2006-01-02")
	for _, u := range updates {
		result, err := stmt.ExecContext(ctx, u.Day, u.StartMinutes, u.DurationMinutes, u.ID, week)
		if err != nil {
			return fmt.Errorf("updating block %d: %w", u.ID, err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("updating block %d: %w", u.ID, block.ErrBlockNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// AssignToGoal links a block to a goal block.
func (s *SQLite) AssignToGoal(ctx context.Context, id int64, goalID int64) error {
	var goalType string
	err := s.db.QueryRowContext(ctx, `SELECT type FROM blocks WHERE id = ?`, goalID).Scan(&goalType)
	if err == sql.ErrNoRows {
		return fmt.Errorf("goal %d: %w", goalID, block.ErrBlockNotFound)
	}
	if err != nil {
		return fmt.Errorf("querying goal: %w", err)
	}
	if goalType != string(block.TypeGoal) {
		return fmt.Errorf("block %d is not a goal", goalID)
	}

	result, err := s.db.ExecContext(ctx, `UPDATE blocks SET goal_id = ? WHERE id = ?`, goalID, id)
	if err != nil {
		return fmt.Errorf("assigning block to goal: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("assigning block %d: %w", id, block.ErrBlockNotFound)
	}

	return nil
}

// DeleteBlock removes a block.
func (s *SQLite) DeleteBlock(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM blocks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting block: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("deleting block %d: %w", id, block.ErrBlockNotFound)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanBlock reads one block row.
func scanBlock(rows *sql.Rows) (block.Block, error) {
	var (
		b         block.Block
		weekStart string
		createdAt string
		goalID    sql.NullInt64
	)

	err := rows.Scan(
		&b.ID,
		&b.Title,
		&b.Type,
		&weekStart,
		&b.Day,
		&b.StartMinutes,
		&b.DurationMinutes,
		&b.Color,
		&goalID,
		&createdAt,
	)
	if err != nil {
		return block.Block{}, fmt.Errorf("scanning block: %w", err)
	}

	b.WeekStart, err = parseDate(weekStart)
	if err != nil {
		return block.Block{}, fmt.Errorf("parsing week start: %w", err)
	}

	b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return block.Block{}, fmt.Errorf("parsing created at: %w", err)
	}

	if goalID.Valid {
		b.GoalID = &goalID.Int64
	}

	return b, nil
}

// parseDate parses a date string in various formats SQLite might return.
// Date-only values (midnight) are parsed in local timezone to match time.Now() behavior.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z" - extract date and parse as local
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		dateOnly := s[:10]
		if t, err := time.ParseInLocation("2006-01-02", dateOnly, time.Local); err == nil {
			return t, nil
		}
	}

	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
