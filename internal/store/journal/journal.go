package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"happyafrica/internal/model"
)

// DB is an append-only SQLite log of tracked interactions.
// It feeds engagement analytics only; the interest profile is never rebuilt from it.
type DB struct{ sql *sql.DB }

func Open(path string) (*DB, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// each pooled connection would otherwise get its own empty database
		d.SetMaxOpenConns(1)
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = d.Close()
		return nil, err
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS interactions (
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  ts INTEGER NOT NULL,
	  type TEXT NOT NULL,
	  video_id TEXT NOT NULL,
	  category TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_interactions_ts ON interactions(ts);
	`)
	return err
}

// PutInteraction appends one event.
func (d *DB) PutInteraction(ctx context.Context, ev model.InteractionEvent) error {
	_, err := d.sql.ExecContext(ctx, `INSERT INTO interactions(ts, type, video_id, category) VALUES(?,?,?,?)`,
		ev.Timestamp.UnixNano(), string(ev.Type), ev.VideoID, string(ev.Category))
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// LoadRange returns events in [start, end), optionally filtered by type.
func (d *DB) LoadRange(ctx context.Context, start, end time.Time, typ model.InteractionType) ([]model.InteractionEvent, error) {
	var rows *sql.Rows
	var err error
	if typ == "" {
		rows, err = d.sql.QueryContext(ctx, `SELECT ts, type, video_id, category FROM interactions WHERE ts>=? AND ts<? ORDER BY ts, id`, start.UnixNano(), end.UnixNano())
	} else {
		rows, err = d.sql.QueryContext(ctx, `SELECT ts, type, video_id, category FROM interactions WHERE ts>=? AND ts<? AND type=? ORDER BY ts, id`, start.UnixNano(), end.UnixNano(), string(typ))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.InteractionEvent
	for rows.Next() {
		var ts int64
		var ev model.InteractionEvent
		var typ, cat string
		if err := rows.Scan(&ts, &typ, &ev.VideoID, &cat); err != nil {
			return nil, err
		}
		ev.Timestamp = time.Unix(0, ts).UTC()
		ev.Type = model.InteractionType(typ)
		ev.Category = model.Category(cat)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// CountWithin counts events of typ (all types when empty) in [start, end).
func (d *DB) CountWithin(ctx context.Context, start, end time.Time, typ model.InteractionType) (int, error) {
	q := `SELECT COUNT(*) FROM interactions WHERE ts>=? AND ts<?`
	args := []any{start.UnixNano(), end.UnixNano()}
	if typ != "" {
		q += ` AND type=?`
		args = append(args, string(typ))
	}
	var n int
	if err := d.sql.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
