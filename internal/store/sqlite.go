package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

// SQLiteStore persists schedules in a local SQLite database — the default
// for a single-user desktop deployment.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) a SQLite store at path and
// brings its schema up to date. Use ":memory:" for a throwaway store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping sqlite: %w", err)
	}

	goose.SetBaseFS(sqliteMigrations)
	if err := goose.SetDialect("sqlite"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations/sqlite"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sched *schedule.Schedule) (string, error) {
	payload, err := gojson.Marshal(sched)
	if err != nil {
		return "", fmt.Errorf("store: marshal schedule: %w", err)
	}
	projectName, dcmaScore := summarize(sched)

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saved_schedules (id, project_name, parsed_at, task_count, dcma_score, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, projectName, time.Now().UTC(), len(sched.Tasks), dcmaScore, payload,
	)
	if err != nil {
		return "", fmt.Errorf("store: insert: %w", err)
	}
	return id, nil
}

func (s *SQLiteStore) Load(ctx context.Context, id string) (*schedule.Schedule, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM saved_schedules WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: load: %w", err)
	}

	var sched schedule.Schedule
	if err := gojson.Unmarshal(payload, &sched); err != nil {
		return nil, fmt.Errorf("store: unmarshal schedule: %w", err)
	}
	return &sched, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project_name, parsed_at, task_count, dcma_score
		 FROM saved_schedules ORDER BY parsed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.ProjectName, &sum.ParsedAt, &sum.TaskCount, &sum.DCMAScore); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saved_schedules WHERE id = ?`, id); err != nil {
		return fmt.Errorf("store: delete: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
