package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS

// PostgresStore persists schedules in a shared PostgreSQL database, for
// team deployments where more than one host needs the same cache.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres connects to dsn (a libpq-style connection string) and
// brings its schema up to date.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open postgres: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping postgres: %w", err)
	}

	goose.SetBaseFS(postgresMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations/postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Save(ctx context.Context, sched *schedule.Schedule) (string, error) {
	payload, err := gojson.Marshal(sched)
	if err != nil {
		return "", fmt.Errorf("store: marshal schedule: %w", err)
	}
	projectName, dcmaScore := summarize(sched)

	id := uuid.New().String()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saved_schedules (id, project_name, parsed_at, task_count, dcma_score, payload)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, projectName, time.Now().UTC(), len(sched.Tasks), dcmaScore, payload,
	)
	if err != nil {
		return "", fmt.Errorf("store: insert: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) Load(ctx context.Context, id string) (*schedule.Schedule, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM saved_schedules WHERE id = $1`, id).Scan(&payload)
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

func (s *PostgresStore) List(ctx context.Context) ([]Summary, error) {
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

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saved_schedules WHERE id = $1`, id); err != nil {
		return fmt.Errorf("store: delete: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
