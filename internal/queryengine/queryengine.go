// Package queryengine loads a parsed schedule.Schedule into an in-memory
// DuckDB instance so a host (the query and repl CLI commands) can run
// ad hoc SQL over the normalized model instead of walking Go structs.
package queryengine

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver

	"github.com/avireddy0/XERReader/pkg/schedule"
)

// Engine wraps an in-memory DuckDB database seeded from one Schedule.
type Engine struct {
	db *sql.DB
}

// Open creates a fresh in-memory DuckDB instance and loads sched's tasks
// and relationships into it. The Engine owns the connection; call Close
// when done.
func Open(ctx context.Context, sched *schedule.Schedule) (*Engine, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("queryengine: open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("queryengine: ping duckdb: %w", err)
	}

	e := &Engine{db: db}
	if err := e.load(ctx, sched); err != nil {
		db.Close()
		return nil, err
	}
	return e, nil
}

func (e *Engine) load(ctx context.Context, sched *schedule.Schedule) error {
	ddl := []string{
		`CREATE TABLE tasks (
			task_id TEXT, project_id TEXT, wbs_id TEXT, name TEXT,
			task_type TEXT, status TEXT,
			early_start TIMESTAMP, early_end TIMESTAMP,
			late_start TIMESTAMP, late_end TIMESTAMP,
			total_float_hours DOUBLE
		)`,
		`CREATE TABLE relationships (
			successor_task_id TEXT, predecessor_task_id TEXT,
			rel_type TEXT, lag_days DOUBLE
		)`,
		`CREATE TABLE projects (project_id TEXT, short_name TEXT, name TEXT)`,
	}
	for _, stmt := range ddl {
		if _, err := e.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("queryengine: create schema: %w", err)
		}
	}

	for _, p := range sched.Projects {
		if _, err := e.db.ExecContext(ctx,
			`INSERT INTO projects VALUES (?, ?, ?)`, p.ID, p.ShortName, p.Name); err != nil {
			return fmt.Errorf("queryengine: load projects: %w", err)
		}
	}

	for _, t := range sched.Tasks {
		if _, err := e.db.ExecContext(ctx,
			`INSERT INTO tasks VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.ProjectID, t.WBSID, t.Name,
			string(t.Type), string(t.Status),
			t.EarlyStart, t.EarlyEnd, t.LateStart, t.LateEnd, t.TotalFloatHours,
		); err != nil {
			return fmt.Errorf("queryengine: load tasks: %w", err)
		}
	}

	for _, r := range sched.Relationships {
		if _, err := e.db.ExecContext(ctx,
			`INSERT INTO relationships VALUES (?, ?, ?, ?)`,
			r.SuccessorTaskID, r.PredecessorTaskID, string(r.Type), r.LagDays,
		); err != nil {
			return fmt.Errorf("queryengine: load relationships: %w", err)
		}
	}

	return nil
}

// Row is one result row, keyed by column name.
type Row map[string]any

// Query runs an arbitrary SQL statement against the loaded
// tasks/relationships/projects tables and returns its rows. The statement
// is passed to DuckDB as is; nothing restricts it to reads.
func (e *Engine) Query(ctx context.Context, query string) ([]Row, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("queryengine: query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("queryengine: columns: %w", err)
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("queryengine: scan: %w", err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (e *Engine) Close() error {
	return e.db.Close()
}
