package queryengine

import (
	"context"
	"testing"
	"time"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

func sampleSchedule() *schedule.Schedule {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(48 * time.Hour)
	return &schedule.Schedule{
		Projects: []*schedule.Project{{ID: "1", ShortName: "P1", Name: "Sample Project"}},
		Tasks: []*schedule.Task{
			{ID: "t1", ProjectID: "1", Name: "Design", EarlyStart: &early, EarlyEnd: &late, TotalFloatHours: 0},
			{ID: "t2", ProjectID: "1", Name: "Build", TotalFloatHours: 40},
		},
		Relationships: []*schedule.Relationship{
			{SuccessorTaskID: "t2", PredecessorTaskID: "t1", Type: schedule.RelationshipFS, LagDays: 0},
		},
	}
}

func TestEngine_LoadsAndQueriesTasks(t *testing.T) {
	ctx := context.Background()
	e, err := Open(ctx, sampleSchedule())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer e.Close()

	rows, err := e.Query(ctx, `SELECT task_id, name FROM tasks ORDER BY task_id`)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0]["task_id"] != "t1" {
		t.Errorf("rows[0].task_id = %v, want t1", rows[0]["task_id"])
	}
}

func TestEngine_QueriesRelationshipsJoinedToTasks(t *testing.T) {
	ctx := context.Background()
	e, err := Open(ctx, sampleSchedule())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer e.Close()

	rows, err := e.Query(ctx, `
		SELECT r.rel_type, t.name
		FROM relationships r
		JOIN tasks t ON t.task_id = r.successor_task_id
	`)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0]["name"] != "Build" {
		t.Errorf("name = %v, want Build", rows[0]["name"])
	}
}

func TestEngine_HighFloatFilter(t *testing.T) {
	ctx := context.Background()
	e, err := Open(ctx, sampleSchedule())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer e.Close()

	rows, err := e.Query(ctx, `SELECT task_id FROM tasks WHERE total_float_hours > 24`)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(rows) != 1 || rows[0]["task_id"] != "t2" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
