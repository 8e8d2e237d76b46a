package cpm

import (
	"testing"
	"time"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

func newTask(id string, durationHours float64) *schedule.Task {
	return &schedule.Task{ID: id, TargetDurationHours: durationHours}
}

func newSchedule(tasks []*schedule.Task, rels []*schedule.Relationship) *schedule.Schedule {
	s := schedule.New()
	s.Tasks = tasks
	s.Relationships = rels
	return s
}

func rel(succ, pred string, typ schedule.RelationshipType, lagDays float64) *schedule.Relationship {
	return &schedule.Relationship{SuccessorTaskID: succ, PredecessorTaskID: pred, Type: typ, LagDays: lagDays}
}

func TestRun_LinearChainIsAllCritical(t *testing.T) {
	a, b, c := newTask("a", 8), newTask("b", 8), newTask("c", 8)
	sched := newSchedule(
		[]*schedule.Task{a, b, c},
		[]*schedule.Relationship{
			rel("b", "a", schedule.RelationshipFS, 0),
			rel("c", "b", schedule.RelationshipFS, 0),
		},
	)

	diags := Run(sched)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	for _, task := range sched.Tasks {
		if !task.IsCritical() {
			t.Errorf("task %s: expected critical, totalFloat=%v", task.ID, task.TotalFloatHours)
		}
	}

	if !a.EarlyEnd.Equal(*b.EarlyStart) {
		t.Errorf("expected b.EarlyStart == a.EarlyEnd, got %v vs %v", b.EarlyStart, a.EarlyEnd)
	}
}

func TestRun_ParallelBranchHasFloat(t *testing.T) {
	// a -> b (40h), a -> c (0h); both feed d.
	a := newTask("a", 0)
	b := newTask("b", 40)
	c := newTask("c", 0)
	d := newTask("d", 0)
	sched := newSchedule(
		[]*schedule.Task{a, b, c, d},
		[]*schedule.Relationship{
			rel("b", "a", schedule.RelationshipFS, 0),
			rel("c", "a", schedule.RelationshipFS, 0),
			rel("d", "b", schedule.RelationshipFS, 0),
			rel("d", "c", schedule.RelationshipFS, 0),
		},
	)

	Run(sched)

	if !b.IsCritical() {
		t.Errorf("expected b (the longer, 40h branch) to be critical, got totalFloat=%v", b.TotalFloatHours)
	}
	if c.TotalFloatHours != 40 {
		t.Errorf("expected c (the shorter branch) to have 40h of float, got %v", c.TotalFloatHours)
	}
}

func TestRun_LagConvertsToSeconds(t *testing.T) {
	a := newTask("a", 8)
	b := newTask("b", 8)
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	a.TargetStart = &start
	sched := newSchedule(
		[]*schedule.Task{a, b},
		[]*schedule.Relationship{rel("b", "a", schedule.RelationshipFS, 2)},
	)

	Run(sched)

	wantStart := a.EarlyEnd.Add(2 * 24 * time.Hour)
	if !b.EarlyStart.Equal(wantStart) {
		t.Errorf("expected b.EarlyStart = %v, got %v", wantStart, b.EarlyStart)
	}
}

func TestRun_CycleIsDiagnosedNotInfinite(t *testing.T) {
	a := newTask("a", 8)
	b := newTask("b", 8)
	sched := newSchedule(
		[]*schedule.Task{a, b},
		[]*schedule.Relationship{
			rel("b", "a", schedule.RelationshipFS, 0),
			rel("a", "b", schedule.RelationshipFS, 0),
		},
	)

	done := make(chan []schedule.Diagnostic, 1)
	go func() { done <- Run(sched) }()

	select {
	case diags := <-done:
		if len(diags) == 0 {
			t.Error("expected at least one CycleBroken diagnostic")
		}
		for _, d := range diags {
			if d.Kind != schedule.DiagnosticCycleBroken {
				t.Errorf("expected DiagnosticCycleBroken, got %v", d.Kind)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not terminate on a cyclic graph")
	}
}

func TestRun_NoSuccessorsAnchoredToProjectEnd(t *testing.T) {
	a := newTask("a", 8)
	b := newTask("b", 16)
	sched := newSchedule(
		[]*schedule.Task{a, b},
		[]*schedule.Relationship{rel("b", "a", schedule.RelationshipFS, 0)},
	)

	Run(sched)

	if !b.LateEnd.Equal(*b.EarlyEnd) {
		t.Errorf("expected terminal task's LateEnd to equal project end (its own EarlyEnd), got %v vs %v", b.LateEnd, b.EarlyEnd)
	}
}
