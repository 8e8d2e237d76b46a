package builder

import (
	"testing"

	"github.com/avireddy0/XERReader/pkg/schedule"
	"github.com/avireddy0/XERReader/pkg/scheduleerr"
	"github.com/avireddy0/XERReader/pkg/xer"
)

func TestBuild_SmokeParse(t *testing.T) {
	input := "ERMHDR\t19.0\t2024-01-15\tuser\n" +
		"%T\tPROJECT\n" +
		"%F\tproj_id\tproj_short_name\tproj_name\tplan_start_date\tplan_end_date\n" +
		"%R\t1000\tTEST\tTest Project\t2024-01-15 08:00\t2024-12-31 17:00\n" +
		"%T\tTASK\n" +
		"%F\ttask_id\tproj_id\ttask_code\ttarget_drtn_hr_cnt\n" +
		"%R\t1001\t1000\tA1000\t80\n" +
		"%R\t1002\t1000\tA1010\t80\n" +
		"%T\tTASKPRED\n" +
		"%F\ttask_id\tpred_task_id\tpred_type\tlag_hr_cnt\n" +
		"%R\t1002\t1001\tPR_FS\t0\n" +
		"%E\n"

	tbls, _, err := xer.Parse([]byte(input))
	if err != nil {
		t.Fatalf("xer.Parse: %v", err)
	}

	sched, _, err := Build(tbls)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(sched.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(sched.Projects))
	}
	if len(sched.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(sched.Tasks))
	}
	if len(sched.Relationships) != 1 {
		t.Fatalf("expected 1 relationship, got %d", len(sched.Relationships))
	}
	if sched.Relationships[0].Type != schedule.RelationshipFS {
		t.Errorf("expected FS, got %v", sched.Relationships[0].Type)
	}
}

func TestBuild_MissingProjectTable(t *testing.T) {
	input := "%T\tTASK\n%F\ttask_id\n%R\t1\n%E\n"
	tbls, _, err := xer.Parse([]byte(input))
	if err != nil {
		t.Fatalf("xer.Parse: %v", err)
	}

	_, _, err = Build(tbls)
	if err == nil {
		t.Fatal("expected MissingRequiredTable error")
	}
	xerr, ok := err.(*scheduleerr.Error)
	if !ok || xerr.Kind != scheduleerr.KindMissingRequiredTable {
		t.Fatalf("expected MissingRequiredTable, got %v", err)
	}
}

func TestBuild_LagConversion(t *testing.T) {
	input := "%T\tPROJECT\n%F\tproj_id\n%R\t1000\n" +
		"%T\tTASKPRED\n%F\ttask_id\tpred_task_id\tpred_type\tlag_hr_cnt\n" +
		"%R\t2\t1\tPR_FS\t0\n" +
		"%R\t2\t1\tPR_FS\t8\n" +
		"%R\t2\t1\tPR_FS\t16\n%E\n"
	tbls, _, err := xer.Parse([]byte(input))
	if err != nil {
		t.Fatalf("xer.Parse: %v", err)
	}
	sched, _, err := Build(tbls)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []float64{0, 1, 2}
	for i, r := range sched.Relationships {
		if r.LagDays != want[i] {
			t.Errorf("relationship %d: LagDays = %v, want %v", i, r.LagDays, want[i])
		}
	}
}

func TestBuild_RelationshipTypeCoverage(t *testing.T) {
	input := "%T\tPROJECT\n%F\tproj_id\n%R\t1000\n" +
		"%T\tTASKPRED\n%F\ttask_id\tpred_task_id\tpred_type\n" +
		"%R\t1\t2\tPR_FS\n" +
		"%R\t1\t2\tPR_SS\n" +
		"%R\t1\t2\tPR_FF\n" +
		"%R\t1\t2\tPR_SF\n" +
		"%R\t1\t2\tPR_??\n%E\n"
	tbls, _, err := xer.Parse([]byte(input))
	if err != nil {
		t.Fatalf("xer.Parse: %v", err)
	}
	sched, _, err := Build(tbls)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	counts := map[schedule.RelationshipType]int{}
	for _, r := range sched.Relationships {
		counts[r.Type]++
	}
	if counts[schedule.RelationshipFS] != 2 {
		t.Errorf("expected 2 FS (1 explicit + 1 unknown default), got %d", counts[schedule.RelationshipFS])
	}
	if counts[schedule.RelationshipSS] != 1 || counts[schedule.RelationshipFF] != 1 || counts[schedule.RelationshipSF] != 1 {
		t.Errorf("unexpected type distribution: %v", counts)
	}
}

func TestBuild_OrphanTaskDroppedWithDiagnostic(t *testing.T) {
	input := "%T\tPROJECT\n%F\tproj_id\n%R\t1000\n" +
		"%T\tTASK\n%F\ttask_id\tproj_id\n%R\t1\t9999\n%E\n"
	tbls, _, err := xer.Parse([]byte(input))
	if err != nil {
		t.Fatalf("xer.Parse: %v", err)
	}
	sched, diags, err := Build(tbls)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(sched.Tasks) != 0 {
		t.Errorf("expected orphan task to be dropped, got %d tasks", len(sched.Tasks))
	}
	found := false
	for _, d := range diags {
		if d.Kind == schedule.DiagnosticOrphanTask {
			found = true
		}
	}
	if !found {
		t.Error("expected an OrphanTask diagnostic")
	}
}

func TestBuild_DuplicateTaskIDLastWins(t *testing.T) {
	input := "%T\tPROJECT\n%F\tproj_id\n%R\t1000\n" +
		"%T\tTASK\n%F\ttask_id\tproj_id\ttask_name\n" +
		"%R\t1\t1000\tFirst\n" +
		"%R\t1\t1000\tSecond\n%E\n"
	tbls, _, err := xer.Parse([]byte(input))
	if err != nil {
		t.Fatalf("xer.Parse: %v", err)
	}
	sched, diags, err := Build(tbls)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(sched.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(sched.Tasks))
	}
	if sched.Tasks[0].Name != "Second" {
		t.Errorf("expected later row to win, got %q", sched.Tasks[0].Name)
	}
	found := false
	for _, d := range diags {
		if d.Kind == schedule.DiagnosticDuplicateTaskID {
			found = true
		}
	}
	if !found {
		t.Error("expected a DuplicateTaskID diagnostic")
	}
}

func TestBuild_MalformedDateBecomesNil(t *testing.T) {
	input := "%T\tPROJECT\n%F\tproj_id\tplan_start_date\n%R\t1000\tnot-a-date\n%E\n"
	tbls, _, err := xer.Parse([]byte(input))
	if err != nil {
		t.Fatalf("xer.Parse: %v", err)
	}
	sched, _, err := Build(tbls)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sched.Projects[0].PlanStart != nil {
		t.Error("expected malformed date to become nil")
	}
}
