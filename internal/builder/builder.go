// Package builder maps the uninterpreted table dictionary produced by
// pkg/xer into the typed, cross-referenced model defined by pkg/schedule.
// It owns every coercion rule in the core: date parsing, enum defaulting,
// numeric fallbacks, and the orphan/duplicate handling spec §3 requires.
package builder

import (
	"fmt"
	"time"

	"github.com/avireddy0/XERReader/pkg/schedule"
	"github.com/avireddy0/XERReader/pkg/scheduleerr"
	"github.com/avireddy0/XERReader/pkg/xer"
)

// Build walks tbls and returns a populated Schedule. PROJECT is the only
// table whose absence is fatal; every other table silently yields an
// empty collection when missing.
func Build(tbls *xer.Tables) (*schedule.Schedule, []schedule.Diagnostic, error) {
	projTbl, ok := tbls.Get("PROJECT")
	if !ok {
		return nil, nil, scheduleerr.NewMissingRequiredTable("PROJECT")
	}

	sched := schedule.New()
	var diags []schedule.Diagnostic

	sched.Projects = buildProjects(projTbl)
	projectIDs := make(map[string]bool, len(sched.Projects))
	for _, p := range sched.Projects {
		projectIDs[p.ID] = true
	}

	if tbl, ok := tbls.Get("PROJWBS"); ok {
		sched.WBSElements = buildWBSElements(tbl)
	}
	if tbl, ok := tbls.Get("CALENDAR"); ok {
		sched.Calendars = buildCalendars(tbl)
	}

	if tbl, ok := tbls.Get("TASK"); ok {
		tasks, taskDiags := buildTasks(tbl, projectIDs)
		sched.Tasks = tasks
		diags = append(diags, taskDiags...)
	}

	if tbl, ok := tbls.Get("TASKPRED"); ok {
		sched.Relationships = buildRelationships(tbl)
	}

	if tbl, ok := tbls.Get("RSRC"); ok {
		rows, err := decodeRows[rsrcRow](tbl)
		if err != nil {
			return nil, nil, scheduleerr.NewInvalidFormat(fmt.Sprintf("RSRC: %v", err))
		}
		sched.Resources = buildResources(rows)
	}

	if tbl, ok := tbls.Get("TASKRSRC"); ok {
		sched.ResourceAssignments = buildResourceAssignments(tbl)
	}

	if tbl, ok := tbls.Get("ACTVTYPE"); ok {
		rows, err := decodeRows[actvTypeRow](tbl)
		if err != nil {
			return nil, nil, scheduleerr.NewInvalidFormat(fmt.Sprintf("ACTVTYPE: %v", err))
		}
		sched.ActivityCodeTypes = buildActivityCodeTypes(rows)
	}

	if tbl, ok := tbls.Get("ACTVCODE"); ok {
		rows, err := decodeRows[actvCodeRow](tbl)
		if err != nil {
			return nil, nil, scheduleerr.NewInvalidFormat(fmt.Sprintf("ACTVCODE: %v", err))
		}
		sched.ActivityCodes = buildActivityCodes(rows)
	}

	if tbl, ok := tbls.Get("TASKACTV"); ok {
		sched.TaskActivityCodes = buildTaskActivityCodes(tbl)
	}

	return sched, diags, nil
}

func buildProjects(tbl *xer.Table) []*schedule.Project {
	out := make([]*schedule.Project, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, &schedule.Project{
			ID:        row["proj_id"],
			ShortName: row["proj_short_name"],
			Name:      row["proj_name"],
			PlanStart: parseDate(row["plan_start_date"]),
			PlanEnd:   parseDate(row["plan_end_date"]),
			DataDate:  parseDate(row["last_recalc_date"]),
		})
	}
	return out
}

func buildWBSElements(tbl *xer.Table) []*schedule.WBSElement {
	out := make([]*schedule.WBSElement, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		var parentID *string
		if v, ok := row["parent_wbs_id"]; ok && v != "" {
			parentID = &v
		}
		out = append(out, &schedule.WBSElement{
			ID:             row["wbs_id"],
			ProjectID:      row["proj_id"],
			ParentID:       parentID,
			Name:           row["wbs_name"],
			ShortName:      row["wbs_short_name"],
			SequenceNumber: parseIntDefault(row["seq_num"], 0),
		})
	}
	return out
}

func buildCalendars(tbl *xer.Table) []*schedule.WorkCalendar {
	out := make([]*schedule.WorkCalendar, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		var projectID *string
		if v, ok := row["proj_id"]; ok && v != "" {
			projectID = &v
		}
		out = append(out, &schedule.WorkCalendar{
			ID:            row["clndr_id"],
			Name:          row["clndr_name"],
			ProjectID:     projectID,
			IsDefault:     row["default_flag"] == "Y",
			HoursPerDay:   parseFloatDefault(row["day_hr_cnt"], 8),
			HoursPerWeek:  parseFloatDefault(row["week_hr_cnt"], 40),
			HoursPerMonth: parseFloatDefault(row["month_hr_cnt"], 172),
			HoursPerYear:  parseFloatDefault(row["year_hr_cnt"], 2080),
			WorkDays:      defaultWorkDays(),
		})
	}
	return out
}

// defaultWorkDays returns the Monday-through-Friday pattern used whenever
// a calendar's detailed work-day grammar is not parsed (see spec's
// Non-goal on calendar-aware CPM — calendars here are informational).
func defaultWorkDays() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
		time.Saturday:  false,
		time.Sunday:    false,
	}
}

func buildTasks(tbl *xer.Table, projectIDs map[string]bool) ([]*schedule.Task, []schedule.Diagnostic) {
	var diags []schedule.Diagnostic
	byID := make(map[string]*schedule.Task, len(tbl.Rows))
	order := make([]string, 0, len(tbl.Rows))

	for _, row := range tbl.Rows {
		id := row["task_id"]
		projID := row["proj_id"]
		if !projectIDs[projID] {
			diags = append(diags, schedule.NewDiagnostic(
				schedule.DiagnosticOrphanTask,
				"task %q references unknown project %q", id, projID,
			))
			continue
		}

		if _, exists := byID[id]; exists {
			diags = append(diags, schedule.NewDiagnostic(
				schedule.DiagnosticDuplicateTaskID,
				"task id %q repeated; later row wins", id,
			))
		} else {
			order = append(order, id)
		}

		var wbsID *string
		if v, ok := row["wbs_id"]; ok && v != "" {
			wbsID = &v
		}

		byID[id] = &schedule.Task{
			ID:                     id,
			ProjectID:              projID,
			WBSID:                  wbsID,
			Code:                   row["task_code"],
			Name:                   row["task_name"],
			Type:                   schedule.ParseTaskType(row["task_type"]),
			Status:                 schedule.ParseTaskStatus(row["status_code"]),
			PercentComplete:        parseFloatDefault(row["phys_complete_pct"], 0),
			TargetStart:            parseDate(row["target_start_date"]),
			TargetEnd:              parseDate(row["target_end_date"]),
			ActualStart:            parseDate(row["act_start_date"]),
			ActualEnd:              parseDate(row["act_end_date"]),
			TargetDurationHours:    parseFloatDefault(row["target_drtn_hr_cnt"], 0),
			RemainingDurationHours: parseFloatDefault(row["remain_drtn_hr_cnt"], 0),
		}
	}

	out := make([]*schedule.Task, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out, diags
}

func buildRelationships(tbl *xer.Table) []*schedule.Relationship {
	out := make([]*schedule.Relationship, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		lagHours := parseFloatDefault(row["lag_hr_cnt"], 0)
		out = append(out, &schedule.Relationship{
			SuccessorTaskID:   row["task_id"],
			PredecessorTaskID: row["pred_task_id"],
			Type:              schedule.ParseRelationshipType(row["pred_type"]),
			LagDays:           lagHours / 8,
		})
	}
	return out
}

func buildResources(rows []rsrcRow) []*schedule.Resource {
	out := make([]*schedule.Resource, 0, len(rows))
	for _, r := range rows {
		out = append(out, &schedule.Resource{
			ID:                  r.RsrcID,
			ShortName:           r.RsrcShortName,
			Name:                r.RsrcName,
			Type:                schedule.ParseResourceType(r.RsrcType),
			Unit:                r.UnitID,
			DefaultUnitsPerTime: parseFloatDefault(r.DefQtyPerHr, 1),
		})
	}
	return out
}

func buildResourceAssignments(tbl *xer.Table) []*schedule.ResourceAssignment {
	out := make([]*schedule.ResourceAssignment, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, &schedule.ResourceAssignment{
			TaskID:            row["task_id"],
			ResourceID:        row["rsrc_id"],
			ProjectID:         row["proj_id"],
			TargetQuantity:    parseFloatDefault(row["target_qty"], 0),
			ActualQuantity:    parseFloatDefault(row["act_reg_qty"], 0) + parseFloatDefault(row["act_ot_qty"], 0),
			RemainingQuantity: parseFloatDefault(row["remain_qty"], 0),
			TargetCost:        parseFloatDefault(row["target_cost"], 0),
			ActualCost:        parseFloatDefault(row["act_reg_cost"], 0) + parseFloatDefault(row["act_ot_cost"], 0),
		})
	}
	return out
}

func buildActivityCodeTypes(rows []actvTypeRow) []*schedule.ActivityCodeType {
	out := make([]*schedule.ActivityCodeType, 0, len(rows))
	for _, r := range rows {
		var projectID *string
		if r.ProjID != "" {
			projectID = &r.ProjID
		}
		out = append(out, &schedule.ActivityCodeType{
			ID:             r.ActvCodeTypeID,
			Name:           r.ActvCodeType,
			ShortLength:    parseIntDefault(r.ActvShortLen, 0),
			SequenceNumber: parseIntDefault(r.SeqNum, 0),
			ProjectID:      projectID,
			Scope:          schedule.ParseActivityCodeScope(r.ActvCodeTypeScope),
		})
	}
	return out
}

func buildActivityCodes(rows []actvCodeRow) []*schedule.ActivityCode {
	out := make([]*schedule.ActivityCode, 0, len(rows))
	for _, r := range rows {
		var parentID *string
		if r.ParentActvCodeID != "" {
			parentID = &r.ParentActvCodeID
		}
		out = append(out, &schedule.ActivityCode{
			ID:             r.ActvCodeID,
			TypeID:         r.ActvCodeTypeID,
			ParentID:       parentID,
			Name:           r.ActvCodeName,
			ShortName:      r.ShortName,
			SequenceNumber: parseIntDefault(r.SeqNum, 0),
			Color:          r.Color,
		})
	}
	return out
}

func buildTaskActivityCodes(tbl *xer.Table) []*schedule.TaskActivityCode {
	out := make([]*schedule.TaskActivityCode, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, &schedule.TaskActivityCode{
			TaskID:    row["task_id"],
			CodeID:    row["actv_code_id"],
			TypeID:    row["actv_code_type_id"],
			ProjectID: row["proj_id"],
		})
	}
	return out
}
