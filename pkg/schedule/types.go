// Package schedule defines the normalized in-memory project-schedule model
// that the XER and MS-Project builders populate, the CPM engine mutates, and
// the analyzer reads. All identifiers are opaque strings exactly as they
// appear in the source export; callers must not assume numeric form.
package schedule

import "time"

// Project is the root of ownership for WBS elements and tasks.
type Project struct {
	// ID is the proj_id exactly as exported.
	ID string
	// ShortName is the short project code.
	ShortName string
	// Name is the full project name.
	Name string
	// PlanStart is the planned project start date, if present.
	PlanStart *time.Time
	// PlanEnd is the planned project end date, if present.
	PlanEnd *time.Time
	// DataDate is the export's "as-of" recalculation date, if present.
	DataDate *time.Time
}

// WBSElement is a node in a project's work-breakdown-structure forest.
type WBSElement struct {
	// ID is the wbs_id exactly as exported.
	ID string
	// ProjectID names the owning Project.
	ProjectID string
	// ParentID names the parent WBSElement, or nil at the forest root.
	ParentID *string
	// Name is the full WBS element name.
	Name string
	// ShortName is the short WBS code.
	ShortName string
	// SequenceNumber orders siblings within the same parent.
	SequenceNumber int
}

// Task is a single schedule activity. Descriptive fields are populated by
// the builder and never change afterward; the Early*/Late*/TotalFloatHours/
// FreeFloatHours fields start zero-valued and receive their one write-pass
// from the CPM engine.
type Task struct {
	// ID is the task_id exactly as exported.
	ID string
	// ProjectID names the owning Project.
	ProjectID string
	// WBSID names the owning WBSElement, or nil if unassigned.
	WBSID *string
	// Code is the task_code (the human-facing activity ID, e.g. "A1000").
	Code string
	// Name is the task_name.
	Name string
	// Type classifies duration/dependency handling.
	Type TaskType
	// Status is the task's progress state.
	Status TaskStatus
	// PercentComplete is phys_complete_pct in the range [0, 100].
	PercentComplete float64
	// TargetStart is the planned start date, if present.
	TargetStart *time.Time
	// TargetEnd is the planned finish date, if present.
	TargetEnd *time.Time
	// ActualStart is the recorded actual start date, if present.
	ActualStart *time.Time
	// ActualEnd is the recorded actual finish date, if present.
	ActualEnd *time.Time
	// TargetDurationHours is the planned duration the CPM engine schedules against.
	TargetDurationHours float64
	// RemainingDurationHours is the remaining planned duration.
	RemainingDurationHours float64

	// EarlyStart is the CPM forward-pass early start, in UTC.
	EarlyStart *time.Time
	// EarlyEnd is the CPM forward-pass early finish, in UTC.
	EarlyEnd *time.Time
	// LateStart is the CPM backward-pass late start, in UTC.
	LateStart *time.Time
	// LateEnd is the CPM backward-pass late finish, in UTC.
	LateEnd *time.Time
	// TotalFloatHours is (LateStart - EarlyStart) in hours.
	TotalFloatHours float64
	// FreeFloatHours is reserved for a future free-float computation; the
	// CPM engine in this core only computes total float (see DESIGN.md).
	FreeFloatHours float64
}

// DurationDays is floor(TargetDurationHours / 8), the fixed 8-hour-day
// constant used throughout this core independent of any WorkCalendar.
func (t *Task) DurationDays() int {
	return int(t.TargetDurationHours / 8)
}

// FloatDays is floor(TotalFloatHours / 8) using the same fixed constant.
func (t *Task) FloatDays() int {
	return floorDiv(t.TotalFloatHours, 8)
}

// IsCritical reports whether the task has zero or negative total float.
func (t *Task) IsCritical() bool {
	return t.TotalFloatHours <= 0
}

// floorDiv divides two floats and rounds toward negative infinity, matching
// the spec's floor() semantics for negative float values (e.g. -0.5 days of
// float floors to -1, not 0).
func floorDiv(v, by float64) int {
	q := v / by
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// Relationship is a directed dependency edge between two tasks. Its
// identity is the composite (PredecessorTaskID, SuccessorTaskID, Type).
type Relationship struct {
	// SuccessorTaskID is the task_id of the dependent task.
	SuccessorTaskID string
	// PredecessorTaskID is the pred_task_id the successor depends on.
	PredecessorTaskID string
	// Type is the relationship polarity (FS/SS/FF/SF).
	Type RelationshipType
	// LagDays is the signed lag, already converted from lag_hr_cnt/8.
	// Negative values are a "lead".
	LagDays float64
}

// Resource is a labor/non-labor/material resource, global within the export.
type Resource struct {
	// ID is the rsrc_id exactly as exported.
	ID string
	// ShortName is the short resource code.
	ShortName string
	// Name is the full resource name.
	Name string
	// Type classifies the resource.
	Type ResourceType
	// Unit is the unit of measure (e.g. "h", "ea").
	Unit string
	// DefaultUnitsPerTime is the default assignment rate.
	DefaultUnitsPerTime float64
}

// ResourceAssignment assigns a Resource to a Task. Its identity is the
// composite (TaskID, ResourceID).
type ResourceAssignment struct {
	// TaskID names the assigned Task.
	TaskID string
	// ResourceID names the assigned Resource.
	ResourceID string
	// ProjectID names the owning Project.
	ProjectID string
	// TargetQuantity is the planned assignment quantity.
	TargetQuantity float64
	// ActualQuantity is the quantity consumed to date.
	ActualQuantity float64
	// RemainingQuantity is the planned quantity not yet consumed.
	RemainingQuantity float64
	// TargetCost is the planned cost of the assignment.
	TargetCost float64
	// ActualCost is the cost incurred to date.
	ActualCost float64
}

// WorkCalendar describes a working-time pattern. Calendars are parsed and
// stored but never consulted by the CPM engine (see spec Non-goals).
type WorkCalendar struct {
	// ID is the clndr_id exactly as exported.
	ID string
	// Name is the calendar name.
	Name string
	// ProjectID names the owning Project, or nil for a global calendar.
	ProjectID *string
	// IsDefault reports whether this is the project/global default calendar.
	IsDefault bool
	// HoursPerDay is the nominal working hours in a day.
	HoursPerDay float64
	// HoursPerWeek is the nominal working hours in a week.
	HoursPerWeek float64
	// HoursPerMonth is the nominal working hours in a month.
	HoursPerMonth float64
	// HoursPerYear is the nominal working hours in a year.
	HoursPerYear float64
	// WorkDays is the set of weekday names this calendar treats as working
	// days. It is parsed informationally; the CPM engine never applies it.
	WorkDays map[time.Weekday]bool
}

// CalendarException decorates a WorkCalendar with a non-standard day.
type CalendarException struct {
	// CalendarID names the owning WorkCalendar.
	CalendarID string
	// Date is the exception date.
	Date time.Time
	// HoursWorked is the hours worked that day; zero means a holiday.
	HoursWorked float64
}

// ActivityCodeType is a grouping category for activity codes (e.g. "Area",
// "Phase"), scoped globally, to an EPS node, or to a single project.
type ActivityCodeType struct {
	// ID is the actv_code_type_id exactly as exported.
	ID string
	// Name is the type's full name.
	Name string
	// ShortLength is the maximum length of a value's short name.
	ShortLength int
	// SequenceNumber orders types for display.
	SequenceNumber int
	// ProjectID names the owning Project for project-scoped types, else nil.
	ProjectID *string
	// Scope describes how broadly this type applies.
	Scope ActivityCodeScope
}

// ActivityCode is a single value within an ActivityCodeType, optionally
// hierarchical via ParentID.
type ActivityCode struct {
	// ID is the actv_code_id exactly as exported.
	ID string
	// TypeID names the owning ActivityCodeType.
	TypeID string
	// ParentID names a parent ActivityCode for hierarchical values, else nil.
	ParentID *string
	// Name is the value's full name.
	Name string
	// ShortName is the value's short display code.
	ShortName string
	// SequenceNumber orders values for display.
	SequenceNumber int
	// Color is an optional display color (e.g. "#RRGGBB"), empty if unset.
	Color string
}

// TaskActivityCode assigns an ActivityCode to a Task. Its identity is the
// composite (TaskID, CodeID).
type TaskActivityCode struct {
	// TaskID names the assigned Task.
	TaskID string
	// CodeID names the assigned ActivityCode.
	CodeID string
	// TypeID names the ActivityCodeType the code belongs to.
	TypeID string
	// ProjectID names the owning Project.
	ProjectID string
}
