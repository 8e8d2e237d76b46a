// Package analyzer computes schedule-quality metrics over a
// CPM-populated schedule.Schedule: the critical-path summary, float
// distribution, logic-completeness gaps, resource loading, and the
// 11-point DCMA-style panel. None of its methods mutate the Schedule.
package analyzer

import (
	"sort"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

// DefaultFloatThresholdDays is the near-critical/high-float boundary used
// when a caller does not supply its own threshold.
const DefaultFloatThresholdDays = 5

// OverAllocationThreshold is the assignment-count heuristic past which a
// resource is reported as over-allocated.
const OverAllocationThreshold = 10

// Analyzer wraps a built, CPM-populated Schedule. It holds no state of
// its own beyond the Schedule reference.
type Analyzer struct {
	sched *schedule.Schedule
}

// New wraps sched for analysis. sched must already have been through the
// CPM engine; Analyzer does not run CPM itself.
func New(sched *schedule.Schedule) *Analyzer {
	return &Analyzer{sched: sched}
}

// CriticalPathSummary describes the project's critical tasks.
type CriticalPathSummary struct {
	Tasks             []*schedule.Task
	TotalDurationDays int
}

// CriticalPath returns every critical task, sorted by TargetStart
// ascending (a nil TargetStart sorts last, as "far future").
func (a *Analyzer) CriticalPath() CriticalPathSummary {
	var tasks []*schedule.Task
	for _, t := range a.sched.Tasks {
		if t.IsCritical() {
			tasks = append(tasks, t)
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return targetStartLess(tasks[i], tasks[j])
	})

	total := 0
	for _, t := range tasks {
		total += t.DurationDays()
	}

	return CriticalPathSummary{Tasks: tasks, TotalDurationDays: total}
}

func targetStartLess(a, b *schedule.Task) bool {
	if a.TargetStart == nil && b.TargetStart == nil {
		return false
	}
	if a.TargetStart == nil {
		return false
	}
	if b.TargetStart == nil {
		return true
	}
	return a.TargetStart.Before(*b.TargetStart)
}

// FloatBuckets summarizes the distribution of total float across all tasks.
type FloatBuckets struct {
	ThresholdDays     int
	HighFloat         []*schedule.Task
	NegativeFloat     []*schedule.Task
	NearCritical      []*schedule.Task
	AverageFloatHours float64
}

// FloatDistribution buckets every task by float, using thresholdDays as
// the high-float/near-critical boundary.
func (a *Analyzer) FloatDistribution(thresholdDays int) FloatBuckets {
	b := FloatBuckets{ThresholdDays: thresholdDays}
	var sum float64
	for _, t := range a.sched.Tasks {
		sum += t.TotalFloatHours
		fd := t.FloatDays()
		switch {
		case t.TotalFloatHours < 0:
			b.NegativeFloat = append(b.NegativeFloat, t)
		case fd > thresholdDays:
			b.HighFloat = append(b.HighFloat, t)
		case fd > 0:
			b.NearCritical = append(b.NearCritical, t)
		}
	}
	if len(a.sched.Tasks) > 0 {
		b.AverageFloatHours = sum / float64(len(a.sched.Tasks))
	}
	return b
}

// LogicCheck reports the schedule's logic-completeness gaps.
type LogicCheck struct {
	OpenStarts            []*schedule.Task
	OpenEnds              []*schedule.Task
	DanglingRelationships []*schedule.Relationship
}

// Logic evaluates open-start, open-end, and dangling-edge conditions.
func (a *Analyzer) Logic() LogicCheck {
	idx := a.sched.TaskIndex()

	incoming := make(map[string]bool)
	outgoing := make(map[string]bool)
	var dangling []*schedule.Relationship
	for _, r := range a.sched.Relationships {
		_, predOK := idx[r.PredecessorTaskID]
		_, succOK := idx[r.SuccessorTaskID]
		if !predOK || !succOK {
			dangling = append(dangling, r)
			continue
		}
		incoming[r.SuccessorTaskID] = true
		outgoing[r.PredecessorTaskID] = true
	}

	var check LogicCheck
	for _, t := range a.sched.Tasks {
		if t.Type != schedule.TaskTypeStartMilestone && !incoming[t.ID] {
			check.OpenStarts = append(check.OpenStarts, t)
		}
		if t.Type != schedule.TaskTypeFinishMilestone && !outgoing[t.ID] {
			check.OpenEnds = append(check.OpenEnds, t)
		}
	}
	check.DanglingRelationships = dangling
	return check
}

// ResourceLoad summarizes one resource's assignment load.
type ResourceLoad struct {
	Resource        *schedule.Resource
	TotalQuantity   float64
	AssignmentCount int
	OverAllocated   bool
}

// ResourceLoading tallies target quantity and assignment count per
// resource, flagging resources whose assignment count exceeds the
// over-allocation heuristic.
func (a *Analyzer) ResourceLoading() []ResourceLoad {
	byID := make(map[string]*ResourceLoad, len(a.sched.Resources))
	order := make([]string, 0, len(a.sched.Resources))
	for _, r := range a.sched.Resources {
		byID[r.ID] = &ResourceLoad{Resource: r}
		order = append(order, r.ID)
	}

	for _, asn := range a.sched.ResourceAssignments {
		load, ok := byID[asn.ResourceID]
		if !ok {
			continue
		}
		load.TotalQuantity += asn.TargetQuantity
		load.AssignmentCount++
	}

	out := make([]ResourceLoad, 0, len(order))
	for _, id := range order {
		load := byID[id]
		load.OverAllocated = load.AssignmentCount > OverAllocationThreshold
		out = append(out, *load)
	}
	return out
}

// GroupBy buckets task ids by the activity codes assigned under the
// given activity-code type. A task with more than one code of that type
// appears under every bucket it is assigned to.
func (a *Analyzer) GroupBy(typeID string) map[string][]string {
	return a.sched.TaskActivityCodesForType(typeID)
}

// Report bundles every analyzer view into one value so a single call can
// drive the CLI's analyze/report commands and the HTTP API's /analysis
// route without each recomputing the others.
type Report struct {
	CriticalPath      CriticalPathSummary
	FloatDistribution FloatBuckets
	Logic             LogicCheck
	ResourceLoading   []ResourceLoad
	DCMA              DCMAPanel
	GroupedBy         map[string][]string `json:",omitempty"`
}

// BuildReport runs every analyzer view using floatThresholdDays for the
// float buckets. If groupByTypeID is non-empty, GroupedBy is also
// populated.
func (a *Analyzer) BuildReport(floatThresholdDays int, groupByTypeID string) Report {
	r := Report{
		CriticalPath:      a.CriticalPath(),
		FloatDistribution: a.FloatDistribution(floatThresholdDays),
		Logic:             a.Logic(),
		ResourceLoading:   a.ResourceLoading(),
		DCMA:              a.DCMA(),
	}
	if groupByTypeID != "" {
		r.GroupedBy = a.GroupBy(groupByTypeID)
	}
	return r
}
