// Package cpm performs the forward/backward Critical Path Method pass
// over a built Schedule's task-relationship graph, writing the early,
// late, and float fields the analyzer later reads.
//
// The topological order is obtained with Kahn's algorithm (a queue of
// zero-indegree nodes) rather than the depth-first recursion with a
// visited set that the original tool used; on acyclic input the two
// produce identical computed fields, and Kahn's avoids the recursion-
// depth risk noted for very large schedules.
package cpm

import (
	"time"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

const (
	hoursPerDay   = 8
	secondsPerDay = 86400
)

// Run mutates every task in sched in place, filling EarlyStart, EarlyEnd,
// LateStart, LateEnd, and TotalFloatHours. It returns a diagnostic per
// task that could not be placed in the acyclic portion of the graph.
func Run(sched *schedule.Schedule) []schedule.Diagnostic {
	g := buildGraph(sched)
	order, leftover := g.topoSort()

	var diags []schedule.Diagnostic
	for _, id := range leftover {
		diags = append(diags, schedule.NewDiagnostic(
			schedule.DiagnosticCycleBroken,
			"task %q is part of a relationship cycle; its computed fields are best-effort", id,
		))
	}

	// Process the acyclic portion first (predecessors before successors),
	// then whatever is left over in declaration order, mirroring the
	// "use whatever it currently has" fallback for cyclic input.
	forwardOrder := append(append([]string{}, order...), leftover...)
	for _, id := range forwardOrder {
		forwardPass(g, g.tasks[id])
	}

	projectEnd := projectEndTime(g)

	backwardOrder := reverse(forwardOrder)
	for _, id := range backwardOrder {
		backwardPass(g, g.tasks[id], projectEnd)
	}

	return diags
}

func forwardPass(g *graph, t *schedule.Task) {
	d := time.Duration(t.TargetDurationHours * float64(time.Hour))

	es := sentinelEarly
	if t.TargetStart != nil {
		es = *t.TargetStart
	}

	for _, e := range g.predecessors[t.ID] {
		p := g.tasks[e.otherID]
		if p.EarlyStart == nil || p.EarlyEnd == nil {
			continue
		}

		var candidate time.Time
		switch e.typ {
		case schedule.RelationshipFS:
			candidate = *p.EarlyEnd
		case schedule.RelationshipSS:
			candidate = *p.EarlyStart
		case schedule.RelationshipFF:
			candidate = p.EarlyEnd.Add(-d)
		case schedule.RelationshipSF:
			candidate = p.EarlyStart.Add(-d)
		default:
			candidate = *p.EarlyEnd
		}
		candidate = candidate.Add(lagDuration(e.lagDays))

		if candidate.After(es) {
			es = candidate
		}
	}

	ee := es.Add(d)
	t.EarlyStart = &es
	t.EarlyEnd = &ee
}

func backwardPass(g *graph, t *schedule.Task, projectEnd time.Time) {
	d := time.Duration(t.TargetDurationHours * float64(time.Hour))

	lf := projectEnd
	for _, e := range g.successors[t.ID] {
		s := g.tasks[e.otherID]
		if s.LateStart == nil || s.LateEnd == nil {
			continue
		}

		var candidate time.Time
		switch e.typ {
		case schedule.RelationshipFS:
			candidate = *s.LateStart
		case schedule.RelationshipSS:
			candidate = s.LateStart.Add(d)
		case schedule.RelationshipFF:
			candidate = *s.LateEnd
		case schedule.RelationshipSF:
			// Preserved as observed: the SF backward candidate uses the
			// successor's lateEnd unadjusted by duration, unlike every
			// other edge type here. See DESIGN.md.
			candidate = *s.LateEnd
		default:
			candidate = *s.LateStart
		}
		candidate = candidate.Add(-lagDuration(e.lagDays))

		if candidate.Before(lf) {
			lf = candidate
		}
	}

	ls := lf.Add(-d)
	t.LateStart = &ls
	t.LateEnd = &lf
	t.TotalFloatHours = ls.Sub(*t.EarlyStart).Hours()
}

// sentinelEarly stands in for "no anchor yet" when a task has neither a
// TargetStart nor any predecessor with computed EarlyEnd/EarlyStart.
var sentinelEarly = time.Time{}

func lagDuration(lagDays float64) time.Duration {
	return time.Duration(lagDays * float64(secondsPerDay) * float64(time.Second))
}

func projectEndTime(g *graph) time.Time {
	var end time.Time
	found := false
	for _, id := range g.ids {
		t := g.tasks[id]
		if t.EarlyEnd == nil {
			continue
		}
		if !found || t.EarlyEnd.After(end) {
			end = *t.EarlyEnd
			found = true
		}
	}
	if !found {
		return time.Now().UTC()
	}
	return end
}

func reverse(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[len(ids)-1-i] = id
	}
	return out
}
