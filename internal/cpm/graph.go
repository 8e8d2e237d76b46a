package cpm

import (
	"sort"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

// edge is one relationship oriented from predecessor to successor.
type edge struct {
	otherID string // the predecessor, when stored under the successor's key; the successor, under the predecessor's key
	typ     schedule.RelationshipType
	lagDays float64
}

// graph indexes a Schedule's tasks and relationships for repeated CPM
// traversal. Built once per Run, not once per task, per spec §5.
type graph struct {
	ids          []string // declaration order
	tasks        map[string]*schedule.Task
	predecessors map[string][]edge // successor id -> incoming edges
	successors   map[string][]edge // predecessor id -> outgoing edges
}

func buildGraph(sched *schedule.Schedule) *graph {
	g := &graph{
		tasks:        make(map[string]*schedule.Task, len(sched.Tasks)),
		predecessors: make(map[string][]edge),
		successors:   make(map[string][]edge),
	}
	for _, t := range sched.Tasks {
		g.ids = append(g.ids, t.ID)
		g.tasks[t.ID] = t
	}
	for _, r := range sched.Relationships {
		if _, ok := g.tasks[r.PredecessorTaskID]; !ok {
			continue
		}
		if _, ok := g.tasks[r.SuccessorTaskID]; !ok {
			continue
		}
		g.predecessors[r.SuccessorTaskID] = append(g.predecessors[r.SuccessorTaskID], edge{
			otherID: r.PredecessorTaskID,
			typ:     r.Type,
			lagDays: r.LagDays,
		})
		g.successors[r.PredecessorTaskID] = append(g.successors[r.PredecessorTaskID], edge{
			otherID: r.SuccessorTaskID,
			typ:     r.Type,
			lagDays: r.LagDays,
		})
	}
	return g
}

// topoSort runs Kahn's algorithm over the predecessor-to-successor
// direction. It returns the sorted prefix and the ids left over because
// they sit on or downstream of a cycle; those are never ready.
func (g *graph) topoSort() (sorted []string, leftover []string) {
	indegree := make(map[string]int, len(g.ids))
	for _, id := range g.ids {
		indegree[id] = len(g.predecessors[id])
	}

	var queue []string
	for _, id := range g.ids {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	visited := make(map[string]bool, len(g.ids))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited[id] = true
		sorted = append(sorted, id)

		var ready []string
		for _, e := range g.successors[id] {
			indegree[e.otherID]--
			if indegree[e.otherID] == 0 {
				ready = append(ready, e.otherID)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	for _, id := range g.ids {
		if !visited[id] {
			leftover = append(leftover, id)
		}
	}
	return sorted, leftover
}
