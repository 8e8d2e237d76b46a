package analyzer

import "github.com/avireddy0/XERReader/pkg/schedule"

// DCMACheck is the result of one panel check. The source names the panel
// "14-point" but implements 11; this package preserves that naming.
type DCMACheck struct {
	Name          string
	Description   string
	Threshold     string
	ActualValue   float64
	Passed        bool
	NotComputable bool
}

// DCMAPanel is the full 11-check result set plus the overall score.
type DCMAPanel struct {
	Checks       []DCMACheck
	OverallScore float64
}

const (
	highFloatDays    = 44
	highDurationDays = 44
)

// DCMA runs all 11 checks against the schedule and scores them.
func (a *Analyzer) DCMA() DCMAPanel {
	tasks := a.sched.Tasks
	rels := a.sched.Relationships
	totalTasks := pct0(len(tasks))
	totalRels := pct0(len(rels))

	logic := a.Logic()

	var leads, lags, nonFS, highFloat, negFloat, highDuration, invalidDates int
	for _, r := range rels {
		if r.LagDays < 0 {
			leads++
		}
		if r.LagDays > 0 {
			lags++
		}
		if r.Type != schedule.RelationshipFS {
			nonFS++
		}
	}
	for _, t := range tasks {
		if t.FloatDays() > highFloatDays {
			highFloat++
		}
		if t.TotalFloatHours < 0 {
			negFloat++
		}
		if t.DurationDays() > highDurationDays {
			highDuration++
		}
		if t.ActualStart != nil && t.ActualEnd != nil && t.ActualEnd.Before(*t.ActualStart) {
			invalidDates++
		}
	}

	checks := []DCMACheck{
		{
			Name:        "Logic",
			Description: "ratio of relationships to tasks",
			Threshold:   ">= 1.5",
			ActualValue: ratio(len(rels), len(tasks)),
			Passed:      ratio(len(rels), len(tasks)) >= 1.5,
		},
		{
			Name:        "Leads",
			Description: "relationships with negative lag",
			Threshold:   "< 5%",
			ActualValue: pct(leads, totalRels),
			Passed:      pct(leads, totalRels) < 5,
		},
		{
			Name:        "Lags",
			Description: "relationships with positive lag",
			Threshold:   "< 5%",
			ActualValue: pct(lags, totalRels),
			Passed:      pct(lags, totalRels) < 5,
		},
		{
			Name:        "Relationship Types",
			Description: "relationships not of type finish-to-start",
			Threshold:   "< 10%",
			ActualValue: pct(nonFS, totalRels),
			Passed:      pct(nonFS, totalRels) < 10,
		},
		{
			Name:          "Hard Constraints",
			Description:   "tasks with hard date constraints",
			Threshold:     "N/A",
			ActualValue:   0,
			Passed:        true,
			NotComputable: true,
		},
		{
			Name:        "High Float",
			Description: "tasks with float exceeding 44 days",
			Threshold:   "< 5%",
			ActualValue: pct(highFloat, totalTasks),
			Passed:      pct(highFloat, totalTasks) < 5,
		},
		{
			Name:        "Negative Float",
			Description: "tasks with negative total float",
			Threshold:   "= 0%",
			ActualValue: pct(negFloat, totalTasks),
			Passed:      pct(negFloat, totalTasks) == 0,
		},
		{
			Name:        "High Duration",
			Description: "tasks with duration exceeding 44 days",
			Threshold:   "< 5%",
			ActualValue: pct(highDuration, totalTasks),
			Passed:      pct(highDuration, totalTasks) < 5,
		},
		{
			Name:        "Invalid Dates",
			Description: "tasks whose actual end precedes their actual start",
			Threshold:   "= 0",
			ActualValue: float64(invalidDates),
			Passed:      invalidDates == 0,
		},
		{
			Name:        "Missing Predecessors",
			Description: "non-start-milestone tasks with no incoming relationship",
			Threshold:   "< 5%",
			ActualValue: pct(len(logic.OpenStarts), totalTasks),
			Passed:      pct(len(logic.OpenStarts), totalTasks) < 5,
		},
		{
			Name:        "Missing Successors",
			Description: "non-finish-milestone tasks with no outgoing relationship",
			Threshold:   "< 5%",
			ActualValue: pct(len(logic.OpenEnds), totalTasks),
			Passed:      pct(len(logic.OpenEnds), totalTasks) < 5,
		},
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	return DCMAPanel{
		Checks:       checks,
		OverallScore: float64(passed) / float64(pct0(len(checks))) * 100,
	}
}

func pct0(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func pct(count, total int) float64 {
	return float64(count) / float64(total) * 100
}

func ratio(a, b int) float64 {
	return float64(a) / float64(pct0(b))
}
