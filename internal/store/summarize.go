package store

import (
	"github.com/avireddy0/XERReader/internal/analyzer"
	"github.com/avireddy0/XERReader/pkg/schedule"
)

// summarize derives the columns a Summary row needs from a Schedule that
// has already had cpm.Run applied — the DCMA score reflects whatever
// early/late dates are currently populated.
func summarize(sched *schedule.Schedule) (projectName string, dcmaScore float64) {
	if len(sched.Projects) > 0 {
		projectName = sched.Projects[0].Name
	}
	dcmaScore = analyzer.New(sched).DCMA().OverallScore
	return projectName, dcmaScore
}
