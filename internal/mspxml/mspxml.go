// Package mspxml decodes the MS-Project XML export into a
// schedule.Schedule. It is an external collaborator by spec: only its
// output contract (a valid normalized Schedule) matters to the core.
// encoding/xml does not resolve external entities unless an Entity map
// is explicitly configured on the Decoder, so no XXE mitigation code is
// needed here beyond simply not adding one.
package mspxml

import (
	"encoding/xml"
	"fmt"

	"github.com/avireddy0/XERReader/pkg/schedule"
	"github.com/avireddy0/XERReader/pkg/scheduleerr"
)

type projectXML struct {
	Tasks     []taskXML     `xml:"Tasks>Task"`
	Calendars []calendarXML `xml:"Calendars>Calendar"`
}

type taskXML struct {
	UID             string               `xml:"UID"`
	ID              string               `xml:"ID"`
	Name            string               `xml:"Name"`
	Start           string               `xml:"Start"`
	Finish          string               `xml:"Finish"`
	Duration        string               `xml:"Duration"`
	PercentComplete string               `xml:"PercentComplete"`
	Milestone       string               `xml:"Milestone"`
	PredecessorLink []predecessorLinkXML `xml:"PredecessorLink"`
}

type predecessorLinkXML struct {
	PredecessorUID string `xml:"PredecessorUID"`
	Type           string `xml:"Type"`
	LinkLag        string `xml:"LinkLag"`
}

type calendarXML struct {
	UID  string `xml:"UID"`
	Name string `xml:"Name"`
}

// Parse decodes an MS-Project XML export into a Schedule. There is one
// implicit "project" per document; this core does not model the
// MS-Project concept of multiple embedded sub-projects.
func Parse(data []byte) (*schedule.Schedule, []schedule.Diagnostic, error) {
	var doc projectXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, nil, scheduleerr.NewXMLParsingFailed(err.Error())
	}

	sched := schedule.New()
	sched.Projects = []*schedule.Project{{ID: "1", Name: "MS-Project Import"}}

	var diags []schedule.Diagnostic
	predecessorsByTask := make(map[string][]predecessorLinkXML)

	for _, tx := range doc.Tasks {
		predecessorsByTask[tx.UID] = tx.PredecessorLink

		taskType := schedule.TaskTypeTaskDependent
		if tx.Milestone == "1" {
			if len(tx.PredecessorLink) == 0 {
				taskType = schedule.TaskTypeStartMilestone
			} else {
				taskType = schedule.TaskTypeFinishMilestone
			}
		}

		sched.Tasks = append(sched.Tasks, &schedule.Task{
			ID:                  tx.UID,
			ProjectID:           "1",
			Code:                tx.ID,
			Name:                tx.Name,
			Type:                taskType,
			Status:              schedule.TaskStatusNotStarted,
			PercentComplete:     parsePercent(tx.PercentComplete),
			TargetStart:         parseISODate(tx.Start),
			TargetEnd:           parseISODate(tx.Finish),
			TargetDurationHours: parseISODuration(tx.Duration),
		})
	}

	for taskID, links := range predecessorsByTask {
		for _, link := range links {
			sched.Relationships = append(sched.Relationships, &schedule.Relationship{
				SuccessorTaskID:   taskID,
				PredecessorTaskID: link.PredecessorUID,
				Type:              mapLinkType(link.Type),
				LagDays:           parseISODuration(link.LinkLag) / 8,
			})
		}
	}

	for _, cx := range doc.Calendars {
		sched.Calendars = append(sched.Calendars, &schedule.WorkCalendar{
			ID:          cx.UID,
			Name:        cx.Name,
			HoursPerDay: 8,
			WorkDays:    nil,
		})
	}

	return sched, diags, nil
}

// mapLinkType translates MS-Project's numeric link-type codes (0=FF,
// 1=FS, 2=SF, 3=SS) to this core's RelationshipType. Unknown codes
// default to FS per the same fallback rule the XER path uses.
func mapLinkType(raw string) schedule.RelationshipType {
	switch raw {
	case "0":
		return schedule.RelationshipFF
	case "1":
		return schedule.RelationshipFS
	case "2":
		return schedule.RelationshipSF
	case "3":
		return schedule.RelationshipSS
	default:
		return schedule.RelationshipFS
	}
}

func parsePercent(raw string) float64 {
	var v float64
	if _, err := fmt.Sscanf(raw, "%f", &v); err != nil {
		return 0
	}
	return v
}
