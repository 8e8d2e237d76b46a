package schedule

// Schedule is the normalized, in-memory project-schedule model produced by
// a builder (XER or MS-Project XML), mutated in place by the CPM engine,
// and then handed to the analyzer read-only.
type Schedule struct {
	Projects            []*Project
	WBSElements         []*WBSElement
	Tasks               []*Task
	Relationships       []*Relationship
	Resources           []*Resource
	ResourceAssignments []*ResourceAssignment
	Calendars           []*WorkCalendar
	CalendarExceptions  []*CalendarException
	ActivityCodeTypes   []*ActivityCodeType
	ActivityCodes       []*ActivityCode
	TaskActivityCodes   []*TaskActivityCode
}

// New returns an empty Schedule ready for population by a builder.
func New() *Schedule {
	return &Schedule{}
}

// TaskByID returns the task with the given id, preserving declaration
// order among duplicates is the builder's concern; the Schedule itself
// holds at most one Task per id once built.
func (s *Schedule) TaskByID(id string) (*Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// TaskIndex builds a map from task id to *Task for O(1) lookups. The
// analyzer's logic check calls this once per run rather than scanning per
// task.
func (s *Schedule) TaskIndex() map[string]*Task {
	idx := make(map[string]*Task, len(s.Tasks))
	for _, t := range s.Tasks {
		idx[t.ID] = t
	}
	return idx
}

// ProjectByID returns the project with the given id.
func (s *Schedule) ProjectByID(id string) (*Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ActivityCodeTypeByID returns the activity code type with the given id.
func (s *Schedule) ActivityCodeTypeByID(id string) (*ActivityCodeType, bool) {
	for _, t := range s.ActivityCodeTypes {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// TaskActivityCodesForType returns, keyed by ActivityCode id, the ids of
// the tasks assigned each ActivityCode belonging to the given type. A task
// with multiple codes of the same type is listed under all of them; GroupBy
// callers should expect that.
func (s *Schedule) TaskActivityCodesForType(typeID string) map[string][]string {
	out := make(map[string][]string)
	for _, tac := range s.TaskActivityCodes {
		if tac.TypeID != typeID {
			continue
		}
		out[tac.CodeID] = append(out[tac.CodeID], tac.TaskID)
	}
	return out
}
