package schedule

// TaskType classifies how a task's duration and dependencies are treated.
type TaskType string

// Task type values. Unknown raw tokens decode to TaskTypeTaskDependent.
const (
	TaskTypeTaskDependent     TaskType = "TaskDependent"
	TaskTypeResourceDependent TaskType = "ResourceDependent"
	TaskTypeLevelOfEffort     TaskType = "LevelOfEffort"
	TaskTypeStartMilestone    TaskType = "StartMilestone"
	TaskTypeFinishMilestone   TaskType = "FinishMilestone"
	TaskTypeWBSSummary        TaskType = "WBSSummary"
)

// rawTaskType maps an XER task_type token to a TaskType.
var rawTaskType = map[string]TaskType{
	"TT_Task":    TaskTypeTaskDependent,
	"TT_Rsrc":    TaskTypeResourceDependent,
	"TT_LOE":     TaskTypeLevelOfEffort,
	"TT_Mile":    TaskTypeStartMilestone,
	"TT_FinMile": TaskTypeFinishMilestone,
	"TT_WBS":     TaskTypeWBSSummary,
}

// ParseTaskType decodes a raw XER task_type token. Unrecognized tokens
// default to TaskTypeTaskDependent per the documented fallback.
func ParseTaskType(raw string) TaskType {
	if t, ok := rawTaskType[raw]; ok {
		return t
	}
	return TaskTypeTaskDependent
}

// TaskStatus classifies a task's progress state.
type TaskStatus string

// Task status values. Unknown raw tokens decode to TaskStatusNotStarted.
const (
	TaskStatusNotStarted TaskStatus = "NotStarted"
	TaskStatusInProgress TaskStatus = "InProgress"
	TaskStatusComplete   TaskStatus = "Complete"
)

var rawTaskStatus = map[string]TaskStatus{
	"TK_NotStart": TaskStatusNotStarted,
	"TK_Active":   TaskStatusInProgress,
	"TK_Complete": TaskStatusComplete,
}

// ParseTaskStatus decodes a raw XER status_code token. Unrecognized tokens
// default to TaskStatusNotStarted per the documented fallback.
func ParseTaskStatus(raw string) TaskStatus {
	if s, ok := rawTaskStatus[raw]; ok {
		return s
	}
	return TaskStatusNotStarted
}

// RelationshipType is the polarity of a predecessor/successor edge.
type RelationshipType string

// Relationship type values. Unknown raw tokens decode to RelationshipFS.
const (
	RelationshipFS RelationshipType = "FS" // finish-to-start
	RelationshipSS RelationshipType = "SS" // start-to-start
	RelationshipFF RelationshipType = "FF" // finish-to-finish
	RelationshipSF RelationshipType = "SF" // start-to-finish
)

var rawRelationshipType = map[string]RelationshipType{
	"PR_FS": RelationshipFS,
	"PR_SS": RelationshipSS,
	"PR_FF": RelationshipFF,
	"PR_SF": RelationshipSF,
}

// ParseRelationshipType decodes a raw XER pred_type token. Unrecognized
// tokens default to RelationshipFS per the documented fallback.
func ParseRelationshipType(raw string) RelationshipType {
	if t, ok := rawRelationshipType[raw]; ok {
		return t
	}
	return RelationshipFS
}

// ResourceType classifies how a resource is consumed.
type ResourceType string

// Resource type values. Unknown raw tokens decode to ResourceTypeLabor.
const (
	ResourceTypeLabor    ResourceType = "Labor"
	ResourceTypeNonLabor ResourceType = "NonLabor"
	ResourceTypeMaterial ResourceType = "Material"
)

var rawResourceType = map[string]ResourceType{
	"RT_Labor": ResourceTypeLabor,
	"RT_Equip": ResourceTypeNonLabor,
	"RT_Mat":   ResourceTypeMaterial,
}

// ParseResourceType decodes a raw XER rsrc_type token. Unrecognized tokens
// default to ResourceTypeLabor per the documented fallback.
func ParseResourceType(raw string) ResourceType {
	if t, ok := rawResourceType[raw]; ok {
		return t
	}
	return ResourceTypeLabor
}

// ActivityCodeScope describes how broadly an activity code type applies.
type ActivityCodeScope string

// Activity code scope values. Unknown raw tokens decode to ActivityCodeScopeProject.
const (
	ActivityCodeScopeGlobal  ActivityCodeScope = "Global"
	ActivityCodeScopeEPS     ActivityCodeScope = "EPS"
	ActivityCodeScopeProject ActivityCodeScope = "Project"
)

var rawActivityCodeScope = map[string]ActivityCodeScope{
	"AS_Global":  ActivityCodeScopeGlobal,
	"AS_EPS":     ActivityCodeScopeEPS,
	"AS_Project": ActivityCodeScopeProject,
}

// ParseActivityCodeScope decodes a raw XER actv_code_type_scope token.
// Unrecognized tokens default to ActivityCodeScopeProject per the
// documented fallback.
func ParseActivityCodeScope(raw string) ActivityCodeScope {
	if s, ok := rawActivityCodeScope[raw]; ok {
		return s
	}
	return ActivityCodeScopeProject
}
