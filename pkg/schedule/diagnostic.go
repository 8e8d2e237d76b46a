package schedule

import "fmt"

// DiagnosticKind classifies a non-fatal anomaly encountered while building
// or scheduling a Schedule. None of these stop a build; they are collected
// and handed back alongside the result so a host can log or display them.
type DiagnosticKind string

// Diagnostic kinds. See spec §7 "within-document anomalies that are not
// failures".
const (
	DiagnosticOrphanTask       DiagnosticKind = "OrphanTask"
	DiagnosticDuplicateTaskID  DiagnosticKind = "DuplicateTaskID"
	DiagnosticUnknownEnumToken DiagnosticKind = "UnknownEnumToken"
	DiagnosticDateParseFailed  DiagnosticKind = "DateParseFailed"
	DiagnosticCycleBroken      DiagnosticKind = "CycleBroken"
	DiagnosticMissingHeader    DiagnosticKind = "MissingHeader"
)

// Diagnostic is a single anomaly observed during a build or CPM run.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// NewDiagnostic constructs a Diagnostic with a formatted message.
func NewDiagnostic(kind DiagnosticKind, format string, args ...any) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
