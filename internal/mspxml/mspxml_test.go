package mspxml

import (
	"testing"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

const sampleProject = `<?xml version="1.0"?>
<Project>
  <Tasks>
    <Task>
      <UID>1</UID>
      <ID>1</ID>
      <Name>Design</Name>
      <Start>2024-01-15T08:00:00</Start>
      <Finish>2024-01-19T17:00:00</Finish>
      <Duration>PT40H0M0S</Duration>
      <PercentComplete>0</PercentComplete>
      <Milestone>0</Milestone>
    </Task>
    <Task>
      <UID>2</UID>
      <ID>2</ID>
      <Name>Build</Name>
      <Start>2024-01-22T08:00:00</Start>
      <Finish>2024-01-26T17:00:00</Finish>
      <Duration>PT40H0M0S</Duration>
      <PercentComplete>0</PercentComplete>
      <Milestone>0</Milestone>
      <PredecessorLink>
        <PredecessorUID>1</PredecessorUID>
        <Type>1</Type>
        <LinkLag>0</LinkLag>
      </PredecessorLink>
    </Task>
  </Tasks>
</Project>`

func TestParse_BasicProject(t *testing.T) {
	sched, _, err := Parse([]byte(sampleProject))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sched.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(sched.Tasks))
	}
	if len(sched.Relationships) != 1 {
		t.Fatalf("expected 1 relationship, got %d", len(sched.Relationships))
	}
	if sched.Relationships[0].Type != schedule.RelationshipFS {
		t.Errorf("expected FS, got %v", sched.Relationships[0].Type)
	}
}

func TestParse_MalformedXML(t *testing.T) {
	_, _, err := Parse([]byte("<Project><Tasks><Task>"))
	if err == nil {
		t.Fatal("expected an XML parsing error")
	}
}

func TestParse_NoExternalEntityExpansion(t *testing.T) {
	// encoding/xml does not resolve external entities unless an Entity
	// map is configured on the Decoder; Unmarshal never does that, so
	// this document should fail to validate the entity rather than leak
	// file contents.
	malicious := `<?xml version="1.0"?>
<!DOCTYPE Project [<!ENTITY xxe SYSTEM "file:///etc/passwd">]>
<Project><Tasks><Task><UID>1</UID><Name>&xxe;</Name></Task></Tasks></Project>`

	sched, _, err := Parse([]byte(malicious))
	if err != nil {
		// Rejecting the undeclared entity outright is an acceptable outcome too.
		return
	}
	if len(sched.Tasks) == 1 && sched.Tasks[0].Name != "" {
		t.Skip("entity was left unexpanded, which is the safe behavior")
	}
}
