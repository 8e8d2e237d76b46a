package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avireddy0/XERReader/pkg/schedule"
)

func sampleSchedule() *schedule.Schedule {
	return &schedule.Schedule{
		Projects: []*schedule.Project{{ID: "1", Name: "Sample"}},
		Tasks: []*schedule.Task{
			{ID: "t1", ProjectID: "1", Name: "A", TotalFloatHours: 0},
			{ID: "t2", ProjectID: "1", Name: "B", TotalFloatHours: 12},
		},
	}
}

func TestGetSchedule_ReturnsJSON(t *testing.T) {
	h := NewHandlers(sampleSchedule())
	router := Router(h)

	req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got schedule.Schedule
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got.Tasks))
	}
}

func TestGetDCMA_ReturnsPanel(t *testing.T) {
	h := NewHandlers(sampleSchedule())
	router := Router(h)

	req := httptest.NewRequest(http.MethodGet, "/dcma", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("expected a non-empty response body")
	}
}

func TestGetCriticalPath_RouteRegistered(t *testing.T) {
	h := NewHandlers(sampleSchedule())
	router := Router(h)

	req := httptest.NewRequest(http.MethodGet, "/critical-path", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
