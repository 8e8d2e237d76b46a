// Package api exposes a read-only HTTP surface over a parsed schedule, for
// the out-of-scope view layer (Gantt chart, forms) to consume. It never
// mutates the Schedule it was built from.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gojson "github.com/goccy/go-json"

	"github.com/avireddy0/XERReader/internal/analyzer"
	"github.com/avireddy0/XERReader/pkg/schedule"
)

// Handlers serves HTTP requests against one CPM-populated Schedule.
type Handlers struct {
	sched *schedule.Schedule
	an    *analyzer.Analyzer
}

// NewHandlers builds a Handlers for sched, which must already have had
// cpm.Run applied if early/late dates and float are to be meaningful.
func NewHandlers(sched *schedule.Schedule) *Handlers {
	return &Handlers{sched: sched, an: analyzer.New(sched)}
}

// Router builds the full route tree: GET /schedule, /analysis,
// /critical-path, /dcma.
func Router(h *Handlers) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", h.GetHealth)
	r.Get("/schedule", h.GetSchedule)
	r.Get("/analysis", h.GetAnalysis)
	r.Get("/critical-path", h.GetCriticalPath)
	r.Get("/dcma", h.GetDCMA)

	return r
}

func (h *Handlers) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) GetSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sched)
}

func (h *Handlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.an.BuildReport(analyzer.DefaultFloatThresholdDays, ""))
}

func (h *Handlers) GetCriticalPath(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.an.CriticalPath())
}

func (h *Handlers) GetDCMA(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.an.DCMA())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := gojson.NewEncoder(w)
	_ = enc.Encode(v)
}
