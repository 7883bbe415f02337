// Package preview serves the latest generated report over HTTP for local
// inspection before it is emailed.
package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/pistepick/pistepick/internal/provider/resilience"
	"github.com/pistepick/pistepick/internal/render"
	"github.com/pistepick/pistepick/internal/report"
)

// Store holds the most recent report and its rendered bodies.
type Store struct {
	mu       sync.RWMutex
	report   *report.Report
	rendered *render.RenderedReport
}

// Set replaces the stored report.
func (s *Store) Set(rep *report.Report, rendered *render.RenderedReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = rep
	s.rendered = rendered
}

// Get returns the stored report, or nil when no run has completed.
func (s *Store) Get() (*report.Report, *render.RenderedReport) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report, s.rendered
}

// RouterConfig holds configuration for the preview router.
type RouterConfig struct {
	Store     *Store
	Providers *resilience.Registry
	Logger    zerolog.Logger
}

// NewRouter creates the preview router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	h := &handlers{store: cfg.Store, providers: cfg.Providers, logger: cfg.Logger}

	r.Get("/healthz", h.health)
	r.Get("/report", h.reportJSON)
	r.Get("/report.html", h.reportHTML)

	return r
}

type handlers struct {
	store     *Store
	providers *resilience.Registry
	logger    zerolog.Logger
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	status := map[string]any{"status": "ok"}
	if h.providers != nil {
		status["providers"] = h.providers.AllHealth()
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *handlers) reportJSON(w http.ResponseWriter, _ *http.Request) {
	rep, _ := h.store.Get()
	if rep == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no report generated yet"})
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *handlers) reportHTML(w http.ResponseWriter, _ *http.Request) {
	_, rendered := h.store.Get()
	if rendered == nil {
		http.Error(w, "no report generated yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rendered.BodyHTML)); err != nil {
		h.logger.Error().Err(err).Msg("writing html preview")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
