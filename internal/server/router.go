// Package server exposes plan documents over HTTP: the HTML page, the JSON
// document, and a listing of the plan catalog.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/planview/internal/document"
	"github.com/alexanderramin/planview/internal/domain"
	"github.com/alexanderramin/planview/internal/htmldoc"
	"github.com/alexanderramin/planview/internal/importer"
	"github.com/gorilla/mux"
)

// PlanSource resolves plans by ref and lists the catalog.
type PlanSource interface {
	Resolve(ctx context.Context, ref string) (*domain.StoredPlan, error)
	List(ctx context.Context) ([]*domain.StoredPlan, error)
}

// Options configures the router.
type Options struct {
	// DefaultPlan is the ref served at / and /plan.json.
	DefaultPlan string
	// Tab is the tab checked when a page loads.
	Tab domain.Tab
}

// PlanSummary is one entry of GET /plans.
type PlanSummary struct {
	ID        string     `json:"id,omitempty"`
	ShortID   string     `json:"short_id"`
	Title     string     `json:"title"`
	Weeks     int        `json:"weeks"`
	Builtin   bool       `json:"builtin"`
	Source    string     `json:"source,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type handlers struct {
	plans  PlanSource
	opts   Options
	logger *slog.Logger
}

// NewRouter builds the HTTP routes. A nil logger disables request logging.
func NewRouter(plans PlanSource, opts Options, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &handlers{plans: plans, opts: opts, logger: logger}

	r := mux.NewRouter()
	r.Use(loggingMiddleware(logger))
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)
	r.HandleFunc("/", h.page(h.defaultRef)).Methods(http.MethodGet)
	r.HandleFunc("/plan.json", h.planJSON(h.defaultRef)).Methods(http.MethodGet)
	r.HandleFunc("/plans", h.listPlans).Methods(http.MethodGet)
	r.HandleFunc("/plans/{ref}", h.page(pathRef)).Methods(http.MethodGet)
	r.HandleFunc("/plans/{ref}/plan.json", h.planJSON(pathRef)).Methods(http.MethodGet)
	return r
}

type refFunc func(r *http.Request) string

func (h *handlers) defaultRef(*http.Request) string {
	return h.opts.DefaultPlan
}

func pathRef(r *http.Request) string {
	return mux.Vars(r)["ref"]
}

func (h *handlers) page(ref refFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, ok := h.resolve(w, r, ref(r))
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := htmldoc.Render(w, document.Compose(&plan.Plan), htmldoc.Options{Active: h.opts.Tab})
		if err != nil {
			h.fail(w, r, err)
		}
	}
}

func (h *handlers) planJSON(ref refFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, ok := h.resolve(w, r, ref(r))
		if !ok {
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := importer.Encode(w, importer.FromPlan(plan.ShortID, &plan.Plan), importer.FormatJSON); err != nil {
			h.fail(w, r, err)
		}
	}
}

func (h *handlers) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]PlanSummary, 0, len(plans))
	for _, p := range plans {
		s := PlanSummary{
			ID:      p.ID,
			ShortID: p.DisplayID(),
			Title:   p.Plan.Title,
			Weeks:   p.Plan.WeekCount(),
			Builtin: p.IsBuiltin(),
		}
		if !p.IsBuiltin() {
			created := p.CreatedAt
			s.Source = p.Source
			s.CreatedAt = &created
		}
		out = append(out, s)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		h.logger.ErrorContext(r.Context(), "encoding plan list", "error", err)
	}
}

func (h *handlers) resolve(w http.ResponseWriter, r *http.Request, ref string) (*domain.StoredPlan, bool) {
	plan, err := h.plans.Resolve(r.Context(), ref)
	if err != nil {
		if errors.Is(err, domain.ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return nil, false
		}
		h.fail(w, r, err)
		return nil, false
	}
	return plan, true
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
