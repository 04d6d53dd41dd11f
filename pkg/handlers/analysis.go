package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/praxiotech/resto-insights/pkg/models"
	"github.com/praxiotech/resto-insights/pkg/services"
)

// AnalysisHandler exposes the loaded dataset to the dashboard: cohort
// summary, filtered restaurant lists, benchmarks, and the per-restaurant
// scoring operations. The dataset is immutable, so every endpoint is safe
// under concurrent requests.
type AnalysisHandler struct {
	dataset *models.Dataset
	scoring *services.ScoringEngine
	logger  *zap.Logger
}

// NewAnalysisHandler creates an AnalysisHandler over an already loaded
// dataset.
func NewAnalysisHandler(dataset *models.Dataset, scoring *services.ScoringEngine, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		dataset: dataset,
		scoring: scoring,
		logger:  logger.Named("analysis-handler"),
	}
}

// RegisterRoutes registers the analysis routes on the given mux.
func (h *AnalysisHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/summary", h.Summary)
	mux.HandleFunc("GET /api/benchmarks", h.Benchmarks)
	mux.HandleFunc("GET /api/restaurants", h.List)
	mux.HandleFunc("GET /api/restaurants/{name}/scores", h.Scores)
	mux.HandleFunc("GET /api/restaurants/{name}/gaps", h.Gaps)
	mux.HandleFunc("GET /api/restaurants/{name}/momentum", h.Momentum)
	mux.HandleFunc("GET /api/restaurants/{name}/persona", h.Persona)
	mux.HandleFunc("GET /api/restaurants/{name}/silent-winner", h.SilentWinner)
}

// filterFromQuery builds a cohort filter from the request's query params:
// cuisine (repeatable), min_rating, q (name search).
func filterFromQuery(r *http.Request) services.Filter {
	q := r.URL.Query()
	f := services.Filter{
		Cuisines: q["cuisine"],
		Search:   strings.TrimSpace(q.Get("q")),
	}
	if v, err := strconv.ParseFloat(q.Get("min_rating"), 64); err == nil {
		f.MinRating = v
	}
	return f
}

// Summary handles GET /api/summary.
func (h *AnalysisHandler) Summary(w http.ResponseWriter, r *http.Request) {
	filtered := services.ApplyFilter(h.dataset.Restaurants, filterFromQuery(r))
	h.writeJSON(w, services.Summarize(filtered))
}

// Benchmarks handles GET /api/benchmarks.
func (h *AnalysisHandler) Benchmarks(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]any{
		"dataset_id": h.dataset.ID,
		"loaded_at":  h.dataset.LoadedAt,
		"benchmarks": h.dataset.Benchmarks,
	})
}

// List handles GET /api/restaurants.
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	filtered := services.ApplyFilter(h.dataset.Restaurants, filterFromQuery(r))
	if filtered == nil {
		filtered = []models.Restaurant{}
	}
	h.writeJSON(w, filtered)
}

// Scores handles GET /api/restaurants/{name}/scores. Unknown names return
// the documented all-zero scores, not a 404: the scoring contract is
// always-return-something-displayable.
func (h *AnalysisHandler) Scores(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	h.writeJSON(w, h.scoring.DimensionScores(name, h.dataset.Restaurants))
}

// Gaps handles GET /api/restaurants/{name}/gaps.
func (h *AnalysisHandler) Gaps(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	scores := h.scoring.DimensionScores(name, h.dataset.Restaurants)
	h.writeJSON(w, h.scoring.GapAnalysis(scores, h.dataset.Benchmarks))
}

// Momentum handles GET /api/restaurants/{name}/momentum.
func (h *AnalysisHandler) Momentum(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	h.writeJSON(w, h.scoring.Momentum(name, h.dataset.Reviews))
}

// Persona handles GET /api/restaurants/{name}/persona.
func (h *AnalysisHandler) Persona(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	h.writeJSON(w, h.scoring.Persona(name, h.dataset.Restaurants))
}

// SilentWinner handles GET /api/restaurants/{name}/silent-winner.
func (h *AnalysisHandler) SilentWinner(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	h.writeJSON(w, map[string]bool{
		"silent_winner": h.scoring.SilentWinner(name, h.dataset.Restaurants),
	})
}

func (h *AnalysisHandler) writeJSON(w http.ResponseWriter, data any) {
	if err := WriteJSON(w, http.StatusOK, data); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
