package workforcehandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"custoplan/internal/domain/report"
	"custoplan/internal/domain/workforce"
	"custoplan/internal/ingest"
	"custoplan/internal/transport/http/api"
	"custoplan/internal/transport/http/middleware"
	"custoplan/internal/transport/http/shared"
)

type Handler struct {
	Loader      *ingest.Loader
	Workbook    string
	DefaultTopN int
}

func NewHandler(loader *ingest.Loader, workbook string, defaultTopN int) *Handler {
	return &Handler{Loader: loader, Workbook: workbook, DefaultTopN: defaultTopN}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/workforce", func(r chi.Router) {
		r.Get("/sites", h.handleSites)
		r.Get("/headcount", h.handleHeadcount)
		r.Get("/ranking", h.handleRanking)
		r.Get("/weights", h.handleWeights)
		r.Get("/decomposition", h.handleDecomposition)
		r.Get("/third-party", h.handleThirdParty)
		r.Get("/summary.pdf", h.handleSummaryPDF)
	})
}

// dataset loads the workforce workbook; a missing or unreadable source
// is the one fatal condition this surface reports.
func (h *Handler) dataset(w http.ResponseWriter, r *http.Request) (*ingest.Dataset, bool) {
	dataset, err := h.Loader.Workforce(h.Workbook)
	if err != nil {
		slog.Error("workforce workbook load failed", "err", err, "path", h.Workbook)
		api.Fail(w, http.StatusServiceUnavailable, "dataset_unavailable", "workforce data source is unavailable", middleware.GetRequestID(r.Context()))
		return nil, false
	}
	return dataset, true
}

func (h *Handler) handleSites(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.dataset(w, r)
	if !ok {
		return
	}
	api.Success(w, workforce.Sites(dataset.Workers, dataset.ThirdParty), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHeadcount(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.dataset(w, r)
	if !ok {
		return
	}
	sites := shared.ParseList(r, "sites")
	api.Success(w, workforce.CountHeads(dataset.Workers, dataset.ThirdParty, sites), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRanking(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.dataset(w, r)
	if !ok {
		return
	}
	requestID := middleware.GetRequestID(r.Context())

	category, err := shared.ParseCategory(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
		return
	}
	metric, err := shared.ParseMetric(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
		return
	}
	top, err := shared.ParseTop(r, h.DefaultTopN)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
		return
	}

	filtered, _ := workforce.Filter(dataset.Workers, dataset.ThirdParty, workforce.Selection{
		Sites:    shared.ParseList(r, "sites"),
		Category: category,
	})
	api.Success(w, workforce.Rank(filtered, metric, top), requestID)
}

func (h *Handler) handleWeights(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.dataset(w, r)
	if !ok {
		return
	}
	requestID := middleware.GetRequestID(r.Context())

	kind, err := shared.ParseWeightKind(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
		return
	}
	// the weight chart covers every site; the selection only highlights
	api.Success(w, workforce.ComputeWeights(dataset.Workers, shared.ParseList(r, "sites"), kind), requestID)
}

func (h *Handler) handleDecomposition(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.dataset(w, r)
	if !ok {
		return
	}
	requestID := middleware.GetRequestID(r.Context())

	category, err := shared.ParseCategory(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
		return
	}
	filtered, _ := workforce.Filter(dataset.Workers, dataset.ThirdParty, workforce.Selection{
		Sites:    shared.ParseList(r, "sites"),
		Category: category,
	})
	api.Success(w, workforce.Decompose(filtered, h.Loader.EarningsCatalog, h.Loader.DeductionsCatalog), requestID)
}

func (h *Handler) handleThirdParty(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.dataset(w, r)
	if !ok {
		return
	}
	_, filtered := workforce.Filter(dataset.Workers, dataset.ThirdParty, workforce.Selection{
		Sites: shared.ParseList(r, "sites"),
	})
	api.Success(w, workforce.GroupThirdParty(filtered), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	dataset, ok := h.dataset(w, r)
	if !ok {
		return
	}
	requestID := middleware.GetRequestID(r.Context())

	category, err := shared.ParseCategory(r)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
		return
	}
	sites := shared.ParseList(r, "sites")
	filtered, _ := workforce.Filter(dataset.Workers, dataset.ThirdParty, workforce.Selection{
		Sites:    sites,
		Category: category,
	})
	head := workforce.CountHeads(dataset.Workers, dataset.ThirdParty, sites)
	dec := workforce.Decompose(filtered, h.Loader.EarningsCatalog, h.Loader.DeductionsCatalog)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resumo-custo.pdf"`)
	if err := report.WriteCostSummary(w, sites, head, dec); err != nil {
		slog.Error("pdf render failed", "err", err, "requestId", requestID)
	}
}
