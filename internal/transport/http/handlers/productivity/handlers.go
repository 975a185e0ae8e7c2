package productivityhandler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"custoplan/internal/domain/productivity"
	"custoplan/internal/ingest"
	"custoplan/internal/transport/http/api"
	"custoplan/internal/transport/http/middleware"
	"custoplan/internal/transport/http/shared"
)

type Handler struct {
	Loader   *ingest.Loader
	Workbook string
}

func NewHandler(loader *ingest.Loader, workbook string) *Handler {
	return &Handler{Loader: loader, Workbook: workbook}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/productivity", h.handleAggregate)
	r.Get("/productivity/months", h.handleMonths)
}

func (h *Handler) records(w http.ResponseWriter, r *http.Request) ([]productivity.Record, bool) {
	records, err := h.Loader.Productivity(h.Workbook)
	if err != nil {
		slog.Error("productivity workbook load failed", "err", err, "path", h.Workbook)
		api.Fail(w, http.StatusServiceUnavailable, "dataset_unavailable", "productivity data source is unavailable", middleware.GetRequestID(r.Context()))
		return nil, false
	}
	return records, true
}

func (h *Handler) handleAggregate(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	query := productivity.Query{
		SiteType: strings.TrimSpace(r.URL.Query().Get("siteType")),
		Service:  strings.TrimSpace(r.URL.Query().Get("service")),
		Months:   shared.ParseList(r, "months"),
	}
	api.Success(w, productivity.Aggregate(records, query), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMonths(w http.ResponseWriter, r *http.Request) {
	records, ok := h.records(w, r)
	if !ok {
		return
	}
	api.Success(w, productivity.MonthLabels(records), middleware.GetRequestID(r.Context()))
}
