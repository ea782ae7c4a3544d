package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fut-data/internal/domain/coach"
	"github.com/riskibarqy/fut-data/internal/domain/datamode"
	"github.com/riskibarqy/fut-data/internal/interfaces/csvexport"
	"github.com/riskibarqy/fut-data/internal/usecase"
)

const coachSearchNote = "Informe um nome para buscar treinadores na API-Football"

type coachesResponse struct {
	Count   int             `json:"count"`
	Coaches []coach.Coach   `json:"coaches"`
	Filters coachFiltersDTO `json:"filters"`
	Source  datamode.Mode   `json:"source"`
	Note    string          `json:"note,omitempty"`
}

type coachFiltersDTO struct {
	Q string `json:"q"`
}

type coachDetailResponse struct {
	Coach         coach.Coach          `json:"coach"`
	Impact        coach.Impact         `json:"impact"`
	ImpactHistory []coach.ImpactRecord `json:"impact_history"`
	Source        datamode.Mode        `json:"source"`
}

func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoaches")
	defer span.End()

	q := r.URL.Query().Get("q")
	coaches, err := h.coachService.Search(ctx, q)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}
	if coaches == nil {
		coaches = []coach.Coach{}
	}

	resp := coachesResponse{
		Count:   len(coaches),
		Coaches: coaches,
		Filters: coachFiltersDTO{Q: q},
		Source:  h.source(),
	}
	if q == "" {
		resp.Note = coachSearchNote
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

func (h *Handler) ExportCoachesCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportCoachesCSV")
	defer span.End()

	coaches, err := h.coachService.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeCSV(ctx, w, h.logger, "coaches", h.now(), csvexport.Coaches(coaches))
}

func (h *Handler) GetCoachByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCoachByID")
	defer span.End()

	coachID, err := usecase.ParsePositiveInt(r.PathValue("id"), "ID do treinador")
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	detail, err := h.coachService.Get(ctx, coachID)
	if err != nil {
		writeError(ctx, w, h.logger, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, coachDetailResponse{
		Coach:         detail.Coach,
		Impact:        detail.Impact,
		ImpactHistory: detail.ImpactHistory,
		Source:        h.source(),
	})
}
