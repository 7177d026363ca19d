package dashboard_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"pincode-service/internal/generated/dto"
	"pincode-service/internal/service/rule"
	"pincode-service/pkg/logger"
)

const shopHeader = "X-Shop-Domain"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	shop := r.Header.Get(shopHeader)
	if shop == "" {
		h.writeError(w, http.StatusBadRequest, "Missing shop")
		return
	}

	summary, err := h.service.GetSummary(r.Context(), shop)
	if err != nil {
		switch {
		case errors.Is(err, rule.ErrMissingShop):
			h.writeError(w, http.StatusBadRequest, "Missing shop")
		default:
			h.writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.DashboardResponse{
		Ok:            true,
		Total:         summary.Total,
		Deliverable:   summary.Deliverable,
		Blocked:       summary.Blocked,
		LastCreatedAt: summary.LastCreatedAt,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": message}); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response dto.DashboardResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
