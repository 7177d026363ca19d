package rule_delete

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
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
		h.writeJSON(w, http.StatusBadRequest, dto.ActionResponse{
			Ok:    false,
			Error: pointer.To("Missing shop"),
		})
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ActionResponse{
			Ok:    false,
			Error: pointer.To("Invalid rule id"),
		})
		return
	}

	if err := h.service.DeleteRule(r.Context(), shop, id); err != nil {
		switch {
		case errors.Is(err, rule.ErrRuleNotFound):
			// удаление несуществующего id — явный отказ, не тихий успех
			h.writeJSON(w, http.StatusNotFound, dto.ActionResponse{
				Ok:    false,
				Error: pointer.To("Rule not found"),
			})
		case errors.Is(err, rule.ErrMissingShop):
			h.writeJSON(w, http.StatusBadRequest, dto.ActionResponse{
				Ok:    false,
				Error: pointer.To("Missing shop"),
			})
		default:
			h.writeJSON(w, http.StatusInternalServerError, dto.ActionResponse{
				Ok:    false,
				Error: pointer.To("Internal error"),
			})
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.ActionResponse{Ok: true})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response dto.ActionResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
