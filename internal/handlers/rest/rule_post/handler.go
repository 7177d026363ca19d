package rule_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"pincode-service/internal/entities"
	"pincode-service/internal/generated/dto"
	"pincode-service/internal/service/rule"
	"pincode-service/pkg/logger"
)

// shopHeader выставляется auth-прокси платформы; сама аутентификация вне
// зоны ответственности сервиса.
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

	var upsertDTO dto.RuleUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&upsertDTO); err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ActionResponse{
			Ok:    false,
			Error: pointer.To("Invalid request body"),
		})
		return
	}

	submission := entities.RuleSubmission{
		Shop:         shop,
		Pincode:      upsertDTO.Pincode,
		Deliverable:  upsertDTO.Deliverable,
		EtaMinDays:   upsertDTO.EtaMinDays,
		EtaMaxDays:   upsertDTO.EtaMaxDays,
		CodAvailable: upsertDTO.CodAvailable,
		ShippingFee:  upsertDTO.ShippingFee,
	}

	if err := h.service.UpsertRule(r.Context(), submission); err != nil {
		switch {
		case errors.Is(err, rule.ErrMissingShop),
			errors.Is(err, rule.ErrInvalidPincode),
			errors.Is(err, rule.ErrInvalidEtaMinDays),
			errors.Is(err, rule.ErrInvalidEtaMaxDays),
			errors.Is(err, rule.ErrInvalidShippingFee):
			h.writeJSON(w, http.StatusBadRequest, dto.ActionResponse{
				Ok:    false,
				Error: pointer.To(err.Error()),
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
