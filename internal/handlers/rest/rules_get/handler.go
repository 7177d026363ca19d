package rules_get

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
		h.writeJSON(w, http.StatusBadRequest, dto.RulesResponse{
			Ok:    false,
			Error: pointer.To("Missing shop"),
		})
		return
	}

	var deliverable *bool
	switch r.URL.Query().Get("deliverable") {
	case "true":
		deliverable = pointer.To(true)
	case "false":
		deliverable = pointer.To(false)
	}

	rules, err := h.service.GetRules(r.Context(), shop, deliverable)
	if err != nil {
		switch {
		case errors.Is(err, rule.ErrMissingShop):
			h.writeJSON(w, http.StatusBadRequest, dto.RulesResponse{
				Ok:    false,
				Error: pointer.To("Missing shop"),
			})
		default:
			h.writeJSON(w, http.StatusInternalServerError, dto.RulesResponse{
				Ok:    false,
				Error: pointer.To("Internal error"),
			})
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.RulesResponse{
		Ok:    true,
		Rules: toDTOList(rules),
	})
}

func toDTOList(rules []entities.Rule) []dto.Rule {
	result := make([]dto.Rule, 0, len(rules))
	for _, ruleItem := range rules {
		result = append(result, dto.Rule{
			ID:           ruleItem.ID,
			Pincode:      ruleItem.Pincode,
			Deliverable:  ruleItem.Deliverable,
			EtaMinDays:   ruleItem.EtaMinDays,
			EtaMaxDays:   ruleItem.EtaMaxDays,
			CodAvailable: ruleItem.CodAvailable,
			ShippingFee:  ruleItem.ShippingFee,
			CreatedAt:    ruleItem.CreatedAt,
			UpdatedAt:    ruleItem.UpdatedAt,
		})
	}

	return result
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response dto.RulesResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
