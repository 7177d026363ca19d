package lookup_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
	"pincode-service/internal/generated/dto"
	"pincode-service/internal/service/lookup"
	"pincode-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	cors    corsPolicy
}

func New(log handlerLogger, service Service, allowedOrigins []string, platformDomain string) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		cors: corsPolicy{
			allowedOrigins: allowedOrigins,
			platformDomain: platformDomain,
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// CORS-заголовки до любой логики: preflight уходит сразу с 204
	w.Header().Set("Access-Control-Allow-Origin", h.cors.resolveOrigin(r.Header.Get("Origin")))
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	shop := r.URL.Query().Get("shop")
	pincode := r.URL.Query().Get("pincode")

	result, err := h.service.Check(r.Context(), shop, pincode)
	if err != nil {
		switch {
		case errors.Is(err, lookup.ErrMissingShop):
			LookupRequestsTotal.WithLabelValues(resultMissingShop).Inc()
			h.writeJSON(w, http.StatusBadRequest, dto.LookupResponse{
				Ok:    false,
				Error: pointer.To("Missing shop parameter"),
			})
		default:
			LookupRequestsTotal.WithLabelValues(resultError).Inc()
			h.writeJSON(w, http.StatusInternalServerError, dto.LookupResponse{
				Ok:    false,
				Error: pointer.To("Internal error"),
			})
		}
		return
	}

	LookupRequestsTotal.WithLabelValues(metricResult(result.Deliverable, result.Reason)).Inc()

	response := dto.LookupResponse{
		Ok:          true,
		Deliverable: pointer.To(result.Deliverable),
		Message:     pointer.To(result.Message),
	}
	if result.Deliverable {
		response.EtaMinDays = result.EtaMinDays
		response.EtaMaxDays = result.EtaMaxDays
		response.CodAvailable = pointer.To(result.CodAvailable)
		response.ShippingFee = result.ShippingFee
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response dto.LookupResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func metricResult(deliverable bool, reason string) string {
	switch {
	case deliverable:
		return resultDeliverable
	case reason == lookup.ReasonInvalidPincode:
		return resultInvalidPincode
	default:
		return resultNotDeliverable
	}
}
