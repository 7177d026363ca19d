package rules_import_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/AlekSi/pointer"
	"pincode-service/internal/entities"
	"pincode-service/internal/generated/dto"
	"pincode-service/internal/service/ingest"
	"pincode-service/pkg/logger"
)

const (
	shopHeader = "X-Shop-Domain"

	// multipart-поле с CSV-файлом
	fileField = "file"

	// защита от неограниченного тела запроса
	maxUploadBytes = 10 << 20
)

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
		h.writeJSON(w, http.StatusBadRequest, dto.ImportResponse{
			Ok:    false,
			Error: pointer.To("Missing shop"),
		})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile(fileField)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ImportResponse{
			Ok:    false,
			Error: pointer.To("Missing CSV file"),
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ImportResponse{
			Ok:    false,
			Error: pointer.To("Unreadable CSV file"),
		})
		return
	}

	report, err := h.service.Import(r.Context(), shop, string(content))
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrMissingShop):
			h.writeJSON(w, http.StatusBadRequest, dto.ImportResponse{
				Ok:    false,
				Error: pointer.To("Missing shop"),
			})
		case errors.Is(err, ingest.ErrMissingPincodeColumn):
			h.writeJSON(w, http.StatusBadRequest, dto.ImportResponse{
				Ok:    false,
				Error: pointer.To(err.Error()),
			})
		default:
			h.writeJSON(w, http.StatusInternalServerError, dto.ImportResponse{
				Ok:    false,
				Error: pointer.To("Internal error"),
			})
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.ImportResponse{
		Ok:           true,
		Inserted:     report.Inserted,
		Updated:      report.Updated,
		InvalidCount: report.InvalidCount,
		Invalid:      toDTOInvalid(report.Invalid),
	})
}

func toDTOInvalid(rows []entities.InvalidRow) []dto.ImportInvalidRow {
	result := make([]dto.ImportInvalidRow, 0, len(rows))
	for _, row := range rows {
		invalidDTO := dto.ImportInvalidRow{
			Row:    row.Row,
			Reason: row.Reason,
		}
		if row.Pincode != "" {
			invalidDTO.Pincode = pointer.To(row.Pincode)
		}
		result = append(result, invalidDTO)
	}

	return result
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, response dto.ImportResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
