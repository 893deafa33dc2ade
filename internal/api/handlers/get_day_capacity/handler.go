package get_day_capacity

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RMS-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/internal/service/ledger"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgIntegrityFault    = "обнаружено нарушение инварианта ёмкости"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/capacity
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceIDStr := vars["resourceId"]
	resourceID, err := uuid.Parse(resourceIDStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/capacity - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /resources/{id}/capacity - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/capacity - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	capacity, err := h.service.DayCapacity(r.Context(), resourceID, date)
	if err != nil {
		if errors.Is(err, ledger.ErrIntegrityViolation) {
			h.logger.Error("GET /resources/{id}/capacity - Integrity fault: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgIntegrityFault)
			return
		}
		h.logger.Error("GET /resources/{id}/capacity - Failed to get capacity: resource_id=%s, error=%v",
			resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources/{id}/capacity - Capacity retrieved successfully: resource_id=%s, date=%s, available=%.2f",
		resourceID, dateStr, capacity.AvailableCapacity)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(resourceID.String(), capacity))
}
