package check_range_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RMS-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/internal/service/ledger"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingDates      = "параметры startDate и endDate обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange      = "дата начала позже даты окончания"
	msgMissingCapacity   = "параметр requiredCapacity обязателен"
	msgInvalidCapacity   = "некорректная требуемая ёмкость"
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

// Handle GET /api/v1/resources/{resourceId}/availability
// Query params: startDate, endDate (required, YYYY-MM-DD), requiredCapacity (required, > 0)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceIDStr := vars["resourceId"]
	resourceID, err := uuid.Parse(resourceIDStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /resources/{id}/availability - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	capacityStr := r.URL.Query().Get("requiredCapacity")
	if capacityStr == "" {
		h.logger.Warn("GET /resources/{id}/availability - Missing required capacity")
		handlers.RespondBadRequest(w, msgMissingCapacity)
		return
	}

	requiredCapacity, err := strconv.ParseFloat(capacityStr, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid required capacity: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCapacity)
		return
	}

	available, err := h.service.IsRangeAvailable(r.Context(), resourceID, startDate, endDate, requiredCapacity)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidRange):
			h.logger.Warn("GET /resources/{id}/availability - Invalid range: resource_id=%s", resourceID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, ledger.ErrInvalidRequest):
			h.logger.Warn("GET /resources/{id}/availability - Invalid capacity: resource_id=%s", resourceID)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, ledger.ErrIntegrityViolation):
			h.logger.Error("GET /resources/{id}/availability - Integrity fault: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgIntegrityFault)

		default:
			h.logger.Error("GET /resources/{id}/availability - Failed to check availability: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/availability - Availability checked successfully: resource_id=%s, range=[%s..%s], required=%.2f, available=%t",
		resourceID, startDateStr, endDateStr, requiredCapacity, available)
	handlers.RespondJSON(w, http.StatusOK, &RangeAvailabilityResponse{
		ResourceID:       resourceID.String(),
		StartDate:        startDate.Format(domain.DateFormat),
		EndDate:          endDate.Format(domain.DateFormat),
		RequiredCapacity: requiredCapacity,
		Available:        available,
	})
}
