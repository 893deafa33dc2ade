package get_availability_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RMS-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	"github.com/m04kA/RMS-AvailabilityService/internal/service/projection"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingDates      = "параметры startDate и endDate обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange      = "дата начала позже даты окончания"
	msgIntegrityFault    = "обнаружено нарушение инварианта ёмкости"
)

type Handler struct {
	service ProjectionService
	logger  Logger
}

func NewHandler(service ProjectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/availability-report
// Query params: startDate, endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceIDStr := vars["resourceId"]
	resourceID, err := uuid.Parse(resourceIDStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability-report - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /resources/{id}/availability-report - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability-report - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability-report - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	report, err := h.service.Project(r.Context(), resourceID, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, projection.ErrInvalidRange):
			h.logger.Warn("GET /resources/{id}/availability-report - Invalid range: resource_id=%s", resourceID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, projection.ErrIntegrityViolation):
			h.logger.Error("GET /resources/{id}/availability-report - Integrity fault: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgIntegrityFault)

		default:
			h.logger.Error("GET /resources/{id}/availability-report - Failed to build report: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/availability-report - Report built successfully: resource_id=%s, range=[%s..%s], status=%s",
		resourceID, startDateStr, endDateStr, report.Status)
	handlers.RespondJSON(w, http.StatusOK, report)
}
