package create_availability_period

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RMS-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/RMS-AvailabilityService/internal/service/periods"
)

const (
	msgInvalidResourceID  = "некорректный ID ресурса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата начала позже даты окончания"
	msgInvalidCapacity    = "ёмкость не может быть отрицательной"
	msgPeriodOverlap      = "окно пересекается с уже объявленным окном доступности"
)

type Handler struct {
	service PeriodsService
	logger  Logger
}

func NewHandler(service PeriodsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources/{resourceId}/availability-periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceIDStr := vars["resourceId"]
	resourceID, err := uuid.Parse(resourceIDStr)
	if err != nil {
		h.logger.Warn("POST /resources/{id}/availability-periods - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	var req CreatePeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources/{id}/availability-periods - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startDate, endDate, err := req.ParseDates()
	if err != nil {
		h.logger.Warn("POST /resources/{id}/availability-periods - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	period, err := h.service.Publish(r.Context(), resourceID, startDate, endDate, req.TotalCapacity)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrInvalidRange):
			h.logger.Warn("POST /resources/{id}/availability-periods - Invalid range: resource_id=%s", resourceID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, periods.ErrInvalidCapacity):
			h.logger.Warn("POST /resources/{id}/availability-periods - Invalid capacity: resource_id=%s", resourceID)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, periods.ErrPeriodOverlap):
			h.logger.Warn("POST /resources/{id}/availability-periods - Period overlap: resource_id=%s, range=[%s..%s]",
				resourceID, req.StartDate, req.EndDate)
			handlers.RespondError(w, http.StatusConflict, msgPeriodOverlap)

		default:
			h.logger.Error("POST /resources/{id}/availability-periods - Failed to create period: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources/{id}/availability-periods - Period created successfully: period_id=%d, resource_id=%s",
		period.ID, resourceID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(period))
}
