package find_free_intervals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RMS-AvailabilityService/internal/api/handlers"
	findFreeIntervals "github.com/m04kA/RMS-AvailabilityService/internal/usecase/find_free_intervals"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingDates      = "параметры startDate и endDate обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange      = "дата начала позже даты окончания"
	msgMissingCapacity   = "параметр requiredCapacity обязателен"
	msgInvalidCapacity   = "некорректная требуемая ёмкость"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	useCase FindFreeIntervalsUseCase
	logger  Logger
}

func NewHandler(useCase FindFreeIntervalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/free-intervals
// Query params: startDate, endDate (required, YYYY-MM-DD), requiredCapacity (required, > 0)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceIDStr := vars["resourceId"]
	resourceID, err := uuid.Parse(resourceIDStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/free-intervals - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /resources/{id}/free-intervals - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	capacityStr := r.URL.Query().Get("requiredCapacity")
	if capacityStr == "" {
		h.logger.Warn("GET /resources/{id}/free-intervals - Missing required capacity")
		handlers.RespondBadRequest(w, msgMissingCapacity)
		return
	}

	requiredCapacity, err := strconv.ParseFloat(capacityStr, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/free-intervals - Invalid required capacity: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCapacity)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(resourceID, startDateStr, endDateStr, requiredCapacity)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/free-intervals - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findFreeIntervals.ErrInvalidRange):
			h.logger.Warn("GET /resources/{id}/free-intervals - Invalid range: resource_id=%s", resourceID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, findFreeIntervals.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/free-intervals - Invalid input: resource_id=%s", resourceID)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, findFreeIntervals.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/free-intervals - Resource not found: resource_id=%s", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		default:
			h.logger.Error("GET /resources/{id}/free-intervals - Failed to find intervals: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/free-intervals - Intervals retrieved successfully: resource_id=%s, range=[%s..%s], required=%.2f, intervals_count=%d",
		resourceID, startDateStr, endDateStr, requiredCapacity, len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
