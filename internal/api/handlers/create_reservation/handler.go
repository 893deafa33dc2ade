package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/RMS-AvailabilityService/internal/api/handlers"
	reserveCapacity "github.com/m04kA/RMS-AvailabilityService/internal/usecase/reserve_capacity"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidRequestFields   = "некорректные поля запроса, ожидаются UUID и даты YYYY-MM-DD"
	msgInvalidRange           = "дата начала позже даты окончания"
	msgInvalidAmount          = "некорректные параметры резервации"
	msgResourceNotFound       = "ресурс не найден"
	msgNoAvailabilityDeclared = "на запрошенные даты не объявлена доступность"
	msgInsufficientCapacity   = "недостаточно свободной ёмкости на запрошенные даты"
	msgReservationConflict    = "конфликт конкурентных резерваций, повторите запрос"
)

type Handler struct {
	useCase ReserveCapacityUseCase
	logger  Logger
}

func NewHandler(useCase ReserveCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом UUID и дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestFields)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, reserveCapacity.ErrInvalidRange):
			h.logger.Warn("POST /reservations - Invalid range: resource_id=%s", req.ResourceID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, reserveCapacity.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: resource_id=%s", req.ResourceID)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		case errors.Is(err, reserveCapacity.ErrResourceNotFound):
			h.logger.Warn("POST /reservations - Resource not found: resource_id=%s", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, reserveCapacity.ErrNoAvailabilityDeclared):
			h.logger.Warn("POST /reservations - No availability declared: resource_id=%s, range=[%s..%s]",
				req.ResourceID, req.StartDate, req.EndDate)
			handlers.RespondError(w, http.StatusConflict, msgNoAvailabilityDeclared)

		case errors.Is(err, reserveCapacity.ErrInsufficientCapacity):
			h.logger.Warn("POST /reservations - Insufficient capacity: resource_id=%s, range=[%s..%s], amount=%.2f",
				req.ResourceID, req.StartDate, req.EndDate, req.Amount)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientCapacity)

		case errors.Is(err, reserveCapacity.ErrReservationConflict):
			h.logger.Warn("POST /reservations - Reservation conflict: resource_id=%s", req.ResourceID)
			handlers.RespondError(w, http.StatusConflict, msgReservationConflict)

		default:
			h.logger.Error("POST /reservations - Failed to reserve capacity: resource_id=%s, error=%v",
				req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, resource_id=%s, owner_ref=%s",
		result.ID, req.ResourceID, req.OwnerRef)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
