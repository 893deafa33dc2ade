package get_availability_periods

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RMS-AvailabilityService/internal/api/handlers"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
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

// Handle GET /api/v1/resources/{resourceId}/availability-periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceIDStr := vars["resourceId"]
	resourceID, err := uuid.Parse(resourceIDStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability-periods - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	periods, err := h.service.List(r.Context(), resourceID)
	if err != nil {
		h.logger.Error("GET /resources/{id}/availability-periods - Failed to get periods: resource_id=%s, error=%v",
			resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources/{id}/availability-periods - Periods retrieved successfully: resource_id=%s, count=%d",
		resourceID, len(periods))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(resourceID.String(), periods))
}
