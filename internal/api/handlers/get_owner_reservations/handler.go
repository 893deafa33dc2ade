package get_owner_reservations

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/RMS-AvailabilityService/internal/api/handlers"
)

const (
	msgInvalidOwnerRef = "некорректный идентификатор аренды"
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

// Handle GET /api/v1/owners/{ownerRef}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ownerRefStr := vars["ownerRef"]
	ownerRef, err := uuid.Parse(ownerRefStr)
	if err != nil {
		h.logger.Warn("GET /owners/{ownerRef}/reservations - Invalid owner ref: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerRef)
		return
	}

	reservations, err := h.service.OwnerReservations(r.Context(), ownerRef)
	if err != nil {
		h.logger.Error("GET /owners/{ownerRef}/reservations - Failed to get reservations: owner_ref=%s, error=%v",
			ownerRef, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /owners/{ownerRef}/reservations - Reservations retrieved successfully: owner_ref=%s, count=%d",
		ownerRef, len(reservations))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(ownerRef.String(), reservations))
}
