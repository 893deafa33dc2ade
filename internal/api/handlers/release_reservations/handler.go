package release_reservations

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

// Handle DELETE /api/v1/owners/{ownerRef}/reservations
// Идемпотентно: повторный вызов для той же аренды отдает releasedCount=0
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ownerRefStr := vars["ownerRef"]
	ownerRef, err := uuid.Parse(ownerRefStr)
	if err != nil {
		h.logger.Warn("DELETE /owners/{ownerRef}/reservations - Invalid owner ref: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOwnerRef)
		return
	}

	released, err := h.service.Release(r.Context(), ownerRef)
	if err != nil {
		h.logger.Error("DELETE /owners/{ownerRef}/reservations - Failed to release: owner_ref=%s, error=%v",
			ownerRef, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /owners/{ownerRef}/reservations - Released successfully: owner_ref=%s, count=%d",
		ownerRef, released)
	handlers.RespondJSON(w, http.StatusOK, &ReleaseResponse{
		OwnerRef:      ownerRef.String(),
		ReleasedCount: released,
	})
}
