package get_owner_reservations

import (
	"time"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

// ReservationResponse HTTP модель одной резервации
type ReservationResponse struct {
	ID         int64   `json:"id"`
	ResourceID string  `json:"resourceId"`
	OwnerRef   string  `json:"ownerRef"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"createdAt"`
}

// OwnerReservationsResponse HTTP response model
type OwnerReservationsResponse struct {
	OwnerRef     string                `json:"ownerRef"`
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomain конвертирует domain модели в HTTP response
func FromDomain(ownerRef string, reservations []*domain.Reservation) *OwnerReservationsResponse {
	resp := &OwnerReservationsResponse{
		OwnerRef:     ownerRef,
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, res := range reservations {
		resp.Reservations = append(resp.Reservations, ReservationResponse{
			ID:         res.ID,
			ResourceID: res.ResourceID.String(),
			OwnerRef:   res.OwnerRef.String(),
			StartDate:  res.StartDate.Format(domain.DateFormat),
			EndDate:    res.EndDate.Format(domain.DateFormat),
			Amount:     res.ReservedCapacity,
			CreatedAt:  res.CreatedAt.Format(time.RFC3339),
		})
	}

	return resp
}
