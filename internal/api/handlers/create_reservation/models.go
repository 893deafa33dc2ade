package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	reserveCapacity "github.com/m04kA/RMS-AvailabilityService/internal/usecase/reserve_capacity"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ResourceID string  `json:"resourceId"`
	OwnerRef   string  `json:"ownerRef"`
	StartDate  string  `json:"startDate"` // "2026-07-01"
	EndDate    string  `json:"endDate"`   // "2026-07-10"
	Amount     float64 `json:"amount"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	ResourceID string  `json:"resourceId"`
	OwnerRef   string  `json:"ownerRef"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*reserveCapacity.Request, error) {
	resourceID, err := uuid.Parse(r.ResourceID)
	if err != nil {
		return nil, err
	}

	ownerRef, err := uuid.Parse(r.OwnerRef)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &reserveCapacity.Request{
		ResourceID: resourceID,
		OwnerRef:   ownerRef,
		StartDate:  startDate,
		EndDate:    endDate,
		Amount:     r.Amount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveCapacity.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		ResourceID: resp.ResourceID.String(),
		OwnerRef:   resp.OwnerRef.String(),
		StartDate:  resp.StartDate.Format(domain.DateFormat),
		EndDate:    resp.EndDate.Format(domain.DateFormat),
		Amount:     resp.Amount,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
