package rentalservice

import "github.com/google/uuid"

// Rental модель аренды из rental-workflow сервиса
// OwnerRef резервации - это идентификатор аренды в этом сервисе
type Rental struct {
	Ref        uuid.UUID `json:"ref"`
	RenterName string    `json:"renter_name"`
	Status     string    `json:"status"`
}

// ErrorResponse модель ошибки от RentalService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
