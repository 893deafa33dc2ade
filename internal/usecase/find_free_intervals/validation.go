package find_free_intervals

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID == uuid.Nil {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if !domain.ValidRange(req.StartDate, req.EndDate) {
		return fmt.Errorf("%w: startDate is after endDate", ErrInvalidRange)
	}

	if req.RequiredCapacity <= 0 {
		return fmt.Errorf("%w: requiredCapacity must be positive", ErrInvalidInput)
	}

	return nil
}
