package reserve_capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RMS-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/RMS-AvailabilityService/internal/service/ledger"
)

// UseCase для резервирования ёмкости ресурса под аренду
type UseCase struct {
	ledger        Ledger
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewUseCase создает новый usecase резервирования ёмкости
func NewUseCase(ledgerService Ledger, catalogClient CatalogServiceClient, logger Logger) *UseCase {
	return &UseCase{
		ledger:        ledgerService,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute резервирует ёмкость ресурса на диапазон дат
// Перед резервацией проверяет существование ресурса в каталоге
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Execute: validation failed: %v", err)
		return nil, err
	}

	resource, err := uc.catalogClient.GetResource(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrResourceNotFound) {
			uc.logger.Warn("Execute: resource=%s not found in catalog", req.ResourceID)
			return nil, fmt.Errorf("%w: resourceID=%s", ErrResourceNotFound, req.ResourceID)
		}
		uc.logger.Error("Execute: catalog lookup failed for resource=%s: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: Execute - catalog lookup: %v", ErrInternal, err)
	}

	reservation, err := uc.ledger.Reserve(ctx, resource.ID, req.OwnerRef, req.StartDate, req.EndDate, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidRange):
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		case errors.Is(err, ledger.ErrInvalidRequest):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, ledger.ErrNoAvailabilityDeclared):
			return nil, fmt.Errorf("%w: %v", ErrNoAvailabilityDeclared, err)
		case errors.Is(err, ledger.ErrInsufficientCapacity):
			return nil, fmt.Errorf("%w: %v", ErrInsufficientCapacity, err)
		case errors.Is(err, ledger.ErrReservationConflict):
			return nil, fmt.Errorf("%w: %v", ErrReservationConflict, err)
		default:
			uc.logger.Error("Execute: reserve failed for resource=%s: %v", req.ResourceID, err)
			return nil, fmt.Errorf("%w: Execute - reserve: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("Execute: reservation id=%d created for resource=%s, owner=%s",
		reservation.ID, reservation.ResourceID, reservation.OwnerRef)

	return &Response{
		ID:         reservation.ID,
		ResourceID: reservation.ResourceID,
		OwnerRef:   reservation.OwnerRef,
		StartDate:  reservation.StartDate,
		EndDate:    reservation.EndDate,
		Amount:     reservation.ReservedCapacity,
		CreatedAt:  reservation.CreatedAt,
	}, nil
}
