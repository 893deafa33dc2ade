package find_free_intervals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RMS-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/RMS-AvailabilityService/internal/service/planner"
)

// UseCase для поиска свободных интервалов ресурса
type UseCase struct {
	planner       Planner
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewUseCase создает новый usecase поиска свободных интервалов
func NewUseCase(plannerService Planner, catalogClient CatalogServiceClient, logger Logger) *UseCase {
	return &UseCase{
		planner:       plannerService,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute находит свободные интервалы ресурса с требуемой ёмкостью
// Перед поиском проверяет существование ресурса в каталоге
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

	intervals, err := uc.planner.FindFreeIntervals(ctx, resource.ID, req.StartDate, req.EndDate, req.RequiredCapacity)
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrInvalidRange):
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		case errors.Is(err, planner.ErrInvalidRequest):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("Execute: planner failed for resource=%s: %v", req.ResourceID, err)
			return nil, fmt.Errorf("%w: Execute - planner: %v", ErrInternal, err)
		}
	}

	resp := &Response{
		ResourceID: resource.ID,
		Intervals:  make([]FreeInterval, 0, len(intervals)),
	}
	for _, iv := range intervals {
		resp.Intervals = append(resp.Intervals, FreeInterval{
			StartDate:            iv.StartDate,
			EndDate:              iv.EndDate,
			MinAvailableCapacity: iv.MinAvailableCapacity,
			IsFullyAvailable:     iv.IsFullyAvailable,
		})
	}

	return resp, nil
}
