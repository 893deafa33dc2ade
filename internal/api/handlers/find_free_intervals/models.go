package find_free_intervals

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RMS-AvailabilityService/internal/domain"
	findFreeIntervals "github.com/m04kA/RMS-AvailabilityService/internal/usecase/find_free_intervals"
)

// FreeIntervalResponse HTTP модель одного свободного интервала
type FreeIntervalResponse struct {
	StartDate            string  `json:"startDate"`
	EndDate              string  `json:"endDate"`
	MinAvailableCapacity float64 `json:"minAvailableCapacity"`
	IsFullyAvailable     bool    `json:"isFullyAvailable"`
}

// FreeIntervalsResponse HTTP response model
type FreeIntervalsResponse struct {
	ResourceID string                 `json:"resourceId"`
	Intervals  []FreeIntervalResponse `json:"intervals"`
}

// ToUseCaseRequest собирает запрос к use case из параметров URL
func ToUseCaseRequest(resourceID uuid.UUID, startDateStr, endDateStr string, requiredCapacity float64) (*findFreeIntervals.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &findFreeIntervals.Request{
		ResourceID:       resourceID,
		StartDate:        startDate,
		EndDate:          endDate,
		RequiredCapacity: requiredCapacity,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findFreeIntervals.Response) *FreeIntervalsResponse {
	out := &FreeIntervalsResponse{
		ResourceID: resp.ResourceID.String(),
		Intervals:  make([]FreeIntervalResponse, 0, len(resp.Intervals)),
	}

	for _, iv := range resp.Intervals {
		out.Intervals = append(out.Intervals, FreeIntervalResponse{
			StartDate:            iv.StartDate.Format(domain.DateFormat),
			EndDate:              iv.EndDate.Format(domain.DateFormat),
			MinAvailableCapacity: iv.MinAvailableCapacity,
			IsFullyAvailable:     iv.IsFullyAvailable,
		})
	}

	return out
}
