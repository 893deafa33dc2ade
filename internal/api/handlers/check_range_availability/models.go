package check_range_availability

// RangeAvailabilityResponse HTTP response model
type RangeAvailabilityResponse struct {
	ResourceID       string  `json:"resourceId"`
	StartDate        string  `json:"startDate"`
	EndDate          string  `json:"endDate"`
	RequiredCapacity float64 `json:"requiredCapacity"`
	Available        bool    `json:"available"`
}
