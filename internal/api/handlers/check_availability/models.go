package check_availability

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-ParkingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	SpaceNumber string `json:"spaceNumber"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Available   bool   `json:"available"`
}

// ToUseCaseRequest собирает модель use case из параметров запроса
// spaceNumber приходит из пути, дата и время из query-параметров
func ToUseCaseRequest(spaceNumber, date, startTime, endTime string) (*checkAvailability.Request, error) {
	parsedDate, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, err
	}

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		SpaceNumber: spaceNumber,
		Date:        parsedDate,
		StartTime:   start,
		EndTime:     end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		SpaceNumber: resp.SpaceNumber,
		StartTime:   resp.StartTime.Format(time.RFC3339),
		EndTime:     resp.EndTime.Format(time.RFC3339),
		Available:   resp.Available,
	}
}
