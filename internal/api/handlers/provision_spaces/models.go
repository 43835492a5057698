package provision_spaces

import (
	"fmt"

	provisionSpaces "github.com/m04kA/SMC-ParkingService/internal/usecase/provision_spaces"
)

// ProvisionSpacesRequest HTTP request model
type ProvisionSpacesRequest struct {
	Prefix      string `json:"prefix"`
	StartNumber int    `json:"startNumber"`
	EndNumber   int    `json:"endNumber"`
}

// ProvisionSpacesResponse HTTP response model
type ProvisionSpacesResponse struct {
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
	Message string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// areaID приходит из пути запроса
func (r *ProvisionSpacesRequest) ToUseCaseRequest(areaID int64) *provisionSpaces.Request {
	return &provisionSpaces.Request{
		AreaID:      areaID,
		Prefix:      r.Prefix,
		StartNumber: r.StartNumber,
		EndNumber:   r.EndNumber,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *provisionSpaces.Response) *ProvisionSpacesResponse {
	return &ProvisionSpacesResponse{
		Created: resp.Created,
		Skipped: resp.Skipped,
		Message: fmt.Sprintf("создано мест: %d, пропущено существующих: %d", resp.Created, resp.Skipped),
	}
}
