package provision_spaces

import (
	"context"

	provisionSpaces "github.com/m04kA/SMC-ParkingService/internal/usecase/provision_spaces"
)

type ProvisionSpacesUseCase interface {
	Execute(ctx context.Context, req *provisionSpaces.Request) (*provisionSpaces.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
