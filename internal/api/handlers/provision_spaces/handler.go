package provision_spaces

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	provisionSpaces "github.com/m04kA/SMC-ParkingService/internal/usecase/provision_spaces"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAreaID      = "некорректный идентификатор зоны"
	msgInvalidInput       = "некорректные параметры диапазона"
	msgAreaNotFound       = "зона не найдена"
	msgRangeTooLarge      = "диапазон превышает лимит одного запроса"
	msgCapacityExceeded   = "превышен общий лимит количества мест"
)

type Handler struct {
	useCase ProvisionSpacesUseCase
	logger  Logger
}

func NewHandler(useCase ProvisionSpacesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/areas/{areaId}/spaces/bulk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	areaID, err := strconv.ParseInt(mux.Vars(r)["areaId"], 10, 64)
	if err != nil || areaID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	var req ProvisionSpacesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /areas/%d/spaces/bulk - Invalid request body: %v", areaID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(areaID))
	if err != nil {
		switch {
		case errors.Is(err, provisionSpaces.ErrInvalidInput):
			h.logger.Warn("POST /areas/%d/spaces/bulk - Invalid input: %v", areaID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, provisionSpaces.ErrAreaNotFound):
			h.logger.Warn("POST /areas/%d/spaces/bulk - Area not found", areaID)
			handlers.RespondNotFound(w, msgAreaNotFound)

		case errors.Is(err, provisionSpaces.ErrRangeTooLarge):
			h.logger.Warn("POST /areas/%d/spaces/bulk - Range too large: %v", areaID, err)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, provisionSpaces.ErrCapacityExceeded):
			h.logger.Warn("POST /areas/%d/spaces/bulk - Capacity exceeded: %v", areaID, err)
			handlers.RespondConflict(w, msgCapacityExceeded)

		default:
			h.logger.Error("POST /areas/%d/spaces/bulk - Failed to provision spaces: %v", areaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /areas/%d/spaces/bulk - Provisioned: created=%d, skipped=%d",
		areaID, result.Created, result.Skipped)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
