package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-ParkingService/internal/usecase/check_availability"
)

const (
	msgInvalidDateTime = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput    = "не заполнены обязательные параметры запроса"
	msgSpaceNotFound   = "парковочное место не найдено"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceNumber}/availability?date=...&start_time=...&end_time=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceNumber := mux.Vars(r)["spaceNumber"]
	query := r.URL.Query()

	req, err := ToUseCaseRequest(
		spaceNumber,
		query.Get("date"),
		query.Get("start_time"),
		query.Get("end_time"),
	)
	if err != nil {
		h.logger.Warn("GET /spaces/%s/availability - Failed to parse query: %v", spaceNumber, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /spaces/%s/availability - Invalid input: %v", spaceNumber, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, checkAvailability.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/%s/availability - Space not found", spaceNumber)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		default:
			h.logger.Error("GET /spaces/%s/availability - Failed to check availability: %v", spaceNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
