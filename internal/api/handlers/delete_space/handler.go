package delete_space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/spaces"
)

const (
	msgInvalidSpaceID    = "некорректный идентификатор места"
	msgSpaceNotFound     = "парковочное место не найдено"
	msgHasActiveBookings = "у места есть незавершённые бронирования"
)

type Handler struct {
	service SpacesService
	logger  Logger
}

func NewHandler(service SpacesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := strconv.ParseInt(mux.Vars(r)["spaceId"], 10, 64)
	if err != nil || spaceID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	if err := h.service.DeleteSpace(r.Context(), spaceID); err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("DELETE /spaces/%d - Space not found", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, spaces.ErrHasActiveBookings):
			h.logger.Warn("DELETE /spaces/%d - Active bookings exist", spaceID)
			handlers.RespondConflict(w, msgHasActiveBookings)

		default:
			h.logger.Error("DELETE /spaces/%d - Failed to delete space: %v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /spaces/%d - Space deleted successfully", spaceID)
	w.WriteHeader(http.StatusNoContent)
}
