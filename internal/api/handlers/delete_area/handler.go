package delete_area

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/spaces"
)

const (
	msgInvalidAreaID     = "некорректный идентификатор зоны"
	msgAreaNotFound      = "зона не найдена"
	msgHasActiveBookings = "в зоне есть места с незавершёнными бронированиями"
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

// Handle DELETE /api/v1/areas/{areaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	areaID, err := strconv.ParseInt(mux.Vars(r)["areaId"], 10, 64)
	if err != nil || areaID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAreaID)
		return
	}

	if err := h.service.DeleteArea(r.Context(), areaID); err != nil {
		switch {
		case errors.Is(err, spaces.ErrAreaNotFound):
			h.logger.Warn("DELETE /areas/%d - Area not found", areaID)
			handlers.RespondNotFound(w, msgAreaNotFound)

		case errors.Is(err, spaces.ErrHasActiveBookings):
			h.logger.Warn("DELETE /areas/%d - Active bookings exist", areaID)
			handlers.RespondConflict(w, msgHasActiveBookings)

		default:
			h.logger.Error("DELETE /areas/%d - Failed to delete area: %v", areaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /areas/%d - Area deleted successfully", areaID)
	w.WriteHeader(http.StatusNoContent)
}
