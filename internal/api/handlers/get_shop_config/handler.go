package get_shop_config

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

type Handler struct {
	schedule ScheduleReader
	logger   Logger
}

func NewHandler(schedule ScheduleReader, logger Logger) *Handler {
	return &Handler{
		schedule: schedule,
		logger:   logger,
	}
}

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromDomain(h.schedule.Config(), h.schedule.Slots())

	h.logger.Info("GET /config - Shop config retrieved: %d slots", len(response.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
