package get_day_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	getDayBookings "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_day_bookings"
)

const msgInvalidDate = "Select a valid date (YYYY-MM-DD)."

type Handler struct {
	useCase GetDayBookingsUseCase
	logger  Logger
}

func NewHandler(useCase GetDayBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.useCase.Execute(r.Context(), &getDayBookings.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDayBookings.ErrInvalidDate):
			h.logger.Warn("GET /days/{date}/bookings - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /days/{date}/bookings - Failed to get bookings: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /days/{date}/bookings - Bookings retrieved successfully: date=%s, total=%d",
		date, result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
