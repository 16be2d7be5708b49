package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID   = "Invalid booking ID."
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidDate        = "Select a valid date (YYYY-MM-DD)."
	msgInvalidInput       = "Booking ID and slot are required."
	msgNotConfirmed       = "Cancel this booking? Confirm to continue."
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Декодируем body
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrNotConfirmed):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Not confirmed: booking_id=%d", bookingID)
			handlers.RespondPreconditionFailed(w, msgNotConfirmed)

		case errors.Is(err, cancelBooking.ErrInvalidDate):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid date: booking_id=%d, date=%q", bookingID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: booking_id=%d: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, date=%s, slot=%s",
		bookingID, req.Date, req.Slot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
