package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidDate        = "Select a valid date (YYYY-MM-DD)."
	msgInvalidSlot        = "Select an available slot."
	msgInvalidName        = "Enter your name."
	msgInvalidContact     = "Invalid WhatsApp number."
	msgSlotFull           = "Slot full."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrInvalidName):
			h.logger.Warn("POST /bookings - Empty name: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createBooking.ErrInvalidContact):
			h.logger.Warn("POST /bookings - Invalid contact: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondBadRequest(w, msgInvalidContact)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Unknown slot: %q", req.Slot)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, slot=%s, error=%v",
				req.Date, req.Slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, slot=%s",
		result.ID, result.Date, result.Slot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
