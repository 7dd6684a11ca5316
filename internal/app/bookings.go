package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/bioskopid/bioskop-api/api"
	"github.com/bioskopid/bioskop-api/internal/domain"
)

func (app *application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.BookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.bookingErrorResponse(w, r, http.StatusBadRequest, MsgIncompleteBooking)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("booking rejected: incomplete booking data", "error", err)
		app.bookingErrorResponse(w, r, http.StatusBadRequest, MsgIncompleteBooking)
		return
	}

	result, err := app.bookingService.Submit(r.Context(), toBookingRequest(input))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIncompleteBooking):
			app.bookingErrorResponse(w, r, http.StatusBadRequest, MsgIncompleteBooking)
		case errors.Is(err, context.Canceled):
			// Client went away mid-delay, nothing to answer.
		default:
			app.logError(r, err)
			app.bookingErrorResponse(w, r, http.StatusInternalServerError, MsgBookingFailed)
		}

		return
	}

	logger.Info("booking confirmed", "booking_id", result.BookingID, "showtime_id", result.ShowtimeID)

	resp := toApiBooking(result)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingRequest(input api.BookingRequest) domain.BookingRequest {
	return domain.BookingRequest{
		MovieID:       input.MovieId,
		ShowtimeID:    input.ShowtimeId,
		Seats:         input.Seats,
		NumTickets:    input.NumTickets,
		TotalPrice:    input.TotalPrice,
		CustomerEmail: input.CustomerEmail,
	}
}

func toApiBooking(result *domain.BookingResult) api.BookingResponse {
	return api.BookingResponse{
		Success:          result.Success,
		BookingId:        result.BookingID,
		ConfirmationCode: result.ConfirmationCode,
		TotalPrice:       result.TotalPrice,
		Seats:            result.Seats,
		MovieId:          result.MovieID,
		ShowtimeId:       result.ShowtimeID,
	}
}
