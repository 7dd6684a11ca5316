package app

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/bioskopid/bioskop-api/api"
	appvalidator "github.com/bioskopid/bioskop-api/internal/validator"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const ErrInternalServer = "The server encountered a problem and could not process your request"

// User-facing booking messages, kept verbatim from the original backend so
// existing clients keep working.
const (
	MsgIncompleteBooking = "Data pemesanan tidak lengkap"
	MsgBookingFailed     = "Gagal memproses pemesanan"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "The requested resource not found"
	app.errorResponse(w, r, http.StatusNotFound, message)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

// failedValidationResponse flattens validator errors into a single 400
// message ("seats must contain at least 1 items").
func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors

	if !errors.As(err, &validationErrors) {
		app.badRequestResponse(w, r, err)
		return
	}

	messages := make([]string, len(validationErrors))
	for i, fieldError := range validationErrors {
		messages[i] = strings.ToLower(fieldError.Field()) + " " + appvalidator.ValidationMessage(fieldError)
	}

	app.errorResponse(w, r, http.StatusBadRequest, strings.Join(messages, "; "))
}

// bookingErrorResponse writes the booking endpoint's error shape.
func (app *application) bookingErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.BookingErrorResponse{
		Success: false,
		Error:   message,
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}
