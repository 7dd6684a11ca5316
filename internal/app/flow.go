package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bioskopid/bioskop-api/api"
	"github.com/bioskopid/bioskop-api/internal/domain"
)

// The flow endpoints drive the session-scoped booking state machine:
// movies -> showtimes -> seats -> tickets -> confirmation. The flow itself
// lives in domain.Flow; handlers only fetch the data a transition needs,
// apply it, and persist the result back into the session.

func (app *application) GetFlowStateHandler(w http.ResponseWriter, r *http.Request) {
	flow, err := app.sessionGetFlow(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if flow == nil {
		flow, err = app.startFlow(r)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	app.writeFlowState(w, r, flow)
}

func (app *application) FlowSelectMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input api.SelectMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	flow := app.loadFlow(w, r)
	if flow == nil {
		return
	}

	showtimes, err := app.showtimeRepo.GetByMovie(r.Context(), input.MovieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = flow.SelectMovie(input.MovieId, showtimes)
	if err != nil {
		app.flowTransitionError(w, r, err)
		return
	}

	app.saveAndWriteFlowState(w, r, flow)
}

func (app *application) FlowSelectShowtimeHandler(w http.ResponseWriter, r *http.Request) {
	var input api.SelectShowtimeRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	flow := app.loadFlow(w, r)
	if flow == nil {
		return
	}

	seatMap, err := app.seatRepo.GetByShowtime(r.Context(), input.ShowtimeId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = flow.SelectShowtime(input.ShowtimeId, seatMap)
	if err != nil {
		app.flowTransitionError(w, r, err)
		return
	}

	app.saveAndWriteFlowState(w, r, flow)
}

func (app *application) FlowToggleSeatHandler(w http.ResponseWriter, r *http.Request) {
	var input api.ToggleSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	flow := app.loadFlow(w, r)
	if flow == nil {
		return
	}

	err = flow.ToggleSeat(input.Seat)
	if err != nil {
		app.flowTransitionError(w, r, err)
		return
	}

	app.saveAndWriteFlowState(w, r, flow)
}

func (app *application) FlowProceedToTicketsHandler(w http.ResponseWriter, r *http.Request) {
	flow := app.loadFlow(w, r)
	if flow == nil {
		return
	}

	err := flow.ProceedToTickets()
	if err != nil {
		app.flowTransitionError(w, r, err)
		return
	}

	app.saveAndWriteFlowState(w, r, flow)
}

func (app *application) FlowConfirmHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	// The body is optional; it only carries the confirmation email opt-in.
	var input api.ConfirmRequest

	if r.ContentLength != 0 {
		err := app.readJSON(w, r, &input)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		err = app.validator.Struct(input)
		if err != nil {
			app.failedValidationResponse(w, r, err)
			return
		}
	}

	flow := app.loadFlow(w, r)
	if flow == nil {
		return
	}

	req, err := flow.BookingRequest()
	if err != nil {
		app.flowTransitionError(w, r, err)
		return
	}

	req.CustomerEmail = input.CustomerEmail

	result, err := app.bookingService.Submit(r.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}

		// The flow stays on the tickets step so the user can retry.
		logger.Warn("booking submission failed", "error", err)
		app.serverErrorResponse(w, r, err)

		return
	}

	err = flow.CompleteBooking(result)
	if err != nil {
		app.flowTransitionError(w, r, err)
		return
	}

	logger.Info("booking flow completed", "flow_id", flow.ID, "booking_id", result.BookingID)

	app.saveAndWriteFlowState(w, r, flow)
}

func (app *application) FlowBackHandler(w http.ResponseWriter, r *http.Request) {
	flow := app.loadFlow(w, r)
	if flow == nil {
		return
	}

	err := flow.Back()
	if err != nil {
		app.flowTransitionError(w, r, err)
		return
	}

	app.saveAndWriteFlowState(w, r, flow)
}

func (app *application) FlowResetHandler(w http.ResponseWriter, r *http.Request) {
	flow, err := app.startFlow(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeFlowState(w, r, flow)
}

// startFlow discards any stored flow and begins a fresh one at the movies
// step, re-running the initial catalog load.
func (app *application) startFlow(r *http.Request) (*domain.Flow, error) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		return nil, err
	}

	flow := domain.NewFlow(movies)

	err = app.sessionPutFlow(r, flow)
	if err != nil {
		return nil, err
	}

	return flow, nil
}

// loadFlow fetches the session's flow, writing the error response itself
// when there is none to act on.
func (app *application) loadFlow(w http.ResponseWriter, r *http.Request) *domain.Flow {
	flow, err := app.sessionGetFlow(r)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return nil
	}

	if flow == nil {
		app.errorResponse(w, r, http.StatusNotFound, "no active booking flow, load the flow state first")
		return nil
	}

	return flow
}

func (app *application) flowTransitionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		app.conflictResponse(w, r, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrNoSeatsSelected):
		app.badRequestResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) saveAndWriteFlowState(w http.ResponseWriter, r *http.Request, flow *domain.Flow) {
	err := app.sessionPutFlow(r, flow)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeFlowState(w, r, flow)
}

func (app *application) writeFlowState(w http.ResponseWriter, r *http.Request, flow *domain.Flow) {
	resp, err := toFlowStateResponse(flow)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// toFlowStateResponse exposes only the data belonging to the current step.
func toFlowStateResponse(flow *domain.Flow) (api.FlowStateResponse, error) {
	resp := api.FlowStateResponse{
		FlowId: flow.ID,
		Step:   string(flow.Step),
	}

	switch flow.Step {
	case domain.StepMovies:
		resp.Movies = toApiMovies(flow.Movies)

	case domain.StepShowtimes:
		movie := toApiMovie(*flow.Movie)
		resp.Movie = &movie
		resp.Showtimes = toApiShowtimes(flow.Showtimes)

	case domain.StepSeats:
		movie := toApiMovie(*flow.Movie)
		showtime := toApiShowtime(*flow.Showtime)
		resp.Movie = &movie
		resp.Showtime = &showtime
		resp.SeatMap = toApiSeats(flow.SeatMap.Seats)
		resp.SelectedSeats = flow.Selected

	case domain.StepTickets:
		movie := toApiMovie(*flow.Movie)
		showtime := toApiShowtime(*flow.Showtime)
		resp.Movie = &movie
		resp.Showtime = &showtime
		resp.SelectedSeats = flow.Selected
		resp.NumTickets = flow.NumTickets
		resp.TotalPrice = flow.TotalPrice

	case domain.StepConfirmation:
		booking := toApiBooking(flow.Result)
		resp.Booking = &booking

	default:
		return api.FlowStateResponse{}, fmt.Errorf("unknown flow step: %s", flow.Step)
	}

	return resp, nil
}
