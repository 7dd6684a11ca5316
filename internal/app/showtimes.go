package app

import (
	"net/http"

	"github.com/bioskopid/bioskop-api/api"
	"github.com/bioskopid/bioskop-api/internal/domain"
)

func (app *application) GetShowtimesByMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtimes, err := app.showtimeRepo.GetByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toApiShowtimes(showtimes)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiShowtimes(showtimes []domain.Showtime) []api.Showtime {
	apiShowtimes := make([]api.Showtime, len(showtimes))

	for i, showtime := range showtimes {
		apiShowtimes[i] = toApiShowtime(showtime)
	}

	return apiShowtimes
}

func toApiShowtime(showtime domain.Showtime) api.Showtime {
	return api.Showtime{
		Id:             showtime.ID,
		Time:           showtime.Time,
		Date:           showtime.Date,
		TotalSeats:     showtime.TotalSeats,
		AvailableSeats: showtime.AvailableSeats(),
		BookedSeats:    showtime.BookedSeats,
	}
}
