package app

import (
	"net/http"

	"github.com/bioskopid/bioskop-api/api"
	"github.com/bioskopid/bioskop-api/internal/domain"
)

func (app *application) GetSeatMapByShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID, err := app.readIDParam(r, "showtimeId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seatMap, err := app.seatRepo.GetByShowtime(r.Context(), showtimeID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toApiSeatMap(seatMap)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiSeatMap(seatMap *domain.SeatMap) api.SeatMapResponse {
	return api.SeatMapResponse{
		TotalSeats:     seatMap.TotalSeats,
		AvailableSeats: seatMap.AvailableSeats,
		Seats:          toApiSeats(seatMap.Seats),
	}
}

func toApiSeats(seats []domain.Seat) []api.Seat {
	apiSeats := make([]api.Seat, len(seats))

	for i, seat := range seats {
		apiSeats[i] = api.Seat{
			Number:   seat.Number,
			IsBooked: seat.IsBooked,
		}
	}

	return apiSeats
}
