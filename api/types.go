// Package api defines the request and response bodies of the HTTP API.
package api

import "time"

// Movie is a single catalog entry.
type Movie struct {
	Id       int    `json:"id"`
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	Duration string `json:"duration"`
	Rating   string `json:"rating"`
	Poster   string `json:"poster"`
	Price    int64  `json:"price"`
}

// Showtime is a scheduled screening of a movie.
type Showtime struct {
	Id             int    `json:"id"`
	Time           string `json:"time"`
	Date           string `json:"date"`
	TotalSeats     int    `json:"totalSeats"`
	AvailableSeats int    `json:"availableSeats"`
	BookedSeats    []int  `json:"bookedSeats"`
}

type Seat struct {
	Number   int  `json:"number"`
	IsBooked bool `json:"isBooked"`
}

// SeatMapResponse is the per-showtime seat availability payload.
type SeatMapResponse struct {
	TotalSeats     int    `json:"totalSeats"`
	AvailableSeats int    `json:"availableSeats"`
	Seats          []Seat `json:"seats"`
}

// BookingRequest is the body of POST /bookings and POST /flow/confirm.
// NumTickets and TotalPrice are echoed back without consistency checks.
type BookingRequest struct {
	MovieId       int    `json:"movieId" validate:"required,gt=0"`
	ShowtimeId    int    `json:"showtimeId" validate:"required,gt=0"`
	Seats         []int  `json:"seats" validate:"required,min=1,dive,gt=0"`
	NumTickets    int    `json:"numTickets"`
	TotalPrice    int64  `json:"totalPrice"`
	CustomerEmail string `json:"customerEmail,omitempty" validate:"omitempty,email"`
}

// BookingResponse mirrors the original backend's booking payload: success
// flag plus generated identifiers and echoed request fields.
type BookingResponse struct {
	Success          bool   `json:"success"`
	BookingId        string `json:"bookingId"`
	ConfirmationCode string `json:"confirmationCode"`
	TotalPrice       int64  `json:"totalPrice"`
	Seats            []int  `json:"seats"`
	MovieId          int    `json:"movieId"`
	ShowtimeId       int    `json:"showtimeId"`
}

// BookingErrorResponse is the booking endpoint's error shape.
type BookingErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorResponse is the error shape of every non-booking endpoint.
type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

// Flow action requests.

type SelectMovieRequest struct {
	MovieId int `json:"movieId" validate:"required,gt=0"`
}

type SelectShowtimeRequest struct {
	ShowtimeId int `json:"showtimeId" validate:"required,gt=0"`
}

type ToggleSeatRequest struct {
	Seat int `json:"seat" validate:"required,gt=0"`
}

type ConfirmRequest struct {
	CustomerEmail string `json:"customerEmail,omitempty" validate:"omitempty,email"`
}

// FlowStateResponse describes the flow after an action. Only the fields
// valid for the current step are populated.
type FlowStateResponse struct {
	FlowId string `json:"flowId"`
	Step   string `json:"step"`

	Movies []Movie `json:"movies,omitempty"`

	Movie     *Movie     `json:"movie,omitempty"`
	Showtimes []Showtime `json:"showtimes,omitempty"`

	Showtime      *Showtime `json:"showtime,omitempty"`
	SeatMap       []Seat    `json:"seatMap,omitempty"`
	SelectedSeats []int     `json:"selectedSeats,omitempty"`

	NumTickets int   `json:"numTickets,omitempty"`
	TotalPrice int64 `json:"totalPrice,omitempty"`

	Booking *BookingResponse `json:"booking,omitempty"`
}
