package domain

import "context"

// BookingRequest carries the fields a client submits for a booking.
// NumTickets and TotalPrice are computed by the flow and echoed back
// without server-side consistency checks.
type BookingRequest struct {
	MovieID       int
	ShowtimeID    int
	Seats         []int
	NumTickets    int
	TotalPrice    int64
	CustomerEmail string
}

type BookingResult struct {
	Success          bool
	BookingID        string
	ConfirmationCode string
	TotalPrice       int64
	Seats            []int
	MovieID          int
	ShowtimeID       int
}

type BookingService interface {
	Submit(ctx context.Context, req BookingRequest) (*BookingResult, error)
}
