package domain

import "context"

type Seat struct {
	Number   int
	IsBooked bool
}

// SeatMap enumerates the seats of one showtime, numbered 1..TotalSeats.
type SeatMap struct {
	TotalSeats     int
	AvailableSeats int
	Seats          []Seat
}

// IsBooked reports whether a seat number is taken. Numbers outside
// 1..TotalSeats count as booked so callers cannot select them.
func (m *SeatMap) IsBooked(number int) bool {
	if number < 1 || number > len(m.Seats) {
		return true
	}

	return m.Seats[number-1].IsBooked
}

type SeatRepository interface {
	// GetByShowtime returns the seat map for a showtime. Unknown showtime
	// IDs fall back to a default configuration instead of erroring.
	GetByShowtime(ctx context.Context, showtimeID int) (*SeatMap, error)
}
