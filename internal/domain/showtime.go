package domain

import "context"

// Showtime is a scheduled screening. AvailableSeats is derived from the
// booked set, never stored, so the availableSeats == totalSeats - booked
// invariant holds by construction.
type Showtime struct {
	ID          int
	Time        string
	Date        string
	TotalSeats  int
	BookedSeats []int
}

func (s Showtime) AvailableSeats() int {
	return s.TotalSeats - len(s.BookedSeats)
}

type ShowtimeRepository interface {
	// GetByMovie returns the schedule configured for a movie, keyed
	// strictly by movie ID. Unknown movies get an empty slice.
	GetByMovie(ctx context.Context, movieID int) ([]Showtime, error)
}
