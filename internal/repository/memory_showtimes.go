package repository

import (
	"context"

	"github.com/bioskopid/bioskop-api/internal/domain"
)

type MemoryShowtimeRepository struct{}

func NewMemoryShowtimeRepository() *MemoryShowtimeRepository {
	return &MemoryShowtimeRepository{}
}

func (r *MemoryShowtimeRepository) GetByMovie(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	configured, ok := movieShowtimes[movieID]
	if !ok {
		return []domain.Showtime{}, nil
	}

	showtimes := make([]domain.Showtime, len(configured))

	for i, showtime := range configured {
		booked := make([]int, len(showtime.BookedSeats))
		copy(booked, showtime.BookedSeats)
		showtime.BookedSeats = booked
		showtimes[i] = showtime
	}

	return showtimes, nil
}
