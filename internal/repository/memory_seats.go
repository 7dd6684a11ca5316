package repository

import (
	"context"

	"github.com/bioskopid/bioskop-api/internal/domain"
)

type MemorySeatRepository struct{}

func NewMemorySeatRepository() *MemorySeatRepository {
	return &MemorySeatRepository{}
}

func (r *MemorySeatRepository) GetByShowtime(ctx context.Context, showtimeID int) (*domain.SeatMap, error) {
	config, ok := showtimeSeatConfigs[showtimeID]
	if !ok {
		config = defaultSeatConfig
	}

	booked := make(map[int]bool, len(config.booked))
	for _, number := range config.booked {
		booked[number] = true
	}

	seats := make([]domain.Seat, config.total)
	for i := range seats {
		seats[i] = domain.Seat{
			Number:   i + 1,
			IsBooked: booked[i+1],
		}
	}

	return &domain.SeatMap{
		TotalSeats:     config.total,
		AvailableSeats: config.total - len(config.booked),
		Seats:          seats,
	}, nil
}
