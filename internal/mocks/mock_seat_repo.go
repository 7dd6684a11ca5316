package mocks

import (
	"context"

	"github.com/bioskopid/bioskop-api/internal/domain"
)

type MockSeatRepo struct {
	GetByShowtimeFunc func(ctx context.Context, showtimeID int) (*domain.SeatMap, error)
}

func (m *MockSeatRepo) GetByShowtime(ctx context.Context, showtimeID int) (*domain.SeatMap, error) {
	return m.GetByShowtimeFunc(ctx, showtimeID)
}
