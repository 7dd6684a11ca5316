package mocks

import (
	"context"

	"github.com/bioskopid/bioskop-api/internal/domain"
)

type MockShowtimeRepo struct {
	GetByMovieFunc func(ctx context.Context, movieID int) ([]domain.Showtime, error)
}

func (m *MockShowtimeRepo) GetByMovie(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	return m.GetByMovieFunc(ctx, movieID)
}
