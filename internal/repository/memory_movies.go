package repository

import (
	"context"

	"github.com/bioskopid/bioskop-api/internal/domain"
)

type MemoryMovieRepository struct{}

func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{}
}

func (r *MemoryMovieRepository) GetAll(ctx context.Context) ([]domain.Movie, error) {
	movies := make([]domain.Movie, len(movieCatalog))
	copy(movies, movieCatalog)

	return movies, nil
}

func (r *MemoryMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	for _, movie := range movieCatalog {
		if movie.ID == id {
			return &movie, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}
