package domain

import "context"

// Movie is an immutable catalog entry. Price is in whole Indonesian Rupiah.
type Movie struct {
	ID       int
	Title    string
	Genre    string
	Duration string
	Rating   string
	Poster   string
	Price    int64
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}
