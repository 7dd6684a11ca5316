package app

import (
	"net/http"

	"github.com/bioskopid/bioskop-api/api"
	"github.com/bioskopid/bioskop-api/internal/domain"
)

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toApiMovies(movies)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovies(movies []domain.Movie) []api.Movie {
	apiMovies := make([]api.Movie, len(movies))

	for i, movie := range movies {
		apiMovies[i] = toApiMovie(movie)
	}

	return apiMovies
}

func toApiMovie(movie domain.Movie) api.Movie {
	return api.Movie{
		Id:       movie.ID,
		Title:    movie.Title,
		Genre:    movie.Genre,
		Duration: movie.Duration,
		Rating:   movie.Rating,
		Poster:   movie.Poster,
		Price:    movie.Price,
	}
}
