package repository

import "github.com/bioskopid/bioskop-api/internal/domain"

// Demo data. Every provider recomputes its answer from these tables on
// each call; nothing is persisted or mutated.

var movieCatalog = []domain.Movie{
	{ID: 1, Title: "Dune: Part Two", Genre: "Sci-Fi", Duration: "166 min", Rating: "PG-13", Poster: "\U0001F3DC️", Price: 50000},
	{ID: 2, Title: "Oppenheimer", Genre: "Biography", Duration: "180 min", Rating: "R", Poster: "\U0001F4A3", Price: 50000},
	{ID: 3, Title: "The Marvels", Genre: "Action", Duration: "105 min", Rating: "PG-13", Poster: "⚡", Price: 50000},
}

// All demo movies share one five-showtime schedule. Lookups are still keyed
// strictly by movie ID so an unknown movie gets an empty schedule.
var showtimeSchedule = []domain.Showtime{
	{ID: 1, Time: "10:00 AM", Date: "2025-10-03", TotalSeats: 50, BookedSeats: []int{2, 5, 8, 15, 23}},
	{ID: 2, Time: "1:30 PM", Date: "2025-10-03", TotalSeats: 40, BookedSeats: []int{1, 3, 7, 12, 18, 25, 30, 35}},
	{ID: 3, Time: "4:45 PM", Date: "2025-10-03", TotalSeats: 60, BookedSeats: []int{
		2, 5, 8, 10, 12, 15, 18, 20, 22, 25, 28, 30, 33, 35, 38, 40, 42, 45, 47,
		50, 52, 55, 57, 58, 59, 60, 11, 13, 16, 19, 21, 24,
	}},
	{ID: 4, Time: "7:30 PM", Date: "2025-10-03", TotalSeats: 80, BookedSeats: []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
		21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38,
		39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56,
		57, 58, 59, 60, 61, 62, 63, 64, 65,
	}},
	{ID: 5, Time: "10:15 PM", Date: "2025-10-03", TotalSeats: 30, BookedSeats: []int{5, 15}},
}

var movieShowtimes = map[int][]domain.Showtime{
	1: showtimeSchedule,
	2: showtimeSchedule,
	3: showtimeSchedule,
}

type seatConfig struct {
	total  int
	booked []int
}

var showtimeSeatConfigs = map[int]seatConfig{
	1: {total: 50, booked: []int{2, 5, 8, 15, 23}},
	2: {total: 40, booked: []int{1, 3, 7, 12, 18, 25, 30, 35}},
	3: {total: 60, booked: []int{
		2, 5, 8, 10, 12, 15, 18, 20, 22, 25, 28, 30, 33, 35, 38, 40, 42, 45, 47,
		50, 52, 55, 57, 58, 59, 60, 11, 13, 16, 19, 21, 24,
	}},
	4: {total: 80, booked: []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
		21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38,
		39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56,
		57, 58, 59, 60, 61, 62, 63, 64, 65,
	}},
	5: {total: 30, booked: []int{5, 15}},
}

// Unknown showtimes fall back to this instead of erroring, so the seat
// picker always has something to render.
var defaultSeatConfig = seatConfig{total: 50, booked: []int{2, 5, 8}}
