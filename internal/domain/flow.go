package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Step identifies where a booking flow currently is. Transitions only
// happen through Flow methods, one step at a time.
type Step string

const (
	StepMovies       Step = "movies"
	StepShowtimes    Step = "showtimes"
	StepSeats        Step = "seats"
	StepTickets      Step = "tickets"
	StepConfirmation Step = "confirmation"
)

// Flow is the session-scoped booking flow state machine. The Step field
// tags which of the optional fields are meaningful; transition methods
// clear everything that is not valid for the step they move to, so a flow
// can never, say, carry a booking result outside the confirmation step.
type Flow struct {
	ID   string `json:"id"`
	Step Step   `json:"step"`

	Movies []Movie `json:"movies,omitempty"`
	Movie  *Movie  `json:"movie,omitempty"`

	Showtimes []Showtime `json:"showtimes,omitempty"`
	Showtime  *Showtime  `json:"showtime,omitempty"`

	SeatMap  *SeatMap `json:"seatMap,omitempty"`
	Selected []int    `json:"selected,omitempty"`

	NumTickets int   `json:"numTickets,omitempty"`
	TotalPrice int64 `json:"totalPrice,omitempty"`

	Result *BookingResult `json:"result,omitempty"`
}

// NewFlow starts a fresh flow at the movies step with a loaded catalog.
func NewFlow(movies []Movie) *Flow {
	return &Flow{
		ID:     uuid.New().String(),
		Step:   StepMovies,
		Movies: movies,
	}
}

// SelectMovie moves movies -> showtimes. The movie must be one of the
// loaded catalog entries; the caller supplies its fetched schedule.
func (f *Flow) SelectMovie(movieID int, showtimes []Showtime) error {
	if f.Step != StepMovies {
		return ErrInvalidTransition
	}

	for i := range f.Movies {
		if f.Movies[i].ID == movieID {
			movie := f.Movies[i]
			f.Movie = &movie
			f.Showtimes = showtimes
			f.Step = StepShowtimes

			return nil
		}
	}

	return ErrRecordNotFound
}

// SelectShowtime moves showtimes -> seats and discards any previous seat
// selection.
func (f *Flow) SelectShowtime(showtimeID int, seatMap *SeatMap) error {
	if f.Step != StepShowtimes {
		return ErrInvalidTransition
	}

	for i := range f.Showtimes {
		if f.Showtimes[i].ID == showtimeID {
			showtime := f.Showtimes[i]
			f.Showtime = &showtime
			f.SeatMap = seatMap
			f.Selected = nil
			f.Step = StepSeats

			return nil
		}
	}

	return ErrRecordNotFound
}

// ToggleSeat flips a seat number in or out of the selection, preserving
// selection order. Booked and out-of-range seats are silently ignored.
func (f *Flow) ToggleSeat(number int) error {
	if f.Step != StepSeats {
		return ErrInvalidTransition
	}

	if f.SeatMap.IsBooked(number) {
		return nil
	}

	for i, selected := range f.Selected {
		if selected == number {
			f.Selected = append(f.Selected[:i], f.Selected[i+1:]...)
			return nil
		}
	}

	f.Selected = append(f.Selected, number)

	return nil
}

// ProceedToTickets moves seats -> tickets, snapshotting the ticket count
// and the total price (price x tickets).
func (f *Flow) ProceedToTickets() error {
	if f.Step != StepSeats {
		return ErrInvalidTransition
	}

	if len(f.Selected) == 0 {
		return ErrNoSeatsSelected
	}

	f.NumTickets = len(f.Selected)
	f.TotalPrice = calculateTotalPrice(f.Movie.Price, f.NumTickets)
	f.Step = StepTickets

	return nil
}

// BookingRequest builds the submission payload from the snapshotted
// tickets-step state.
func (f *Flow) BookingRequest() (BookingRequest, error) {
	if f.Step != StepTickets {
		return BookingRequest{}, ErrInvalidTransition
	}

	seats := make([]int, len(f.Selected))
	copy(seats, f.Selected)

	return BookingRequest{
		MovieID:    f.Movie.ID,
		ShowtimeID: f.Showtime.ID,
		Seats:      seats,
		NumTickets: f.NumTickets,
		TotalPrice: f.TotalPrice,
	}, nil
}

// CompleteBooking moves tickets -> confirmation. Only a successful result
// completes the flow; a failed submission leaves the flow on the tickets
// step so the user can retry.
func (f *Flow) CompleteBooking(result *BookingResult) error {
	if f.Step != StepTickets {
		return ErrInvalidTransition
	}

	if result == nil || !result.Success {
		return ErrBookingFailed
	}

	f.Result = result
	f.SeatMap = nil
	f.Selected = nil
	f.Step = StepConfirmation

	return nil
}

// Back returns one step without re-fetching: the data belonging to the
// abandoned step is dropped, the data of the target step is kept (the seat
// selection survives tickets -> seats). The movies and confirmation steps
// have no back transition.
func (f *Flow) Back() error {
	switch f.Step {
	case StepShowtimes:
		f.Movie = nil
		f.Showtimes = nil
		f.Step = StepMovies
	case StepSeats:
		f.Showtime = nil
		f.SeatMap = nil
		f.Selected = nil
		f.Step = StepShowtimes
	case StepTickets:
		f.NumTickets = 0
		f.TotalPrice = 0
		f.Step = StepSeats
	default:
		return ErrInvalidTransition
	}

	return nil
}

func calculateTotalPrice(price int64, numTickets int) int64 {
	total := decimal.NewFromInt(price).Mul(decimal.NewFromInt(int64(numTickets)))

	return total.IntPart()
}
