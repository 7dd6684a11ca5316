// Package booking implements the booking submitter: it validates presence
// of the required fields, simulates processing latency, and hands out
// generated booking identifiers. Nothing is persisted, so two identical
// submissions produce two different identifier pairs.
package booking

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bioskopid/bioskop-api/internal/domain"
	"github.com/bioskopid/bioskop-api/internal/mailer"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const confirmationEmailTemplate = "booking_confirmation.tmpl"

type Service struct {
	delay     time.Duration
	mailer    mailer.Mailer
	movieRepo domain.MovieRepository
	logger    *slog.Logger
	wg        sync.WaitGroup
}

func NewService(delay time.Duration, m mailer.Mailer, movieRepo domain.MovieRepository, logger *slog.Logger) *Service {
	return &Service{
		delay:     delay,
		mailer:    m,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

// Submit processes a booking request. Only presence checks are performed:
// numTickets/totalPrice consistency and seat availability are not verified,
// matching the mock backend this service stands in for.
func (s *Service) Submit(ctx context.Context, req domain.BookingRequest) (*domain.BookingResult, error) {
	if req.MovieID <= 0 || req.ShowtimeID <= 0 || len(req.Seats) == 0 {
		return nil, domain.ErrIncompleteBooking
	}

	err := s.simulateProcessing(ctx)
	if err != nil {
		return nil, err
	}

	result := &domain.BookingResult{
		Success:          true,
		BookingID:        newBookingID(time.Now()),
		ConfirmationCode: randomToken(confirmationCodeLength),
		TotalPrice:       req.TotalPrice,
		Seats:            req.Seats,
		MovieID:          req.MovieID,
		ShowtimeID:       req.ShowtimeID,
	}

	if req.CustomerEmail != "" {
		s.sendConfirmationEmail(req, result)
	}

	return result, nil
}

func (s *Service) simulateProcessing(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// sendConfirmationEmail delivers the confirmation in the background; a
// failed send is logged and never fails the booking.
func (s *Service) sendConfirmationEmail(req domain.BookingRequest, result *domain.BookingResult) {
	movieTitle := ""

	movie, err := s.movieRepo.GetById(context.Background(), req.MovieID)
	if err == nil {
		movieTitle = movie.Title
	}

	data := map[string]any{
		"bookingID":        result.BookingID,
		"confirmationCode": result.ConfirmationCode,
		"movieTitle":       movieTitle,
		"seats":            result.Seats,
		"numTickets":       req.NumTickets,
		"totalPrice":       formatRupiah(result.TotalPrice),
	}

	s.background(func() {
		err := s.mailer.Send(req.CustomerEmail, confirmationEmailTemplate, data)
		if err != nil {
			s.logger.Error("failed to send booking confirmation email",
				"booking_id", result.BookingID, "error", err)
		}
	})
}

func (s *Service) background(fn func()) {
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				s.logger.Error(fmt.Sprintf("%v", err))
			}
		}()

		fn()
	}()
}

// Wait blocks until all background sends have finished. Called on shutdown
// and by tests.
func (s *Service) Wait() {
	s.wg.Wait()
}

var rupiahPrinter = message.NewPrinter(language.Indonesian)

func formatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp %d", amount)
}
