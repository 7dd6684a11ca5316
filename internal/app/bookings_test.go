package app

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"github.com/bioskopid/bioskop-api/api"
	"github.com/bioskopid/bioskop-api/internal/booking"
	"github.com/bioskopid/bioskop-api/internal/domain"
	"github.com/bioskopid/bioskop-api/internal/mailer"
	"github.com/bioskopid/bioskop-api/internal/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

var (
	bookingIDPattern        = regexp.MustCompile(`^BK\d+[A-Z0-9]{5}$`)
	confirmationCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)
)

type BookingsTestSuite struct {
	suite.Suite
	app *application
}

func (s *BookingsTestSuite) SetupTest() {
	s.app = newTestApplication()
}

func TestBookingsSuite(t *testing.T) {
	suite.Run(t, new(BookingsTestSuite))
}

func (s *BookingsTestSuite) TestCreateBooking() {
	tests := []struct {
		name           string
		body           any
		setup          func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail when body is empty",
			body:           nil,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: MsgIncompleteBooking,
		},
		{
			name:           "should fail when movie ID is missing",
			body:           api.BookingRequest{ShowtimeId: 1, Seats: []int{3, 4}},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: MsgIncompleteBooking,
		},
		{
			name:           "should fail when showtime ID is missing",
			body:           api.BookingRequest{MovieId: 1, Seats: []int{3, 4}},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: MsgIncompleteBooking,
		},
		{
			name:           "should fail when no seats are given",
			body:           api.BookingRequest{MovieId: 1, ShowtimeId: 1, Seats: []int{}},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: MsgIncompleteBooking,
		},
		{
			name:           "should fail when customer email is malformed",
			body:           api.BookingRequest{MovieId: 1, ShowtimeId: 1, Seats: []int{3}, CustomerEmail: "not-an-email"},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: MsgIncompleteBooking,
		},
		{
			name: "should fail when the submitter errors",
			body: api.BookingRequest{MovieId: 1, ShowtimeId: 1, Seats: []int{3, 4}, NumTickets: 2, TotalPrice: 100000},
			setup: func() {
				s.app.bookingService = &mocks.MockBookingService{
					SubmitFunc: func(ctx context.Context, req domain.BookingRequest) (*domain.BookingResult, error) {
						return nil, fmt.Errorf("submitter error")
					},
				}
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: MsgBookingFailed,
		},
		{
			name:       "should create a booking with valid input",
			body:       api.BookingRequest{MovieId: 1, ShowtimeId: 1, Seats: []int{3, 4}, NumTickets: 2, TotalPrice: 100000},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			if tt.setup != nil {
				tt.setup()
			}

			w := executeRequest(s.T(), s.app, http.MethodPost, "/bookings", tt.body)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantErrMessage != "" {
				errorResp := decodeResponse[api.BookingErrorResponse](s.T(), w)
				s.False(errorResp.Success)
				s.Equal(tt.wantErrMessage, errorResp.Error)

				return
			}

			resp := decodeResponse[api.BookingResponse](s.T(), w)

			s.True(resp.Success)
			s.Regexp(bookingIDPattern, resp.BookingId)
			s.Regexp(confirmationCodePattern, resp.ConfirmationCode)
			s.Equal(int64(100000), resp.TotalPrice)
			s.Equal(1, resp.MovieId)
			s.Equal(1, resp.ShowtimeId)

			if diff := cmp.Diff([]int{3, 4}, resp.Seats); diff != "" {
				s.T().Errorf("seats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Identical submissions are not deduplicated: each one gets new
// identifiers. This is documented behavior of the mock backend.
func (s *BookingsTestSuite) TestSequentialBookingsGetDistinctIdentifiers() {
	body := api.BookingRequest{MovieId: 1, ShowtimeId: 1, Seats: []int{3, 4}, NumTickets: 2, TotalPrice: 100000}

	first := decodeResponse[api.BookingResponse](s.T(), executeRequest(s.T(), s.app, http.MethodPost, "/bookings", body))
	second := decodeResponse[api.BookingResponse](s.T(), executeRequest(s.T(), s.app, http.MethodPost, "/bookings", body))

	s.True(first.Success)
	s.True(second.Success)
	s.NotEqual(first.BookingId, second.BookingId)
	s.NotEqual(first.ConfirmationCode, second.ConfirmationCode)
}

func (s *BookingsTestSuite) TestBookingWithCustomerEmailSendsConfirmation() {
	mockMailer := mailer.NewMockMailer()
	service := booking.NewService(0, mockMailer, s.app.movieRepo, s.app.logger)
	s.app.bookingService = service

	body := api.BookingRequest{
		MovieId:       1,
		ShowtimeId:    1,
		Seats:         []int{3, 4},
		NumTickets:    2,
		TotalPrice:    100000,
		CustomerEmail: "penonton@example.com",
	}

	w := executeRequest(s.T(), s.app, http.MethodPost, "/bookings", body)
	s.Equal(http.StatusOK, w.Code)

	service.Wait()

	emails := mockMailer.GetSentEmails()
	s.Len(emails, 1)
	s.Equal("penonton@example.com", emails[0].Recipient)
	s.Equal("booking_confirmation.tmpl", emails[0].TemplateFile)
}
