package booking

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/bioskopid/bioskop-api/internal/domain"
	"github.com/bioskopid/bioskop-api/internal/mailer"
	"github.com/bioskopid/bioskop-api/internal/repository"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bookingIDPattern        = regexp.MustCompile(`^BK\d+[A-Z0-9]{5}$`)
	confirmationCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)
)

func newTestService(delay time.Duration) (*Service, *mailer.MockMailer) {
	mockMailer := mailer.NewMockMailer()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewService(delay, mockMailer, repository.NewMemoryMovieRepository(), logger), mockMailer
}

func validRequest() domain.BookingRequest {
	return domain.BookingRequest{
		MovieID:    1,
		ShowtimeID: 1,
		Seats:      []int{3, 4},
		NumTickets: 2,
		TotalPrice: 100000,
	}
}

func TestSubmitRejectsIncompleteRequests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.BookingRequest)
	}{
		{
			name:   "missing movie ID",
			mutate: func(req *domain.BookingRequest) { req.MovieID = 0 },
		},
		{
			name:   "missing showtime ID",
			mutate: func(req *domain.BookingRequest) { req.ShowtimeID = 0 },
		},
		{
			name:   "no seats",
			mutate: func(req *domain.BookingRequest) { req.Seats = nil },
		},
		{
			name:   "empty seats",
			mutate: func(req *domain.BookingRequest) { req.Seats = []int{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(0)

			req := validRequest()
			tt.mutate(&req)

			result, err := service.Submit(context.Background(), req)

			assert.ErrorIs(t, err, domain.ErrIncompleteBooking)
			assert.Nil(t, result)
		})
	}
}

func TestSubmitGeneratesIdentifiersAndEchoesRequest(t *testing.T) {
	service, _ := newTestService(0)

	result, err := service.Submit(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Regexp(t, bookingIDPattern, result.BookingID)
	assert.Regexp(t, confirmationCodePattern, result.ConfirmationCode)
	assert.Equal(t, int64(100000), result.TotalPrice)
	assert.Equal(t, 1, result.MovieID)
	assert.Equal(t, 1, result.ShowtimeID)

	if diff := cmp.Diff([]int{3, 4}, result.Seats); diff != "" {
		t.Errorf("seats mismatch (-want +got):\n%s", diff)
	}
}

// There is no persistence and no dedup: identical submissions both succeed
// with fresh identifier pairs. Documented behavior, not a bug.
func TestSubmitDoesNotDeduplicate(t *testing.T) {
	service, _ := newTestService(0)

	first, err := service.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	second, err := service.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.BookingID, second.BookingID)
	assert.NotEqual(t, first.ConfirmationCode, second.ConfirmationCode)
}

func TestSubmitHonorsContextCancellationDuringDelay(t *testing.T) {
	service, _ := newTestService(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := service.Submit(ctx, validRequest())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestSubmitSendsConfirmationEmailWhenRequested(t *testing.T) {
	service, mockMailer := newTestService(0)

	req := validRequest()
	req.CustomerEmail = "penonton@example.com"

	result, err := service.Submit(context.Background(), req)
	require.NoError(t, err)

	service.Wait()

	emails := mockMailer.GetSentEmails()
	require.Len(t, emails, 1)
	assert.Equal(t, "penonton@example.com", emails[0].Recipient)
	assert.Equal(t, confirmationEmailTemplate, emails[0].TemplateFile)

	data, ok := emails[0].Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, result.BookingID, data["bookingID"])
	assert.Equal(t, "Dune: Part Two", data["movieTitle"])
	assert.Equal(t, "Rp 100.000", data["totalPrice"])
}

func TestSubmitSendsNoEmailWithoutRecipient(t *testing.T) {
	service, mockMailer := newTestService(0)

	_, err := service.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	service.Wait()

	assert.Empty(t, mockMailer.GetSentEmails())
}

func TestNewBookingID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	id := newBookingID(now)

	assert.Regexp(t, `^BK1700000000000[A-Z0-9]{5}$`, id)
}
