package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bioskopid/bioskop-api/api"
	"github.com/bioskopid/bioskop-api/internal/booking"
	"github.com/bioskopid/bioskop-api/internal/mailer"
	"github.com/bioskopid/bioskop-api/internal/repository"
	"github.com/bioskopid/bioskop-api/internal/validator"
)

func newTestApplication(opts ...func(*application)) *application {
	app := &application{
		config:         config{env: "test"},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		validator:      validator.NewValidator(),
		mailer:         mailer.NewMockMailer(),
		sessionManager: newSessionManager(20 * time.Minute),
		movieRepo:      repository.NewMemoryMovieRepository(),
		showtimeRepo:   repository.NewMemoryShowtimeRepository(),
		seatRepo:       repository.NewMemorySeatRepository(),
	}

	app.bookingService = booking.NewService(0, app.mailer, app.movieRepo, app.logger)

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// executeRequest routes a request through the full middleware stack and
// returns the recorded response.
func executeRequest(t *testing.T, app *application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	app.routes().ServeHTTP(w, r)

	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T

	err := json.NewDecoder(w.Body).Decode(&v)
	if err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return v
}

func checkErrorMessage(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()

	errorResp := decodeResponse[api.ErrorResponse](t, w)

	if want != "" && errorResp.Message != want {
		t.Errorf("Error message = %v, want %v", errorResp.Message, want)
	}
}

func ptr[T any](v T) *T {
	return &v
}
