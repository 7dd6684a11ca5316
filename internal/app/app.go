package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/bioskopid/bioskop-api/internal/booking"
	"github.com/bioskopid/bioskop-api/internal/domain"
	"github.com/bioskopid/bioskop-api/internal/mailer"
	"github.com/bioskopid/bioskop-api/internal/repository"
	appvalidator "github.com/bioskopid/bioskop-api/internal/validator"
	"github.com/bioskopid/bioskop-api/internal/vcs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

var (
	version = vcs.Version()
)

type application struct {
	config         config
	logger         *slog.Logger
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	movieRepo    domain.MovieRepository
	showtimeRepo domain.ShowtimeRepository
	seatRepo     domain.SeatRepository

	bookingService domain.BookingService
}

type config struct {
	port int
	env  string

	booking struct {
		delay time.Duration
	}
	session struct {
		idleTimeout time.Duration
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.DurationVar(&cfg.booking.delay, "booking-delay", time.Second, "Simulated booking processing delay")
	flag.DurationVar(&cfg.session.idleTimeout, "session-idle-timeout", 20*time.Minute, "Session idle timeout")

	flag.StringVar(&cfg.smtp.host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "Bioskop <no-reply@bioskop.example.com>", "SMTP sender")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	movieRepo := repository.NewMemoryMovieRepository()
	showtimeRepo := repository.NewMemoryShowtimeRepository()
	seatRepo := repository.NewMemorySeatRepository()

	appMailer := newMailer(cfg, logger)
	bookingService := booking.NewService(cfg.booking.delay, appMailer, movieRepo, logger)

	app := &application{
		config:         cfg,
		logger:         logger,
		validator:      validator,
		mailer:         appMailer,
		sessionManager: newSessionManager(cfg.session.idleTimeout),
		movieRepo:      movieRepo,
		showtimeRepo:   showtimeRepo,
		seatRepo:       seatRepo,
		bookingService: bookingService,
	}

	err := app.run()

	// Let in-flight confirmation emails finish before exiting.
	bookingService.Wait()

	return err
}

// newMailer wires the SMTP mailer when credentials are configured and falls
// back to the recording mock so the demo runs without a relay.
func newMailer(cfg config, logger *slog.Logger) mailer.Mailer {
	if cfg.smtp.username == "" {
		logger.Info("smtp credentials not configured, using mock mailer")
		return mailer.NewMockMailer()
	}

	return mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender)
}

func newSessionManager(idleTimeout time.Duration) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = memstore.New()
	sessionManager.IdleTimeout = idleTimeout
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Get("/movies", app.GetMovies)
	r.Get("/showtimes/{movieId}", app.GetShowtimesByMovie)
	r.Get("/seats/{showtimeId}", app.GetSeatMapByShowtime)
	r.Post("/bookings", app.CreateBookingHandler)

	r.Route("/flow", func(r chi.Router) {
		r.Get("/", app.GetFlowStateHandler)
		r.Post("/movie", app.FlowSelectMovieHandler)
		r.Post("/showtime", app.FlowSelectShowtimeHandler)
		r.Post("/seats/toggle", app.FlowToggleSeatHandler)
		r.Post("/tickets", app.FlowProceedToTicketsHandler)
		r.Post("/confirm", app.FlowConfirmHandler)
		r.Post("/back", app.FlowBackHandler)
		r.Post("/reset", app.FlowResetHandler)
	})

	return r
}
