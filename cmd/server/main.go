package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"cachetteWeb/internal/config"
	bookingusecase "cachetteWeb/internal/modules/booking/application/usecase"
	bookinginfra "cachetteWeb/internal/modules/booking/infrastructure"
	bookingtransport "cachetteWeb/internal/modules/booking/interface"
	roomsusecase "cachetteWeb/internal/modules/rooms/application/usecase"
	roomsinfra "cachetteWeb/internal/modules/rooms/infrastructure"
	roomstransport "cachetteWeb/internal/modules/rooms/interface"
	sessionusecase "cachetteWeb/internal/modules/session/application/usecase"
	sessioninfra "cachetteWeb/internal/modules/session/infrastructure"
	sessiontransport "cachetteWeb/internal/modules/session/interface"
	"cachetteWeb/internal/shared/auth"
	"cachetteWeb/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("backend config resolved", slog.String("baseUrl", cfg.REST.BaseURL), slog.Duration("timeout", cfg.REST.Timeout))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Session module
	sessionStore := sessioninfra.NewRedisSessionStore(redisClient, cfg.Session.TTL)
	authGateway := sessioninfra.NewAuthHTTPClient(cfg.REST.BaseURL, cfg.REST.Timeout, nil)
	inspector := auth.NewInspector()
	resolver := sessionusecase.NewIdentityResolver(sessionStore, inspector)
	loginUC := sessionusecase.NewLoginUseCase(authGateway, sessionStore)
	registerUC := sessionusecase.NewRegisterUseCase(authGateway, sessionStore)
	logoutUC := sessionusecase.NewLogoutUseCase(sessionStore)

	// Booking module
	identityProvider := bookinginfra.NewSessionIdentityAdapter(resolver)
	availabilityChecker := bookinginfra.NewAvailabilityHTTPClient(cfg.REST.BaseURL, cfg.REST.Timeout, nil)
	reservationGateway := bookinginfra.NewReservationHTTPClient(cfg.REST.BaseURL, cfg.REST.Timeout, nil)
	availabilityUC := bookingusecase.NewCheckAvailabilityUseCase(availabilityChecker)
	submitUC := bookingusecase.NewSubmitReservationUseCase(identityProvider, availabilityChecker, reservationGateway)
	mineUC := bookingusecase.NewListMyReservationsUseCase(identityProvider, reservationGateway)
	allUC := bookingusecase.NewListAllReservationsUseCase(identityProvider, reservationGateway)
	statsUC := bookingusecase.NewReservationStatsUseCase(identityProvider, reservationGateway)
	confirmUC := bookingusecase.NewConfirmReservationUseCase(identityProvider, reservationGateway)
	cancelUC := bookingusecase.NewCancelReservationUseCase(identityProvider, reservationGateway)

	// Rooms module
	roomsFetcher := roomsinfra.NewRoomsHTTPClient(cfg.REST.BaseURL, cfg.REST.Timeout, nil)
	roomsUC := roomsusecase.NewListRoomsUseCase(roomsFetcher)

	// Echo server
	e := echo.New()
	e.Logger.SetOutput(log.Writer())
	e.Use(sessiontransport.EnsureSessionCookie(sessiontransport.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.Secure,
	}))

	api := e.Group("/api")
	admin := api.Group("/admin")
	sessiontransport.NewHandler(loginUC, registerUC, logoutUC, resolver).RegisterRoutes(api.Group("/session"))
	bookingtransport.NewHandler(availabilityUC, submitUC, mineUC, allUC, statsUC, confirmUC, cancelUC, identityProvider).RegisterRoutes(api, admin)
	roomstransport.NewHandler(roomsUC).RegisterRoutes(api)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
