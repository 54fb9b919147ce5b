package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/sessions"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/alejandrums/internal/api"
	createBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_booking"
	getRoomHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_room"
	getRoomAvailabilityHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_room_availability"
	getRoomsHandler "github.com/m04kA/alejandrums/internal/api/handlers/get_rooms"
	quoteBookingHandler "github.com/m04kA/alejandrums/internal/api/handlers/quote_booking"
	submitContactHandler "github.com/m04kA/alejandrums/internal/api/handlers/submit_contact"
	"github.com/m04kA/alejandrums/internal/api/middleware"
	"github.com/m04kA/alejandrums/internal/config"
	"github.com/m04kA/alejandrums/internal/domain"
	availabilityCache "github.com/m04kA/alejandrums/internal/infra/cache/availability"
	bookingRepo "github.com/m04kA/alejandrums/internal/infra/storage/booking"
	contactRepo "github.com/m04kA/alejandrums/internal/infra/storage/contact"
	"github.com/m04kA/alejandrums/internal/infra/storage/memory"
	roomRepo "github.com/m04kA/alejandrums/internal/infra/storage/room"
	"github.com/m04kA/alejandrums/internal/integrations/payment"
	bookingsService "github.com/m04kA/alejandrums/internal/service/bookings"
	contactService "github.com/m04kA/alejandrums/internal/service/contact"
	roomsService "github.com/m04kA/alejandrums/internal/service/rooms"
	createBookingUC "github.com/m04kA/alejandrums/internal/usecase/create_booking"
	getRoomAvailabilityUC "github.com/m04kA/alejandrums/internal/usecase/get_room_availability"
	quoteBookingUC "github.com/m04kA/alejandrums/internal/usecase/quote_booking"
	"github.com/m04kA/alejandrums/internal/web"
	"github.com/m04kA/alejandrums/pkg/dbmetrics"
	"github.com/m04kA/alejandrums/pkg/logger"
	"github.com/m04kA/alejandrums/pkg/metrics"
	"github.com/m04kA/alejandrums/pkg/txmanager"
	"github.com/m04kA/alejandrums/pkg/types"
)

const sessionMaxAge = 7 * 24 * 60 * 60

// Репозитории, общие для обоих хранилищ
type (
	roomRepository interface {
		List(ctx context.Context) ([]*domain.Room, error)
		GetByID(ctx context.Context, id int64) (*domain.Room, error)
		GetBySlug(ctx context.Context, slug string) (*domain.Room, error)
	}

	bookingRepository interface {
		Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
		GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
		GetReservations(ctx context.Context, roomID int64, date types.Date) ([]domain.Reservation, error)
	}

	contactRepository interface {
		Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	}

	transactionManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	cache interface {
		Get(ctx context.Context, roomID int64, date types.Date) ([]int, string, bool, error)
		Set(ctx context.Context, roomID int64, date types.Date, hours []int, version string) error
		Invalidate(ctx context.Context, roomID int64, date types.Date) error
	}
)

type storage struct {
	rooms     roomRepository
	bookings  bookingRepository
	contacts  contactRepository
	txManager transactionManager
	close     func()
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер: страницы сайта, JSON API и метрики",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(*configPath)
		},
	}
}

func runServe(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting Alejandrums...")
	log.Info("Configuration loaded (storage=%s, redis=%t)", cfg.Storage.Driver, cfg.Redis.Enabled)

	loc, err := cfg.Booking.Location()
	if err != nil {
		return fmt.Errorf("failed to load timezone: %w", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище
	store, err := newStorage(cfg, loc, metricsCollector, stopMetricsCh, log)
	if err != nil {
		return err
	}
	defer store.close()

	// Кэш доступности
	var availability cache = availabilityCache.NopCache{}
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr, err)
		}

		availability = availabilityCache.NewRedisCache(client, time.Duration(cfg.Redis.TTL)*time.Second)
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Имитация платёжного шлюза
	payments := payment.NewSimulator(cfg.Booking.PaymentDelay(), log)

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(store.rooms, log)
	bookingSvc := bookingsService.NewService(store.bookings, log)
	contactSvc := contactService.NewService(store.contacts, log)

	// Инициализируем use cases
	getRoomAvailabilityUseCase := getRoomAvailabilityUC.NewUseCase(store.rooms, store.bookings, availability, loc, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(store.rooms, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		store.rooms,
		store.bookings,
		payments,
		availability,
		store.txManager,
		metricsCollector,
		loc,
		log,
	)

	// Ограничение частоты POST запросов
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, log)
		trusted, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
		if err != nil {
			return fmt.Errorf("failed to parse trusted proxies: %w", err)
		}
		limiter.TrustProxies(trusted)
		log.Info("Rate limiting enabled: %d req/min, burst=%d", cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер: JSON API
	r := api.NewRouter(api.Handlers{
		GetRooms:            getRoomsHandler.NewHandler(roomSvc, log),
		GetRoom:             getRoomHandler.NewHandler(roomSvc, log),
		GetRoomAvailability: getRoomAvailabilityHandler.NewHandler(getRoomAvailabilityUseCase, log),
		QuoteBooking:        quoteBookingHandler.NewHandler(quoteBookingUseCase, log),
		CreateBooking:       createBookingHandler.NewHandler(createBookingUseCase, log),
		GetBooking:          getBookingHandler.NewHandler(bookingSvc, log),
		SubmitContact:       submitContactHandler.NewHandler(contactSvc, log),
	}, api.Options{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		RateLimiter: limiter,
		Logger:      log,
	})

	// Страницы сайта
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	pages, err := web.New(web.Deps{
		Rooms:        roomSvc,
		Bookings:     bookingSvc,
		Contact:      contactSvc,
		Availability: getRoomAvailabilityUseCase,
		Quote:        quoteBookingUseCase,
		CreateBook:   createBookingUseCase,
		Sessions:     sessionStore,
		SessionName:  cfg.Session.Name,
		Location:     loc,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	pages.Register(r, func(h http.Handler) http.Handler { return api.Limit(limiter, h) })

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// newStorage создаёт репозитории выбранного хранилища
func newStorage(
	cfg *config.Config,
	loc *time.Location,
	m *metrics.Metrics,
	stopCh <-chan struct{},
	log *logger.Logger,
) (*storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := openPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		wrappedDB := dbmetrics.WrapWithDefault(db, m, stopCh)
		return &storage{
			rooms:     roomRepo.NewRepository(wrappedDB),
			bookings:  bookingRepo.NewRepository(wrappedDB),
			contacts:  contactRepo.NewRepository(wrappedDB),
			txManager: txmanager.NewTransactionManager(wrappedDB),
			close:     func() { _ = db.Close() },
		}, nil

	default:
		var store *memory.Store
		if cfg.Storage.SeedDemo {
			store = memory.NewDemoStore(func() types.Date { return types.NewDate(time.Now().In(loc)) })
		} else {
			store = memory.NewStore()
			for _, room := range memory.DemoRooms() {
				store.AddRoom(room)
			}
		}
		log.Info("Using in-memory storage (demo reservations=%t)", cfg.Storage.SeedDemo)

		return &storage{
			rooms:     store.Rooms(),
			bookings:  store.Bookings(),
			contacts:  store.Contacts(),
			txManager: memory.NewTransactionManager(store),
			close:     func() {},
		}, nil
	}
}
