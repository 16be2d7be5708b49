package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_available_slots"
	getDayBookingsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_day_bookings"
	getShopConfigHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/get_shop_config"
	liveSlotsHandler "github.com/m04kA/SMC-BarberBooking/internal/api/handlers/live_slots"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/config"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/kv"
	scheduleRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-BarberBooking/internal/jobs"
	"github.com/m04kA/SMC-BarberBooking/internal/service/digest"
	"github.com/m04kA/SMC-BarberBooking/internal/service/events"
	"github.com/m04kA/SMC-BarberBooking/internal/service/notifications"
	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule"
	"github.com/m04kA/SMC-BarberBooking/internal/service/snapshot"
	cancelBookingUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
	getDayBookingsUC "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_day_bookings"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-BarberBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	kvStore, err := kv.Open(startupCtx, cfg.KVConfig())
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Backend, err)
	}
	log.Info("Storage backend %q opened", cfg.Storage.Backend)

	repository := scheduleRepo.NewRepository(kvStore, cfg.Storage.Key, metricsCollector, log)
	initial, loaded := repository.Load(startupCtx)

	// Шина событий и хранилище расписания
	bus := events.NewBus(cfg.Events.QueueSize, metricsCollector, log)

	store, err := schedule.NewStore(cfg.ShopConfig(), initial, bus, log)
	if err != nil {
		log.Fatal("Failed to initialize schedule: %v", err)
	}

	// Отправка уведомлений
	var sender notifications.Sender
	switch cfg.Notifications.Provider {
	case config.ProviderTwilio:
		twilioSender, err := whatsapp.NewTwilioSender(cfg.TwilioConfig(), log)
		if err != nil {
			log.Fatal("Failed to initialize Twilio sender: %v", err)
		}
		sender = twilioSender
		log.Info("Notifications are sent via Twilio WhatsApp from %s", cfg.Twilio.FromNumber)
	default:
		sender = whatsapp.NewLinkSender(cfg.Notifications.DefaultCountryCode, log)
		log.Info("Notifications are logged as wa.me links")
	}

	// Подписчики шины событий
	snapshotSvc := snapshot.NewService(store, repository, seconds(cfg.Storage.SaveTimeout), log)
	if !loaded {
		// Пустое расписание не записывается поверх непрочитанных данных
		snapshotSvc.Suspend(repository)
	}
	notificationSvc := notifications.NewService(sender, cfg.NotificationsConfig(), metricsCollector, log)
	liveHub := liveSlotsHandler.NewHub(store, cfg.CORS.AllowedOrigins, log)

	bus.Subscribe(snapshotSvc)
	bus.OnDrop(func(domain.BookingEvent) { snapshotSvc.MarkDirty() })
	bus.Subscribe(notificationSvc)
	bus.Subscribe(liveHub)
	go bus.Run(context.Background())

	// Инициализируем use cases
	location := cfg.Location()
	createBookingUseCase := createBookingUC.NewUseCase(store, metricsCollector, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(store, cancelBookingUC.RequireExplicit{}, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store, location, log)
	getDayBookingsUseCase := getDayBookingsUC.NewUseCase(store, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getDayBookings := getDayBookingsHandler.NewHandler(getDayBookingsUseCase, log)
	getShopConfig := getShopConfigHandler.NewHandler(store, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Конфигурация магазина и занятость слотов
	api.HandleFunc("/config", getShopConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.Handle("/live", liveHub).Methods(http.MethodGet)

	// Бронирования
	var createBookingRoute http.Handler = http.HandlerFunc(createBooking.Handle)
	rateLimiter := middleware.NewRateLimiter(
		cfg.RateLimit.RequestsPerSecond,
		cfg.RateLimit.Burst,
		seconds(cfg.RateLimit.IdleTTL),
		log,
	)
	if cfg.RateLimit.Enabled {
		createBookingRoute = rateLimiter.Limit(createBookingRoute)
		log.Info("Rate limit on booking creation: %.2f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	api.Handle("/bookings", createBookingRoute).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Расписание дня для владельца
	api.HandleFunc("/days/{date}/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	}).Handler(r)

	handler := middleware.RequestID(middleware.Logging(log)(corsHandler))

	// Фоновые задачи
	digestSvc := digest.NewService(store, notificationSvc, location, log)
	runner := jobs.NewRunner(location, log)

	jobTimeout := seconds(cfg.Jobs.Timeout)
	jobList := []jobs.Job{
		{Name: "owner-digest", Schedule: cfg.Jobs.DigestSchedule, Run: digestSvc.SendTomorrow, Timeout: jobTimeout},
		{Name: "snapshot-checkpoint", Schedule: cfg.Jobs.CheckpointSchedule, Run: snapshotSvc.Checkpoint, Timeout: jobTimeout},
		{Name: "ratelimit-cleanup", Schedule: cfg.Jobs.CleanupSchedule, Run: func(context.Context) {
			if removed := rateLimiter.Cleanup(); removed > 0 {
				log.Debug("RateLimiter: %d idle visitors removed", removed)
			}
		}},
	}
	for _, job := range jobList {
		if err := runner.Add(job); err != nil {
			log.Fatal("Failed to schedule job: %v", err)
		}
	}
	runner.Start()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  seconds(cfg.Server.ReadTimeout),
		WriteTimeout: seconds(cfg.Server.WriteTimeout),
		IdleTimeout:  seconds(cfg.Server.IdleTimeout),
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), seconds(cfg.Server.ShutdownTimeout))
	defer cancel()

	// Новые бронирования больше не принимаются
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	liveHub.Close()

	if err := runner.Stop(shutdownCtx); err != nil {
		log.Error("Jobs did not stop in time: %v", err)
	}

	// Доставляем оставшиеся события (сохранение и уведомления)
	if err := bus.Close(shutdownCtx); err != nil {
		log.Error("Event queue was not drained: %v", err)
	}

	// Финальное сохранение расписания
	if err := snapshotSvc.Flush(shutdownCtx); err != nil {
		log.Error("Final schedule save failed: %v", err)
	}

	if err := kvStore.Close(); err != nil {
		log.Error("Failed to close storage: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
