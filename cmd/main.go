package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	addBookingHandler "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers/add_booking"
	getCalendarHandler "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers/get_calendar"
	getDayBookingsHandler "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers/get_day_bookings"
	removeBookingHandler "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers/remove_booking"
	verifyPinHandler "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/handlers/verify_pin"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/api/middleware"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/config"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/internal/domain"
	bookingRepo "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/infra/storage/booking"
	accessService "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/service/access"
	scheduleService "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/service/schedule"
	getCalendarUC "github.com/Immortalpie-11/VJK-Mahal-Booking/internal/usecase/get_calendar"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/pkg/dbmetrics"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/pkg/logger"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/pkg/metrics"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/pkg/simpletxmanager"
	"github.com/Immortalpie-11/VJK-Mahal-Booking/pkg/txmanager"
)

func main() {
	// Подхватываем .env для локальной разработки (секреты: ADMIN_PIN и т.д.)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting %s booking service...", cfg.Venue.Name)
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		txMgr             scheduleService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Лимиты площадки и словарь слотов приходят из конфигурации
	rules := domain.DayRules{MaxEventsPerDay: cfg.Venue.MaxEventsPerDay}
	vocab := domain.NewVocabulary(cfg.Venue.Slots)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(bookingRepository, txMgr, rules, vocab, log)
	gate := accessService.NewGate(
		cfg.Auth.PIN,
		cfg.Auth.TokenSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)

	// Одноразовая начальная загрузка бронирований, до обработки запросов
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := scheduleSvc.Load(loadCtx); err != nil {
		cancelLoad()
		log.Fatal("Failed to load bookings: %v", err)
	}
	cancelLoad()

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(scheduleSvc, log)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getDayBookings := getDayBookingsHandler.NewHandler(scheduleSvc, log)
	addBooking := addBookingHandler.NewHandler(scheduleSvc, log)
	removeBooking := removeBookingHandler.NewHandler(scheduleSvc, log)
	verifyPin := verifyPinHandler.NewHandler(gate, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступности на месяц
	api.HandleFunc("/calendar/{month}", getCalendar.Handle).Methods(http.MethodGet)

	// Проверка PIN с ограничением частоты попыток
	pinLimiter := middleware.NewRateLimiter(cfg.Auth.PinRateLimit, cfg.Auth.PinRateBurst)
	api.Handle("/auth/pin",
		pinLimiter.Limit(http.HandlerFunc(verifyPin.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют токен управления)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(gate))

	// Детализация дня
	protected.HandleFunc("/days/{date}/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Добавление бронирования
	protected.HandleFunc("/days/{date}/bookings", addBooking.Handle).Methods(http.MethodPost)

	// Удаление бронирования
	protected.HandleFunc("/days/{date}/bookings/{bookingId}", removeBooking.Handle).Methods(http.MethodDelete)

	// CORS для браузерного фронтенда
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
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

	// Останавливаем фоновую очистку rate limiter'а
	pinLimiter.Stop()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
