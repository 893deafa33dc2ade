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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkRangeAvailabilityHandler "github.com/m04kA/RMS-AvailabilityService/internal/api/handlers/check_range_availability"
	createAvailabilityPeriodHandler "github.com/m04kA/RMS-AvailabilityService/internal/api/handlers/create_availability_period"
	createReservationHandler "github.com/m04kA/RMS-AvailabilityService/internal/api/handlers/create_reservation"
	findFreeIntervalsHandler "github.com/m04kA/RMS-AvailabilityService/internal/api/handlers/find_free_intervals"
	getAvailabilityPeriodsHandler "github.com/m04kA/RMS-AvailabilityService/internal/api/handlers/get_availability_periods"
	getAvailabilityReportHandler "github.com/m04kA/RMS-AvailabilityService/internal/api/handlers/get_availability_report"
	getDayCapacityHandler "github.com/m04kA/RMS-AvailabilityService/internal/api/handlers/get_day_capacity"
	getOwnerReservationsHandler "github.com/m04kA/RMS-AvailabilityService/internal/api/handlers/get_owner_reservations"
	releaseReservationsHandler "github.com/m04kA/RMS-AvailabilityService/internal/api/handlers/release_reservations"
	"github.com/m04kA/RMS-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/RMS-AvailabilityService/internal/config"
	periodRepo "github.com/m04kA/RMS-AvailabilityService/internal/infra/storage/availabilityperiod"
	reservationRepo "github.com/m04kA/RMS-AvailabilityService/internal/infra/storage/reservation"
	catalogServiceClient "github.com/m04kA/RMS-AvailabilityService/internal/integrations/catalogservice"
	rentalServiceClient "github.com/m04kA/RMS-AvailabilityService/internal/integrations/rentalservice"
	ledgerService "github.com/m04kA/RMS-AvailabilityService/internal/service/ledger"
	periodsService "github.com/m04kA/RMS-AvailabilityService/internal/service/periods"
	plannerService "github.com/m04kA/RMS-AvailabilityService/internal/service/planner"
	projectionService "github.com/m04kA/RMS-AvailabilityService/internal/service/projection"
	findFreeIntervalsUC "github.com/m04kA/RMS-AvailabilityService/internal/usecase/find_free_intervals"
	reserveCapacityUC "github.com/m04kA/RMS-AvailabilityService/internal/usecase/reserve_capacity"
	"github.com/m04kA/RMS-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/RMS-AvailabilityService/pkg/logger"
	"github.com/m04kA/RMS-AvailabilityService/pkg/metrics"
	"github.com/m04kA/RMS-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/RMS-AvailabilityService/pkg/txmanager"
)

func main() {
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

	log.Info("Starting RMS-AvailabilityService...")
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

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	rentalClient := rentalServiceClient.NewClient(
		cfg.RentalService.URL,
		time.Duration(cfg.RentalService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds, RentalService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout, cfg.RentalService.URL, cfg.RentalService.Timeout)

	// Инициализируем репозитории и сервисы (с метриками или без)
	var (
		periodRepository      *periodRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах)
	// TODO: Точно нужно переделать эту шл
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		periodRepository = periodRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		periodRepository = periodRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	ledgerSvc := ledgerService.NewService(
		periodRepository,
		reservationRepository,
		txMgr,
		log,
	)
	plannerSvc := plannerService.NewService(
		periodRepository,
		reservationRepository,
		log,
	)
	projectionSvc := projectionService.NewService(
		periodRepository,
		reservationRepository,
		plannerSvc,
		rentalClient,
		log,
	)
	periodsSvc := periodsService.NewService(
		periodRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	reserveCapacityUseCase := reserveCapacityUC.NewUseCase(
		ledgerSvc,
		catalogClient,
		log,
	)

	findFreeIntervalsUseCase := findFreeIntervalsUC.NewUseCase(
		plannerSvc,
		catalogClient,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(reserveCapacityUseCase, log)
	findFreeIntervals := findFreeIntervalsHandler.NewHandler(findFreeIntervalsUseCase, log)
	releaseReservations := releaseReservationsHandler.NewHandler(ledgerSvc, log)
	getOwnerReservations := getOwnerReservationsHandler.NewHandler(ledgerSvc, log)
	getDayCapacity := getDayCapacityHandler.NewHandler(ledgerSvc, log)
	checkRangeAvailability := checkRangeAvailabilityHandler.NewHandler(ledgerSvc, log)
	getAvailabilityReport := getAvailabilityReportHandler.NewHandler(projectionSvc, log)
	createAvailabilityPeriod := createAvailabilityPeriodHandler.NewHandler(periodsSvc, log)
	getAvailabilityPeriods := getAvailabilityPeriodsHandler.NewHandler(periodsSvc, log)

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

	// Срез ёмкости ресурса на день
	api.HandleFunc("/resources/{resourceId}/capacity",
		getDayCapacity.Handle).Methods(http.MethodGet)

	// Проверка доступности диапазона дат
	api.HandleFunc("/resources/{resourceId}/availability",
		checkRangeAvailability.Handle).Methods(http.MethodGet)

	// Поиск свободных интервалов
	api.HandleFunc("/resources/{resourceId}/free-intervals",
		findFreeIntervals.Handle).Methods(http.MethodGet)

	// Отчёт о доступности ресурса
	api.HandleFunc("/resources/{resourceId}/availability-report",
		getAvailabilityReport.Handle).Methods(http.MethodGet)

	// Список окон доступности ресурса
	api.HandleFunc("/resources/{resourceId}/availability-periods",
		getAvailabilityPeriods.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Резервации ---
	// Резервирование ёмкости под аренду
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Резервации одной аренды
	protected.HandleFunc("/owners/{ownerRef}/reservations", getOwnerReservations.Handle).Methods(http.MethodGet)

	// Освобождение всех резерваций аренды
	protected.HandleFunc("/owners/{ownerRef}/reservations", releaseReservations.Handle).Methods(http.MethodDelete)

	// --- Управление окнами доступности (для владельцев ресурсов) ---
	// Публикация окна доступности
	protected.HandleFunc("/resources/{resourceId}/availability-periods",
		createAvailabilityPeriod.Handle).Methods(http.MethodPost)

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
