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
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	createRuleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_rule"
	deleteRuleHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_rule"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	healthHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/health"
	listRulesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_rules"
	resolveAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/resolve_availability"
	verifyAgendaHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/verify_agenda"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	occupancyCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/occupancy"
	ruleRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/availability_rule"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	catalogServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
	statsServiceClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/statsservice"
	rulesService "github.com/m04kA/SMC-AvailabilityService/internal/service/rules"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	resolveAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/resolve_availability"
	verifyAgendaUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/verify_agenda"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/tracing"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Availability.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Availability.Timezone, err)
	}
	agendaStart, agendaEnd, err := cfg.Availability.AgendaBounds()
	if err != nil {
		log.Fatal("Invalid agenda bounds: %v", err)
	}

	// Трассировка
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Tracing.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to setup tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.OTLPEndpoint)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем интеграционных клиентов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	statsClient := statsServiceClient.NewClient(
		cfg.StatsService.URL,
		time.Duration(cfg.StatsService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds, StatsService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout, cfg.StatsService.URL, cfg.StatsService.Timeout)

	// Загрузка специалистов: через Redis, если он включен
	var occupancyProvider getAvailableSlotsUC.OccupancyProvider = statsClient
	readinessChecks := map[string]healthHandler.Pinger{
		"postgres": healthHandler.PingFunc(wrappedDB.PingContext),
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, occupancy cache will fall through: %v", cfg.Redis.Addr, err)
		}

		occupancyProvider = occupancyCache.NewCachedProvider(
			redisClient,
			statsClient,
			time.Duration(cfg.Redis.OccupancyTTLSec)*time.Second,
			metricsCollector,
			log,
		)
		readinessChecks["redis"] = healthHandler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
		log.Info("Occupancy cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.OccupancyTTLSec)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB, cfg.Availability.DefaultBookingMinutes)
	ruleRepository := ruleRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	rulesSvc := rulesService.NewService(ruleRepository, txMgr, log)

	// Инициализируем use cases
	var slotsObserver getAvailableSlotsUC.SlotsObserver
	if metricsCollector != nil {
		slotsObserver = metricsCollector
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		ruleRepository,
		catalogClient,
		occupancyProvider,
		slotsObserver,
		getAvailableSlotsUC.Config{
			Location:    location,
			HorizonDays: cfg.Availability.HorizonDays,
			Enumerator: availability.Options{
				StepMinutes:           cfg.Availability.StepMinutes,
				DefaultBookingMinutes: cfg.Availability.DefaultBookingMinutes,
				PeriodFilter:          availability.PeriodFilter(cfg.Availability.PeriodFilter),
			},
		},
		log,
	)

	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(ruleRepository, log)

	verifyAgendaUseCase := verifyAgendaUC.NewUseCase(
		bookingRepository,
		ruleRepository,
		verifyAgendaUC.Config{
			Location:              location,
			DayStart:              agendaStart,
			DayEnd:                agendaEnd,
			StepMinutes:           cfg.Availability.StepMinutes,
			DefaultBookingMinutes: cfg.Availability.DefaultBookingMinutes,
		},
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	resolveAvailability := resolveAvailabilityHandler.NewHandler(resolveAvailabilityUseCase, log)
	verifyAgenda := verifyAgendaHandler.NewHandler(verifyAgendaUseCase, log)
	listRules := listRulesHandler.NewHandler(rulesSvc, log)
	createRule := createRuleHandler.NewHandler(rulesSvc, log)
	deleteRule := deleteRuleHandler.NewHandler(rulesSvc, log)
	health := healthHandler.NewHandler(readinessChecks, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты услуги на горизонте
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Классификация времени специалиста
	api.HandleFunc("/professionals/{professionalId}/availability", resolveAvailability.Handle).Methods(http.MethodGet)

	// Сетка дня специалиста
	api.HandleFunc("/professionals/{professionalId}/agenda", verifyAgenda.Handle).Methods(http.MethodGet)

	// Правила доступности специалиста
	api.HandleFunc("/professionals/{professionalId}/availability-rules", listRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/professionals/{professionalId}/availability-rules", createRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability-rules/{ruleId}", deleteRule.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, cfg.Tracing.ServiceName),
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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
