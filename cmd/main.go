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

	bookAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/book_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getEligibleStylistsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_eligible_stylists"
	getMyAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_my_appointments"
	getScheduleHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_schedule"
	transitionAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/transition_appointment"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	catalogClient "github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
	identityClient "github.com/m04kA/SMC-SalonService/internal/integrations/identity"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-SalonService/internal/service/availability"
	catalogindexService "github.com/m04kA/SMC-SalonService/internal/service/catalogindex"
	bookAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
	"github.com/m04kA/SMC-SalonService/pkg/types"
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем расписание салона из конфигурации
	schedule, err := buildSchedule(cfg.Salon)
	if err != nil {
		log.Fatal("Failed to build salon schedule: %v", err)
	}
	log.Info("Salon schedule: %s-%s, slot=%dm, closed on weekday=%d",
		schedule.OpenTime, schedule.CloseTime, schedule.SlotDurationMinutes, schedule.ClosedWeekday)

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
	identity := identityClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	catalog := catalogClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (IdentityService=%s timeout=%ds, CatalogService=%s timeout=%ds)",
		cfg.IdentityService.URL, cfg.IdentityService.Timeout, cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		clientRepository      *clientRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogIdx := catalogindexService.NewService(catalog, log)
	availability := availabilityService.NewChecker(appointmentRepository, schedule, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		clientRepository,
		catalog,
		log,
	)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		catalogIdx,
		availability,
		identity,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalogIdx,
		availability,
		log,
	)

	// Инициализируем handlers
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getEligibleStylists := getEligibleStylistsHandler.NewHandler(catalogIdx, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getMyAppointments := getMyAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(appointmentsSvc, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
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

	// Стилисты, выполняющие услугу
	api.HandleFunc("/services/{serviceId}/stylists",
		getEligibleStylists.Handle).Methods(http.MethodGet)

	// Дневная сетка слотов стилиста
	api.HandleFunc("/stylists/{stylistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Переход статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status", transitionAppointment.Handle).Methods(http.MethodPatch)

	// Удаление записи (только администратор)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// Записи актора: клиент видит свои, стилист - назначенные
	protected.HandleFunc("/my/appointments", getMyAppointments.Handle).Methods(http.MethodGet)

	// --- Администрирование ---
	// Дневная ведомость салона
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

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

// buildSchedule собирает доменное расписание салона из конфигурации
func buildSchedule(cfg config.SalonConfig) (domain.SalonSchedule, error) {
	openTime, err := types.NewTimeStringFromString(cfg.OpenTime)
	if err != nil {
		return domain.SalonSchedule{}, fmt.Errorf("invalid salon.open_time: %w", err)
	}
	closeTime, err := types.NewTimeStringFromString(cfg.CloseTime)
	if err != nil {
		return domain.SalonSchedule{}, fmt.Errorf("invalid salon.close_time: %w", err)
	}

	return domain.SalonSchedule{
		OpenTime:            openTime,
		CloseTime:           closeTime,
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		ClosedWeekday:       time.Weekday(cfg.ClosedWeekday),
	}, nil
}
