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

	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_catalog"
	groupServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/group_services"
	lookupAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/lookup_appointment"
	manageBlacklistHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/manage_blacklist"
	manageClosedDaysHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/manage_closed_days"
	setSpecialistActiveHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/set_specialist_active"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	blacklistRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/blacklist"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	closedDayRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/closedday"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	salonService "github.com/m04kA/SMC-SalonService/internal/service/salon"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	groupServicesUC "github.com/m04kA/SMC-SalonService/internal/usecase/group_services"
	"github.com/m04kA/SMC-SalonService/pkg/bookingcode"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		catalogRepository     *catalogRepo.Repository
		blacklistRepository   *blacklistRepo.Repository
		closedDayRepository   *closedDayRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		blacklistRepository = blacklistRepo.NewRepository(wrappedDB)
		closedDayRepository = closedDayRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		blacklistRepository = blacklistRepo.NewRepository(db)
		closedDayRepository = closedDayRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	salonSvc := salonService.NewService(
		catalogRepository,
		blacklistRepository,
		closedDayRepository,
		log,
	)

	// Инициализируем use cases
	groupServicesUseCase := groupServicesUC.NewUseCase(catalogRepository, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		closedDayRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		blacklistRepository,
		closedDayRepository,
		txMgr,
		&bookingcode.Generator{},
		cfg.Booking.RateLimitPerDay,
		log,
	)

	// Инициализируем handlers
	groupServices := groupServicesHandler.NewHandler(groupServicesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	lookupAppointment := lookupAppointmentHandler.NewHandler(appointmentSvc, log)
	getCatalog := getCatalogHandler.NewHandler(salonSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	manageBlacklist := manageBlacklistHandler.NewHandler(salonSvc, log)
	manageClosedDays := manageClosedDaysHandler.NewHandler(salonSvc, log)
	setSpecialistActive := setSpecialistActiveHandler.NewHandler(salonSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (мастер записи, без аутентификации)
	// ============================================================

	// Каталог: услуги, активные мастера, способности
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Группировка выбранных услуг по мастерам
	api.HandleFunc("/appointment-groups", groupServices.Handle).Methods(http.MethodPost)

	// Сетка доступных слотов мастера на день
	api.HandleFunc("/specialists/{specialistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записей (одна отправка формы = запись на каждую группу)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Проверка статуса записи по коду
	api.HandleFunc("/appointments/lookup/{code}", lookupAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Записи ---
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}",
		deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Чёрный список ---
	admin.HandleFunc("/blacklist", manageBlacklist.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/blacklist", manageBlacklist.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/blacklist/{entryId}", manageBlacklist.HandleRemove).Methods(http.MethodDelete)

	// --- Нерабочие дни ---
	admin.HandleFunc("/closed-days", manageClosedDays.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/closed-days", manageClosedDays.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/closed-days/{dayId}", manageClosedDays.HandleRemove).Methods(http.MethodDelete)

	// --- Мастера ---
	admin.HandleFunc("/specialists/{specialistId}/active",
		setSpecialistActive.Handle).Methods(http.MethodPatch)

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
