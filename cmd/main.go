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

	createAppointmentHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/delete_appointment"
	getAdminStatsHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/get_admin_stats"
	getAppointmentHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/get_appointments"
	getAvailabilityHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/get_available_slots"
	getServicesHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/get_services"
	sendContactMessageHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/send_contact_message"
	setAvailabilityHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/set_availability"
	updateAppointmentStatusHandler "github.com/eh-co/CryoBookingService/internal/api/handlers/update_appointment_status"
	"github.com/eh-co/CryoBookingService/internal/api/middleware"
	"github.com/eh-co/CryoBookingService/internal/config"
	appointmentRepo "github.com/eh-co/CryoBookingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/eh-co/CryoBookingService/internal/infra/storage/availability"
	"github.com/eh-co/CryoBookingService/internal/integrations/mailer"
	appointmentsService "github.com/eh-co/CryoBookingService/internal/service/appointments"
	availabilityService "github.com/eh-co/CryoBookingService/internal/service/availability"
	notificationsService "github.com/eh-co/CryoBookingService/internal/service/notifications"
	createAppointmentUC "github.com/eh-co/CryoBookingService/internal/usecase/create_appointment"
	resolveAvailabilityUC "github.com/eh-co/CryoBookingService/internal/usecase/resolve_availability"
	setAvailabilityUC "github.com/eh-co/CryoBookingService/internal/usecase/set_availability"
	"github.com/eh-co/CryoBookingService/pkg/dbmetrics"
	"github.com/eh-co/CryoBookingService/pkg/logger"
	"github.com/eh-co/CryoBookingService/pkg/metrics"
	"github.com/eh-co/CryoBookingService/pkg/simpletxmanager"
	"github.com/eh-co/CryoBookingService/pkg/txmanager"
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

	log.Info("Starting CryoBookingService...")
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

	// Инициализируем SMTP клиент и сервис уведомлений
	mailClient := mailer.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.Clinic.FromEmail,
		log,
	)
	notificationsSvc := notificationsService.NewService(
		mailClient,
		cfg.Clinic.Name,
		cfg.Clinic.AdminEmail,
		cfg.Clinic.ContactEmail,
		log,
	)
	log.Info("Mailer initialized (host=%s, port=%d, from=%s)",
		cfg.SMTP.Host, cfg.SMTP.Port, cfg.Clinic.FromEmail)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		notificationsSvc,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		txMgr,
		notificationsSvc,
		log,
	)
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		log,
	)
	setAvailabilityUseCase := setAvailabilityUC.NewUseCase(
		availabilityRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(resolveAvailabilityUseCase, log)
	getServices := getServicesHandler.NewHandler(log)
	sendContactMessage := sendContactMessageHandler.NewHandler(notificationsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAdminStats := getAdminStatsHandler.NewHandler(appointmentsSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	setAvailability := setAvailabilityHandler.NewHandler(setAvailabilityUseCase, log)

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

	// Каталог услуг клиники
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Публичная форма бронирования (запись создается в статусе pending)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Форма обратной связи
	api.HandleFunc("/contact", sendContactMessage.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.AdminToken))

	// --- Записи ---
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", createAppointment.HandleStaff).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Дашборд ---
	admin.HandleFunc("/stats", getAdminStats.Handle).Methods(http.MethodGet)

	// --- Расписание доступности ---
	admin.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability", setAvailability.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/availability/preset", setAvailability.HandlePreset).Methods(http.MethodPost)

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
