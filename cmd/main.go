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

	applyShiftTemplateHandler "github.com/Jelenicat/abeauty/internal/api/handlers/apply_shift_template"
	applyVacationHandler "github.com/Jelenicat/abeauty/internal/api/handlers/apply_vacation"
	cancelAppointmentHandler "github.com/Jelenicat/abeauty/internal/api/handlers/cancel_appointment"
	changeStatusHandler "github.com/Jelenicat/abeauty/internal/api/handlers/change_appointment_status"
	createAppointmentHandler "github.com/Jelenicat/abeauty/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/Jelenicat/abeauty/internal/api/handlers/delete_appointment"
	deleteShiftHandler "github.com/Jelenicat/abeauty/internal/api/handlers/delete_shift"
	getAppointmentHandler "github.com/Jelenicat/abeauty/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/Jelenicat/abeauty/internal/api/handlers/get_available_slots"
	getClientHandler "github.com/Jelenicat/abeauty/internal/api/handlers/get_client"
	getDayScheduleHandler "github.com/Jelenicat/abeauty/internal/api/handlers/get_day_schedule"
	getRevenueHandler "github.com/Jelenicat/abeauty/internal/api/handlers/get_revenue"
	getSalonHoursHandler "github.com/Jelenicat/abeauty/internal/api/handlers/get_salon_hours"
	listClientsHandler "github.com/Jelenicat/abeauty/internal/api/handlers/list_clients"
	listServicesHandler "github.com/Jelenicat/abeauty/internal/api/handlers/list_services"
	rescheduleAppointmentHandler "github.com/Jelenicat/abeauty/internal/api/handlers/reschedule_appointment"
	updateSalonHoursHandler "github.com/Jelenicat/abeauty/internal/api/handlers/update_salon_hours"
	"github.com/Jelenicat/abeauty/internal/api/middleware"
	"github.com/Jelenicat/abeauty/internal/config"
	appointmentRepo "github.com/Jelenicat/abeauty/internal/infra/storage/appointment"
	catalogRepo "github.com/Jelenicat/abeauty/internal/infra/storage/catalog"
	clientRepo "github.com/Jelenicat/abeauty/internal/infra/storage/client"
	employeeRepo "github.com/Jelenicat/abeauty/internal/infra/storage/employee"
	settingsRepo "github.com/Jelenicat/abeauty/internal/infra/storage/settings"
	shiftRepo "github.com/Jelenicat/abeauty/internal/infra/storage/shift"
	appointmentsService "github.com/Jelenicat/abeauty/internal/service/appointments"
	catalogService "github.com/Jelenicat/abeauty/internal/service/catalog"
	reportsService "github.com/Jelenicat/abeauty/internal/service/reports"
	settingsService "github.com/Jelenicat/abeauty/internal/service/settings"
	applyShiftTemplateUC "github.com/Jelenicat/abeauty/internal/usecase/apply_shift_template"
	applyVacationUC "github.com/Jelenicat/abeauty/internal/usecase/apply_vacation"
	createAppointmentUC "github.com/Jelenicat/abeauty/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/Jelenicat/abeauty/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/Jelenicat/abeauty/internal/usecase/reschedule_appointment"
	"github.com/Jelenicat/abeauty/pkg/dbmetrics"
	"github.com/Jelenicat/abeauty/pkg/logger"
	"github.com/Jelenicat/abeauty/pkg/metrics"
	"github.com/Jelenicat/abeauty/pkg/simpletxmanager"
	"github.com/Jelenicat/abeauty/pkg/txmanager"
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

	log.Info("Starting abeauty booking service...")

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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Репозитории и менеджер транзакций - с метриками или без
	var (
		executor dbmetrics.DBExecutor = db
		txMgr    TxManager            = simpletxmanager.NewTransactionManager(db)
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	}

	appointmentRepository := appointmentRepo.NewRepository(executor)
	shiftRepository := shiftRepo.NewRepository(executor)
	employeeRepository := employeeRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	clientRepository := clientRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		shiftRepository,
		employeeRepository,
		clientRepository,
		txMgr,
		log,
	)
	reportsSvc := reportsService.NewService(
		appointmentRepository,
		clientRepository,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		shiftRepository,
		employeeRepository,
		catalogRepository,
		settingsRepository,
		clientRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		shiftRepository,
		employeeRepository,
		catalogRepository,
		settingsRepository,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		shiftRepository,
		settingsRepository,
		txMgr,
		log,
	)
	applyShiftTemplateUseCase := applyShiftTemplateUC.NewUseCase(
		shiftRepository,
		employeeRepository,
		settingsRepository,
		txMgr,
		log,
	)
	applyVacationUseCase := applyVacationUC.NewUseCase(
		appointmentRepository,
		shiftRepository,
		employeeRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	applyShiftTemplate := applyShiftTemplateHandler.NewHandler(applyShiftTemplateUseCase, log)
	applyVacation := applyVacationHandler.NewHandler(applyVacationUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	changeStatus := changeStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(appointmentsSvc, log)
	deleteShift := deleteShiftHandler.NewHandler(appointmentsSvc, log)
	listClients := listClientsHandler.NewHandler(reportsSvc, log)
	getClient := getClientHandler.NewHandler(reportsSvc, log)
	getRevenue := getRevenueHandler.NewHandler(reportsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getSalonHours := getSalonHoursHandler.NewHandler(settingsSvc, log)
	updateSalonHours := updateSalonHoursHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (клиентский поток бронирования)
	// ============================================================

	// Каталог услуг (опционально по категории)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи (бронирование клиента или блокировка админа)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin(log))

	// --- Записи ---
	admin.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{id}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/status", changeStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Дневной календарь ---
	admin.HandleFunc("/schedule/{date}", getDaySchedule.Handle).Methods(http.MethodGet)

	// --- Смены и отпуска ---
	admin.HandleFunc("/employees/{employeeId}/shift-template", applyShiftTemplate.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/employees/{employeeId}/vacations", applyVacation.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/employees/{employeeId}/shifts/{date}", deleteShift.Handle).Methods(http.MethodDelete)

	// --- Настройки салона ---
	admin.HandleFunc("/settings/hours", getSalonHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings/hours/{weekday}", updateSalonHours.Handle).Methods(http.MethodPut)

	// --- Отчетность ---
	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{phone}", getClient.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reports/revenue", getRevenue.Handle).Methods(http.MethodGet)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
