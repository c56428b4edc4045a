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

	createBookingHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/create_booking"
	createScheduleBlockHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/create_schedule_block"
	createSlotRuleHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/create_slot_rule"
	deleteScheduleBlockHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/delete_schedule_block"
	getAvailableSlotsHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/get_bookings"
	getSlotRuleHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/get_slot_rule"
	rescheduleBookingHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/reschedule_booking"
	transitionBookingHandler "github.com/mavisrv/MAVI-ScheduleService/internal/api/handlers/transition_booking"
	"github.com/mavisrv/MAVI-ScheduleService/internal/api/middleware"
	"github.com/mavisrv/MAVI-ScheduleService/internal/config"
	availabilityRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/availability"
	bookingRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/booking"
	catalogRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/catalog"
	slotruleRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/slotrule"
	bookingsService "github.com/mavisrv/MAVI-ScheduleService/internal/service/bookings"
	scheduleblocksService "github.com/mavisrv/MAVI-ScheduleService/internal/service/scheduleblocks"
	slotrulesService "github.com/mavisrv/MAVI-ScheduleService/internal/service/slotrules"
	createBookingUC "github.com/mavisrv/MAVI-ScheduleService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mavisrv/MAVI-ScheduleService/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/mavisrv/MAVI-ScheduleService/internal/usecase/reschedule_booking"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/dbmetrics"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/logger"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/metrics"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/simpletxmanager"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/txmanager"
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

	log.Info("Starting MAVI-ScheduleService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		slotRuleRepository     *slotruleRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		catalogRepository      *catalogRepo.Repository
	)

	// Интерфейс transaction manager, общий для сервисов и usecases
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRuleRepository = slotruleRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRuleRepository = slotruleRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	slotRuleSvc := slotrulesService.NewService(slotRuleRepository, txMgr, log)
	scheduleBlockSvc := scheduleblocksService.NewService(availabilityRepository, catalogRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		slotRuleRepository,
		catalogRepository,
		bookingRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		slotRuleRepository,
		catalogRepository,
		txMgr,
		log,
	)

	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		slotRuleRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	transitionBooking := transitionBookingHandler.NewHandler(bookingSvc, log)
	getSlotRule := getSlotRuleHandler.NewHandler(slotRuleSvc, log)
	createSlotRule := createSlotRuleHandler.NewHandler(slotRuleSvc, log)
	createScheduleBlock := createScheduleBlockHandler.NewHandler(scheduleBlockSvc, log)
	deleteScheduleBlock := deleteScheduleBlockHandler.NewHandler(scheduleBlockSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix; все роуты работают в контексте тенанта из заголовка
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(cfg.Auth.APIKey))

	// --- Расписание ---
	// Доступные слоты профессионала на дату
	api.HandleFunc("/schedule/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрацией
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Перенос бронирования
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// Переходы статуса
	api.HandleFunc("/bookings/{bookingId}/{action:confirm|start|complete|cancel|reject|no-show}",
		transitionBooking.Handle).Methods(http.MethodPatch)

	// --- Блокировки расписания ---
	// Создание блокировки для профессионала
	api.HandleFunc("/professionals/{professionalId}/schedule-blocks", createScheduleBlock.Handle).Methods(http.MethodPost)

	// Удаление блокировки
	api.HandleFunc("/schedule-blocks/{blockId}", deleteScheduleBlock.Handle).Methods(http.MethodDelete)

	// --- Правила генерации слотов ---
	api.HandleFunc("/tenants/{tenantId}/slot-rules", getSlotRule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tenants/{tenantId}/slot-rules", createSlotRule.Handle).Methods(http.MethodPost)

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
