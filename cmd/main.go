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

	cancelReservationHandler "github.com/discusszone/DZ-BookingService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/discusszone/DZ-BookingService/internal/api/handlers/create_reservation"
	getDailyStatsHandler "github.com/discusszone/DZ-BookingService/internal/api/handlers/get_daily_stats"
	getRoomOccupancyHandler "github.com/discusszone/DZ-BookingService/internal/api/handlers/get_room_occupancy"
	getRoomsHandler "github.com/discusszone/DZ-BookingService/internal/api/handlers/get_rooms"
	getScheduleHandler "github.com/discusszone/DZ-BookingService/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/discusszone/DZ-BookingService/internal/api/handlers/get_user_bookings"
	"github.com/discusszone/DZ-BookingService/internal/api/middleware"
	"github.com/discusszone/DZ-BookingService/internal/config"
	roomdayRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/roomday"
	roomsRepo "github.com/discusszone/DZ-BookingService/internal/infra/storage/rooms"
	occupancyService "github.com/discusszone/DZ-BookingService/internal/service/occupancy"
	getScheduleUC "github.com/discusszone/DZ-BookingService/internal/usecase/get_schedule"
	releaseSlotUC "github.com/discusszone/DZ-BookingService/internal/usecase/release_slot"
	reserveSlotUC "github.com/discusszone/DZ-BookingService/internal/usecase/reserve_slot"
	"github.com/discusszone/DZ-BookingService/pkg/dbmetrics"
	"github.com/discusszone/DZ-BookingService/pkg/logger"
	"github.com/discusszone/DZ-BookingService/pkg/metrics"
	"github.com/discusszone/DZ-BookingService/pkg/simpletxmanager"
	"github.com/discusszone/DZ-BookingService/pkg/txmanager"
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

	log.Info("Starting DZ-BookingService...")
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

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		roomRepository *roomsRepo.Repository
		dayRepository  *roomdayRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		roomRepository = roomsRepo.NewRepository(wrappedDB)
		dayRepository = roomdayRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		roomRepository = roomsRepo.NewRepository(db)
		dayRepository = roomdayRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем read-сторону
	occupancySvc := occupancyService.NewService(roomRepository, dayRepository, log)

	// Инициализируем use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(roomRepository, dayRepository, log)
	reserveSlotUseCase := reserveSlotUC.NewUseCase(roomRepository, dayRepository, txMgr, log)
	releaseSlotUseCase := releaseSlotUC.NewUseCase(dayRepository, txMgr, log)

	// Инициализируем handlers
	getRooms := getRoomsHandler.NewHandler(occupancySvc, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getRoomOccupancy := getRoomOccupancyHandler.NewHandler(occupancySvc, log)
	getDailyStats := getDailyStatsHandler.NewHandler(occupancySvc, log)
	createReservation := createReservationHandler.NewHandler(reserveSlotUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(releaseSlotUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(occupancySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог комнат
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// Расписание комнаты на дату
	api.HandleFunc("/rooms/{roomId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Текущая занятость комнаты (слот для отображения + схема мест)
	api.HandleFunc("/rooms/{roomId}/occupancy", getRoomOccupancy.Handle).Methods(http.MethodGet)

	// Дневная статистика занятости
	api.HandleFunc("/stats/today", getDailyStats.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// Резервирование слота
	protected.HandleFunc("/bookings", createReservation.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/bookings/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Бронирования пользователя на сегодня
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
