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

	addCarHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/add_car"
	addReviewHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/add_review"
	createBookingHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/create_booking"
	deleteCarHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/delete_car"
	getCarHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/get_car"
	getCarReviewsHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/get_car_reviews"
	getClientBookingsHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/get_client_bookings"
	getCurrentUserHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/get_current_user"
	getOwnerBookingsHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/get_owner_bookings"
	getOwnerCarsHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/get_owner_cars"
	loginUserHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/login_user"
	logoutUserHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/logout_user"
	registerUserHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/register_user"
	searchCarsHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/search_cars"
	updateBookingStatusHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/update_booking_status"
	updateCarHandler "github.com/driveshare/DS-RentalService/internal/api/handlers/update_car"
	"github.com/driveshare/DS-RentalService/internal/api/middleware"
	"github.com/driveshare/DS-RentalService/internal/config"
	"github.com/driveshare/DS-RentalService/internal/facade"
	"github.com/driveshare/DS-RentalService/internal/infra/seed"
	bookingRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/booking"
	carRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/car"
	reviewRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/review"
	userRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/user"
	bookingsService "github.com/driveshare/DS-RentalService/internal/service/bookings"
	carsService "github.com/driveshare/DS-RentalService/internal/service/cars"
	reviewsService "github.com/driveshare/DS-RentalService/internal/service/reviews"
	usersService "github.com/driveshare/DS-RentalService/internal/service/users"
	"github.com/driveshare/DS-RentalService/pkg/dbmetrics"
	"github.com/driveshare/DS-RentalService/pkg/logger"
	"github.com/driveshare/DS-RentalService/pkg/metrics"
	"github.com/driveshare/DS-RentalService/pkg/memtxmanager"
	"github.com/driveshare/DS-RentalService/pkg/simpletxmanager"
	"github.com/driveshare/DS-RentalService/pkg/txmanager"
)

// bookingStorage объединяет интерфейсы репозитория бронирований,
// нужные сервису бронирований и сервису отзывов
type bookingStorage interface {
	bookingsService.BookingRepository
	reviewsService.BookingRepository
}

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

	log.Info("Starting DS-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем бэкенд хранилища: PostgreSQL или память
	var (
		userRepository    usersService.UserRepository
		carRepository     carsService.CarRepository
		bookingRepository bookingStorage
		reviewRepository  reviewsService.ReviewRepository
		txMgr             bookingsService.TransactionManager
	)

	if cfg.Database.Enabled {
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			userRepository = userRepo.NewRepository(wrappedDB)
			carRepository = carRepo.NewRepository(wrappedDB)
			bookingRepository = bookingRepo.NewRepository(wrappedDB)
			reviewRepository = reviewRepo.NewRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			userRepository = userRepo.NewRepository(db)
			carRepository = carRepo.NewRepository(db)
			bookingRepository = bookingRepo.NewRepository(db)
			reviewRepository = reviewRepo.NewRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}
	} else {
		log.Info("Database disabled, using in-memory storage")

		userRepository = userRepo.NewMemoryRepository()
		carRepository = carRepo.NewMemoryRepository()
		bookingRepository = bookingRepo.NewMemoryRepository()
		reviewRepository = reviewRepo.NewMemoryRepository()
		txMgr = memtxmanager.NewTransactionManager()
	}

	// Наполняем хранилище демонстрационными данными (если включено)
	if cfg.Seed.Enabled {
		seed.Run(context.Background(), userRepository, carRepository, bookingRepository, reviewRepository, log)
	}

	// Инициализируем сервисы
	userSvc := usersService.NewService(userRepository, log)
	carSvc := carsService.NewService(carRepository, userRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, carRepository, userRepository, txMgr, log)
	reviewSvc := reviewsService.NewService(reviewRepository, bookingRepository, carRepository, log)

	// Собираем фасад
	rental := facade.NewService(userSvc, carSvc, bookingSvc, reviewSvc, log)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(rental, log)
	loginUser := loginUserHandler.NewHandler(rental, log)
	logoutUser := logoutUserHandler.NewHandler(rental, log)
	getCurrentUser := getCurrentUserHandler.NewHandler(rental, log)
	searchCars := searchCarsHandler.NewHandler(rental, log)
	getCar := getCarHandler.NewHandler(rental, log)
	getOwnerCars := getOwnerCarsHandler.NewHandler(rental, log)
	addCar := addCarHandler.NewHandler(rental, log)
	updateCar := updateCarHandler.NewHandler(rental, log)
	deleteCar := deleteCarHandler.NewHandler(rental, log)
	createBooking := createBookingHandler.NewHandler(rental, log)
	getClientBookings := getClientBookingsHandler.NewHandler(rental, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(rental, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(rental, log)
	getCarReviews := getCarReviewsHandler.NewHandler(rental, log)
	addReview := addReviewHandler.NewHandler(rental, log)

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

	// --- Учетные записи ---
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logoutUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", getCurrentUser.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	api.HandleFunc("/cars", searchCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id}", getCar.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	api.HandleFunc("/cars/{id}/reviews", getCarReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют активной сессии)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(rental))

	// --- Объявления ---
	protected.HandleFunc("/cars", addCar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cars/{id}", updateCar.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/cars/{id}", deleteCar.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/owners/{ownerId}/cars", getOwnerCars.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/owners/{ownerId}/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", addReview.Handle).Methods(http.MethodPost)

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
