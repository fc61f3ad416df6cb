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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/delete_booking"
	deleteCustomerHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/delete_customer"
	getBookingHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/get_booking"
	getBookingDocumentHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/get_booking_document"
	getBookingFormHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/get_booking_form"
	getCustomerHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/get_customer"
	getDashboardStatsHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/get_dashboard_stats"
	getMeHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/get_me"
	listBookingsHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/list_bookings"
	listCustomersHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/list_customers"
	loginHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/login"
	newBookingFormHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/new_booking_form"
	previewBookingFormHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/preview_booking_form"
	updateBookingHandler "github.com/m04kA/SkyTrips-AdminService/internal/api/handlers/update_booking"
	"github.com/m04kA/SkyTrips-AdminService/internal/api/middleware"
	"github.com/m04kA/SkyTrips-AdminService/internal/config"
	bookingRepo "github.com/m04kA/SkyTrips-AdminService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SkyTrips-AdminService/internal/infra/storage/customer"
	authService "github.com/m04kA/SkyTrips-AdminService/internal/service/auth"
	bookingsService "github.com/m04kA/SkyTrips-AdminService/internal/service/bookings"
	customersService "github.com/m04kA/SkyTrips-AdminService/internal/service/customers"
	dashboardService "github.com/m04kA/SkyTrips-AdminService/internal/service/dashboard"
	documentsService "github.com/m04kA/SkyTrips-AdminService/internal/service/documents"
	saveBookingUC "github.com/m04kA/SkyTrips-AdminService/internal/usecase/save_booking"
	"github.com/m04kA/SkyTrips-AdminService/pkg/dbmetrics"
	"github.com/m04kA/SkyTrips-AdminService/pkg/logger"
	"github.com/m04kA/SkyTrips-AdminService/pkg/metrics"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SkyTrips-AdminService...")
	log.Info("Configuration loaded from %s", configPath)

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

	// Репозитории работают с *sql.DB напрямую или через обёртку с метриками
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	customerRepository := customerRepo.NewRepository(executor)

	// Инициализируем сервисы
	authSvc := authService.NewService(authService.Config{
		AdminEmail:        cfg.Auth.AdminEmail,
		AdminPasswordHash: cfg.Auth.AdminPasswordHash,
		JWTSecret:         cfg.Auth.JWTSecret,
		TokenTTL:          time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
		Issuer:            cfg.Auth.Issuer,
	}, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		bookingsService.Pagination{
			DefaultPageSize: cfg.Bookings.DefaultPageSize,
			MaxPageSize:     cfg.Bookings.MaxPageSize,
		},
		log,
	)
	customerSvc := customersService.NewService(
		customerRepository,
		cfg.Bookings.DefaultPageSize,
		cfg.Bookings.MaxPageSize,
		log,
	)
	dashboardSvc := dashboardService.NewService(bookingRepository, customerRepository, log)
	documentSvc := documentsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	saveBookingUseCase := saveBookingUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	getMe := getMeHandler.NewHandler(authSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(saveBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(saveBookingUseCase, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	newBookingForm := newBookingFormHandler.NewHandler(bookingSvc, log)
	getBookingForm := getBookingFormHandler.NewHandler(bookingSvc, log)
	previewBookingForm := previewBookingFormHandler.NewHandler(bookingSvc, log)
	getBookingDocument := getBookingDocumentHandler.NewHandler(documentSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customerSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customerSvc, log)
	deleteCustomer := deleteCustomerHandler.NewHandler(customerSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc, log))

	protected.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)

	// --- Форма бронирования (до /bookings/{id}) ---
	protected.HandleFunc("/bookings/form", newBookingForm.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/form/preview", previewBookingForm.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{id:[0-9]+}/form", getBookingForm.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}/{kind:ticket|invoice}", getBookingDocument.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	protected.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id:[0-9]+}", getCustomer.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id:[0-9]+}", deleteCustomer.Handle).Methods(http.MethodDelete)

	// --- Главная ---
	protected.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)

	// CORS для фронтенда панели и перехват паник
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type", middleware.HeaderRequestID}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Disposition", middleware.HeaderRequestID}),
	)(r)
	handler = gorillaHandlers.RecoveryHandler(gorillaHandlers.RecoveryLogger(log))(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	log.Info("Server stopped gracefully")
}
