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

	cancelBookingHandler "github.com/staysuite/pricing-service/internal/api/handlers/cancel_booking"
	checkoutQuoteHandler "github.com/staysuite/pricing-service/internal/api/handlers/checkout_quote"
	createBookingHandler "github.com/staysuite/pricing-service/internal/api/handlers/create_booking"
	createSeasonalRateHandler "github.com/staysuite/pricing-service/internal/api/handlers/create_seasonal_rate"
	deleteSeasonalRateHandler "github.com/staysuite/pricing-service/internal/api/handlers/delete_seasonal_rate"
	getBookingHandler "github.com/staysuite/pricing-service/internal/api/handlers/get_booking"
	getPropertyAddonsHandler "github.com/staysuite/pricing-service/internal/api/handlers/get_property_addons"
	getRoomConfigHandler "github.com/staysuite/pricing-service/internal/api/handlers/get_room_config"
	getStayQuoteHandler "github.com/staysuite/pricing-service/internal/api/handlers/get_stay_quote"
	listSeasonalRatesHandler "github.com/staysuite/pricing-service/internal/api/handlers/list_seasonal_rates"
	updateRoomConfigHandler "github.com/staysuite/pricing-service/internal/api/handlers/update_room_config"
	updateSeasonalRateHandler "github.com/staysuite/pricing-service/internal/api/handlers/update_seasonal_rate"
	"github.com/staysuite/pricing-service/internal/api/middleware"
	"github.com/staysuite/pricing-service/internal/config"
	addonRepo "github.com/staysuite/pricing-service/internal/infra/storage/addon"
	bookingRepo "github.com/staysuite/pricing-service/internal/infra/storage/booking"
	rateRepo "github.com/staysuite/pricing-service/internal/infra/storage/rate"
	roomRepo "github.com/staysuite/pricing-service/internal/infra/storage/room"
	propertyServiceClient "github.com/staysuite/pricing-service/internal/integrations/propertyservice"
	addonsService "github.com/staysuite/pricing-service/internal/service/addons"
	bookingsService "github.com/staysuite/pricing-service/internal/service/bookings"
	ratesService "github.com/staysuite/pricing-service/internal/service/rates"
	roomsService "github.com/staysuite/pricing-service/internal/service/rooms"
	checkoutQuoteUC "github.com/staysuite/pricing-service/internal/usecase/checkout_quote"
	createBookingUC "github.com/staysuite/pricing-service/internal/usecase/create_booking"
	getStayQuoteUC "github.com/staysuite/pricing-service/internal/usecase/get_stay_quote"
	"github.com/staysuite/pricing-service/pkg/dbmetrics"
	"github.com/staysuite/pricing-service/pkg/logger"
	"github.com/staysuite/pricing-service/pkg/metrics"
	"github.com/staysuite/pricing-service/pkg/simpletxmanager"
	"github.com/staysuite/pricing-service/pkg/txmanager"
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

	log.Info("Starting pricing-service...")
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

	// Инициализируем клиента PropertyService
	propertyClient := propertyServiceClient.NewClient(
		cfg.PropertyService.URL,
		time.Duration(cfg.PropertyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PropertyService=%s timeout=%ds)",
		cfg.PropertyService.URL, cfg.PropertyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		roomRepository    *roomRepo.Repository
		rateRepository    *rateRepo.Repository
		addonRepository   *addonRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и use cases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		roomRepository = roomRepo.NewRepository(wrappedDB)
		rateRepository = rateRepo.NewRepository(wrappedDB)
		addonRepository = addonRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		roomRepository = roomRepo.NewRepository(db)
		rateRepository = rateRepo.NewRepository(db)
		addonRepository = addonRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	roomSvc := roomsService.NewService(
		roomRepository,
		propertyClient,
		log,
	)
	rateSvc := ratesService.NewService(
		rateRepository,
		roomRepository,
		propertyClient,
		txMgr,
		log,
	)
	addonSvc := addonsService.NewService(
		addonRepository,
		propertyClient,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		propertyClient,
		log,
	)

	// Инициализируем use cases
	getStayQuoteUseCase := getStayQuoteUC.NewUseCase(
		roomRepository,
		rateRepository,
		log,
	)

	checkoutQuoteUseCase := checkoutQuoteUC.NewUseCase(
		roomRepository,
		rateRepository,
		addonRepository,
		txMgr,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		rateRepository,
		addonRepository,
		bookingRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getStayQuote := getStayQuoteHandler.NewHandler(getStayQuoteUseCase, log)
	checkoutQuote := checkoutQuoteHandler.NewHandler(checkoutQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getPropertyAddons := getPropertyAddonsHandler.NewHandler(addonSvc, log)
	getRoomConfig := getRoomConfigHandler.NewHandler(roomSvc, log)
	updateRoomConfig := updateRoomConfigHandler.NewHandler(roomSvc, log)
	listSeasonalRates := listSeasonalRatesHandler.NewHandler(rateSvc, log)
	createSeasonalRate := createSeasonalRateHandler.NewHandler(rateSvc, log)
	updateSeasonalRate := updateSeasonalRateHandler.NewHandler(rateSvc, log)
	deleteSeasonalRate := deleteSeasonalRateHandler.NewHandler(rateSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Access-лог с request ID
	r.Use(middleware.RequestLog(log))

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчет стоимости проживания в комнате
	api.HandleFunc("/tenants/{tenantId}/rooms/{roomId}/quote",
		getStayQuote.Handle).Methods(http.MethodGet)

	// Каталог дополнительных услуг объекта размещения
	api.HandleFunc("/properties/{propertyId}/addons",
		getPropertyAddons.Handle).Methods(http.MethodGet)

	// Расчет корзины перед оформлением
	api.HandleFunc("/checkout/quote", checkoutQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Управление комнатой (для менеджеров объекта) ---
	// Конфигурация ценообразования комнаты
	protected.HandleFunc("/rooms/{roomId}/pricing-config", getRoomConfig.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}/pricing-config", updateRoomConfig.Handle).Methods(http.MethodPut)

	// Сезонные ставки комнаты
	protected.HandleFunc("/rooms/{roomId}/seasonal-rates", listSeasonalRates.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{roomId}/seasonal-rates", createSeasonalRate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}/seasonal-rates/{rateId}", updateSeasonalRate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{roomId}/seasonal-rates/{rateId}", deleteSeasonalRate.Handle).Methods(http.MethodDelete)

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
