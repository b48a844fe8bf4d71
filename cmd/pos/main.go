package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	"github.com/dhaba/restaurant-pos/internal/customer/handler"
	customerrepo "github.com/dhaba/restaurant-pos/internal/customer/repository"
	"github.com/dhaba/restaurant-pos/internal/inventory"
	inventoryrepo "github.com/dhaba/restaurant-pos/internal/inventory/repository"
	menuhandler "github.com/dhaba/restaurant-pos/internal/menu/handler"
	menurepo "github.com/dhaba/restaurant-pos/internal/menu/repository"
	"github.com/dhaba/restaurant-pos/internal/order"
	"github.com/dhaba/restaurant-pos/internal/order/cart"
	orderdomain "github.com/dhaba/restaurant-pos/internal/order/domain"
	"github.com/dhaba/restaurant-pos/internal/payment"
	paymentdomain "github.com/dhaba/restaurant-pos/internal/payment/domain"
	reservationhandler "github.com/dhaba/restaurant-pos/internal/reservation/handler"
	reservationrepo "github.com/dhaba/restaurant-pos/internal/reservation/repository"
	"github.com/dhaba/restaurant-pos/internal/server"
	tablegw "github.com/dhaba/restaurant-pos/internal/table/gateway"
	tablehandler "github.com/dhaba/restaurant-pos/internal/table/handler"
	tablerepo "github.com/dhaba/restaurant-pos/internal/table/repository"
	userhttp "github.com/dhaba/restaurant-pos/internal/user/delivery/http"
	userrepo "github.com/dhaba/restaurant-pos/internal/user/repository"
	"github.com/dhaba/restaurant-pos/kafka"
	"github.com/dhaba/restaurant-pos/pkg/database"
	"github.com/dhaba/restaurant-pos/pkg/logger"
	"github.com/dhaba/restaurant-pos/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "pos-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting POS service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database, falling back to an in-memory demo store
	// when no database is configured
	db := connectDatabase()

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Repositories and migrations
	menuRepository := menurepo.NewGormMenuRepository(db)
	userRepository := userrepo.NewGormUserRepository(db)
	tableRepository := tablerepo.NewGormTableRepository(db)
	inventoryRepository := inventoryrepo.NewGormInventoryRepository(db)
	reservationRepository := reservationrepo.NewGormReservationRepository(db)
	customerRepository := customerrepo.NewGormCustomerRepository(db)

	migrators := []interface{ AutoMigrate() error }{
		menuRepository,
		userRepository,
		tableRepository,
		inventoryRepository,
		reservationRepository,
		customerRepository,
	}
	for _, m := range migrators {
		if err := m.AutoMigrate(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}
	orderRepository := order.ProvideOrderRepository(db)
	if err := db.AutoMigrate(&orderdomain.Order{}, &orderdomain.OrderItem{}, &paymentdomain.Payment{}, &paymentdomain.DailyCollection{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher is optional; in demo mode orders simply skip
	// event publishing
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to kafka")
		}
		defer publisher.Close()
		logger.Logger.Info().Str("brokers", brokers).Msg("Kafka publisher initialized")
	} else {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, event publishing disabled")
	}

	var orderPublisher orderdomain.EventPublisher
	var paymentPublisher paymentdomain.EventPublisher
	if publisher != nil {
		orderPublisher = publisher
		paymentPublisher = publisher
	}

	// Cross-module table gateway
	tableGateway := tablegw.NewTableGateway(tableRepository)

	// Handlers
	carts := cart.NewStore()
	orderHandler, err := order.InitializeHandler(db, carts, menuRepository, tableGateway, orderPublisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}
	paymentHandler, err := payment.InitializeHandler(db, orderRepository, tableGateway, paymentPublisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize payment handler")
	}
	inventoryHandler, err := inventory.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	menuHandler := menuhandler.NewMenuHandler(menuRepository)
	userHandler := userhttp.NewUserHandler(userRepository)
	tableHandler := tablehandler.NewTableHandler(tableRepository)
	reservationHandler := reservationhandler.NewReservationHandler(reservationRepository, tableGateway)
	customerHandler := handler.NewCustomerHandler(customerRepository)

	// Setup router
	router := mux.NewRouter()
	server.RegisterMiddlewares(router, server.DefaultMiddlewareConfig())

	userHandler.RegisterRoutes(router)
	menuHandler.RegisterRoutes(router)
	tableHandler.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	paymentHandler.RegisterRoutes(router)
	reservationHandler.RegisterRoutes(router)
	customerHandler.RegisterRoutes(router)

	server.RegisterHealthCheck(router, sqlDB)
	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	srv := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      c.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

// connectDatabase opens postgres when DB_HOST is configured, otherwise
// an in-memory sqlite store so the terminal runs standalone.
func connectDatabase() *gorm.DB {
	demoMode := getEnv("POS_DEMO", "") == "true" || getEnv("DB_HOST", "") == ""
	if demoMode {
		logger.Logger.Warn().Msg("Running in demo mode with in-memory database")
		db, err := database.NewDemoConnection()
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to open demo database")
		}
		return db
	}

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "posdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	return db
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
