package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	orderdomain "github.com/dhaba/restaurant-pos/internal/order/domain"
	"github.com/dhaba/restaurant-pos/internal/order/repository"
	"github.com/dhaba/restaurant-pos/internal/order/usecase/command"
	tablegw "github.com/dhaba/restaurant-pos/internal/table/gateway"
	tablerepo "github.com/dhaba/restaurant-pos/internal/table/repository"
	"github.com/dhaba/restaurant-pos/kafka"
	"github.com/dhaba/restaurant-pos/pkg/database"
	"github.com/dhaba/restaurant-pos/pkg/logger"
	"github.com/dhaba/restaurant-pos/pkg/tracing"
)

// The kitchen worker consumes order.placed events and acknowledges each
// new ticket by moving the order to preparing.
func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "kitchen-worker")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting kitchen worker")

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
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")

	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to kafka")
	}
	defer publisher.Close()

	orderRepo := repository.NewGormOrderRepository(db)
	tableGateway := tablegw.NewTableGateway(tablerepo.NewGormTableRepository(db))
	updateStatus := command.NewUpdateStatusHandler(orderRepo, tableGateway, publisher)

	consumer, err := kafka.NewConsumer(brokers, "kitchen-workers", []string{kafka.TopicOrders})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, func(ctx context.Context, event interface{}) error {
		placed, ok := event.(kafka.OrderPlacedEvent)
		if !ok {
			return fmt.Errorf("unexpected event payload %T", event)
		}

		logger.Info(ctx).
			Str("order_number", placed.OrderNumber).
			Int("table_number", placed.TableNumber).
			Int("item_count", placed.ItemCount).
			Msg("Ticket received in kitchen")

		_, err := updateStatus.Handle(ctx, command.UpdateStatusCommand{
			OrderID: placed.OrderID,
			Status:  orderdomain.StatusPreparing,
		})
		if err != nil {
			// An order already advanced past pending is not a failure
			// worth redelivery
			logger.Warn(ctx).Err(err).Uint("order_id", placed.OrderID).Msg("Could not move order to preparing")
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start consumer")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down kitchen worker...")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
