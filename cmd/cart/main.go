package main

import (
	"context"
	"database/sql"
	"encoding/json"
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

	_ "github.com/divinelits/storefront/docs"
	"github.com/divinelits/storefront/internal/cart"
	httpDelivery "github.com/divinelits/storefront/internal/cart/delivery/http"
	"github.com/divinelits/storefront/internal/cart/domain"
	"github.com/divinelits/storefront/internal/cart/usecase/command"
	"github.com/divinelits/storefront/kafka"
	"github.com/divinelits/storefront/pkg/database"
	"github.com/divinelits/storefront/pkg/logger"
	"github.com/divinelits/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "cart-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting cart service")

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

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "cartdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Separate database/sql pool for health check pings.
	sqlDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open health check connection")
	}
	defer sqlDB.Close()

	logger.Logger.Info().Msg("Database initialized successfully")

	// Initialize handler with Wire DI (repositories run their migrations)
	handler, err := cart.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	// Kafka consumer for checkout completion (optional)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		consumer, err := startCheckoutConsumer(ctx, db, strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to start checkout consumer, continuing without it")
		} else {
			defer consumer.Close()
		}
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8082")
	startHTTPServer(handler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

// startCheckoutConsumer marks cart lines purchased when a payment
// provider confirms an order.
func startCheckoutConsumer(ctx context.Context, db *gorm.DB, brokers []string) (*kafka.Consumer, error) {
	markPurchased, err := cart.InitializeMarkPurchasedHandler(db)
	if err != nil {
		return nil, err
	}

	groupID := getEnv("KAFKA_GROUP_ID", "cart-service")
	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicCheckoutCompleted})
	if err != nil {
		return nil, err
	}

	consumer.RegisterHandler(kafka.EventTypeCheckoutCompleted, func(ctx context.Context, payload []byte) error {
		var event kafka.CheckoutCompletedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}

		keys := make([]domain.LineKey, 0, len(event.Lines))
		for _, line := range event.Lines {
			keys = append(keys, domain.LineKey{
				ProductID: line.ProductID,
				Size:      line.Size,
				VariantID: line.VariantID,
			})
		}

		marked, err := markPurchased.Handle(command.MarkPurchasedCommand{
			UserID: event.UserID,
			Lines:  keys,
		})
		if err != nil {
			return err
		}

		logger.Logger.Info().
			Uint("user_id", event.UserID).
			Int("lines_marked", marked).
			Msg("Checkout completion applied to cart")
		return nil
	})

	if err := consumer.Start(ctx); err != nil {
		consumer.Close()
		return nil, err
	}
	return consumer, nil
}

func startHTTPServer(handler *httpDelivery.CartHandler, db *sql.DB, port string) {
	// Setup router
	router := mux.NewRouter()

	// Register routes
	handler.RegisterRoutes(router)

	// Health check endpoint
	handler.RegisterHealthCheck(router, db)

	// Swagger documentation
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Trace every inbound request
	traced := httpDelivery.TracingMiddleware("cart-http", c.Handler(router))

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, traced); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
