package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"catalog/internal/config"
	"catalog/internal/handlers"
	applogger "catalog/internal/logger"
	"catalog/internal/repositories"
	"catalog/internal/server"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger, err := applogger.New(cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build logger")
	}

	// --- Initialize Repository ---
	ctx := context.Background()
	productRepo, closeStore := openStore(ctx, cfg, logger)
	defer closeStore()

	// --- Initialize RabbitMQ publisher (optional) ---
	var publisher services.ProductEventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:    cfg.RabbitMQURL,
			Queue:  cfg.RabbitMQQueue,
			Logger: logger,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		logger.Info().Msg("RABBITMQ_URL not set, product events disabled")
	}

	// --- Initialize Service and Handler ---
	productService := services.NewProductService(productRepo, publisher, logger)
	productHandler := handlers.NewProductHandler(productService, logger)

	app := server.New(logger, productService, productHandler)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info().Str("port", cfg.AppPort).Str("store", cfg.StoreDriver).Msg("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	logger.Info().Msg("shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error().Err(err).Msg("error during Fiber shutdown")
	}
	logger.Info().Msg("server gracefully stopped")
}

// openStore builds the configured product repository and a func releasing it.
func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repositories.ProductRepository, func()) {
	if cfg.StoreDriver == config.StoreMemory {
		logger.Warn().Msg("using in-memory product store, data is lost on exit")
		return repositories.NewMemoryProductRepository(), func() {}
	}

	client, err := repositories.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoTimeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	logger.Info().
		Str("database", cfg.MongoDatabase).
		Str("collection", cfg.MongoCollection).
		Msg("connected to MongoDB")

	collection := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
	return repositories.NewMongoProductRepository(collection), func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}
}
