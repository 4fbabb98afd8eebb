package main

import (
	"os"
	"os/signal"
	"syscall"

	"vegfeedback/internal/config"
	"vegfeedback/internal/services"
	"vegfeedback/pkg/logger"
	"vegfeedback/pkg/rabbitmq"

	"github.com/streadway/amqp"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Configure(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	// --- Initialize RabbitMQ Client ---
	// An empty RABBITMQ_URL disables feedback events.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: services.FeedbackExchange})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = mqClient

		if err := mqClient.ConsumeFeedbackEvents(logFeedbackEvent); err != nil {
			logger.Error().Err(err).Msg("failed to start RabbitMQ consumer")
		}
	}

	app, err := NewApp(cfg, publisher)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create app")
	}
	defer app.Close()

	// --- Start HTTP Server ---
	logger.Info().Str("port", cfg.AppPort).Msg("starting server")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	logger.Info().Msg("shutting down server")

	if err := app.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("error during Fiber shutdown")
	}
	logger.Info().Msg("server gracefully stopped")
}

// logFeedbackEvent is the consumer for the feedback queue. It records
// each event in the log.
func logFeedbackEvent(msg amqp.Delivery) error {
	logger.Info().
		Str("routing_key", msg.RoutingKey).
		RawJSON("event", msg.Body).
		Msg("feedback event received")
	return nil
}
