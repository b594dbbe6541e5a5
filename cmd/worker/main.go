// Worker consumes visit events from Kafka, bumps link visit counts, and
// records owner notifications. Set KAFKA_BROKERS, KAFKA_VISITS_TOPIC,
// KAFKA_GROUP_ID, and DATABASE_URL. GRPC_ADDR is required by config but
// unused (e.g. set to :0).
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"shortlink-platform/backend/internal/config"
	"shortlink-platform/backend/internal/db"
	"shortlink-platform/backend/internal/events/consumer"
	linkrepo "shortlink-platform/backend/internal/link/repository"
	notifrepo "shortlink-platform/backend/internal/notification/repository"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "worker").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	brokers := cfg.KafkaBrokersList()
	if len(brokers) == 0 {
		logger.Fatal().Msg("KAFKA_BROKERS is required")
	}
	if cfg.DatabaseURL == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer database.Close()

	reader := consumer.NewReader(brokers, cfg.KafkaVisitsTopic, cfg.KafkaGroupID)
	visits := consumer.NewVisitConsumer(
		reader,
		linkrepo.NewPostgresRepository(database),
		notifrepo.NewPostgresRepository(database),
		logger,
	)
	defer visits.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info().Msg("shutting down")
		cancel()
	}()

	logger.Info().
		Str("topic", cfg.KafkaVisitsTopic).
		Str("group", cfg.KafkaGroupID).
		Msg("consuming visit events")

	if err := visits.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("consumer")
	}
	logger.Info().Msg("stopped")
}
