package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/cuongbtq/candidate-service/internal/api/events"
	"github.com/cuongbtq/candidate-service/internal/api/service"
	"github.com/cuongbtq/candidate-service/internal/api/storage"
	"github.com/cuongbtq/candidate-service/internal/config"
	candidatelambda "github.com/cuongbtq/candidate-service/internal/lambda"
	"github.com/cuongbtq/candidate-service/shared/logger"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// CloudWatch picks up stdout; JSON keeps entries queryable
	appLogger, err := logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	// Built once per execution environment and reused across invocations.
	// The clients live as long as the process, so their close funcs are
	// never called.
	store, _, err := storage.NewFromConfig(context.Background(), cfg, appLogger.Logger)
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	var publisher service.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, _, err := events.Connect(&cfg.RabbitMQ, appLogger.Logger)
		if err != nil {
			log.Fatalf("failed to initialize RabbitMQ: %v", err)
		}
		publisher = p
	}

	svc := service.NewCandidateService(appLogger.Logger, store, publisher)
	h := candidatelambda.NewHandler(appLogger.Logger, svc)

	appLogger.Info("Candidate lambda ready",
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("table", cfg.Storage.Table),
	)

	lambda.Start(h.Handle)
}
