package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/candidate-service/internal/config"
	"github.com/cuongbtq/candidate-service/shared/dynamodb"
	"github.com/cuongbtq/candidate-service/shared/postgresql"
)

// NewFromConfig builds the Gateway selected by cfg.Storage.Driver. The
// returned close function releases the underlying client and is never nil.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Gateway, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case config.DriverDynamoDB:
		client, err := dynamodb.NewClient(ctx, &dynamodb.Config{
			Region:   cfg.DynamoDB.Region,
			Endpoint: cfg.DynamoDB.Endpoint,
		}, logger)
		if err != nil {
			return nil, noop, err
		}
		return NewDynamoDBStore(client, cfg.Storage.Table), noop, nil

	case config.DriverPostgres:
		client, err := postgresql.NewClient(ctx, &postgresql.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			Database:        cfg.Database.Database,
			SSLMode:         cfg.Database.SSLMode,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		}, logger)
		if err != nil {
			return nil, noop, err
		}
		return NewPostgresStore(client.GetDB(), cfg.Storage.Table), client.Close, nil

	case config.DriverMemory:
		logger.Warn("Using in-memory candidate store, data will not survive a restart")
		return NewMemoryStore(), noop, nil

	default:
		return nil, noop, fmt.Errorf("unsupported storage driver: %q", cfg.Storage.Driver)
	}
}
