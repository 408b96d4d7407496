package dynamodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Config holds DynamoDB client configuration. Empty fields fall back to the
// default AWS credential and region chain.
type Config struct {
	Region   string
	Endpoint string
}

// NewClient builds a DynamoDB client. It is meant to be created once per
// process and shared by every request.
func NewClient(ctx context.Context, config *Config, logger *slog.Logger) (*dynamodb.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if config.Region != "" {
		opts = append(opts, awsconfig.WithRegion(config.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
	})

	logger.Info("DynamoDB client initialized",
		slog.String("region", awsCfg.Region),
		slog.String("endpoint", config.Endpoint),
	)

	return client, nil
}
