package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/candidate-service/internal/api/model"
	"github.com/cuongbtq/candidate-service/internal/config"
	"github.com/cuongbtq/candidate-service/shared/rabbitmq"
)

const CandidateSubmitted = "candidate.submitted"

// CandidateSubmittedEvent is the message body emitted after a successful submit
type CandidateSubmittedEvent struct {
	Event       string `json:"event"`
	CandidateID string `json:"candidateId"`
	Email       string `json:"email"`
	SubmittedAt int64  `json:"submittedAt"`
}

// MessagePublisher is satisfied by *rabbitmq.Client
type MessagePublisher interface {
	Publish(ctx context.Context, body []byte, contentType string) error
}

type Publisher struct {
	client MessagePublisher
}

func NewPublisher(client MessagePublisher) *Publisher {
	return &Publisher{client: client}
}

// Connect dials RabbitMQ with the configured settings and wraps the client
func Connect(cfg *config.RabbitMQConfig, logger *slog.Logger) (*Publisher, *rabbitmq.Client, error) {
	client, err := rabbitmq.NewClient(&rabbitmq.Config{
		Host:               cfg.Host,
		Port:               cfg.Port,
		User:               cfg.User,
		Password:           cfg.Password,
		VHost:              cfg.VHost,
		ExchangeName:       cfg.Exchange.Name,
		ExchangeType:       cfg.Exchange.Type,
		ExchangeDurable:    cfg.Exchange.Durable,
		ExchangeAutoDelete: cfg.Exchange.AutoDelete,
		QueueName:          cfg.Queue.Name,
		QueueDurable:       cfg.Queue.Durable,
		QueueAutoDelete:    cfg.Queue.AutoDelete,
		QueueExclusive:     cfg.Queue.Exclusive,
		RoutingKey:         cfg.RoutingKey,
		RetryAttempts:      cfg.Connection.RetryAttempts,
		RetryInterval:      cfg.Connection.RetryInterval,
		Heartbeat:          cfg.Connection.Heartbeat,
		ConnectionTimeout:  cfg.Connection.ConnectionTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	return NewPublisher(client), client, nil
}

func (p *Publisher) PublishCandidateSubmitted(ctx context.Context, candidate *model.Candidate) error {
	body, err := json.Marshal(CandidateSubmittedEvent{
		Event:       CandidateSubmitted,
		CandidateID: candidate.ID,
		Email:       candidate.Email,
		SubmittedAt: candidate.SubmittedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", CandidateSubmitted, err)
	}

	return p.client.Publish(ctx, body, "application/json")
}
