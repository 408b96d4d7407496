package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/candidate-service/internal/api/domain"
	"github.com/cuongbtq/candidate-service/internal/api/model"
	"github.com/cuongbtq/candidate-service/internal/api/storage"
)

// EventPublisher announces stored candidates to other systems
type EventPublisher interface {
	PublishCandidateSubmitted(ctx context.Context, candidate *model.Candidate) error
}

// SubmitError is returned when a validated candidate could not be stored
type SubmitError struct {
	Email string
	Err   error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("unable to submit candidate with email %s: %v", e.Email, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// Message is the caller-visible text; the cause is left out
func (e *SubmitError) Message() string {
	return SubmitFailedMessage(e.Email)
}

// SubmitFailedMessage is what callers see when Submit fails for email.
func SubmitFailedMessage(email string) string {
	return fmt.Sprintf("Unable to submit candidate with email %s", email)
}

// CandidateService performs one storage operation per call. It holds no
// per-request state and is safe for concurrent use.
type CandidateService struct {
	logger    *slog.Logger
	store     storage.Gateway
	publisher EventPublisher
}

// NewCandidateService wires the service. publisher may be nil.
func NewCandidateService(logger *slog.Logger, store storage.Gateway, publisher EventPublisher) *CandidateService {
	return &CandidateService{
		logger:    logger,
		store:     store,
		publisher: publisher,
	}
}

// Submit builds and stores a candidate from input that already passed validation
func (s *CandidateService) Submit(ctx context.Context, fullname, email string, experience float64) (*model.Candidate, error) {
	candidate, err := domain.NewCandidate(fullname, email, experience)
	if err != nil {
		s.logger.Error("Failed to build candidate",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, &SubmitError{Email: email, Err: err}
	}

	if err := s.store.Put(ctx, candidate); err != nil {
		s.logger.Error("Failed to store candidate",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, &SubmitError{Email: email, Err: err}
	}

	s.logger.Info("Candidate submitted",
		slog.String("candidate_id", candidate.ID),
		slog.String("email", email),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishCandidateSubmitted(ctx, candidate); err != nil {
			s.logger.Warn("Failed to publish candidate event",
				slog.String("candidate_id", candidate.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return candidate, nil
}

// List returns the projected scan; errors pass through untouched
func (s *CandidateService) List(ctx context.Context) ([]model.CandidateSummary, error) {
	candidates, err := s.store.Scan(ctx)
	if err != nil {
		s.logger.Error("Scan failed to load data",
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	if candidates == nil {
		candidates = []model.CandidateSummary{}
	}

	return candidates, nil
}

// Get returns nil without error when the id is unknown. Storage errors are
// logged and replaced by domain.ErrFetchCandidate.
func (s *CandidateService) Get(ctx context.Context, id string) (*model.Candidate, error) {
	candidate, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.Error("Failed to fetch candidate",
			slog.String("candidate_id", id),
			slog.String("error", err.Error()),
		)
		return nil, domain.ErrFetchCandidate
	}

	return candidate, nil
}
