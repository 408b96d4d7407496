package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/cuongbtq/candidate-service/internal/api/domain"
	"github.com/cuongbtq/candidate-service/internal/api/model"
	"github.com/cuongbtq/candidate-service/internal/api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err  error
	puts int
}

func (f *failingStore) Put(context.Context, *model.Candidate) error {
	f.puts++
	return f.err
}

func (f *failingStore) Get(context.Context, string) (*model.Candidate, error) {
	return nil, f.err
}

func (f *failingStore) Scan(context.Context) ([]model.CandidateSummary, error) {
	return nil, f.err
}

type stubPublisher struct {
	published []*model.Candidate
	err       error
}

func (p *stubPublisher) PublishCandidateSubmitted(_ context.Context, candidate *model.Candidate) error {
	p.published = append(p.published, candidate)
	return p.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCandidateService_Submit(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	publisher := &stubPublisher{}
	svc := NewCandidateService(testLogger(), store, publisher)

	candidate, err := svc.Submit(ctx, "Jane Doe", "jane@example.com", 5)
	require.NoError(t, err)
	require.NotNil(t, candidate)
	assert.Equal(t, candidate.SubmittedAt, candidate.UpdatedAt)

	stored, err := store.Get(ctx, candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, candidate, stored)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, candidate.ID, publisher.published[0].ID)
}

func TestCandidateService_SubmitIdenticalInputGetsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewCandidateService(testLogger(), storage.NewMemoryStore(), nil)

	first, err := svc.Submit(ctx, "Jane Doe", "jane@example.com", 5)
	require.NoError(t, err)
	second, err := svc.Submit(ctx, "Jane Doe", "jane@example.com", 5)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCandidateService_SubmitStorageFailure(t *testing.T) {
	store := &failingStore{err: errors.New("provisioned throughput exceeded")}
	publisher := &stubPublisher{}
	svc := NewCandidateService(testLogger(), store, publisher)

	candidate, err := svc.Submit(context.Background(), "Jane Doe", "jane@example.com", 5)
	require.Error(t, err)
	assert.Nil(t, candidate)
	assert.Equal(t, 1, store.puts)
	assert.Empty(t, publisher.published)

	var submitErr *SubmitError
	require.True(t, errors.As(err, &submitErr))
	assert.Equal(t, "jane@example.com", submitErr.Email)
	assert.Equal(t, "Unable to submit candidate with email jane@example.com", submitErr.Message())
	assert.Equal(t, submitErr.Message(), SubmitFailedMessage("jane@example.com"))
	assert.ErrorIs(t, err, store.err)
}

func TestCandidateService_SubmitPublishFailureIsNotFatal(t *testing.T) {
	svc := NewCandidateService(testLogger(), storage.NewMemoryStore(), &stubPublisher{err: errors.New("broker down")})

	candidate, err := svc.Submit(context.Background(), "Jane Doe", "jane@example.com", 5)
	require.NoError(t, err)
	assert.NotEmpty(t, candidate.ID)
}

func TestCandidateService_List(t *testing.T) {
	t.Run("empty table yields empty slice", func(t *testing.T) {
		svc := NewCandidateService(testLogger(), storage.NewMemoryStore(), nil)

		candidates, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, candidates)
		assert.Empty(t, candidates)
	})

	t.Run("scan error passes through", func(t *testing.T) {
		scanErr := errors.New("ResourceNotFoundException: table missing")
		svc := NewCandidateService(testLogger(), &failingStore{err: scanErr}, nil)

		candidates, err := svc.List(context.Background())
		assert.Nil(t, candidates)
		assert.Same(t, scanErr, err)
	})
}

func TestCandidateService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc := NewCandidateService(testLogger(), storage.NewMemoryStore(), nil)
		submitted, err := svc.Submit(ctx, "Jane Doe", "jane@example.com", 5)
		require.NoError(t, err)

		got, err := svc.Get(ctx, submitted.ID)
		require.NoError(t, err)
		assert.Equal(t, submitted, got)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewCandidateService(testLogger(), storage.NewMemoryStore(), nil)

		got, err := svc.Get(ctx, "unknown")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("storage error is hidden", func(t *testing.T) {
		svc := NewCandidateService(testLogger(), &failingStore{err: errors.New("AccessDeniedException: secret detail")}, nil)

		got, err := svc.Get(ctx, "id-1")
		assert.Nil(t, got)
		assert.Same(t, domain.ErrFetchCandidate, err)
		assert.NotContains(t, err.Error(), "secret detail")
	})
}
