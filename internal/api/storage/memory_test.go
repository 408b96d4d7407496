package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/cuongbtq/candidate-service/internal/api/model"
	"github.com/cuongbtq/candidate-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	candidate := &model.Candidate{ID: "id-1", Fullname: "Jane Doe", Email: "jane@example.com", Experience: 5, SubmittedAt: 1, UpdatedAt: 1}
	require.NoError(t, store.Put(ctx, candidate))

	// the store keeps its own copy
	candidate.Fullname = "changed"

	got, err = store.Get(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Jane Doe", got.Fullname)

	summaries, err := store.Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.CandidateSummary{{ID: "id-1", Fullname: "Jane Doe", Email: "jane@example.com"}}, summaries)
}

func TestMemoryStore_ConcurrentPuts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Put(ctx, &model.Candidate{ID: fmt.Sprintf("id-%d", i)})
		}(i)
	}
	wg.Wait()

	summaries, err := store.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 50)
}

func TestNewFromConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("memory driver", func(t *testing.T) {
		cfg := config.Default()
		cfg.Storage.Driver = config.DriverMemory
		cfg.Storage.Table = "candidates"

		store, closeFn, err := NewFromConfig(context.Background(), cfg, logger)
		require.NoError(t, err)
		require.NotNil(t, closeFn)
		assert.IsType(t, &MemoryStore{}, store)
		assert.NoError(t, closeFn())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := config.Default()
		cfg.Storage.Driver = "cassandra"

		store, closeFn, err := NewFromConfig(context.Background(), cfg, logger)
		require.Error(t, err)
		assert.Nil(t, store)
		assert.NotNil(t, closeFn)
	})
}
