package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidate(t *testing.T) {
	before := time.Now().UnixMilli()
	candidate, err := NewCandidate("Jane Doe", "jane@example.com", 5)
	after := time.Now().UnixMilli()

	require.NoError(t, err)
	require.NotNil(t, candidate)

	assert.Equal(t, "Jane Doe", candidate.Fullname)
	assert.Equal(t, "jane@example.com", candidate.Email)
	assert.Equal(t, float64(5), candidate.Experience)
	assert.Equal(t, candidate.SubmittedAt, candidate.UpdatedAt)
	assert.GreaterOrEqual(t, candidate.SubmittedAt, before)
	assert.LessOrEqual(t, candidate.SubmittedAt, after)

	parsed, err := uuid.Parse(candidate.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(1), parsed.Version())
}

func TestNewCandidate_UniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		candidate, err := NewCandidate("Jane Doe", "jane@example.com", 5)
		require.NoError(t, err)

		_, dup := seen[candidate.ID]
		require.False(t, dup, "duplicate id %s", candidate.ID)
		seen[candidate.ID] = struct{}{}
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ValidationError
		wantMsg string
	}{
		{
			name:    "with fields",
			err:     &ValidationError{Fields: []string{"fullname", "experience"}},
			wantMsg: "validation failed on fields: fullname, experience",
		},
		{
			name:    "with cause only",
			err:     &ValidationError{Cause: fmt.Errorf("unexpected EOF")},
			wantMsg: "validation failed: unexpected EOF",
		},
		{
			name:    "bare",
			err:     &ValidationError{},
			wantMsg: "validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrValidation))

			wrapped := fmt.Errorf("submit: %w", tt.err)
			var verr *ValidationError
			require.True(t, errors.As(wrapped, &verr))
			assert.Equal(t, tt.err.Fields, verr.Fields)
		})
	}
}
