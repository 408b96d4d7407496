package dto

import (
	"errors"
	"testing"

	"github.com/cuongbtq/candidate-service/internal/api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSubmitCandidate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantFields []string
	}{
		{
			name: "valid payload",
			body: `{"fullname":"Jane Doe","email":"jane@example.com","experience":5}`,
		},
		{
			name: "zero values are still typed values",
			body: `{"fullname":"","email":"","experience":0}`,
		},
		{
			name:       "experience as string",
			body:       `{"fullname":"Jane Doe","email":"jane@example.com","experience":"5"}`,
			wantErr:    true,
			wantFields: []string{"experience"},
		},
		{
			name:       "fullname as number",
			body:       `{"fullname":42,"email":"jane@example.com","experience":5}`,
			wantErr:    true,
			wantFields: []string{"fullname"},
		},
		{
			name:       "missing email",
			body:       `{"fullname":"Jane Doe","experience":5}`,
			wantErr:    true,
			wantFields: []string{"email"},
		},
		{
			name:       "null experience",
			body:       `{"fullname":"Jane Doe","email":"jane@example.com","experience":null}`,
			wantErr:    true,
			wantFields: []string{"experience"},
		},
		{
			name:       "empty object",
			body:       `{}`,
			wantErr:    true,
			wantFields: []string{"fullname", "email", "experience"},
		},
		{
			name:    "malformed json",
			body:    `{"fullname":`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeSubmitCandidate([]byte(tt.body))

			if !tt.wantErr {
				require.NoError(t, err)
				require.NotNil(t, req)
				assert.NotNil(t, req.Fullname)
				assert.NotNil(t, req.Email)
				assert.NotNil(t, req.Experience)
				return
			}

			require.Error(t, err)
			assert.Nil(t, req)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantFields, verr.Fields)
		})
	}
}

func TestNewValidationError_PassesThroughDomainError(t *testing.T) {
	original := &domain.ValidationError{Fields: []string{"email"}}
	assert.Same(t, original, NewValidationError(original))
}
