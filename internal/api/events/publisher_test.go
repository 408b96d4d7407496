package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cuongbtq/candidate-service/internal/api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	body        []byte
	contentType string
	err         error
}

func (r *recordingPublisher) Publish(_ context.Context, body []byte, contentType string) error {
	r.body = body
	r.contentType = contentType
	return r.err
}

func TestPublisher_PublishCandidateSubmitted(t *testing.T) {
	rec := &recordingPublisher{}
	publisher := NewPublisher(rec)

	err := publisher.PublishCandidateSubmitted(context.Background(), &model.Candidate{
		ID:          "id-1",
		Fullname:    "Jane Doe",
		Email:       "jane@example.com",
		Experience:  5,
		SubmittedAt: 1700000000000,
		UpdatedAt:   1700000000000,
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", rec.contentType)

	var event CandidateSubmittedEvent
	require.NoError(t, json.Unmarshal(rec.body, &event))
	assert.Equal(t, CandidateSubmittedEvent{
		Event:       "candidate.submitted",
		CandidateID: "id-1",
		Email:       "jane@example.com",
		SubmittedAt: 1700000000000,
	}, event)
}

func TestPublisher_PropagatesPublishError(t *testing.T) {
	publisher := NewPublisher(&recordingPublisher{err: errors.New("channel closed")})

	err := publisher.PublishCandidateSubmitted(context.Background(), &model.Candidate{ID: "id-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}
