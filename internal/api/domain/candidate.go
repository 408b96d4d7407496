package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cuongbtq/candidate-service/internal/api/model"
	"github.com/google/uuid"
)

// Caller-visible messages
const (
	MsgValidationFailed = "Couldn't submit candidate because of validation errors."
	MsgFetchFailed      = "Couldn't fetch candidate."
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrFetchCandidate = errors.New("could not fetch candidate")
)

// ValidationError reports a rejected submission and the fields that caused it.
// Fields is empty when the body could not be read as a JSON object at all.
type ValidationError struct {
	Fields []string
	Cause  error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", ErrValidation, e.Cause)
		}
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s on fields: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewCandidate builds a complete record from already validated input.
// The id is a version 1 UUID so ids are time-ordered.
func NewCandidate(fullname, email string, experience float64) (*model.Candidate, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate candidate id: %w", err)
	}

	timestamp := time.Now().UnixMilli()

	return &model.Candidate{
		ID:          id.String(),
		Fullname:    fullname,
		Email:       email,
		Experience:  experience,
		SubmittedAt: timestamp,
		UpdatedAt:   timestamp,
	}, nil
}
