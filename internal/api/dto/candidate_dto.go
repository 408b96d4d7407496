package dto

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/cuongbtq/candidate-service/internal/api/domain"
	"github.com/cuongbtq/candidate-service/internal/api/model"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SubmitCandidateRequest is the submit payload. Pointer fields let "required"
// reject absent or null values while still accepting "" and 0.
type SubmitCandidateRequest struct {
	Fullname   *string  `json:"fullname" binding:"required"`
	Email      *string  `json:"email" binding:"required"`
	Experience *float64 `json:"experience" binding:"required"`
}

type SubmitCandidateResponse struct {
	Message     string `json:"message"`
	CandidateID string `json:"candidateId"`
}

type ListCandidatesResponse struct {
	Candidates []model.CandidateSummary `json:"candidates"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// DecodeSubmitCandidate decodes and validates a raw submit body
func DecodeSubmitCandidate(body []byte) (*SubmitCandidateRequest, error) {
	var req SubmitCandidateRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		return nil, NewValidationError(err)
	}
	return &req, nil
}

// NewValidationError converts a binding error into a domain.ValidationError
// that names the offending JSON fields.
func NewValidationError(err error) *domain.ValidationError {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	var fields []string

	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			fields = append(fields, jsonFieldName(fe.StructField()))
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		fields = append(fields, typeErr.Field)
	}

	return &domain.ValidationError{Fields: fields, Cause: err}
}

func jsonFieldName(structField string) string {
	field, ok := reflect.TypeOf(SubmitCandidateRequest{}).FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" {
		return strings.ToLower(structField)
	}
	return name
}
