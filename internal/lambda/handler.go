// Package lambda serves the candidate operations behind API Gateway proxy
// integration. Validation, scan and fetch failures are returned as invocation
// errors rather than HTTP responses.
package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/cuongbtq/candidate-service/internal/api/domain"
	"github.com/cuongbtq/candidate-service/internal/api/dto"
	"github.com/cuongbtq/candidate-service/internal/api/service"
)

type Handler struct {
	logger  *slog.Logger
	service *service.CandidateService
}

func NewHandler(logger *slog.Logger, svc *service.CandidateService) *Handler {
	return &Handler{
		logger:  logger,
		service: svc,
	}
}

// Handle routes by method and the presence of the id path parameter
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("EVENT",
		slog.String("method", req.HTTPMethod),
		slog.String("path", req.Path),
		slog.String("request_id", req.RequestContext.RequestID),
	)

	switch req.HTTPMethod {
	case http.MethodPost:
		return h.submit(ctx, req)
	case http.MethodGet:
		if id := req.PathParameters["id"]; id != "" {
			return h.get(ctx, id)
		}
		return h.list(ctx)
	default:
		return jsonResponse(http.StatusMethodNotAllowed, dto.MessageResponse{Message: "Method not allowed"})
	}
}

func (h *Handler) submit(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			h.logger.Error("Validation Failed", slog.String("error", err.Error()))
			return events.APIGatewayProxyResponse{}, errors.New(domain.MsgValidationFailed)
		}
		body = decoded
	}

	input, err := dto.DecodeSubmitCandidate(body)
	if err != nil {
		verr := dto.NewValidationError(err)
		h.logger.Error("Validation Failed",
			slog.Any("fields", verr.Fields),
			slog.String("error", err.Error()),
		)
		return events.APIGatewayProxyResponse{}, errors.New(domain.MsgValidationFailed)
	}

	candidate, err := h.service.Submit(ctx, *input.Fullname, *input.Email, *input.Experience)
	if err != nil {
		// the cause is logged by the service
		message := service.SubmitFailedMessage(*input.Email)
		return jsonResponse(http.StatusInternalServerError, dto.MessageResponse{Message: message})
	}

	return jsonResponse(http.StatusOK, dto.SubmitCandidateResponse{
		Message:     "Successfully submitted candidate with email " + candidate.Email,
		CandidateID: candidate.ID,
	})
}

func (h *Handler) list(ctx context.Context) (events.APIGatewayProxyResponse, error) {
	candidates, err := h.service.List(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return jsonResponse(http.StatusOK, dto.ListCandidatesResponse{Candidates: candidates})
}

func (h *Handler) get(ctx context.Context, id string) (events.APIGatewayProxyResponse, error) {
	candidate, err := h.service.Get(ctx, id)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.New(domain.MsgFetchFailed)
	}

	if candidate == nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
	}

	return jsonResponse(http.StatusOK, candidate)
}

func jsonResponse(status int, body any) (events.APIGatewayProxyResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}, nil
}
