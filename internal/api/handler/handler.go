package handler

import (
	"log/slog"

	"github.com/cuongbtq/candidate-service/internal/api/service"
	"github.com/cuongbtq/candidate-service/internal/api/storage"
)

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger    *slog.Logger
	Store     storage.Gateway
	Publisher service.EventPublisher
}

// CandidateHandler handles candidate-related HTTP requests
type CandidateHandler struct {
	logger  *slog.Logger
	service *service.CandidateService
}

// NewCandidateHandler creates a new CandidateHandler instance
func NewCandidateHandler(deps *Dependencies) *CandidateHandler {
	return &CandidateHandler{
		logger:  deps.Logger,
		service: service.NewCandidateService(deps.Logger, deps.Store, deps.Publisher),
	}
}
