package handler

import (
	"log/slog"
	"net/http"

	"github.com/cuongbtq/candidate-service/internal/api/domain"
	"github.com/cuongbtq/candidate-service/internal/api/dto"
	"github.com/cuongbtq/candidate-service/internal/api/service"
	"github.com/gin-gonic/gin"
)

// SubmitCandidate handles POST /api/v1/candidates
func (h *CandidateHandler) SubmitCandidate(c *gin.Context) {
	h.logger.Info("SubmitCandidate called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	var req dto.SubmitCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := dto.NewValidationError(err)
		h.logger.Error("Validation Failed",
			slog.Any("fields", verr.Fields),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Message: domain.MsgValidationFailed,
			Fields:  verr.Fields,
		})
		return
	}

	candidate, err := h.service.Submit(c.Request.Context(), *req.Fullname, *req.Email, *req.Experience)
	if err != nil {
		// the cause is logged by the service
		message := service.SubmitFailedMessage(*req.Email)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: message})
		return
	}

	c.JSON(http.StatusOK, dto.SubmitCandidateResponse{
		Message:     "Successfully submitted candidate with email " + candidate.Email,
		CandidateID: candidate.ID,
	})
}

// ListCandidates handles GET /api/v1/candidates
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	h.logger.Info("ListCandidates called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	candidates, err := h.service.List(c.Request.Context())
	if err != nil {
		// scan failures are not masked
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ListCandidatesResponse{Candidates: candidates})
}

// GetCandidate handles GET /api/v1/candidates/:id
//
// An unknown id answers 200 with an empty body rather than 404, matching the
// Lambda handlers this service replaces.
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id := c.Param("id")

	h.logger.Info("GetCandidate called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("candidate_id", id),
	)

	candidate, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: domain.MsgFetchFailed})
		return
	}

	if candidate == nil {
		c.Status(http.StatusOK)
		return
	}

	c.JSON(http.StatusOK, candidate)
}
