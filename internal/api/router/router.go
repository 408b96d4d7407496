package router

import (
	"net/http"

	"github.com/cuongbtq/candidate-service/internal/api/handler"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "candidate-service",
		})
	})

	candidateHandler := handler.NewCandidateHandler(deps)

	v1 := r.Group("/api/v1")
	{
		candidates := v1.Group("/candidates")
		{
			candidates.POST("", candidateHandler.SubmitCandidate)
			candidates.GET("", candidateHandler.ListCandidates)
			candidates.GET("/:id", candidateHandler.GetCandidate)
		}
	}

	return r
}
