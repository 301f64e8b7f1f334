package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"speech-search/internal/api/middleware"
	"speech-search/internal/api/v1/services"
)

// HealthHandler serves the liveness probe
type HealthHandler struct {
	service services.HealthService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service services.HealthService) *HealthHandler {
	return &HealthHandler{
		service: service,
	}
}

// Health handles GET /health
//
// @Summary Service health
// @Description Reports liveness, the ASR backend in use and the number of stored transcripts
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	health, err := h.service.Health(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, health)
}
