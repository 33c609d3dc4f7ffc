package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatbot-api/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	RootStatus    = "Chatbot API is running"
	HealthVersion = "1.0.0"
	ServiceName   = "chatbot-api"
)

// rootCheck answers the frontend's availability probe. The body shape
// is part of the public contract, so it bypasses the response envelope.
// @Summary Root Check
// @Description Check if the API is up
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is running"
// @Router / [get]
func (srv *HTTPServer) rootCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": RootStatus})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness checks, returning ready once the server is up.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
