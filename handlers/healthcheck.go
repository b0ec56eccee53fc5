package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether the service is up.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
