package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home renders the static landing page
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Health reports liveness for load balancers and uptime checks
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Cafe API",
	})
}
