// Package health exposes a liveness endpoint.
package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealth reports that the server is up.
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
