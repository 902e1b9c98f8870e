package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. The backend holds no external connections, so
// being able to answer is the whole check.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
