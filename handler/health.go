package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterHealth(r gin.IRouter) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "running"})
	})
}
