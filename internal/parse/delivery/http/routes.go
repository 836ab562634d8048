package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the parse endpoints onto the given router group.
func RegisterRoutes(r *gin.RouterGroup, h Handler) {
	r.POST("/parse", h.Parse)
}
