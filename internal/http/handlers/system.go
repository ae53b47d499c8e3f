package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.APIVersion})
}

// Routes lists the registered routes of r.
func Routes(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		out := make([]gin.H, 0, len(routes))
		for _, rt := range routes {
			out = append(out, gin.H{
				"method": rt.Method,
				"path":   rt.Path,
			})
		}
		c.JSON(http.StatusOK, gin.H{"routes": out})
	}
}

// NotFound answers unknown routes in the uniform error shape.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, CodeNotFound, "route not found", map[string]any{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	})
}
