package http

import (
	"github.com/gin-gonic/gin"

	"meeting-tracker/internal/middleware"
)

// RegisterRoutes maps action item endpoints under the crud rate-limit bucket.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/action-items", mw.RateLimit(middleware.CategoryCRUD))
	{
		items.POST("", h.Create)
		items.PATCH("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
