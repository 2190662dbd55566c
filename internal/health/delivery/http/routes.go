package http

import (
	"github.com/gin-gonic/gin"

	"meeting-tracker/internal/middleware"
)

// RegisterRoutes maps the dependency health endpoints. The LLM probe spends
// tokens, so it shares the llm budget.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	hg := rg.Group("/health")
	{
		hg.GET("/llm", mw.RateLimit(middleware.CategoryLLM), h.LLM)
		hg.GET("/db", mw.RateLimit(middleware.CategoryHealth), h.DB)
	}
}
