package http

import (
	"github.com/gin-gonic/gin"

	"meeting-tracker/internal/middleware"
)

// RegisterRoutes maps transcript endpoints. Submission calls the LLM and
// shares the llm rate-limit bucket; reads use the crud bucket.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	transcripts := rg.Group("/transcripts")
	{
		transcripts.POST("", mw.RateLimit(middleware.CategoryLLM), h.Process)
		transcripts.GET("/:id", mw.RateLimit(middleware.CategoryCRUD), h.Detail)
	}
	rg.GET("/history", mw.RateLimit(middleware.CategoryCRUD), h.History)
}
