package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"meeting-tracker/pkg/llmprovider"
	"meeting-tracker/pkg/response"
)

// LLM godoc
// @Summary     LLM provider health
// @Description Pings the first reachable LLM provider. Results are cached for 60 seconds.
// @Tags        Health
// @Produce     json
// @Success     200 {object} llmResp
// @Failure     503 {object} response.Resp "No provider reachable"
// @Router      /api/health/llm [GET]
func (h *handler) LLM(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.CheckLLM(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckLLM: %v", err)
		response.ServiceUnavailable(c, llmResp{Status: llmprovider.HealthError, Timestamp: time.Now().UTC()})
		return
	}

	resp := h.newLLMResp(out)
	if out.Status.Status != llmprovider.HealthOK {
		response.ServiceUnavailable(c, resp)
		return
	}
	response.OK(c, resp)
}

// DB godoc
// @Summary     Database health
// @Description Runs SELECT 1 and reports the round-trip latency.
// @Tags        Health
// @Produce     json
// @Success     200 {object} dbResp
// @Failure     503 {object} response.Resp "Database connection failed"
// @Router      /api/health/db [GET]
func (h *handler) DB(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.CheckDB(ctx)
	if err != nil {
		response.ServiceUnavailable(c, dbResp{Status: llmprovider.HealthError, Error: err.Error(), Timestamp: time.Now().UTC()})
		return
	}
	response.OK(c, dbResp{Status: llmprovider.HealthOK, LatencyMs: out.LatencyMs, Timestamp: out.CheckedAt})
}
