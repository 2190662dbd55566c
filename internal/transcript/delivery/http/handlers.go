package http

import (
	"github.com/gin-gonic/gin"

	"meeting-tracker/pkg/response"
)

// Process godoc
// @Summary     Extract action items from a transcript
// @Description Sends the transcript to the LLM provider chain, stores the transcript with its action items and keeps only the 5 newest transcripts.
// @Tags        Transcripts
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Transcript text (1 to 50,000 characters)"
// @Success     201  {object} processResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "All LLM providers failed"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/transcripts [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newProcessResp(output))
}

// Detail godoc
// @Summary     Get transcript detail
// @Description Returns a transcript with its action items ordered by creation.
// @Tags        Transcripts
// @Produce     json
// @Param       id path string true "Transcript ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/transcripts/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// History godoc
// @Summary     Recent transcripts
// @Description Returns the 5 newest transcripts with a 150-character snippet and item count.
// @Tags        Transcripts
// @Produce     json
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListRecent(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRecent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}
