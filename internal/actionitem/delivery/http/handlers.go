package http

import (
	"github.com/gin-gonic/gin"

	"meeting-tracker/pkg/response"
)

// Create godoc
// @Summary     Create an action item
// @Description Adds an action item, optionally linked to a stored transcript.
// @Tags        Action Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Action item"
// @Success     201  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Transcript not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/action-items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Update an action item
// @Description Partial update. Omitted fields are kept; null clears owner, due_date or tags.
// @Tags        Action Items
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Action item ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200  {object} itemResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/action-items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an action item
// @Tags        Action Items
// @Produce     json
// @Param       id path string true "Action item ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/action-items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, deleteResp{Success: true})
}
