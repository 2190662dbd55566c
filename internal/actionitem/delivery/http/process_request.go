package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"meeting-tracker/internal/actionitem"
	pkgErrors "meeting-tracker/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return req, pkgErrors.NewHTTPError(http.StatusBadRequest, actionitem.ErrEmptyTask.Error())
		}
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
