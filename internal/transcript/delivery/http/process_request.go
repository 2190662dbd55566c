package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"meeting-tracker/internal/transcript"
	pkgErrors "meeting-tracker/pkg/errors"
)

// processProcessReq binds the transcript submission body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Tag() {
			case "required":
				return req, pkgErrors.NewHTTPError(http.StatusBadRequest, transcript.ErrEmptyText.Error())
			case "max":
				return req, pkgErrors.NewHTTPError(http.StatusBadRequest, transcript.ErrTextTooLong.Error())
			}
		}
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return req, nil
}
