package http

import (
	"errors"
	"net/http"

	"meeting-tracker/internal/actionitem"
	pkgErrors "meeting-tracker/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, actionitem.ErrActionItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Action item not found")
	case errors.Is(err, actionitem.ErrTranscriptNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Transcript not found")
	case errors.Is(err, actionitem.ErrEmptyTask), errors.Is(err, actionitem.ErrInvalidDueDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
