package http

import (
	"errors"
	"net/http"

	"meeting-tracker/internal/transcript"
	pkgErrors "meeting-tracker/pkg/errors"
	"meeting-tracker/pkg/llmprovider"
)

var errExtractionFailed = pkgErrors.NewHTTPError(http.StatusBadGateway, "Failed to extract action items. Please try again later.")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Provider diagnostics stay in the logs.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transcript.ErrEmptyText), errors.Is(err, transcript.ErrTextTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, transcript.ErrTranscriptNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Transcript not found")
	case errors.Is(err, llmprovider.ErrAllProvidersFailed), errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		return errExtractionFailed
	default:
		return pkgErrors.ErrInternalServerError
	}
}
