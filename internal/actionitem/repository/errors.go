package repository

import "errors"

var (
	ErrFailedToInsert     = errors.New("failed to insert record")
	ErrFailedToGet        = errors.New("failed to get record")
	ErrFailedToUpdate     = errors.New("failed to update record")
	ErrFailedToDelete     = errors.New("failed to delete record")
	ErrTranscriptNotFound = errors.New("referenced transcript does not exist")
)
