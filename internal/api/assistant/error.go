package assistant

import (
	"net/http"

	"savoro-be/pkg/response"
)

var (
	ErrNoActiveSession     = response.NewError(http.StatusConflict, "no active assistant session")
	ErrInvalidAudioFile    = response.NewError(http.StatusBadRequest, "invalid audio file")
	ErrTranscriptionFailed = response.NewError(http.StatusInternalServerError, "failed to transcribe audio")
	ErrEmptyTranscript     = response.NewError(http.StatusBadRequest, "no speech detected in audio")
)
