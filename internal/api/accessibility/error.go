package accessibility

import (
	"net/http"

	"savoro-be/pkg/response"
)

var (
	ErrUnknownSettingKey   = response.NewError(http.StatusNotFound, "unknown accessibility setting")
	ErrSettingNotSet       = response.NewError(http.StatusNotFound, "accessibility setting not set")
	ErrInvalidSettingValue = response.NewError(http.StatusBadRequest, "invalid value for accessibility setting")
	ErrEmptyReadoutText    = response.NewError(http.StatusBadRequest, "readout text is required")
	ErrFailedToSynthesize  = response.NewError(http.StatusInternalServerError, "failed to synthesize speech")
)
