package restaurant

import (
	"net/http"

	"savoro-be/pkg/response"
)

var (
	ErrRestaurantNotFound = response.NewError(http.StatusNotFound, "restaurant not found")
	ErrMenuNotFound       = response.NewError(http.StatusNotFound, "menu not found")
	ErrRestaurantNotOwned = response.NewError(http.StatusForbidden, "restaurant does not belong to user")
	ErrInvalidFileType    = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFailedToUpload     = response.NewError(http.StatusInternalServerError, "failed to upload file")
)
