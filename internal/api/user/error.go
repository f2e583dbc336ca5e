package user

import (
	"net/http"

	"savoro-be/pkg/response"
)

var (
	ErrUserNotFound     = response.NewError(http.StatusNotFound, "user not found")
	ErrAddressNotFound  = response.NewError(http.StatusNotFound, "address not found")
	ErrAddressNotOwned  = response.NewError(http.StatusForbidden, "address does not belong to user")
	ErrAlreadyFavorited = response.NewError(http.StatusConflict, "restaurant already in favorites")
	ErrFavoriteNotFound = response.NewError(http.StatusNotFound, "favorite not found")
	ErrInvalidFileType  = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFailedToUpload   = response.NewError(http.StatusInternalServerError, "failed to upload file")
)
