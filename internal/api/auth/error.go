package auth

import (
	"net/http"

	"savoro-be/pkg/response"
)

var (
	ErrUserNotFound          = response.NewError(http.StatusNotFound, "user not found")
	ErrUserWithEmailNotFound = response.NewError(http.StatusNotFound, "user with email not found")
	ErrInvalidState          = response.NewError(http.StatusUnauthorized, "invalid oauth state")
	ErrExchangeFailed        = response.NewError(http.StatusUnauthorized, "failed to exchange authorization code")
	ErrorInvalidToken        = response.NewError(http.StatusUnauthorized, "invalid token")
	ErrEmailAlreadyInUse     = response.NewError(http.StatusConflict, "email already in use by another user")
)
