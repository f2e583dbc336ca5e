package authHandler

import (
	"errors"
	"os"
	"time"

	"savoro-be/internal/api/auth"
	contextPkg "savoro-be/pkg/context"
	"savoro-be/pkg/handlerUtil"
	jwtPkg "savoro-be/pkg/jwt"
	"savoro-be/pkg/log"

	jsoniter "github.com/json-iterator/go"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (h *AuthHandler) HandleGoogleLogin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	url, err := h.authService.LoginGoogle()
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "google_login")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Redirect(url.String(), fiber.StatusTemporaryRedirect)
	}
}

func (h *AuthHandler) CallBackFromGoogle(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	state := ctx.FormValue("state")
	if state != os.Getenv("GOOGLE_STATE") {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Warn("Invalid state parameter")
		return errHandler.Handle(ctx, requestID, auth.ErrInvalidState, ctx.Path(), "google_callback")
	}

	code := ctx.FormValue("code")
	if code == "" {
		reason := ctx.FormValue("error_reason")
		if reason == "user_denied" {
			return errHandler.HandleUnauthorized(ctx, requestID, "Access denied by user")
		}

		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("no authorization code provided"), ctx.Path())
	}

	response, err := h.googleProvider.GetUserExchangeToken(ctx, code)
	if err != nil {
		return errHandler.Handle(ctx, requestID, auth.ErrExchangeFailed, ctx.Path(), "exchange_token")
	}

	var userInfo auth.UserGoogle
	if err := json.Unmarshal(response, &userInfo); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "unmarshal_user_info")
	}

	result, err := h.authService.LoginWithGoogle(c, userInfo)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "login_user")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *AuthHandler) GetSession(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	session, err := h.authService.GetSession(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_session")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, session)
	}
}
