package restaurantHandler

import (
	"errors"
	"strconv"
	"time"

	"savoro-be/internal/api/restaurant"
	contextPkg "savoro-be/pkg/context"
	"savoro-be/pkg/handlerUtil"
	jwtPkg "savoro-be/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *RestaurantHandler) GetMenuDetail(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	menuID := ctx.Params("menuId")
	if menuID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("menu ID is required"), ctx.Path())
	}

	result, err := h.restaurantService.GetMenuDetail(c, menuID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_menu_detail")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *RestaurantHandler) CreateMenu(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 20*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	restaurantID := ctx.Params("id")
	if restaurantID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("restaurant ID is required"), ctx.Path())
	}

	price, err := strconv.ParseInt(ctx.FormValue("price"), 10, 64)
	if err != nil || price < 0 {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("price must be a non-negative number"), ctx.Path())
	}

	req := restaurant.CreateMenuRequest{
		Name:        ctx.FormValue("name"),
		Description: ctx.FormValue("description"),
		Category:    ctx.FormValue("category"),
		Price:       price,
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	photoFile, _ := ctx.FormFile("photo")

	if err := h.restaurantService.CreateMenu(c, userData.ID, restaurantID, req, photoFile); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_menu")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Menu created successfully",
		})
	}
}

func (h *RestaurantHandler) UpdateMenu(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	menuID := ctx.Params("menuId")
	if menuID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("menu ID is required"), ctx.Path())
	}

	req := restaurant.UpdateMenuRequest{
		Name:        ctx.FormValue("name"),
		Description: ctx.FormValue("description"),
		Category:    ctx.FormValue("category"),
	}

	if rawPrice := ctx.FormValue("price"); rawPrice != "" {
		price, err := strconv.ParseInt(rawPrice, 10, 64)
		if err != nil || price < 0 {
			return errHandler.HandleValidationError(ctx, requestID,
				errors.New("price must be a non-negative number"), ctx.Path())
		}
		req.Price = &price
	}

	if rawAvailable := ctx.FormValue("is_available"); rawAvailable != "" {
		available, err := strconv.ParseBool(rawAvailable)
		if err != nil {
			return errHandler.HandleValidationError(ctx, requestID,
				errors.New("is_available must be a boolean"), ctx.Path())
		}
		req.IsAvailable = &available
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	photoFile, _ := ctx.FormFile("photo")

	if err := h.restaurantService.UpdateMenu(c, userData.ID, menuID, req, photoFile); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_menu")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Menu updated successfully",
		})
	}
}

func (h *RestaurantHandler) DeleteMenu(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	menuID := ctx.Params("menuId")
	if menuID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("menu ID is required"), ctx.Path())
	}

	if err := h.restaurantService.DeleteMenu(c, userData.ID, menuID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_menu")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Menu deleted successfully",
		})
	}
}
