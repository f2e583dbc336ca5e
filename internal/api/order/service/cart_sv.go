package orderService

import (
	"context"
	"time"

	"savoro-be/internal/api/order"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *orderService) AddCartItem(ctx context.Context, userID string, req order.AddCartItemRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	restRepo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		return err
	}

	menu, err := restRepo.Menus.GetMenuByID(ctx, req.MenuID)
	if err != nil {
		return err
	}
	if !menu.IsAvailable {
		return order.ErrMenuUnavailable
	}

	// One restaurant per cart: reject items from a different vendor.
	lines, err := repo.Carts.GetCartLines(ctx, userID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if line.RestaurantID != menu.RestaurantID {
			return order.ErrCartMixedVendors
		}
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	now := time.Now()
	item := entity.CartItem{
		ID:        id,
		UserID:    userID,
		MenuID:    req.MenuID,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return repo.Carts.AddItem(ctx, item)
}

func (s *orderService) GetCart(ctx context.Context, userID string) (*order.CartResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	lines, err := repo.Carts.GetCartLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &order.CartResponse{
		Items: make([]order.CartItemResponse, 0, len(lines)),
	}
	for _, line := range lines {
		subtotal := line.MenuPrice * int64(line.Quantity)
		result.Items = append(result.Items, order.CartItemResponse{
			ID:          line.ID,
			MenuID:      line.MenuID,
			MenuName:    line.MenuName,
			UnitPrice:   line.MenuPrice,
			Quantity:    line.Quantity,
			Notes:       line.Notes,
			Subtotal:    subtotal,
			IsAvailable: line.IsAvailable,
		})
		result.Total += subtotal
		result.RestaurantID = line.RestaurantID
	}

	return result, nil
}

func (s *orderService) UpdateCartItem(ctx context.Context, userID, itemID string, req order.UpdateCartItemRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	item, err := repo.Carts.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return order.ErrCartItemNotFound
	}

	item.Quantity = req.Quantity
	item.Notes = req.Notes

	return repo.Carts.UpdateItem(ctx, item)
}

func (s *orderService) RemoveCartItem(ctx context.Context, userID, itemID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	item, err := repo.Carts.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return order.ErrCartItemNotFound
	}

	return repo.Carts.DeleteItem(ctx, itemID)
}

func (s *orderService) ClearCart(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	return repo.Carts.ClearCart(ctx, userID)
}
