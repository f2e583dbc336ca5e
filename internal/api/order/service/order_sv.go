package orderService

import (
	"context"
	"time"

	"savoro-be/internal/api/order"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"
	"savoro-be/pkg/smtp"

	"github.com/sirupsen/logrus"
)

func (s *orderService) Checkout(ctx context.Context, user entity.UserLoginData, req order.CheckoutRequest) (*order.OrderResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	userRepo, err := s.userRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	address, err := userRepo.Addresses.GetAddressByID(ctx, req.AddressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != user.ID {
		return nil, order.ErrAddressNotFound
	}

	repo, err := s.orderRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	lines, err := repo.Carts.GetCartLines(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, order.ErrCartEmpty
	}

	restaurantID := lines[0].RestaurantID
	var total int64
	for _, line := range lines {
		if line.RestaurantID != restaurantID {
			return nil, order.ErrCartMixedVendors
		}
		if !line.IsAvailable {
			return nil, order.ErrMenuUnavailable
		}
		total += line.MenuPrice * int64(line.Quantity)
	}

	orderID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	o := entity.Order{
		ID:           orderID,
		UserID:       user.ID,
		RestaurantID: restaurantID,
		AddressID:    req.AddressID,
		Status:       entity.OrderStatusPlaced,
		TotalPrice:   total,
		Notes:        req.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Orders.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	result := &order.OrderResponse{
		ID:           orderID,
		RestaurantID: restaurantID,
		Status:       string(o.Status),
		TotalPrice:   total,
		Notes:        req.Notes,
		Items:        make([]order.OrderItemResponse, 0, len(lines)),
		CreatedAt:    now,
	}

	for _, line := range lines {
		itemID, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return nil, err
		}

		item := entity.OrderItem{
			ID:        itemID,
			OrderID:   orderID,
			MenuID:    line.MenuID,
			MenuName:  line.MenuName,
			UnitPrice: line.MenuPrice,
			Quantity:  line.Quantity,
			Notes:     line.Notes,
			CreatedAt: now,
		}

		if err := repo.Orders.CreateOrderItem(ctx, item); err != nil {
			return nil, err
		}

		result.Items = append(result.Items, order.OrderItemResponse{
			MenuID:    line.MenuID,
			MenuName:  line.MenuName,
			UnitPrice: line.MenuPrice,
			Quantity:  line.Quantity,
			Notes:     line.Notes,
		})
	}

	if err := repo.Carts.ClearCart(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit checkout transaction")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"order_id":    orderID,
		"user_id":     user.ID,
		"total_price": total,
	}).Info("Order placed")

	go s.notifyOrderPlaced(user, o, result.Items)

	return result, nil
}

// notifyOrderPlaced sends the receipt email and WhatsApp confirmation.
// Both are best effort, a failed notification never fails the order.
func (s *orderService) notifyOrderPlaced(user entity.UserLoginData, o entity.Order, items []order.OrderItemResponse) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	restaurantName := o.RestaurantID
	restRepo, err := s.restaurantRepo.NewClient(false)
	if err == nil {
		if res, err := restRepo.Restaurants.GetRestaurantByID(ctx, o.RestaurantID); err == nil {
			restaurantName = res.Name
		}
	}

	totalFormatted := s.utils.FormatRupiah(o.TotalPrice)

	receiptLines := make([]smtp.ReceiptLine, 0, len(items))
	for _, item := range items {
		receiptLines = append(receiptLines, smtp.ReceiptLine{
			MenuName: item.MenuName,
			Quantity: item.Quantity,
			Subtotal: s.utils.FormatRupiah(item.UnitPrice * int64(item.Quantity)),
		})
	}

	if err := s.smtpMailer.SendOrderReceipt(user.Email, o.ID, restaurantName, receiptLines, totalFormatted); err != nil {
		s.log.WithFields(logrus.Fields{
			"order_id": o.ID,
			"error":    err.Error(),
		}).Warn("Failed to send order receipt email")
	}

	userRepo, err := s.userRepo.NewClient(false)
	if err != nil {
		return
	}

	profile, err := userRepo.Users.GetUserByID(ctx, user.ID)
	if err != nil || profile.PhoneNumber == "" {
		return
	}

	if err := s.whatsappSender.SendOrderConfirmation(ctx, profile.PhoneNumber, o.ID, restaurantName, totalFormatted); err != nil {
		s.log.WithFields(logrus.Fields{
			"order_id": o.ID,
			"error":    err.Error(),
		}).Warn("Failed to send WhatsApp order confirmation")
	}
}

func (s *orderService) GetOrders(ctx context.Context, userID string, page, limit int) (*order.OrderListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	offset := (page - 1) * limit
	orders, total, err := repo.Orders.GetOrdersByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	result := &order.OrderListResponse{
		Orders: make([]order.OrderResponse, 0, len(orders)),
		Total:  total,
	}
	for _, o := range orders {
		result.Orders = append(result.Orders, order.OrderResponse{
			ID:           o.ID,
			RestaurantID: o.RestaurantID,
			Status:       string(o.Status),
			TotalPrice:   o.TotalPrice,
			Notes:        o.Notes,
			CreatedAt:    o.CreatedAt,
		})
	}

	return result, nil
}

func (s *orderService) GetOrderDetail(ctx context.Context, userID, orderID string) (*order.OrderResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	o, err := repo.Orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, order.ErrOrderNotOwned
	}

	items, err := repo.Orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	result := &order.OrderResponse{
		ID:           o.ID,
		RestaurantID: o.RestaurantID,
		Status:       string(o.Status),
		TotalPrice:   o.TotalPrice,
		Notes:        o.Notes,
		Items:        make([]order.OrderItemResponse, 0, len(items)),
		CreatedAt:    o.CreatedAt,
	}
	for _, item := range items {
		result.Items = append(result.Items, order.OrderItemResponse{
			MenuID:    item.MenuID,
			MenuName:  item.MenuName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		})
	}

	return result, nil
}

func (s *orderService) CancelOrder(ctx context.Context, userID, orderID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.orderRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	o, err := repo.Orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return order.ErrOrderNotOwned
	}
	if o.Status != entity.OrderStatusPlaced {
		return order.ErrOrderNotCancelable
	}

	return repo.Orders.UpdateOrderStatus(ctx, orderID, entity.OrderStatusCancelled)
}
