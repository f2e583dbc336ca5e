package orderService

import (
	"context"

	"savoro-be/internal/api/order"
	orderRepository "savoro-be/internal/api/order/repository"
	restaurantRepository "savoro-be/internal/api/restaurant/repository"
	userRepository "savoro-be/internal/api/user/repository"
	"savoro-be/internal/entity"
	"savoro-be/pkg/smtp"
	"savoro-be/pkg/utils"
	"savoro-be/pkg/whatsapp"

	"github.com/sirupsen/logrus"
)

type IOrderService interface {
	AddCartItem(ctx context.Context, userID string, req order.AddCartItemRequest) error
	GetCart(ctx context.Context, userID string) (*order.CartResponse, error)
	UpdateCartItem(ctx context.Context, userID, itemID string, req order.UpdateCartItemRequest) error
	RemoveCartItem(ctx context.Context, userID, itemID string) error
	ClearCart(ctx context.Context, userID string) error

	Checkout(ctx context.Context, user entity.UserLoginData, req order.CheckoutRequest) (*order.OrderResponse, error)
	GetOrders(ctx context.Context, userID string, page, limit int) (*order.OrderListResponse, error)
	GetOrderDetail(ctx context.Context, userID, orderID string) (*order.OrderResponse, error)
	CancelOrder(ctx context.Context, userID, orderID string) error
}

type orderService struct {
	log            *logrus.Logger
	orderRepo      orderRepository.Repository
	restaurantRepo restaurantRepository.Repository
	userRepo       userRepository.Repository
	smtpMailer     smtp.ItfSmtp
	whatsappSender whatsapp.IWhatsappSender
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	orderRepo orderRepository.Repository,
	restaurantRepo restaurantRepository.Repository,
	userRepo userRepository.Repository,
	smtpMailer smtp.ItfSmtp,
	whatsappSender whatsapp.IWhatsappSender,
	utils utils.IUtils,
) IOrderService {
	return &orderService{
		log:            log,
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		smtpMailer:     smtpMailer,
		whatsappSender: whatsappSender,
		utils:          utils,
	}
}
