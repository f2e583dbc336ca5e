package orderRepository

import (
	"savoro-be/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Carts:    &cartsRepository{q: sqlExecutor, log: r.log},
		Orders:   &ordersRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Carts interface {
		AddItem(ctx context.Context, item entity.CartItem) error
		GetCartLines(ctx context.Context, userID string) ([]entity.CartLine, error)
		GetItemByID(ctx context.Context, id string) (entity.CartItem, error)
		UpdateItem(ctx context.Context, item entity.CartItem) error
		DeleteItem(ctx context.Context, id string) error
		ClearCart(ctx context.Context, userID string) error
	}

	Orders interface {
		CreateOrder(ctx context.Context, order entity.Order) error
		CreateOrderItem(ctx context.Context, item entity.OrderItem) error
		GetOrderByID(ctx context.Context, id string) (entity.Order, error)
		GetOrderItems(ctx context.Context, orderID string) ([]entity.OrderItem, error)
		GetOrdersByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Order, int, error)
		UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error
	}

	Commit   func() error
	Rollback func() error
}

type cartsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type ordersRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
