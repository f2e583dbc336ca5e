package orderRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"savoro-be/internal/api/order"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type OrderDB struct {
	ID           sql.NullString `db:"id"`
	UserID       sql.NullString `db:"user_id"`
	RestaurantID sql.NullString `db:"restaurant_id"`
	AddressID    sql.NullString `db:"address_id"`
	Status       sql.NullString `db:"status"`
	TotalPrice   sql.NullInt64  `db:"total_price"`
	Notes        sql.NullString `db:"notes"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

type OrderItemDB struct {
	ID        sql.NullString `db:"id"`
	OrderID   sql.NullString `db:"order_id"`
	MenuID    sql.NullString `db:"menu_id"`
	MenuName  sql.NullString `db:"menu_name"`
	UnitPrice sql.NullInt64  `db:"unit_price"`
	Quantity  sql.NullInt64  `db:"quantity"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *ordersRepository) CreateOrder(ctx context.Context, o entity.Order) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            o.ID,
		"user_id":       o.UserID,
		"restaurant_id": o.RestaurantID,
		"address_id":    o.AddressID,
		"status":        o.Status,
		"total_price":   o.TotalPrice,
		"notes":         o.Notes,
		"created_at":    o.CreatedAt,
		"updated_at":    o.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateOrder, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateOrder named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating order")
		return err
	}

	return nil
}

func (r *ordersRepository) CreateOrderItem(ctx context.Context, item entity.OrderItem) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         item.ID,
		"order_id":   item.OrderID,
		"menu_id":    item.MenuID,
		"menu_name":  item.MenuName,
		"unit_price": item.UnitPrice,
		"quantity":   item.Quantity,
		"notes":      item.Notes,
		"created_at": item.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateOrderItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateOrderItem named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating order item")
		return err
	}

	return nil
}

func (r *ordersRepository) GetOrderByID(ctx context.Context, id string) (entity.Order, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var o OrderDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetOrderByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderByID named query preparation err")
		return entity.Order{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Order{}, order.ErrOrderNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderByID execution err")
		return entity.Order{}, err
	}

	return r.makeOrder(o), nil
}

func (r *ordersRepository) GetOrderItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var list []OrderItemDB

	argsKV := map[string]interface{}{
		"order_id": orderID,
	}

	query, args, err := sqlx.Named(queryGetOrderItems, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderItems named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &list, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrderItems execution err")
		return nil, err
	}

	var items []entity.OrderItem
	for _, itemDB := range list {
		items = append(items, entity.OrderItem{
			ID:        itemDB.ID.String,
			OrderID:   itemDB.OrderID.String,
			MenuID:    itemDB.MenuID.String,
			MenuName:  itemDB.MenuName.String,
			UnitPrice: itemDB.UnitPrice.Int64,
			Quantity:  int(itemDB.Quantity.Int64),
			Notes:     itemDB.Notes.String,
			CreatedAt: itemDB.CreatedAt,
		})
	}

	return items, nil
}

func (r *ordersRepository) GetOrdersByUser(ctx context.Context, userID string, limit, offset int) ([]entity.Order, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var list []OrderDB
	var total int

	countArgsKV := map[string]interface{}{
		"user_id": userID,
	}

	countQuery, countArgs, err := sqlx.Named(queryCountOrdersByUser, countArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountOrdersByUser named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountOrdersByUser execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	}

	query, args, err := sqlx.Named(queryGetOrdersByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrdersByUser named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &list, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetOrdersByUser execution err")
		return nil, 0, err
	}

	var orders []entity.Order
	for _, orderDB := range list {
		orders = append(orders, r.makeOrder(orderDB))
	}

	return orders, total, nil
}

func (r *ordersRepository) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"status":     status,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateOrderStatus, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateOrderStatus named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateOrderStatus execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *ordersRepository) makeOrder(o OrderDB) entity.Order {
	return entity.Order{
		ID:           o.ID.String,
		UserID:       o.UserID.String,
		RestaurantID: o.RestaurantID.String,
		AddressID:    o.AddressID.String,
		Status:       entity.OrderStatus(o.Status.String),
		TotalPrice:   o.TotalPrice.Int64,
		Notes:        o.Notes.String,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
