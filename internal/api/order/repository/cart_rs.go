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

type CartItemDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	MenuID    sql.NullString `db:"menu_id"`
	Quantity  sql.NullInt64  `db:"quantity"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type CartLineDB struct {
	CartItemDB
	MenuName     sql.NullString `db:"menu_name"`
	MenuPrice    sql.NullInt64  `db:"menu_price"`
	IsAvailable  sql.NullBool   `db:"is_available"`
	RestaurantID sql.NullString `db:"restaurant_id"`
}

func (r *cartsRepository) AddItem(ctx context.Context, item entity.CartItem) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         item.ID,
		"user_id":    item.UserID,
		"menu_id":    item.MenuID,
		"quantity":   item.Quantity,
		"notes":      item.Notes,
		"created_at": item.CreatedAt,
		"updated_at": item.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryAddCartItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddItem named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when adding cart item")
		return err
	}

	return nil
}

func (r *cartsRepository) GetCartLines(ctx context.Context, userID string) ([]entity.CartLine, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var list []CartLineDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetCartLines, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCartLines named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &list, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCartLines execution err")
		return nil, err
	}

	var lines []entity.CartLine
	for _, lineDB := range list {
		lines = append(lines, entity.CartLine{
			CartItem:     r.makeCartItem(lineDB.CartItemDB),
			MenuName:     lineDB.MenuName.String,
			MenuPrice:    lineDB.MenuPrice.Int64,
			IsAvailable:  lineDB.IsAvailable.Bool,
			RestaurantID: lineDB.RestaurantID.String,
		})
	}

	return lines, nil
}

func (r *cartsRepository) GetItemByID(ctx context.Context, id string) (entity.CartItem, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var item CartItemDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCartItemByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemByID named query preparation err")
		return entity.CartItem{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.CartItem{}, order.ErrCartItemNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetItemByID execution err")
		return entity.CartItem{}, err
	}

	return r.makeCartItem(item), nil
}

func (r *cartsRepository) UpdateItem(ctx context.Context, item entity.CartItem) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         item.ID,
		"quantity":   item.Quantity,
		"notes":      item.Notes,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateCartItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateItem named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateItem execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return order.ErrCartItemNotFound
	}

	return nil
}

func (r *cartsRepository) DeleteItem(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteCartItem, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteItem execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return order.ErrCartItemNotFound
	}

	return nil
}

func (r *cartsRepository) ClearCart(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryClearCart, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearCart named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearCart execution err")
		return err
	}

	return nil
}

func (r *cartsRepository) makeCartItem(item CartItemDB) entity.CartItem {
	return entity.CartItem{
		ID:        item.ID.String,
		UserID:    item.UserID.String,
		MenuID:    item.MenuID.String,
		Quantity:  int(item.Quantity.Int64),
		Notes:     item.Notes.String,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
