package restaurantRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"savoro-be/internal/api/restaurant"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type MenuDB struct {
	ID           sql.NullString `db:"id"`
	RestaurantID sql.NullString `db:"restaurant_id"`
	Name         sql.NullString `db:"name"`
	Description  sql.NullString `db:"description"`
	Category     sql.NullString `db:"category"`
	Price        sql.NullInt64  `db:"price"`
	PhotoURL     sql.NullString `db:"photo_url"`
	IsAvailable  sql.NullBool   `db:"is_available"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *menusRepository) CreateMenu(ctx context.Context, menu entity.Menu) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            menu.ID,
		"restaurant_id": menu.RestaurantID,
		"name":          menu.Name,
		"description":   menu.Description,
		"category":      menu.Category,
		"price":         menu.Price,
		"photo_url":     menu.PhotoURL,
		"is_available":  menu.IsAvailable,
		"created_at":    menu.CreatedAt,
		"updated_at":    menu.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateMenu, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateMenu named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating menu")
		return err
	}

	return nil
}

func (r *menusRepository) GetMenuByID(ctx context.Context, id string) (entity.Menu, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var menu MenuDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetMenuByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMenuByID named query preparation err")
		return entity.Menu{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&menu); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Menu{}, restaurant.ErrMenuNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMenuByID execution err")
		return entity.Menu{}, err
	}

	return r.makeMenu(menu), nil
}

func (r *menusRepository) GetMenusByRestaurant(ctx context.Context, restaurantID string) ([]entity.Menu, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var list []MenuDB

	argsKV := map[string]interface{}{
		"restaurant_id": restaurantID,
	}

	query, args, err := sqlx.Named(queryGetMenusByRestaurant, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMenusByRestaurant named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &list, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMenusByRestaurant execution err")
		return nil, err
	}

	var menus []entity.Menu
	for _, menuDB := range list {
		menus = append(menus, r.makeMenu(menuDB))
	}

	return menus, nil
}

func (r *menusRepository) UpdateMenu(ctx context.Context, menu entity.Menu) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           menu.ID,
		"name":         menu.Name,
		"description":  menu.Description,
		"category":     menu.Category,
		"price":        menu.Price,
		"photo_url":    menu.PhotoURL,
		"is_available": menu.IsAvailable,
		"updated_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateMenu, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateMenu named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateMenu execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         menu.ID,
		}).Warn("UpdateMenu no rows affected")
		return restaurant.ErrMenuNotFound
	}

	return nil
}

func (r *menusRepository) DeleteMenu(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteMenu, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteMenu named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteMenu execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return restaurant.ErrMenuNotFound
	}

	return nil
}

func (r *menusRepository) makeMenu(menu MenuDB) entity.Menu {
	return entity.Menu{
		ID:           menu.ID.String,
		RestaurantID: menu.RestaurantID.String,
		Name:         menu.Name.String,
		Description:  menu.Description.String,
		Category:     menu.Category.String,
		Price:        menu.Price.Int64,
		PhotoURL:     menu.PhotoURL.String,
		IsAvailable:  menu.IsAvailable.Bool,
		CreatedAt:    menu.CreatedAt,
		UpdatedAt:    menu.UpdatedAt,
	}
}
