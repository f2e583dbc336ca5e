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

type RestaurantDB struct {
	ID          sql.NullString  `db:"id"`
	Name        sql.NullString  `db:"name"`
	Description sql.NullString  `db:"description"`
	Cuisine     sql.NullString  `db:"cuisine"`
	Address     sql.NullString  `db:"address"`
	City        sql.NullString  `db:"city"`
	PhotoURL    sql.NullString  `db:"photo_url"`
	Rating      sql.NullFloat64 `db:"rating"`
	IsOpen      sql.NullBool    `db:"is_open"`
	OwnerID     sql.NullString  `db:"owner_id"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (r *restaurantsRepository) CreateRestaurant(ctx context.Context, res entity.Restaurant) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          res.ID,
		"name":        res.Name,
		"description": res.Description,
		"cuisine":     res.Cuisine,
		"address":     res.Address,
		"city":        res.City,
		"photo_url":   res.PhotoURL,
		"rating":      res.Rating,
		"is_open":     res.IsOpen,
		"owner_id":    res.OwnerID,
		"created_at":  res.CreatedAt,
		"updated_at":  res.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateRestaurant, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateRestaurant named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating restaurant")
		return err
	}

	return nil
}

func (r *restaurantsRepository) GetRestaurantByID(ctx context.Context, id string) (entity.Restaurant, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var res RestaurantDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetRestaurantByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRestaurantByID named query preparation err")
		return entity.Restaurant{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Restaurant{}, restaurant.ErrRestaurantNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRestaurantByID execution err")
		return entity.Restaurant{}, err
	}

	return r.makeRestaurant(res), nil
}

func (r *restaurantsRepository) GetAllRestaurants(ctx context.Context, search, city string, limit, offset int) ([]entity.Restaurant, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var list []RestaurantDB
	var total int

	countArgsKV := map[string]interface{}{
		"search": search,
		"city":   city,
	}

	countQuery, countArgs, err := sqlx.Named(queryCountAllRestaurants, countArgsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllRestaurants named query preparation err")
		return nil, 0, err
	}

	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountAllRestaurants execution err")
		return nil, 0, err
	}

	argsKV := map[string]interface{}{
		"search": search,
		"city":   city,
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryGetAllRestaurants, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllRestaurants named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &list, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllRestaurants execution err")
		return nil, 0, err
	}

	var restaurants []entity.Restaurant
	for _, resDB := range list {
		restaurants = append(restaurants, r.makeRestaurant(resDB))
	}

	return restaurants, total, nil
}

func (r *restaurantsRepository) UpdateRestaurant(ctx context.Context, res entity.Restaurant) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          res.ID,
		"name":        res.Name,
		"description": res.Description,
		"cuisine":     res.Cuisine,
		"address":     res.Address,
		"city":        res.City,
		"photo_url":   res.PhotoURL,
		"is_open":     res.IsOpen,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateRestaurant, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateRestaurant named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateRestaurant execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         res.ID,
		}).Warn("UpdateRestaurant no rows affected")
		return restaurant.ErrRestaurantNotFound
	}

	return nil
}

func (r *restaurantsRepository) DeleteRestaurant(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteRestaurant, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteRestaurant named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteRestaurant execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return restaurant.ErrRestaurantNotFound
	}

	return nil
}

func (r *restaurantsRepository) makeRestaurant(res RestaurantDB) entity.Restaurant {
	return entity.Restaurant{
		ID:          res.ID.String,
		Name:        res.Name.String,
		Description: res.Description.String,
		Cuisine:     res.Cuisine.String,
		Address:     res.Address.String,
		City:        res.City.String,
		PhotoURL:    res.PhotoURL.String,
		Rating:      res.Rating.Float64,
		IsOpen:      res.IsOpen.Bool,
		OwnerID:     res.OwnerID.String,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}
