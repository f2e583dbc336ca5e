package userRepository

import (
	"context"
	"database/sql"
	"time"

	"savoro-be/internal/api/user"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type FavoriteDB struct {
	UserID       sql.NullString `db:"user_id"`
	RestaurantID sql.NullString `db:"restaurant_id"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r *favoritesRepository) AddFavorite(ctx context.Context, favorite entity.UserFavorite) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id":       favorite.UserID,
		"restaurant_id": favorite.RestaurantID,
		"created_at":    favorite.CreatedAt,
	}

	query, args, err := sqlx.Named(queryAddFavorite, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddFavorite named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddFavorite execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return user.ErrAlreadyFavorited
	}

	return nil
}

func (r *favoritesRepository) GetFavoritesByUser(ctx context.Context, userID string) ([]entity.UserFavorite, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var list []FavoriteDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetFavoritesByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFavoritesByUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &list, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetFavoritesByUser execution err")
		return nil, err
	}

	var favorites []entity.UserFavorite
	for _, favoriteDB := range list {
		favorites = append(favorites, entity.UserFavorite{
			UserID:       favoriteDB.UserID.String,
			RestaurantID: favoriteDB.RestaurantID.String,
			CreatedAt:    favoriteDB.CreatedAt,
		})
	}

	return favorites, nil
}

func (r *favoritesRepository) DeleteFavorite(ctx context.Context, userID, restaurantID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id":       userID,
		"restaurant_id": restaurantID,
	}

	query, args, err := sqlx.Named(queryDeleteFavorite, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteFavorite named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteFavorite execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return user.ErrFavoriteNotFound
	}

	return nil
}
