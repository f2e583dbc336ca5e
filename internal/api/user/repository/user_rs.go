package userRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"savoro-be/internal/api/user"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID              sql.NullString `db:"id"`
	Email           sql.NullString `db:"email"`
	Name            sql.NullString `db:"name"`
	PhoneNumber     sql.NullString `db:"phone_number"`
	Role            sql.NullString `db:"role"`
	ProfilePhotoURL sql.NullString `db:"profile_photo_url"`
	GoogleID        sql.NullString `db:"google_id"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (r *usersRepository) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var u UserDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetUserByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, user.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID execution err")
		return entity.User{}, err
	}

	return entity.User{
		ID:              u.ID.String,
		Email:           u.Email.String,
		Name:            u.Name.String,
		PhoneNumber:     u.PhoneNumber.String,
		Role:            entity.UserRole(u.Role.String),
		ProfilePhotoURL: u.ProfilePhotoURL.String,
		GoogleID:        u.GoogleID.String,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}, nil
}

func (r *usersRepository) UpdateUser(ctx context.Context, u entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":                u.ID,
		"name":              u.Name,
		"phone_number":      u.PhoneNumber,
		"profile_photo_url": u.ProfilePhotoURL,
		"updated_at":        time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
