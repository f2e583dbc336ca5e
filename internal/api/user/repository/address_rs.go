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

type AddressDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Label     sql.NullString `db:"label"`
	Street    sql.NullString `db:"street"`
	City      sql.NullString `db:"city"`
	Notes     sql.NullString `db:"notes"`
	IsDefault sql.NullBool   `db:"is_default"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *addressesRepository) CreateAddress(ctx context.Context, address entity.UserAddress) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         address.ID,
		"user_id":    address.UserID,
		"label":      address.Label,
		"street":     address.Street,
		"city":       address.City,
		"notes":      address.Notes,
		"is_default": address.IsDefault,
		"created_at": address.CreatedAt,
		"updated_at": address.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateAddress, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateAddress named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating address")
		return err
	}

	return nil
}

func (r *addressesRepository) GetAddressByID(ctx context.Context, id string) (entity.UserAddress, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var address AddressDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetAddressByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAddressByID named query preparation err")
		return entity.UserAddress{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.UserAddress{}, user.ErrAddressNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAddressByID execution err")
		return entity.UserAddress{}, err
	}

	return r.makeAddress(address), nil
}

func (r *addressesRepository) GetAddressesByUser(ctx context.Context, userID string) ([]entity.UserAddress, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var list []AddressDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetAddressesByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAddressesByUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &list, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAddressesByUser execution err")
		return nil, err
	}

	var addresses []entity.UserAddress
	for _, addressDB := range list {
		addresses = append(addresses, r.makeAddress(addressDB))
	}

	return addresses, nil
}

func (r *addressesRepository) UpdateAddress(ctx context.Context, address entity.UserAddress) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         address.ID,
		"label":      address.Label,
		"street":     address.Street,
		"city":       address.City,
		"notes":      address.Notes,
		"is_default": address.IsDefault,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateAddress, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAddress named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateAddress execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return user.ErrAddressNotFound
	}

	return nil
}

func (r *addressesRepository) DeleteAddress(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteAddress, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAddress named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteAddress execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return user.ErrAddressNotFound
	}

	return nil
}

func (r *addressesRepository) ClearDefaultAddress(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryClearDefaultAddress, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearDefaultAddress named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ClearDefaultAddress execution err")
		return err
	}

	return nil
}

func (r *addressesRepository) makeAddress(address AddressDB) entity.UserAddress {
	return entity.UserAddress{
		ID:        address.ID.String,
		UserID:    address.UserID.String,
		Label:     address.Label.String,
		Street:    address.Street.String,
		City:      address.City.String,
		Notes:     address.Notes.String,
		IsDefault: address.IsDefault.Bool,
		CreatedAt: address.CreatedAt,
		UpdatedAt: address.UpdatedAt,
	}
}
