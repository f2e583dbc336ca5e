package userRepository

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
		Users:     &usersRepository{q: sqlExecutor, log: r.log},
		Addresses: &addressesRepository{q: sqlExecutor, log: r.log},
		Favorites: &favoritesRepository{q: sqlExecutor, log: r.log},
		Commit:    commitFunc,
		Rollback:  rollbackFunc,
	}, nil
}

type Client struct {
	Users interface {
		GetUserByID(ctx context.Context, id string) (entity.User, error)
		UpdateUser(ctx context.Context, user entity.User) error
	}

	Addresses interface {
		CreateAddress(ctx context.Context, address entity.UserAddress) error
		GetAddressByID(ctx context.Context, id string) (entity.UserAddress, error)
		GetAddressesByUser(ctx context.Context, userID string) ([]entity.UserAddress, error)
		UpdateAddress(ctx context.Context, address entity.UserAddress) error
		DeleteAddress(ctx context.Context, id string) error
		ClearDefaultAddress(ctx context.Context, userID string) error
	}

	Favorites interface {
		AddFavorite(ctx context.Context, favorite entity.UserFavorite) error
		GetFavoritesByUser(ctx context.Context, userID string) ([]entity.UserFavorite, error)
		DeleteFavorite(ctx context.Context, userID, restaurantID string) error
	}

	Commit   func() error
	Rollback func() error
}

type usersRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type addressesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type favoritesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
