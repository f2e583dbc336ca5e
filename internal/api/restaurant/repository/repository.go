package restaurantRepository

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
		Restaurants: &restaurantsRepository{q: sqlExecutor, log: r.log},
		Menus:       &menusRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	Restaurants interface {
		CreateRestaurant(ctx context.Context, restaurant entity.Restaurant) error
		GetRestaurantByID(ctx context.Context, id string) (entity.Restaurant, error)
		GetAllRestaurants(ctx context.Context, search, city string, limit, offset int) ([]entity.Restaurant, int, error)
		UpdateRestaurant(ctx context.Context, restaurant entity.Restaurant) error
		DeleteRestaurant(ctx context.Context, id string) error
	}

	Menus interface {
		CreateMenu(ctx context.Context, menu entity.Menu) error
		GetMenuByID(ctx context.Context, id string) (entity.Menu, error)
		GetMenusByRestaurant(ctx context.Context, restaurantID string) ([]entity.Menu, error)
		UpdateMenu(ctx context.Context, menu entity.Menu) error
		DeleteMenu(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type restaurantsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type menusRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
