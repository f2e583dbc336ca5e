package restaurantService

import (
	"context"
	"mime/multipart"

	"savoro-be/internal/api/restaurant"
	restaurantRepository "savoro-be/internal/api/restaurant/repository"
	"savoro-be/pkg/gemini"
	"savoro-be/pkg/redis"
	"savoro-be/pkg/s3"
	"savoro-be/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IRestaurantService interface {
	CreateRestaurant(ctx context.Context, ownerID string, req restaurant.CreateRestaurantRequest, photoFile *multipart.FileHeader) error
	GetAllRestaurants(ctx context.Context, search, city string, page, limit int) (*restaurant.RestaurantListResponse, error)
	GetRestaurantDetail(ctx context.Context, id string) (*restaurant.RestaurantDetailResponse, error)
	UpdateRestaurant(ctx context.Context, ownerID, id string, req restaurant.UpdateRestaurantRequest, photoFile *multipart.FileHeader) error
	DeleteRestaurant(ctx context.Context, ownerID, id string) error
	GetMenuDetail(ctx context.Context, menuID string) (*restaurant.MenuResponse, error)

	CreateMenu(ctx context.Context, ownerID, restaurantID string, req restaurant.CreateMenuRequest, photoFile *multipart.FileHeader) error
	UpdateMenu(ctx context.Context, ownerID, menuID string, req restaurant.UpdateMenuRequest, photoFile *multipart.FileHeader) error
	DeleteMenu(ctx context.Context, ownerID, menuID string) error
}

type restaurantService struct {
	log            *logrus.Logger
	restaurantRepo restaurantRepository.Repository
	redisServer    redis.IRedis
	s3Client       s3.ItfS3
	geminiClient   gemini.IGemini
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	restaurantRepo restaurantRepository.Repository,
	redisServer redis.IRedis,
	s3Client s3.ItfS3,
	geminiClient gemini.IGemini,
	utils utils.IUtils,
) IRestaurantService {
	return &restaurantService{
		log:            log,
		restaurantRepo: restaurantRepo,
		redisServer:    redisServer,
		s3Client:       s3Client,
		geminiClient:   geminiClient,
		utils:          utils,
	}
}
