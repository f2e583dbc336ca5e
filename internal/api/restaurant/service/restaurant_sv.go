package restaurantService

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"savoro-be/internal/api/restaurant"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"
	"savoro-be/pkg/redis"

	"github.com/sirupsen/logrus"
)

const (
	restaurantListCacheTTL  = 5 * time.Minute
	restaurantCachePattern  = "restaurants:*"
	restaurantListCacheMaxP = 3
)

func restaurantListCacheKey(search, city string, page, limit int) string {
	return fmt.Sprintf("restaurants:list:%s:%s:%d:%d", search, city, page, limit)
}

func (s *restaurantService) CreateRestaurant(ctx context.Context, ownerID string, req restaurant.CreateRestaurantRequest, photoFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	photoURL := ""
	if photoFile != nil {
		if err := s.utils.ValidateImageFile(photoFile); err != nil {
			return restaurant.ErrInvalidFileType
		}

		photoURL, err = s.s3Client.UploadFile(photoFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload restaurant photo")
			return restaurant.ErrFailedToUpload
		}
	}

	now := time.Now()
	res := entity.Restaurant{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		City:        req.City,
		PhotoURL:    photoURL,
		IsOpen:      true,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Restaurants.CreateRestaurant(ctx, res); err != nil {
		return err
	}

	s.invalidateListCache(ctx, requestID)
	return nil
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context, search, city string, page, limit int) (*restaurant.RestaurantListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	// Only the first few pages are worth caching.
	cacheable := page <= restaurantListCacheMaxP
	cacheKey := restaurantListCacheKey(search, city, page, limit)

	if cacheable {
		var cached restaurant.RestaurantListResponse
		err := s.redisServer.GetJSON(ctx, cacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Restaurant list cache read failed")
		}
	}

	repo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	offset := (page - 1) * limit
	restaurants, total, err := repo.Restaurants.GetAllRestaurants(ctx, search, city, limit, offset)
	if err != nil {
		return nil, err
	}

	result := &restaurant.RestaurantListResponse{
		Restaurants: make([]restaurant.RestaurantResponse, 0, len(restaurants)),
		Total:       total,
	}
	for _, res := range restaurants {
		result.Restaurants = append(result.Restaurants, makeRestaurantResponse(res))
	}

	if cacheable {
		if err := s.redisServer.SetJSON(ctx, cacheKey, result, restaurantListCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Restaurant list cache write failed")
		}
	}

	return result, nil
}

func (s *restaurantService) GetRestaurantDetail(ctx context.Context, id string) (*restaurant.RestaurantDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	res, err := repo.Restaurants.GetRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	menus, err := repo.Menus.GetMenusByRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &restaurant.RestaurantDetailResponse{
		RestaurantResponse: makeRestaurantResponse(res),
		Menus:              make([]restaurant.MenuResponse, 0, len(menus)),
	}
	for _, menu := range menus {
		detail.Menus = append(detail.Menus, makeMenuResponse(menu))
	}

	return detail, nil
}

func (s *restaurantService) UpdateRestaurant(ctx context.Context, ownerID, id string, req restaurant.UpdateRestaurantRequest, photoFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	existing, err := repo.Restaurants.GetRestaurantByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.OwnerID != ownerID {
		return restaurant.ErrRestaurantNotOwned
	}

	photoURL := ""
	if photoFile != nil {
		if err := s.utils.ValidateImageFile(photoFile); err != nil {
			return restaurant.ErrInvalidFileType
		}

		photoURL, err = s.s3Client.UploadFile(photoFile)
		if err != nil {
			return restaurant.ErrFailedToUpload
		}

		if existing.PhotoURL != "" {
			s.deleteStoredPhoto(requestID, existing.PhotoURL)
		}
	}

	updated := entity.Restaurant{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Cuisine:     req.Cuisine,
		Address:     req.Address,
		City:        req.City,
		PhotoURL:    photoURL,
		IsOpen:      existing.IsOpen,
	}

	if err := repo.Restaurants.UpdateRestaurant(ctx, updated); err != nil {
		return err
	}

	s.invalidateListCache(ctx, requestID)
	return nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, ownerID, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	existing, err := repo.Restaurants.GetRestaurantByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.OwnerID != ownerID {
		return restaurant.ErrRestaurantNotOwned
	}

	if err := repo.Restaurants.DeleteRestaurant(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx, requestID)
	return nil
}

func (s *restaurantService) deleteStoredPhoto(requestID, photoURL string) {
	parts := strings.Split(photoURL, "/")
	if len(parts) == 0 {
		return
	}

	fileName := parts[len(parts)-1]
	go func() {
		if err := s.s3Client.DeleteFile(fileName); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file_name":  fileName,
				"error":      err.Error(),
			}).Warn("Failed to delete replaced photo")
		}
	}()
}

func (s *restaurantService) invalidateListCache(ctx context.Context, requestID string) {
	if err := s.redisServer.DeleteByPattern(ctx, restaurantCachePattern); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to invalidate restaurant cache")
	}
}

func makeRestaurantResponse(res entity.Restaurant) restaurant.RestaurantResponse {
	return restaurant.RestaurantResponse{
		ID:          res.ID,
		Name:        res.Name,
		Description: res.Description,
		Cuisine:     res.Cuisine,
		Address:     res.Address,
		City:        res.City,
		PhotoURL:    res.PhotoURL,
		Rating:      res.Rating,
		IsOpen:      res.IsOpen,
		CreatedAt:   res.CreatedAt,
	}
}

func makeMenuResponse(menu entity.Menu) restaurant.MenuResponse {
	return restaurant.MenuResponse{
		ID:          menu.ID,
		Name:        menu.Name,
		Description: menu.Description,
		Category:    menu.Category,
		Price:       menu.Price,
		PhotoURL:    menu.PhotoURL,
		IsAvailable: menu.IsAvailable,
	}
}
