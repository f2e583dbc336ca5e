package restaurantService

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"savoro-be/internal/api/restaurant"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *restaurantService) CreateMenu(ctx context.Context, ownerID, restaurantID string, req restaurant.CreateMenuRequest, photoFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	res, err := repo.Restaurants.GetRestaurantByID(ctx, restaurantID)
	if err != nil {
		return err
	}

	if res.OwnerID != ownerID {
		return restaurant.ErrRestaurantNotOwned
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	photoURL := ""
	description := req.Description
	if photoFile != nil {
		if err := s.utils.ValidateImageFile(photoFile); err != nil {
			return restaurant.ErrInvalidFileType
		}

		photoURL, err = s.s3Client.UploadFile(photoFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload menu photo")
			return restaurant.ErrFailedToUpload
		}

		if description == "" {
			description = s.describeFromPhoto(ctx, requestID, photoFile, req.Name)
		}
	}

	now := time.Now()
	menu := entity.Menu{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  description,
		Category:     req.Category,
		Price:        req.Price,
		PhotoURL:     photoURL,
		IsAvailable:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Menus.CreateMenu(ctx, menu); err != nil {
		return err
	}

	s.invalidateListCache(ctx, requestID)
	return nil
}

func (s *restaurantService) UpdateMenu(ctx context.Context, ownerID, menuID string, req restaurant.UpdateMenuRequest, photoFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	menu, err := repo.Menus.GetMenuByID(ctx, menuID)
	if err != nil {
		return err
	}

	res, err := repo.Restaurants.GetRestaurantByID(ctx, menu.RestaurantID)
	if err != nil {
		return err
	}

	if res.OwnerID != ownerID {
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

		if menu.PhotoURL != "" {
			s.deleteStoredPhoto(requestID, menu.PhotoURL)
		}
	}

	updated := entity.Menu{
		ID:          menuID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       menu.Price,
		PhotoURL:    photoURL,
		IsAvailable: menu.IsAvailable,
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if req.IsAvailable != nil {
		updated.IsAvailable = *req.IsAvailable
	}

	if err := repo.Menus.UpdateMenu(ctx, updated); err != nil {
		return err
	}

	s.invalidateListCache(ctx, requestID)
	return nil
}

func (s *restaurantService) GetMenuDetail(ctx context.Context, menuID string) (*restaurant.MenuResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	menu, err := repo.Menus.GetMenuByID(ctx, menuID)
	if err != nil {
		return nil, err
	}

	result := makeMenuResponse(menu)
	return &result, nil
}

func (s *restaurantService) DeleteMenu(ctx context.Context, ownerID, menuID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	menu, err := repo.Menus.GetMenuByID(ctx, menuID)
	if err != nil {
		return err
	}

	res, err := repo.Restaurants.GetRestaurantByID(ctx, menu.RestaurantID)
	if err != nil {
		return err
	}

	if res.OwnerID != ownerID {
		return restaurant.ErrRestaurantNotOwned
	}

	if err := repo.Menus.DeleteMenu(ctx, menuID); err != nil {
		return err
	}

	s.invalidateListCache(ctx, requestID)
	return nil
}

// describeFromPhoto asks Gemini for a short description of the uploaded
// photo. Failures are logged and swallowed, the menu just keeps an empty
// description.
func (s *restaurantService) describeFromPhoto(ctx context.Context, requestID string, photoFile *multipart.FileHeader, menuName string) string {
	src, err := photoFile.Open()
	if err != nil {
		return ""
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return ""
	}

	description, err := s.geminiClient.DescribeMenuImage(ctx, data, menuName)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to generate menu description")
		return ""
	}

	return description
}
