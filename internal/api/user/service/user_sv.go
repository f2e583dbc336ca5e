package userService

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"savoro-be/internal/api/user"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"

	"github.com/sirupsen/logrus"
)

func (s *userService) GetProfile(ctx context.Context, userID string) (*user.ProfileResponse, error) {
	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	u, err := repo.Users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &user.ProfileResponse{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		PhoneNumber:     u.PhoneNumber,
		Role:            string(u.Role),
		ProfilePhotoURL: u.ProfilePhotoURL,
		CreatedAt:       u.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest, photoFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		return err
	}

	u, err := repo.Users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.PhoneNumber != "" {
		u.PhoneNumber = req.PhoneNumber
	}

	if photoFile != nil {
		if err := s.utils.ValidateImageFile(photoFile); err != nil {
			return user.ErrInvalidFileType
		}

		photoURL, err := s.s3Client.UploadFile(photoFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload profile photo")
			return user.ErrFailedToUpload
		}

		if u.ProfilePhotoURL != "" {
			oldPhotoURL := u.ProfilePhotoURL
			parts := strings.Split(oldPhotoURL, "/")
			if len(parts) > 0 {
				fileName := parts[len(parts)-1]
				go func() {
					if err := s.s3Client.DeleteFile(fileName); err != nil {
						s.log.WithFields(logrus.Fields{
							"request_id": requestID,
							"user_id":    userID,
							"file_name":  fileName,
							"error":      err.Error(),
						}).Warn("Failed to delete old profile photo")
					}
				}()
			}
		}

		u.ProfilePhotoURL = photoURL
	}

	u.UpdatedAt = time.Now()

	return repo.Users.UpdateUser(ctx, u)
}

func (s *userService) CreateAddress(ctx context.Context, userID string, req user.CreateAddressRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(true)
	if err != nil {
		return err
	}
	defer repo.Rollback()

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	if req.IsDefault {
		if err := repo.Addresses.ClearDefaultAddress(ctx, userID); err != nil {
			return err
		}
	}

	now := time.Now()
	address := entity.UserAddress{
		ID:        id,
		UserID:    userID,
		Label:     req.Label,
		Street:    req.Street,
		City:      req.City,
		Notes:     req.Notes,
		IsDefault: req.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Addresses.CreateAddress(ctx, address); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit address creation")
		return err
	}

	return nil
}

func (s *userService) GetAddresses(ctx context.Context, userID string) (*user.AddressListResponse, error) {
	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	addresses, err := repo.Addresses.GetAddressesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &user.AddressListResponse{Addresses: make([]user.AddressResponse, 0, len(addresses))}
	for _, a := range addresses {
		resp.Addresses = append(resp.Addresses, user.AddressResponse{
			ID:        a.ID,
			Label:     a.Label,
			Street:    a.Street,
			City:      a.City,
			Notes:     a.Notes,
			IsDefault: a.IsDefault,
		})
	}

	return resp, nil
}

func (s *userService) UpdateAddress(ctx context.Context, userID, addressID string, req user.UpdateAddressRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(true)
	if err != nil {
		return err
	}
	defer repo.Rollback()

	address, err := repo.Addresses.GetAddressByID(ctx, addressID)
	if err != nil {
		return err
	}

	if address.UserID != userID {
		return user.ErrAddressNotOwned
	}

	if req.Label != "" {
		address.Label = req.Label
	}
	if req.Street != "" {
		address.Street = req.Street
	}
	if req.City != "" {
		address.City = req.City
	}
	if req.Notes != "" {
		address.Notes = req.Notes
	}
	if req.IsDefault != nil {
		if *req.IsDefault && !address.IsDefault {
			if err := repo.Addresses.ClearDefaultAddress(ctx, userID); err != nil {
				return err
			}
		}
		address.IsDefault = *req.IsDefault
	}

	if err := repo.Addresses.UpdateAddress(ctx, address); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit address update")
		return err
	}

	return nil
}

func (s *userService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		return err
	}

	address, err := repo.Addresses.GetAddressByID(ctx, addressID)
	if err != nil {
		return err
	}

	if address.UserID != userID {
		return user.ErrAddressNotOwned
	}

	return repo.Addresses.DeleteAddress(ctx, addressID)
}

func (s *userService) AddFavorite(ctx context.Context, userID, restaurantID string) error {
	userRepo, err := s.userRepo.NewClient(false)
	if err != nil {
		return err
	}

	restaurantRepo, err := s.restaurantRepo.NewClient(false)
	if err != nil {
		return err
	}

	if _, err := restaurantRepo.Restaurants.GetRestaurantByID(ctx, restaurantID); err != nil {
		return err
	}

	favorite := entity.UserFavorite{
		UserID:       userID,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now(),
	}

	return userRepo.Favorites.AddFavorite(ctx, favorite)
}

func (s *userService) GetFavorites(ctx context.Context, userID string) (*user.FavoriteListResponse, error) {
	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	favorites, err := repo.Favorites.GetFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &user.FavoriteListResponse{Favorites: make([]user.FavoriteResponse, 0, len(favorites))}
	for _, f := range favorites {
		resp.Favorites = append(resp.Favorites, user.FavoriteResponse{
			RestaurantID: f.RestaurantID,
			CreatedAt:    f.CreatedAt,
		})
	}

	return resp, nil
}

func (s *userService) RemoveFavorite(ctx context.Context, userID, restaurantID string) error {
	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		return err
	}

	return repo.Favorites.DeleteFavorite(ctx, userID, restaurantID)
}
