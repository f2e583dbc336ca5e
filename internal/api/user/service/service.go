package userService

import (
	"context"
	"mime/multipart"

	"savoro-be/internal/api/user"
	userRepository "savoro-be/internal/api/user/repository"
	restaurantRepository "savoro-be/internal/api/restaurant/repository"
	"savoro-be/pkg/s3"
	"savoro-be/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IUserService interface {
	GetProfile(ctx context.Context, userID string) (*user.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest, photoFile *multipart.FileHeader) error

	CreateAddress(ctx context.Context, userID string, req user.CreateAddressRequest) error
	GetAddresses(ctx context.Context, userID string) (*user.AddressListResponse, error)
	UpdateAddress(ctx context.Context, userID, addressID string, req user.UpdateAddressRequest) error
	DeleteAddress(ctx context.Context, userID, addressID string) error

	AddFavorite(ctx context.Context, userID, restaurantID string) error
	GetFavorites(ctx context.Context, userID string) (*user.FavoriteListResponse, error)
	RemoveFavorite(ctx context.Context, userID, restaurantID string) error
}

type userService struct {
	log            *logrus.Logger
	userRepo       userRepository.Repository
	restaurantRepo restaurantRepository.Repository
	s3Client       s3.ItfS3
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	userRepo userRepository.Repository,
	restaurantRepo restaurantRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IUserService {
	return &userService{
		log:            log,
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		s3Client:       s3Client,
		utils:          utils,
	}
}
