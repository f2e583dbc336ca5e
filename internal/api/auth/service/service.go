package authService

import (
	"context"
	"net/url"

	"savoro-be/internal/api/auth"
	authRepository "savoro-be/internal/api/auth/repository"
	"savoro-be/pkg/google"
	"savoro-be/pkg/utils"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	LoginGoogle() (*url.URL, error)
	LoginWithGoogle(c context.Context, userInfo auth.UserGoogle) (auth.LoginResponse, error)
	GetSession(c context.Context, userID string) (auth.SessionResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	googleProvider google.ItfGoogle
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	googleProvider google.ItfGoogle,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:            log,
		authRepository: authRepo,
		googleProvider: googleProvider,
		utils:          utils,
	}
}
