package authService

import (
	"context"
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"savoro-be/internal/api/auth"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"
	jwtPkg "savoro-be/pkg/jwt"

	"github.com/sirupsen/logrus"
)

func (s *authService) LoginGoogle() (*url.URL, error) {
	gConfig := s.googleProvider.GetConfig()
	URL, err := url.Parse(gConfig.Endpoint.AuthURL)
	if err != nil {
		return nil, err
	}

	parameters := url.Values{}
	parameters.Add("client_id", os.Getenv("GOOGLE_CLIENT_ID"))
	parameters.Add("scope", strings.Join(gConfig.Scopes, " "))
	parameters.Add("redirect_uri", gConfig.RedirectURL)
	parameters.Add("response_type", "code")
	parameters.Add("state", os.Getenv("GOOGLE_STATE"))
	URL.RawQuery = parameters.Encode()

	return URL, nil
}

func (s *authService) LoginWithGoogle(c context.Context, userInfo auth.UserGoogle) (auth.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.LoginResponse{}, err
	}

	isNewUser := false

	user, err := repo.Users.GetUserByEmail(c, userInfo.Email)
	if errors.Is(err, auth.ErrUserWithEmailNotFound) {
		id, err := s.utils.NewULIDFromTimestamp(time.Now())
		if err != nil {
			return auth.LoginResponse{}, err
		}

		now := time.Now()
		user = entity.User{
			ID:              id,
			Email:           userInfo.Email,
			Name:            userInfo.Name,
			Role:            entity.RoleCustomer,
			ProfilePhotoURL: userInfo.Picture,
			GoogleID:        userInfo.ID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		if err := repo.Users.CreateUser(c, user); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create user from Google profile")
			return auth.LoginResponse{}, err
		}
		isNewUser = true
	} else if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.LoginResponse{}, err
	}

	token, expired, err := jwtPkg.Sign(map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
	}, time.Hour*24)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.LoginResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"user_id":     user.ID,
		"is_new_user": isNewUser,
	}).Info("User logged in with Google")

	return auth.LoginResponse{
		AccessToken:      token,
		ExpiresInMinutes: int64(time.Until(time.Unix(expired, 0)).Minutes()),
		IsNewUser:        isNewUser,
	}, nil
}

func (s *authService) GetSession(c context.Context, userID string) (auth.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.authRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.SessionResponse{}, err
	}

	user, err := repo.Users.GetUserByID(c, userID)
	if err != nil {
		return auth.SessionResponse{}, err
	}

	return auth.SessionResponse{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		Role:            string(user.Role),
		ProfilePhotoURL: user.ProfilePhotoURL,
	}, nil
}
