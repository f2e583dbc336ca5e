package accessibilityService

import (
	"context"

	"savoro-be/internal/api/accessibility"
	accessibilityRepository "savoro-be/internal/api/accessibility/repository"
	"savoro-be/pkg/gemini"
	"savoro-be/pkg/s3"
	"savoro-be/pkg/speech"

	"github.com/sirupsen/logrus"
)

type IAccessibilityService interface {
	GetSettings(ctx context.Context, userID string) (*accessibility.SettingListResponse, error)
	GetSetting(ctx context.Context, userID, key string) (*accessibility.SettingResponse, error)
	UpdateSetting(ctx context.Context, userID, key string, req accessibility.UpdateSettingRequest) (*accessibility.SettingResponse, error)
	ResetSettings(ctx context.Context, userID string) error

	Readout(ctx context.Context, userID string, req accessibility.ReadoutRequest) (*accessibility.ReadoutResponse, error)
}

type accessibilityService struct {
	log               *logrus.Logger
	accessibilityRepo accessibilityRepository.Repository
	geminiClient      gemini.IGemini
	synthesizer       speech.ItfSynthesizer
	s3Client          s3.ItfS3
}

func New(
	log *logrus.Logger,
	accessibilityRepo accessibilityRepository.Repository,
	geminiClient gemini.IGemini,
	synthesizer speech.ItfSynthesizer,
	s3Client s3.ItfS3,
) IAccessibilityService {
	return &accessibilityService{
		log:               log,
		accessibilityRepo: accessibilityRepo,
		geminiClient:      geminiClient,
		synthesizer:       synthesizer,
		s3Client:          s3Client,
	}
}
