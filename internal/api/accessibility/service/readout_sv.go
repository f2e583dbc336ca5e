package accessibilityService

import (
	"context"
	"fmt"
	"strings"

	"savoro-be/internal/api/accessibility"
	contextPkg "savoro-be/pkg/context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Readout turns storefront text into spoken audio for screen-reader users.
// Simplification is best-effort; a Gemini failure falls back to the raw text.
func (s *accessibilityService) Readout(ctx context.Context, userID string, req accessibility.ReadoutRequest) (*accessibility.ReadoutResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, accessibility.ErrEmptyReadoutText
	}

	if req.Simplify {
		simplified, err := s.geminiClient.SimplifyForSpeech(ctx, text)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
				"error":      err.Error(),
			}).Warn("Failed to simplify readout text, using original")
		} else if strings.TrimSpace(simplified) != "" {
			text = strings.TrimSpace(simplified)
		}
	}

	audio, err := s.synthesizer.GenerateAudio(text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to synthesize readout audio")
		return nil, accessibility.ErrFailedToSynthesize
	}

	fileName := fmt.Sprintf("readout/%s/%s.mp3", userID, uuid.New().String())
	if _, err := s.s3Client.UploadFileFromBytes(audio, fileName, "audio/mpeg"); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to upload readout audio")
		return nil, accessibility.ErrFailedToSynthesize
	}

	audioURL, err := s.s3Client.PresignUrl(fileName)
	if err != nil {
		return nil, accessibility.ErrFailedToSynthesize
	}

	return &accessibility.ReadoutResponse{
		Text:     text,
		AudioURL: audioURL,
	}, nil
}
