package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateImageFile(file *multipart.FileHeader) error
	FormatRupiah(amount int64) string
	ValidateAudioFile(file *multipart.FileHeader) error
}

type utils struct {
	maxImageSize int64
	maxAudioSize int64
}

func New() IUtils {
	return &utils{
		maxImageSize: 5 * 1024 * 1024,
		maxAudioSize: 25 * 1024 * 1024,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > u.maxImageSize {
		return errors.New("file size exceeds limit")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return errors.New("uploaded file is not an image")
	}

	return nil
}

func (u *utils) ValidateAudioFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > u.maxAudioSize {
		return errors.New("file size exceeds limit")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") && contentType != "video/webm" {
		return errors.New("uploaded file is not an audio recording")
	}

	return nil
}

func (u *utils) FormatRupiah(amount int64) string {
	p := message.NewPrinter(language.Indonesian)
	return p.Sprintf("Rp%d", amount)
}

func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 1 {
		return email
	}
	return fmt.Sprintf("%s***%s", email[:1], email[at:])
}
