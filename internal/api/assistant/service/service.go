package assistantService

import (
	"context"
	"mime/multipart"
	"sync"

	"savoro-be/internal/api/assistant"
	assistantRepository "savoro-be/internal/api/assistant/repository"
	"savoro-be/pkg/s3"
	"savoro-be/pkg/speech"
	"savoro-be/pkg/utils"

	assistantPkg "savoro-be/pkg/assistant"

	"github.com/sirupsen/logrus"
)

type IAssistantService interface {
	// OpenSession binds a live websocket transport to a fresh interpreter.
	// An existing session for the same user is stopped first.
	OpenSession(userID string, transport Transport) (*Session, error)
	CloseSession(userID string, session *Session)

	ProcessUtterance(ctx context.Context, userID string, audioFile *multipart.FileHeader) (*assistant.UtteranceResponse, error)
	GetHistory(ctx context.Context, userID string, page, limit int) (*assistant.HistoryResponse, error)
	GetLexicon() *assistant.LexiconResponse
}

type assistantService struct {
	log               *logrus.Logger
	assistantRepo     assistantRepository.Repository
	store             assistantPkg.SettingStore
	transcriber       speech.ItfTranscriber
	streamTranscriber speech.ItfStreamTranscriber
	synthesizer       speech.ItfSynthesizer
	s3Client          s3.ItfS3
	utils             utils.IUtils

	mu       sync.Mutex
	sessions map[string]*Session
	oneShots map[string]*oneShotSession
}

func New(
	log *logrus.Logger,
	assistantRepo assistantRepository.Repository,
	store assistantPkg.SettingStore,
	transcriber speech.ItfTranscriber,
	streamTranscriber speech.ItfStreamTranscriber,
	synthesizer speech.ItfSynthesizer,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IAssistantService {
	return &assistantService{
		log:               log,
		assistantRepo:     assistantRepo,
		store:             store,
		transcriber:       transcriber,
		streamTranscriber: streamTranscriber,
		synthesizer:       synthesizer,
		s3Client:          s3Client,
		utils:             utils,
		sessions:          make(map[string]*Session),
		oneShots:          make(map[string]*oneShotSession),
	}
}
