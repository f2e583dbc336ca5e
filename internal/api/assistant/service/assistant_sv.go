package assistantService

import (
	"context"
	"mime/multipart"
	"strings"
	"sync"

	"savoro-be/internal/api/assistant"
	contextPkg "savoro-be/pkg/context"

	assistantPkg "savoro-be/pkg/assistant"

	"github.com/sirupsen/logrus"
)

// ProcessUtterance is the one-shot HTTP path for clients without browser
// speech recognition: Whisper transcribes the uploaded audio, then the
// transcript goes through the same interpreter dispatch as a live session.
func (s *assistantService) ProcessUtterance(ctx context.Context, userID string, audioFile *multipart.FileHeader) (*assistant.UtteranceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateAudioFile(audioFile); err != nil {
		return nil, assistant.ErrInvalidAudioFile
	}

	file, err := audioFile.Open()
	if err != nil {
		return nil, assistant.ErrInvalidAudioFile
	}
	defer file.Close()

	transcript, err := s.transcriber.Transcribe(ctx, file, audioFile.Filename)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to transcribe assistant audio")
		return nil, assistant.ErrTranscriptionFailed
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, assistant.ErrEmptyTranscript
	}

	// A live websocket session takes priority; feedback is spoken there.
	s.mu.Lock()
	session := s.sessions[userID]
	s.mu.Unlock()

	if session != nil {
		session.interp.HandleUtterance(ctx, transcript)
		return &assistant.UtteranceResponse{
			Transcript: transcript,
			Snapshot:   session.Snapshot(),
		}, nil
	}

	return s.dispatchOneShot(ctx, userID, transcript)
}

// oneShotSession is the HTTP counterpart of a websocket Session: an
// interpreter kept per user so a confirmation can span consecutive POSTs.
type oneShotSession struct {
	interp *assistantPkg.Interpreter
	synth  *captureSynthesizer
}

func (s *assistantService) oneShotFor(userID string) (*oneShotSession, error) {
	s.mu.Lock()
	oneShot := s.oneShots[userID]
	s.mu.Unlock()
	if oneShot != nil {
		return oneShot, nil
	}

	synth := &captureSynthesizer{}
	interp, err := assistantPkg.New(&assistantPkg.Config{
		UserID:      userID,
		Store:       s.store,
		Recognizer:  noopRecognizer{},
		Synthesizer: synth,
		Log:         s.log,
		OnCommand: func(record assistantPkg.CommandRecord) {
			go s.recordCommand(userID, record)
		},
	})
	if err != nil {
		return nil, err
	}

	if err := interp.Start(); err != nil {
		return nil, err
	}

	oneShot = &oneShotSession{interp: interp, synth: synth}

	s.mu.Lock()
	if existing := s.oneShots[userID]; existing != nil {
		s.mu.Unlock()
		oneShot.interp.Stop()
		return existing, nil
	}
	s.oneShots[userID] = oneShot
	s.mu.Unlock()

	return oneShot, nil
}

func (s *assistantService) dropOneShot(userID string) {
	s.mu.Lock()
	oneShot := s.oneShots[userID]
	delete(s.oneShots, userID)
	s.mu.Unlock()

	if oneShot != nil {
		oneShot.interp.Stop()
	}
}

func (s *assistantService) dispatchOneShot(ctx context.Context, userID, transcript string) (*assistant.UtteranceResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	oneShot, err := s.oneShotFor(userID)
	if err != nil {
		return nil, err
	}

	oneShot.synth.reset()
	oneShot.interp.HandleUtterance(ctx, transcript)

	// Let the deferred speech-done callback land before reading state, so
	// the response snapshot is settled rather than mid-transition.
	oneShot.synth.wait()
	snapshot := oneShot.interp.Snapshot()

	resp := &assistant.UtteranceResponse{
		Transcript: transcript,
		Snapshot:   snapshot,
		Feedback:   snapshot.Feedback,
	}

	if spoken := oneShot.synth.spokenText(); spoken != "" {
		audioURL, err := s.generateSpeechAudio(userID, spoken)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
				"error":      err.Error(),
			}).Warn("Failed to synthesize utterance feedback, returning text only")
		} else {
			resp.AudioURL = audioURL
		}
		resp.Feedback = spoken
	}

	return resp, nil
}

func (s *assistantService) GetHistory(ctx context.Context, userID string, page, limit int) (*assistant.HistoryResponse, error) {
	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	commands, total, err := repo.Commands.GetCommandsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &assistant.HistoryResponse{
		Commands:   make([]assistant.CommandResponse, 0, len(commands)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}

	for _, c := range commands {
		resp.Commands = append(resp.Commands, assistant.CommandResponse{
			ID:         c.ID,
			Transcript: c.Transcript,
			SettingKey: c.SettingKey,
			Value:      c.Value,
			Response:   c.Response,
			AudioURL:   c.AudioURL,
			CreatedAt:  c.CreatedAt,
		})
	}

	return resp, nil
}

func (s *assistantService) GetLexicon() *assistant.LexiconResponse {
	lexicon := assistantPkg.DefaultLexicon()
	resp := &assistant.LexiconResponse{Entries: make([]assistant.LexiconEntryResponse, 0, len(lexicon))}

	for _, entry := range lexicon {
		displayName := string(entry.Key)
		if setting, ok := assistantPkg.LookupSetting(entry.Key); ok {
			displayName = setting.DisplayName
		}
		resp.Entries = append(resp.Entries, assistant.LexiconEntryResponse{
			Phrase:      entry.Phrase,
			SettingKey:  string(entry.Key),
			DisplayName: displayName,
		})
	}

	return resp
}

// noopRecognizer satisfies the interpreter for the one-shot HTTP path,
// where there is no live capture to drive.
type noopRecognizer struct{}

func (noopRecognizer) Start() error { return nil }
func (noopRecognizer) Stop()        {}

// captureSynthesizer records the spoken feedback instead of playing it, so
// the HTTP response can carry the synthesized audio URL. The done callback
// still fires from a goroutine, as the interpreter holds its lock during
// Speak; wait blocks until every scheduled callback has run.
type captureSynthesizer struct {
	mu   sync.Mutex
	wg   sync.WaitGroup
	text string
}

func (c *captureSynthesizer) Speak(text string, done func(err error)) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		done(nil)
		c.wg.Done()
	}()
}

func (c *captureSynthesizer) Cancel() {}

func (c *captureSynthesizer) reset() {
	c.mu.Lock()
	c.text = ""
	c.mu.Unlock()
}

func (c *captureSynthesizer) wait() {
	c.wg.Wait()
}

func (c *captureSynthesizer) spokenText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}
