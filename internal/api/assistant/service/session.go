package assistantService

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"savoro-be/internal/api/assistant"
	"savoro-be/internal/entity"
	assistantPkg "savoro-be/pkg/assistant"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// speechPlaybackTimeout bounds how long a session waits for the client's
// speech_done event before capture resumes on its own.
const speechPlaybackTimeout = 30 * time.Second

// Transport delivers server events to one connected client. Send must be
// safe for concurrent use; interpreter callbacks fire from several
// goroutines.
type Transport interface {
	Send(event assistant.ServerEvent) error
}

// Session is one live voice-assistant connection: an interpreter bound to a
// websocket transport. At most one session exists per user.
type Session struct {
	userID string
	svc    *assistantService
	interp *assistantPkg.Interpreter
	synth  *sessionSynthesizer
	log    *logrus.Logger
}

func (s *assistantService) OpenSession(userID string, transport Transport) (*Session, error) {
	// A live session supersedes any interpreter the HTTP one-shot path kept.
	s.dropOneShot(userID)

	s.mu.Lock()
	if prev, ok := s.sessions[userID]; ok {
		prev.shutdown()
		delete(s.sessions, userID)
	}
	s.mu.Unlock()

	synth := &sessionSynthesizer{
		svc:       s,
		userID:    userID,
		transport: transport,
	}

	interp, err := assistantPkg.New(&assistantPkg.Config{
		UserID:      userID,
		Store:       s.store,
		Recognizer:  &sessionRecognizer{transport: transport},
		Synthesizer: synth,
		Log:         s.log,
		OnTransition: func(snapshot assistantPkg.Snapshot) {
			snap := snapshot
			// Runs with the interpreter lock held; Send must not call back in.
			if err := transport.Send(assistant.ServerEvent{
				Type:     assistant.ServerEventState,
				Snapshot: &snap,
			}); err != nil {
				s.log.WithFields(logrus.Fields{
					"user_id": userID,
					"error":   err.Error(),
				}).Warn("Failed to push assistant state")
			}
		},
		OnCommand: func(record assistantPkg.CommandRecord) {
			go s.recordCommand(userID, record)
		},
	})
	if err != nil {
		return nil, err
	}

	session := &Session{
		userID: userID,
		svc:    s,
		interp: interp,
		synth:  synth,
		log:    s.log,
	}

	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()

	return session, nil
}

func (s *assistantService) CloseSession(userID string, session *Session) {
	s.mu.Lock()
	if current, ok := s.sessions[userID]; ok && current == session {
		delete(s.sessions, userID)
	}
	s.mu.Unlock()

	session.shutdown()
}

// transientCaptureEnds are capture_end reasons that schedule a restart
// instead of killing the session.
var transientCaptureEnds = map[string]bool{
	"":          true,
	"silence":   true,
	"no_speech": true,
	"timeout":   true,
	"aborted":   true,
}

func (sess *Session) HandleEvent(ctx context.Context, event assistant.ClientEvent) error {
	switch event.Type {
	case assistant.ClientEventStart:
		return sess.interp.Start()
	case assistant.ClientEventStop:
		sess.interp.Stop()
		return nil
	case assistant.ClientEventUtterance:
		sess.interp.HandleUtterance(ctx, event.Text)
		return nil
	case assistant.ClientEventCaptureEnd:
		if transientCaptureEnds[event.Reason] {
			sess.interp.HandleCaptureEnd(nil)
		} else {
			sess.interp.HandleCaptureEnd(errors.New(event.Reason))
		}
		return nil
	case assistant.ClientEventSpeechDone:
		sess.synth.playbackDone()
		return nil
	default:
		return fmt.Errorf("unknown client event %q", event.Type)
	}
}

// HandleAudioChunk relays raw audio frames to the streaming transcription
// backend. Final transcripts go through the same dispatch as text
// utterances; partials are dropped.
func (sess *Session) HandleAudioChunk(ctx context.Context, data []byte) error {
	if sess.svc.streamTranscriber == nil {
		return assistantPkg.ErrCapabilityUnavailable
	}

	result, err := sess.svc.streamTranscriber.TranscribeChunk(data)
	if err != nil {
		sess.log.WithFields(logrus.Fields{
			"user_id": sess.userID,
			"error":   err.Error(),
		}).Warn("Streaming transcription failed")
		return err
	}

	if result == nil || !result.IsFinal || result.Text == "" {
		return nil
	}

	sess.interp.HandleUtterance(ctx, result.Text)
	return nil
}

func (sess *Session) Snapshot() assistantPkg.Snapshot {
	return sess.interp.Snapshot()
}

func (sess *Session) shutdown() {
	sess.interp.Stop()
	sess.synth.finish(assistantPkg.ErrSynthesisCancelled)
}

// sessionRecognizer signals the browser to run a capture pass. The actual
// microphone work happens client-side; listening state travels back via
// state events.
type sessionRecognizer struct {
	transport Transport
}

func (r *sessionRecognizer) Start() error {
	if err := r.transport.Send(assistant.ServerEvent{Type: assistant.ServerEventListen}); err != nil {
		return assistantPkg.ErrCapabilityUnavailable
	}
	return nil
}

func (r *sessionRecognizer) Stop() {}

// sessionSynthesizer speaks through the client: it synthesizes feedback
// audio, pushes a speak event, then holds the done callback until the
// client reports playback finished (or the timeout fires).
type sessionSynthesizer struct {
	svc       *assistantService
	userID    string
	transport Transport

	mu    sync.Mutex
	done  func(error)
	timer *time.Timer
}

func (s *sessionSynthesizer) Speak(text string, done func(err error)) {
	s.mu.Lock()
	prev := s.done
	if s.timer != nil {
		s.timer.Stop()
	}
	s.done = done
	s.timer = time.AfterFunc(speechPlaybackTimeout, func() { s.finish(nil) })
	s.mu.Unlock()

	if prev != nil {
		go prev(assistantPkg.ErrSynthesisCancelled)
	}

	go s.deliver(text)
}

func (s *sessionSynthesizer) Cancel() {
	s.finish(assistantPkg.ErrSynthesisCancelled)
}

func (s *sessionSynthesizer) deliver(text string) {
	audioURL, err := s.svc.generateSpeechAudio(s.userID, text)
	if err != nil {
		s.svc.log.WithFields(logrus.Fields{
			"user_id": s.userID,
			"error":   err.Error(),
		}).Warn("Failed to synthesize assistant feedback, sending text only")
		audioURL = ""
	}

	if err := s.transport.Send(assistant.ServerEvent{
		Type:     assistant.ServerEventSpeak,
		Text:     text,
		AudioURL: audioURL,
	}); err != nil {
		s.finish(err)
	}
}

func (s *sessionSynthesizer) playbackDone() {
	s.finish(nil)
}

func (s *sessionSynthesizer) finish(err error) {
	s.mu.Lock()
	done := s.done
	s.done = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if done != nil {
		go done(err)
	}
}

func (s *assistantService) generateSpeechAudio(userID, text string) (string, error) {
	audio, err := s.synthesizer.GenerateAudio(text)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("assistant/%s/%s.mp3", userID, uuid.New().String())
	if _, err := s.s3Client.UploadFileFromBytes(audio, fileName, "audio/mpeg"); err != nil {
		return "", err
	}

	return s.s3Client.PresignUrl(fileName)
}

func formatValue(value assistantPkg.Value) string {
	if value.Kind == assistantPkg.SettingKindEnum {
		return value.Enum
	}
	if value.Bool {
		return "on"
	}
	return "off"
}

func (s *assistantService) recordCommand(userID string, record assistantPkg.CommandRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := s.assistantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Failed to create repository client for command log")
		return
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return
	}

	command := entity.AssistantCommand{
		ID:         id,
		UserID:     userID,
		Transcript: record.Utterance,
		SettingKey: string(record.Setting),
		Value:      formatValue(record.Value),
		Response:   record.Response,
		CreatedAt:  time.Now(),
	}

	if err := repo.Commands.CreateCommand(ctx, command); err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Failed to persist assistant command")
	}
}
