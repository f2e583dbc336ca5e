package assistantService

import (
	"context"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"savoro-be/internal/api/assistant"
	assistantRepository "savoro-be/internal/api/assistant/repository"
	"savoro-be/internal/entity"
	assistantPkg "savoro-be/pkg/assistant"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	netContext "golang.org/x/net/context"
)

type fakeStore struct {
	mu     sync.Mutex
	values map[assistantPkg.SettingKey]assistantPkg.Value
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[assistantPkg.SettingKey]assistantPkg.Value)}
}

func (f *fakeStore) GetSetting(_ netContext.Context, _ string, key assistantPkg.SettingKey) (assistantPkg.Value, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	setting, _ := assistantPkg.LookupSetting(key)
	return setting.Default(), nil
}

func (f *fakeStore) SetSetting(_ netContext.Context, _ string, key assistantPkg.SettingKey, value assistantPkg.Value) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

type fakeCommandsRepo struct {
	mu       sync.Mutex
	commands []entity.AssistantCommand
}

func (f *fakeCommandsRepo) CreateCommand(_ netContext.Context, command entity.AssistantCommand) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, command)
	return nil
}

func (f *fakeCommandsRepo) GetCommandsByUser(_ netContext.Context, userID string, limit, offset int) ([]entity.AssistantCommand, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.AssistantCommand
	for _, c := range f.commands {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

type fakeAssistantRepository struct {
	commands *fakeCommandsRepo
}

func (f *fakeAssistantRepository) NewClient(_ bool) (assistantRepository.Client, error) {
	return assistantRepository.Client{
		Commands: f.commands,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeSpeechSynthesizer struct {
	err error
}

func (f *fakeSpeechSynthesizer) GenerateAudio(_ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("mp3-bytes"), nil
}

type fakeUtils struct{}

func (fakeUtils) NewULIDFromTimestamp(_ time.Time) (string, error) { return "01TESTULID", nil }
func (fakeUtils) ValidateImageFile(_ *multipart.FileHeader) error  { return nil }
func (fakeUtils) FormatRupiah(_ int64) string                      { return "" }
func (fakeUtils) ValidateAudioFile(_ *multipart.FileHeader) error  { return nil }

type fakeTransport struct {
	mu     sync.Mutex
	events []assistant.ServerEvent
}

func (f *fakeTransport) Send(event assistant.ServerEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeTransport) eventTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

func TestGetLexicon_CoversEverySetting(t *testing.T) {
	svc := &assistantService{log: logrus.New()}

	resp := svc.GetLexicon()
	require.NotEmpty(t, resp.Entries)

	seen := make(map[string]bool)
	for _, entry := range resp.Entries {
		seen[entry.SettingKey] = true
		assert.NotEmpty(t, entry.Phrase)
		assert.NotEmpty(t, entry.DisplayName)
	}

	for _, setting := range assistantPkg.Registry() {
		assert.True(t, seen[string(setting.Key)], "no lexicon phrase for %s", setting.Key)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "on", formatValue(assistantPkg.BoolValue(true)))
	assert.Equal(t, "off", formatValue(assistantPkg.BoolValue(false)))
	assert.Equal(t, "protanopia", formatValue(assistantPkg.EnumValue("protanopia")))
}

func TestCaptureSynthesizer_InvokesDoneAsync(t *testing.T) {
	synth := &captureSynthesizer{}
	done := make(chan error, 1)

	synth.Speak("hello", func(err error) { done <- err })

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("done callback never fired")
	}
	assert.Equal(t, "hello", synth.spokenText())
}

func TestSessionSynthesizer_CancelReportsCancelled(t *testing.T) {
	synth := &sessionSynthesizer{
		svc:       &assistantService{log: logrus.New(), synthesizer: &fakeSpeechSynthesizer{err: assistantPkg.ErrSynthesisCancelled}},
		userID:    "user-1",
		transport: &fakeTransport{},
	}

	done := make(chan error, 1)
	synth.Speak("feedback", func(err error) { done <- err })
	synth.Cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, assistantPkg.ErrSynthesisCancelled)
	case <-time.After(time.Second):
		t.Fatal("done callback never fired")
	}
}

func TestSessionSynthesizer_SecondSpeakCancelsFirst(t *testing.T) {
	synth := &sessionSynthesizer{
		svc:       &assistantService{log: logrus.New(), synthesizer: &fakeSpeechSynthesizer{err: assistantPkg.ErrSynthesisCancelled}},
		userID:    "user-1",
		transport: &fakeTransport{},
	}

	first := make(chan error, 1)
	second := make(chan error, 1)

	synth.Speak("one", func(err error) { first <- err })
	synth.Speak("two", func(err error) { second <- err })

	select {
	case err := <-first:
		assert.ErrorIs(t, err, assistantPkg.ErrSynthesisCancelled)
	case <-time.After(time.Second):
		t.Fatal("first done callback never fired")
	}

	synth.playbackDone()
	select {
	case err := <-second:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("second done callback never fired")
	}
}

func TestDispatchOneShot_ConfirmationSpansRequests(t *testing.T) {
	store := newFakeStore()
	svc := &assistantService{
		log:           logrus.New(),
		assistantRepo: &fakeAssistantRepository{commands: &fakeCommandsRepo{}},
		store:         store,
		synthesizer:   &fakeSpeechSynthesizer{err: assistantPkg.ErrSynthesisCancelled},
		utils:         fakeUtils{},
		sessions:      make(map[string]*Session),
		oneShots:      make(map[string]*oneShotSession),
	}

	resp, err := svc.dispatchOneShot(context.Background(), "user-1", "high contrast")
	require.NoError(t, err)
	assert.Equal(t, assistantPkg.SettingHighContrast, resp.Snapshot.PendingSetting)

	resp, err = svc.dispatchOneShot(context.Background(), "user-1", "yes")
	require.NoError(t, err)

	assert.Empty(t, resp.Snapshot.PendingSetting)
	assert.Equal(t, assistantPkg.StateListening, resp.Snapshot.State)
	assert.NotEmpty(t, resp.Feedback)

	value, err := store.GetSetting(context.Background(), "user-1", assistantPkg.SettingHighContrast)
	require.NoError(t, err)
	assert.True(t, value.Bool)
}

func TestDispatchOneShot_AffirmativeWithoutPendingGivesGuidance(t *testing.T) {
	store := newFakeStore()
	svc := &assistantService{
		log:           logrus.New(),
		assistantRepo: &fakeAssistantRepository{commands: &fakeCommandsRepo{}},
		store:         store,
		synthesizer:   &fakeSpeechSynthesizer{err: assistantPkg.ErrSynthesisCancelled},
		utils:         fakeUtils{},
		sessions:      make(map[string]*Session),
		oneShots:      make(map[string]*oneShotSession),
	}

	resp, err := svc.dispatchOneShot(context.Background(), "user-1", "turn on high contrast")
	require.NoError(t, err)

	assert.Contains(t, resp.Feedback, "No setting selected")
	assert.Empty(t, resp.Snapshot.PendingSetting)

	value, err := store.GetSetting(context.Background(), "user-1", assistantPkg.SettingHighContrast)
	require.NoError(t, err)
	assert.False(t, value.Bool)
}

func TestDispatchOneShot_EnumWithoutValueAsksForOne(t *testing.T) {
	svc := &assistantService{
		log:           logrus.New(),
		assistantRepo: &fakeAssistantRepository{commands: &fakeCommandsRepo{}},
		store:         newFakeStore(),
		synthesizer:   &fakeSpeechSynthesizer{err: assistantPkg.ErrSynthesisCancelled},
		utils:         fakeUtils{},
		sessions:      make(map[string]*Session),
		oneShots:      make(map[string]*oneShotSession),
	}

	resp, err := svc.dispatchOneShot(context.Background(), "user-1", "change font size")
	require.NoError(t, err)

	assert.Equal(t, assistantPkg.SettingFontSize, resp.Snapshot.PendingSetting)
	assert.Equal(t, assistantPkg.StateAwaitingEnumValue, resp.Snapshot.State)
}

func TestOpenSession_ReplacesExistingSession(t *testing.T) {
	svc := &assistantService{
		log:           logrus.New(),
		assistantRepo: &fakeAssistantRepository{commands: &fakeCommandsRepo{}},
		store:         newFakeStore(),
		synthesizer:   &fakeSpeechSynthesizer{err: assistantPkg.ErrSynthesisCancelled},
		utils:         fakeUtils{},
		sessions:      make(map[string]*Session),
		oneShots:      make(map[string]*oneShotSession),
	}

	first, err := svc.OpenSession("user-1", &fakeTransport{})
	require.NoError(t, err)

	second, err := svc.OpenSession("user-1", &fakeTransport{})
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	svc.mu.Lock()
	assert.Same(t, second, svc.sessions["user-1"])
	svc.mu.Unlock()

	svc.CloseSession("user-1", second)
	svc.mu.Lock()
	assert.Empty(t, svc.sessions)
	svc.mu.Unlock()
}

func TestOpenSession_DropsOneShotInterpreter(t *testing.T) {
	svc := &assistantService{
		log:           logrus.New(),
		assistantRepo: &fakeAssistantRepository{commands: &fakeCommandsRepo{}},
		store:         newFakeStore(),
		synthesizer:   &fakeSpeechSynthesizer{err: assistantPkg.ErrSynthesisCancelled},
		utils:         fakeUtils{},
		sessions:      make(map[string]*Session),
		oneShots:      make(map[string]*oneShotSession),
	}

	_, err := svc.dispatchOneShot(context.Background(), "user-1", "high contrast")
	require.NoError(t, err)

	svc.mu.Lock()
	require.Contains(t, svc.oneShots, "user-1")
	svc.mu.Unlock()

	session, err := svc.OpenSession("user-1", &fakeTransport{})
	require.NoError(t, err)
	defer svc.CloseSession("user-1", session)

	svc.mu.Lock()
	assert.Empty(t, svc.oneShots)
	svc.mu.Unlock()
}

func TestSession_StartEmitsListenAndState(t *testing.T) {
	transport := &fakeTransport{}
	svc := &assistantService{
		log:           logrus.New(),
		assistantRepo: &fakeAssistantRepository{commands: &fakeCommandsRepo{}},
		store:         newFakeStore(),
		synthesizer:   &fakeSpeechSynthesizer{err: assistantPkg.ErrSynthesisCancelled},
		utils:         fakeUtils{},
		sessions:      make(map[string]*Session),
		oneShots:      make(map[string]*oneShotSession),
	}

	session, err := svc.OpenSession("user-1", transport)
	require.NoError(t, err)
	defer svc.CloseSession("user-1", session)

	require.NoError(t, session.HandleEvent(context.Background(), assistant.ClientEvent{Type: assistant.ClientEventStart}))

	types := transport.eventTypes()
	assert.Contains(t, types, assistant.ServerEventListen)
	assert.Contains(t, types, assistant.ServerEventState)
	assert.True(t, session.Snapshot().Active)
}

func TestSession_UnknownEventRejected(t *testing.T) {
	svc := &assistantService{
		log:           logrus.New(),
		assistantRepo: &fakeAssistantRepository{commands: &fakeCommandsRepo{}},
		store:         newFakeStore(),
		synthesizer:   &fakeSpeechSynthesizer{err: assistantPkg.ErrSynthesisCancelled},
		utils:         fakeUtils{},
		sessions:      make(map[string]*Session),
		oneShots:      make(map[string]*oneShotSession),
	}

	session, err := svc.OpenSession("user-1", &fakeTransport{})
	require.NoError(t, err)
	defer svc.CloseSession("user-1", session)

	assert.Error(t, session.HandleEvent(context.Background(), assistant.ClientEvent{Type: "selfdestruct"}))
}

func TestGetHistory_Paginates(t *testing.T) {
	commands := &fakeCommandsRepo{}
	for i := 0; i < 5; i++ {
		_ = commands.CreateCommand(context.Background(), entity.AssistantCommand{
			ID:     string(rune('a' + i)),
			UserID: "user-1",
		})
	}

	svc := &assistantService{
		log:           logrus.New(),
		assistantRepo: &fakeAssistantRepository{commands: commands},
	}

	resp, err := svc.GetHistory(context.Background(), "user-1", 1, 2)
	require.NoError(t, err)
	assert.Len(t, resp.Commands, 2)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
}
