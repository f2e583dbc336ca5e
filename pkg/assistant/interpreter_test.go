package assistant

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakeStore struct {
	mu     sync.Mutex
	values map[SettingKey]Value
	sets   []CommandRecord
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[SettingKey]Value)}
}

func (f *fakeStore) GetSetting(_ context.Context, _ string, key SettingKey) (Value, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return Value{}, f.getErr
	}
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	setting, _ := LookupSetting(key)
	return setting.Default(), nil
}

func (f *fakeStore) SetSetting(_ context.Context, _ string, key SettingKey, value Value) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	f.sets = append(f.sets, CommandRecord{Setting: key, Value: value})
	return nil
}

func (f *fakeStore) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sets)
}

type fakeRecognizer struct {
	mu       sync.Mutex
	starts   int
	stops    int
	startErr error
}

func (f *fakeRecognizer) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.starts++
	return nil
}

func (f *fakeRecognizer) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
}

func (f *fakeRecognizer) startCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts
}

type fakeSynthesizer struct {
	mu        sync.Mutex
	spoken    []string
	dones     []func(error)
	cancelled int
}

func (f *fakeSynthesizer) Speak(text string, done func(err error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	f.dones = append(f.dones, done)
}

func (f *fakeSynthesizer) Cancel() {
	f.mu.Lock()
	f.cancelled++
	f.mu.Unlock()
}

// finish completes the most recent utterance, as playback would.
func (f *fakeSynthesizer) finish(err error) {
	f.mu.Lock()
	var done func(error)
	if len(f.dones) > 0 {
		done = f.dones[len(f.dones)-1]
	}
	f.mu.Unlock()
	if done != nil {
		done(err)
	}
}

func (f *fakeSynthesizer) lastSpoken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.spoken) == 0 {
		return ""
	}
	return f.spoken[len(f.spoken)-1]
}

func (f *fakeSynthesizer) spokenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.spoken)
}

func newTestInterpreter(t *testing.T) (*Interpreter, *fakeStore, *fakeRecognizer, *fakeSynthesizer) {
	t.Helper()

	store := newFakeStore()
	rec := &fakeRecognizer{}
	synth := &fakeSynthesizer{}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	interp, err := New(&Config{
		UserID:       "user-1",
		Store:        store,
		Recognizer:   rec,
		Synthesizer:  synth,
		Log:          logger,
		RestartDelay: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	return interp, store, rec, synth
}

func TestNew_MissingDependencies(t *testing.T) {
	logger := logrus.New()

	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{Log: logger})
	assert.Error(t, err)

	_, err = New(&Config{
		Store:       newFakeStore(),
		Recognizer:  &fakeRecognizer{},
		Synthesizer: &fakeSynthesizer{},
	})
	assert.Error(t, err)
}

func TestStart_CapabilityUnavailable(t *testing.T) {
	interp, _, rec, _ := newTestInterpreter(t)
	rec.startErr = ErrCapabilityUnavailable

	err := interp.Start()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapabilityUnavailable)

	snap := interp.Snapshot()
	assert.False(t, snap.Active)
	assert.Equal(t, StateIdle, snap.State)
}

func TestStart_IdempotentRestart(t *testing.T) {
	interp, _, rec, _ := newTestInterpreter(t)

	require.NoError(t, interp.Start())
	stopsBefore := rec.stops

	require.NoError(t, interp.Start())

	assert.Greater(t, rec.stops, stopsBefore, "restart should stop prior capture first")
	snap := interp.Snapshot()
	assert.True(t, snap.Active)
	assert.Equal(t, StateListening, snap.State)
	assert.Empty(t, snap.PendingSetting)
}

func TestUtterance_SelectsBooleanSetting(t *testing.T) {
	interp, _, _, synth := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleUtterance(context.Background(), "turn high contrast")

	snap := interp.Snapshot()
	assert.Equal(t, StateSpeaking, snap.State)
	assert.Equal(t, SettingHighContrast, snap.PendingSetting)
	assert.Contains(t, synth.lastSpoken(), "High Contrast")
	assert.Contains(t, synth.lastSpoken(), "off")

	synth.finish(nil)

	snap = interp.Snapshot()
	assert.Equal(t, StateAwaitingConfirmation, snap.State)
	assert.True(t, snap.Listening, "capture resumes after status readout")
}

func TestUtterance_ConfirmationFlipsBoolean(t *testing.T) {
	interp, store, _, synth := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleUtterance(context.Background(), "high contrast")
	synth.finish(nil)

	interp.HandleUtterance(context.Background(), "yes")

	require.Equal(t, 1, store.setCount())
	assert.Equal(t, BoolValue(true), store.values[SettingHighContrast])
	assert.Contains(t, synth.lastSpoken(), "High Contrast is now on")

	synth.finish(nil)

	snap := interp.Snapshot()
	assert.Equal(t, StateListening, snap.State)
	assert.Empty(t, snap.PendingSetting)
}

func TestUtterance_EnumSettingSkipsToggleConfirmation(t *testing.T) {
	interp, store, _, synth := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleUtterance(context.Background(), "change color blind mode")

	assert.Contains(t, synth.lastSpoken(), "protanopia")
	synth.finish(nil)

	snap := interp.Snapshot()
	assert.Equal(t, StateAwaitingEnumValue, snap.State)
	assert.Equal(t, SettingColorBlindMode, snap.PendingSetting)
	assert.Zero(t, store.setCount(), "listing values must not mutate the setting")
}

func TestUtterance_EnumValueApplied(t *testing.T) {
	interp, store, _, synth := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleUtterance(context.Background(), "color blind mode")
	synth.finish(nil)

	interp.HandleUtterance(context.Background(), "set it to protanopia please")

	require.Equal(t, 1, store.setCount())
	assert.Equal(t, EnumValue("protanopia"), store.values[SettingColorBlindMode])

	synth.finish(nil)

	snap := interp.Snapshot()
	assert.Equal(t, StateListening, snap.State)
	assert.Empty(t, snap.PendingSetting)
}

func TestUtterance_AffirmativeWithoutPendingSetting(t *testing.T) {
	interp, store, _, synth := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleUtterance(context.Background(), "yes please")

	snap := interp.Snapshot()
	assert.Equal(t, StateListening, snap.State)
	assert.Empty(t, snap.PendingSetting)
	assert.Contains(t, snap.Feedback, "No setting selected")
	assert.Zero(t, synth.spokenCount(), "guidance is displayed, not spoken")
	assert.Zero(t, store.setCount())
}

func TestUtterance_NoMatchHintIsIdempotent(t *testing.T) {
	interp, store, _, synth := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	for i := 0; i < 3; i++ {
		interp.HandleUtterance(context.Background(), "order me a pizza")

		snap := interp.Snapshot()
		assert.Equal(t, StateListening, snap.State)
		assert.Empty(t, snap.PendingSetting)
		assert.Contains(t, snap.Feedback, "did not find")
	}

	assert.Zero(t, synth.spokenCount(), "hints are never spoken")
	assert.Zero(t, store.setCount())
}

func TestUtterance_ShortGarbageIgnored(t *testing.T) {
	interp, _, _, _ := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	before := interp.Snapshot()
	interp.HandleUtterance(context.Background(), "uh")
	after := interp.Snapshot()

	assert.Equal(t, before.State, after.State)
	assert.NotContains(t, after.Feedback, "did not find")
}

func TestStop_FromMidSpeech(t *testing.T) {
	interp, _, rec, synth := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleUtterance(context.Background(), "high contrast")
	require.Equal(t, StateSpeaking, interp.Snapshot().State)

	interp.Stop()

	snap := interp.Snapshot()
	assert.False(t, snap.Active)
	assert.Equal(t, StateIdle, snap.State)
	assert.Empty(t, snap.PendingSetting)
	assert.GreaterOrEqual(t, synth.cancelled, 1)

	// A completion for the cancelled utterance must not revive the session.
	synth.finish(ErrSynthesisCancelled)
	snap = interp.Snapshot()
	assert.False(t, snap.Active)
	assert.Equal(t, StateIdle, snap.State)

	startsAfterStop := rec.startCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, startsAfterStop, rec.startCount(), "no capture restart after stop")
}

func TestStop_DefusesPendingRestartTimer(t *testing.T) {
	interp, _, rec, _ := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleCaptureEnd(nil)
	interp.Stop()

	starts := rec.startCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, starts, rec.startCount(), "restart timer must not fire after stop")
}

func TestCaptureEnd_TransientAutoRestarts(t *testing.T) {
	interp, _, rec, _ := newTestInterpreter(t)
	require.NoError(t, interp.Start())
	startsBefore := rec.startCount()

	interp.HandleCaptureEnd(nil)

	assert.Eventually(t, func() bool {
		return rec.startCount() > startsBefore
	}, time.Second, 5*time.Millisecond, "capture should restart after the debounce delay")

	snap := interp.Snapshot()
	assert.True(t, snap.Active)
	assert.True(t, snap.Listening)
}

func TestCaptureEnd_FatalClosesSession(t *testing.T) {
	interp, _, rec, _ := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleCaptureEnd(errors.New("permission denied"))

	snap := interp.Snapshot()
	assert.False(t, snap.Active)
	assert.Equal(t, StateIdle, snap.State)
	assert.Contains(t, snap.Feedback, "permission denied")

	starts := rec.startCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, starts, rec.startCount(), "fatal errors are not auto-restarted")
}

func TestCaptureEnd_WhileSpeakingDoesNotRestart(t *testing.T) {
	interp, _, rec, synth := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleUtterance(context.Background(), "high contrast")
	startsBefore := rec.startCount()

	interp.HandleCaptureEnd(nil)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, startsBefore, rec.startCount(), "speaking pauses capture")

	synth.finish(nil)
	assert.Greater(t, rec.startCount(), startsBefore, "speech completion resumes capture")
}

func TestSpeechError_StillResumesCapture(t *testing.T) {
	interp, _, rec, synth := newTestInterpreter(t)
	require.NoError(t, interp.Start())

	interp.HandleUtterance(context.Background(), "high contrast")
	startsBefore := rec.startCount()

	synth.finish(errors.New("voice backend exploded"))

	snap := interp.Snapshot()
	assert.True(t, snap.Active)
	assert.Equal(t, StateAwaitingConfirmation, snap.State)
	assert.Greater(t, rec.startCount(), startsBefore, "non-cancellation errors count as completion")
}

func TestOnCommandHook(t *testing.T) {
	store := newFakeStore()
	rec := &fakeRecognizer{}
	synth := &fakeSynthesizer{}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	var records []CommandRecord
	interp, err := New(&Config{
		UserID:      "user-1",
		Store:       store,
		Recognizer:  rec,
		Synthesizer: synth,
		Log:         logger,
		OnCommand: func(r CommandRecord) {
			records = append(records, r)
		},
	})
	require.NoError(t, err)
	require.NoError(t, interp.Start())

	interp.HandleUtterance(context.Background(), "large text")
	synth.finish(nil)
	interp.HandleUtterance(context.Background(), "toggle")

	require.Len(t, records, 1)
	assert.Equal(t, SettingLargeText, records[0].Setting)
	assert.Equal(t, BoolValue(true), records[0].Value)
	assert.Equal(t, "toggle", records[0].Utterance)
	assert.Contains(t, records[0].Response, "Large Text is now on")
}
