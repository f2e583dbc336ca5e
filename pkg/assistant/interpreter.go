package assistant

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	defaultRestartDelay = 300 * time.Millisecond

	// Utterances at or below this length never trigger a "not found" hint.
	noMatchMinLength = 3
)

type Config struct {
	UserID       string
	Store        SettingStore
	Recognizer   Recognizer
	Synthesizer  Synthesizer
	Log          *logrus.Logger
	Lexicon      Lexicon
	RestartDelay time.Duration

	// OnTransition is invoked with a fresh snapshot after every state change.
	// It runs with the interpreter lock held and must not call back in.
	OnTransition func(Snapshot)

	// OnCommand is invoked after a setting mutation has been applied. It also
	// runs with the lock held; hand slow work off to a goroutine.
	OnCommand func(CommandRecord)
}

// Interpreter is the voice assistant's conversational state machine. One
// instance per active session; all state is memory-only and dies with it.
type Interpreter struct {
	mu           sync.Mutex
	userID       string
	store        SettingStore
	rec          Recognizer
	synth        Synthesizer
	log          *logrus.Logger
	lexicon      Lexicon
	restartDelay time.Duration
	onTransition func(Snapshot)
	onCommand    func(CommandRecord)

	active        bool
	listening     bool
	state         State
	resumeState   State
	pending       SettingKey
	lastUtterance string
	feedback      string

	restartTimer *time.Timer
	speakSeq     uint64
}

func New(cfg *Config) (*Interpreter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if cfg.Recognizer == nil {
		return nil, fmt.Errorf("recognizer is nil")
	}
	if cfg.Synthesizer == nil {
		return nil, fmt.Errorf("synthesizer is nil")
	}
	if cfg.Log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	lexicon := cfg.Lexicon
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}

	restartDelay := cfg.RestartDelay
	if restartDelay <= 0 {
		restartDelay = defaultRestartDelay
	}

	return &Interpreter{
		userID:       cfg.UserID,
		store:        cfg.Store,
		rec:          cfg.Recognizer,
		synth:        cfg.Synthesizer,
		log:          cfg.Log,
		lexicon:      lexicon,
		restartDelay: restartDelay,
		onTransition: cfg.OnTransition,
		onCommand:    cfg.OnCommand,
		state:        StateIdle,
	}, nil
}

// Start opens a listening session. Starting while a session is already active
// stops the prior capture first, so the call is safe to repeat.
func (i *Interpreter) Start() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.active {
		i.stopAudioLocked()
	}

	if err := i.rec.Start(); err != nil {
		i.active = false
		i.listening = false
		i.state = StateIdle
		if errors.Is(err, ErrCapabilityUnavailable) {
			i.feedback = "Voice control is not available on this device."
		} else {
			i.feedback = "Could not start listening."
		}
		i.notifyLocked()
		return err
	}

	i.active = true
	i.listening = true
	i.state = StateListening
	i.resumeState = ""
	i.pending = ""
	i.lastUtterance = ""
	i.feedback = "Listening. Name a setting, for example high contrast."
	i.notifyLocked()

	return nil
}

// Stop deactivates the session from any state, silencing in-flight speech,
// halting capture and defusing any pending restart timer.
func (i *Interpreter) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.stopAudioLocked()

	i.active = false
	i.listening = false
	i.state = StateIdle
	i.resumeState = ""
	i.pending = ""
	i.feedback = ""
	i.notifyLocked()
}

// HandleUtterance dispatches one finalized transcript against the current
// conversational state.
func (i *Interpreter) HandleUtterance(ctx context.Context, raw string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.active || i.state == StateSpeaking {
		return
	}

	text := Normalize(raw)
	i.lastUtterance = text

	i.log.WithFields(logrus.Fields{
		"user_id":   i.userID,
		"state":     i.state,
		"utterance": text,
	}).Debug("Assistant utterance received")

	// A pending enum setting checks the utterance for a value name first.
	if i.state == StateAwaitingEnumValue && i.pending != "" {
		if setting, ok := LookupSetting(i.pending); ok {
			if value, found := matchEnumValue(setting, text); found {
				i.applySettingLocked(ctx, setting, EnumValue(value), text)
				return
			}
		}
	}

	if containsAffirmative(text) {
		if i.state == StateAwaitingConfirmation && i.pending != "" {
			i.confirmPendingLocked(ctx, text)
			return
		}
		if i.pending == "" {
			i.feedback = "No setting selected. Name a setting such as high contrast first."
			i.notifyLocked()
			return
		}
	}

	if key, found := i.lexicon.Match(text); found {
		i.selectSettingLocked(ctx, key)
		return
	}

	if len(text) > noMatchMinLength {
		i.feedback = fmt.Sprintf("I did not find a setting in %q. Try high contrast, font size or color blind mode.", text)
		i.notifyLocked()
	}
}

// HandleCaptureEnd reacts to the recognizer finishing a pass. A nil error is
// a transient end (silence, timeout) and schedules a debounced restart; a
// non-nil error is fatal and closes the session.
func (i *Interpreter) HandleCaptureEnd(err error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.listening = false

	if !i.active {
		return
	}

	if err != nil {
		i.log.WithFields(logrus.Fields{
			"user_id": i.userID,
			"error":   err.Error(),
		}).Warn("Assistant capture failed")

		i.stopAudioLocked()
		i.active = false
		i.state = StateIdle
		i.resumeState = ""
		i.pending = ""
		i.feedback = "Listening stopped: " + err.Error() + ". Start the assistant again to retry."
		i.notifyLocked()
		return
	}

	if i.state == StateSpeaking {
		// Capture is intentionally paused; speech completion resumes it.
		return
	}

	if i.restartTimer != nil {
		i.restartTimer.Stop()
	}
	i.restartTimer = time.AfterFunc(i.restartDelay, i.restartCapture)
	i.notifyLocked()
}

func (i *Interpreter) Snapshot() Snapshot {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.snapshotLocked()
}

func (i *Interpreter) selectSettingLocked(ctx context.Context, key SettingKey) {
	setting, ok := LookupSetting(key)
	if !ok {
		return
	}

	i.pending = key

	if setting.Kind == SettingKindEnum {
		// No boolean to flip, so skip the toggle confirmation and ask for a
		// value directly.
		i.speakLocked(
			fmt.Sprintf("I found %s. Valid values are %s. Say one to change it.",
				setting.DisplayName, strings.Join(setting.EnumValues, ", ")),
			StateAwaitingEnumValue,
		)
		return
	}

	current, err := i.store.GetSetting(ctx, i.userID, key)
	if err != nil {
		i.log.WithFields(logrus.Fields{
			"user_id": i.userID,
			"setting": key,
			"error":   err.Error(),
		}).Error("Assistant failed to read setting")
		i.pending = ""
		i.feedback = "Could not read " + setting.DisplayName + "."
		i.notifyLocked()
		return
	}

	i.speakLocked(
		fmt.Sprintf("I found %s. It is currently %s. Say yes or toggle to change it.",
			setting.DisplayName, onOff(current.Bool)),
		StateAwaitingConfirmation,
	)
}

func (i *Interpreter) confirmPendingLocked(ctx context.Context, utterance string) {
	setting, ok := LookupSetting(i.pending)
	if !ok {
		i.pending = ""
		return
	}

	if setting.Kind == SettingKindEnum {
		i.speakLocked(
			fmt.Sprintf("%s can be %s. Say one of those values.",
				setting.DisplayName, strings.Join(setting.EnumValues, ", ")),
			StateAwaitingEnumValue,
		)
		return
	}

	current, err := i.store.GetSetting(ctx, i.userID, i.pending)
	if err != nil {
		i.log.WithFields(logrus.Fields{
			"user_id": i.userID,
			"setting": i.pending,
			"error":   err.Error(),
		}).Error("Assistant failed to read setting")
		i.pending = ""
		i.feedback = "Could not read " + setting.DisplayName + "."
		i.notifyLocked()
		return
	}

	i.applySettingLocked(ctx, setting, BoolValue(!current.Bool), utterance)
}

func (i *Interpreter) applySettingLocked(ctx context.Context, setting Setting, value Value, utterance string) {
	if err := i.store.SetSetting(ctx, i.userID, setting.Key, value); err != nil {
		i.log.WithFields(logrus.Fields{
			"user_id": i.userID,
			"setting": setting.Key,
			"error":   err.Error(),
		}).Error("Assistant failed to write setting")
		i.pending = ""
		i.feedback = "Could not update " + setting.DisplayName + "."
		i.speakLocked(i.feedback, StateListening)
		return
	}

	var response string
	if value.Kind == SettingKindEnum {
		response = fmt.Sprintf("%s is now %s.", setting.DisplayName, value.Enum)
	} else {
		response = fmt.Sprintf("%s is now %s.", setting.DisplayName, onOff(value.Bool))
	}

	i.pending = ""

	if i.onCommand != nil {
		i.onCommand(CommandRecord{
			Utterance: utterance,
			Setting:   setting.Key,
			Value:     value,
			Response:  response,
		})
	}

	i.speakLocked(response, StateListening)
}

// speakLocked pauses capture, hands text to the synthesizer, and resumes
// listening in next once playback completes. Exactly one utterance is audible
// at any instant; the synthesizer cancels any previous one.
func (i *Interpreter) speakLocked(text string, next State) {
	if i.restartTimer != nil {
		i.restartTimer.Stop()
		i.restartTimer = nil
	}
	i.rec.Stop()
	i.listening = false

	i.state = StateSpeaking
	i.resumeState = next
	i.feedback = text
	i.notifyLocked()

	i.speakSeq++
	seq := i.speakSeq
	i.synth.Speak(text, func(err error) {
		i.onSpeechDone(seq, err)
	})
}

func (i *Interpreter) onSpeechDone(seq uint64, err error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if errors.Is(err, ErrSynthesisCancelled) {
		// Normal interruption; whatever cancelled us owns the sequencing.
		return
	}
	if err != nil {
		i.log.WithFields(logrus.Fields{
			"user_id": i.userID,
			"error":   err.Error(),
		}).Warn("Assistant speech output failed")
	}

	if seq != i.speakSeq || !i.active || i.state != StateSpeaking {
		return
	}

	i.state = i.resumeState
	i.resumeState = ""
	i.startCaptureLocked()
	i.notifyLocked()
}

func (i *Interpreter) restartCapture() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.restartTimer = nil
	if !i.active || i.state == StateSpeaking || i.listening {
		return
	}
	i.startCaptureLocked()
	i.notifyLocked()
}

func (i *Interpreter) startCaptureLocked() {
	if err := i.rec.Start(); err != nil {
		i.log.WithFields(logrus.Fields{
			"user_id": i.userID,
			"error":   err.Error(),
		}).Warn("Assistant failed to resume capture")
		i.feedback = "Listening stopped. Start the assistant again to retry."
		i.active = false
		i.state = StateIdle
		i.pending = ""
		return
	}
	i.listening = true
}

// stopAudioLocked silences speech and halts capture, bumping the speak
// sequence so a stale completion callback cannot resume anything.
func (i *Interpreter) stopAudioLocked() {
	if i.restartTimer != nil {
		i.restartTimer.Stop()
		i.restartTimer = nil
	}
	i.speakSeq++
	i.synth.Cancel()
	i.rec.Stop()
	i.listening = false
}

func (i *Interpreter) snapshotLocked() Snapshot {
	return Snapshot{
		Active:         i.active,
		Listening:      i.listening,
		State:          i.state,
		PendingSetting: i.pending,
		LastUtterance:  i.lastUtterance,
		Feedback:       i.feedback,
	}
}

func (i *Interpreter) notifyLocked() {
	if i.onTransition != nil {
		i.onTransition(i.snapshotLocked())
	}
}

func matchEnumValue(setting Setting, normalized string) (string, bool) {
	for _, value := range setting.EnumValues {
		if strings.Contains(normalized, Normalize(value)) {
			return value, true
		}
	}
	return "", false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
