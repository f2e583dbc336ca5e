package assistant

import (
	"errors"

	"golang.org/x/net/context"
)

type State string

const (
	StateIdle                 State = "idle"
	StateListening            State = "listening"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateAwaitingEnumValue    State = "awaiting_enum_value"
	StateSpeaking             State = "speaking"
)

type SettingKind string

const (
	SettingKindBoolean SettingKind = "boolean"
	SettingKindEnum    SettingKind = "enum"
)

type SettingKey string

const (
	SettingHighContrast   SettingKey = "high_contrast"
	SettingLargeText      SettingKey = "large_text"
	SettingTextToSpeech   SettingKey = "text_to_speech"
	SettingReduceMotion   SettingKey = "reduce_motion"
	SettingColorBlindMode SettingKey = "color_blind_mode"
	SettingFontSize       SettingKey = "font_size"
)

type Value struct {
	Kind SettingKind `json:"kind"`
	Bool bool        `json:"bool,omitempty"`
	Enum string      `json:"enum,omitempty"`
}

func BoolValue(b bool) Value {
	return Value{Kind: SettingKindBoolean, Bool: b}
}

func EnumValue(v string) Value {
	return Value{Kind: SettingKindEnum, Enum: v}
}

// SettingStore is the externally owned accessibility-settings store. The
// interpreter only reads current values and writes new ones.
type SettingStore interface {
	GetSetting(ctx context.Context, userID string, key SettingKey) (Value, error)
	SetSetting(ctx context.Context, userID string, key SettingKey, value Value) error
}

// Recognizer wraps one speech-capture pass. Start begins a pass, Stop cancels
// it. Restart policy is owned by the interpreter, not the recognizer.
type Recognizer interface {
	Start() error
	Stop()
}

// Synthesizer speaks at most one utterance at a time. Speak cancels any
// in-flight utterance first and invokes done exactly once, when playback
// finishes or fails. A cancelled utterance reports ErrSynthesisCancelled.
// done must not be invoked synchronously from inside Speak; the caller may
// hold its own lock across the call.
type Synthesizer interface {
	Speak(text string, done func(err error))
	Cancel()
}

var (
	ErrCapabilityUnavailable = errors.New("speech capability unavailable")
	ErrSynthesisCancelled    = errors.New("speech synthesis cancelled")
)

// Snapshot is the read-only session state exposed to the UI.
type Snapshot struct {
	Active         bool       `json:"active"`
	Listening      bool       `json:"listening"`
	State          State      `json:"state"`
	PendingSetting SettingKey `json:"pending_setting,omitempty"`
	LastUtterance  string     `json:"last_utterance,omitempty"`
	Feedback       string     `json:"feedback,omitempty"`
}

// CommandRecord describes one applied voice command, for history logging.
type CommandRecord struct {
	Utterance string
	Setting   SettingKey
	Value     Value
	Response  string
}
