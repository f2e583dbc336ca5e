package assistant

import (
	"time"

	assistantPkg "savoro-be/pkg/assistant"
)

// Client -> server websocket events.
const (
	ClientEventStart      = "start"
	ClientEventStop       = "stop"
	ClientEventUtterance  = "utterance"
	ClientEventCaptureEnd = "capture_end"
	ClientEventSpeechDone = "speech_done"
)

// Server -> client websocket events.
const (
	ServerEventState  = "state"
	ServerEventListen = "listen"
	ServerEventSpeak  = "speak"
	ServerEventError  = "error"
)

type ClientEvent struct {
	Type   string `json:"type"`
	Text   string `json:"text,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type ServerEvent struct {
	Type     string                 `json:"type"`
	Snapshot *assistantPkg.Snapshot `json:"snapshot,omitempty"`
	Text     string                 `json:"text,omitempty"`
	AudioURL string                 `json:"audio_url,omitempty"`
	Message  string                 `json:"message,omitempty"`
}

type UtteranceResponse struct {
	Transcript string                `json:"transcript"`
	Snapshot   assistantPkg.Snapshot `json:"snapshot"`
	Feedback   string                `json:"feedback,omitempty"`
	AudioURL   string                `json:"audio_url,omitempty"`
}

type CommandResponse struct {
	ID         string    `json:"id"`
	Transcript string    `json:"transcript"`
	SettingKey string    `json:"setting_key"`
	Value      string    `json:"value"`
	Response   string    `json:"response"`
	AudioURL   string    `json:"audio_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Commands   []CommandResponse `json:"commands"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

type LexiconEntryResponse struct {
	Phrase      string `json:"phrase"`
	SettingKey  string `json:"setting_key"`
	DisplayName string `json:"display_name"`
}

type LexiconResponse struct {
	Entries []LexiconEntryResponse `json:"entries"`
}
