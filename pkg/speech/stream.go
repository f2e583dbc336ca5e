package speech

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// StreamResult is a partial or final transcript for one audio chunk
// pushed over the live transcription socket.
type StreamResult struct {
	Text    string `json:"text"`
	IsFinal bool   `json:"is_final"`
	Error   string `json:"error,omitempty"`
}

type ItfStreamTranscriber interface {
	TranscribeChunk(chunk []byte) (*StreamResult, error)
	IsConnected() bool
	Reconnect() error
	Close()
}

type streamTranscriber struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewStreamTranscriber() ItfStreamTranscriber {
	client := &streamTranscriber{
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go func() {
		if err := client.Reconnect(); err != nil {
			log.Printf("Initial connection to transcription stream failed: %v. Will retry on demand.", err)
		}
	}()

	return client
}

func (c *streamTranscriber) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *streamTranscriber) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := os.Getenv("SPEECH_STREAM_URL")
	if url == "" {
		return fmt.Errorf("SPEECH_STREAM_URL not configured")
	}

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conn = conn
	return nil
}

func (c *streamTranscriber) TranscribeChunk(chunk []byte) (*StreamResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, fmt.Errorf("transcription stream not connected")
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return nil, err
	}

	if err := c.conn.WriteMessage(websocket.BinaryMessage, chunk); err != nil {
		c.conn.Close()
		c.conn = nil
		return nil, fmt.Errorf("failed to send audio chunk: %w", err)
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
		return nil, err
	}

	var result StreamResult
	if err := c.conn.ReadJSON(&result); err != nil {
		c.conn.Close()
		c.conn = nil
		return nil, fmt.Errorf("failed to read transcription result: %w", err)
	}

	if result.Error != "" {
		return nil, fmt.Errorf("transcription stream error: %s", result.Error)
	}

	return &result, nil
}

func (c *streamTranscriber) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
