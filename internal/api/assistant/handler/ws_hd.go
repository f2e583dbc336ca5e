package assistantHandler

import (
	"sync"
	"time"

	"savoro-be/internal/api/assistant"
	"savoro-be/internal/entity"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const sessionReadTimeout = 120 * time.Second

// wsTransport serializes writes; interpreter callbacks push events from
// several goroutines.
type wsTransport struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (t *wsTransport) Send(event assistant.ServerEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.conn.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return err
	}
	return t.conn.WriteJSON(event)
}

func (h *AssistantHandler) handleSessionWebSocket(c *websocket.Conn) {
	userData, ok := c.Locals("user").(entity.UserLoginData)
	if !ok {
		_ = c.WriteJSON(assistant.ServerEvent{
			Type:    assistant.ServerEventError,
			Message: "Unauthorized",
		})
		return
	}

	h.log.WithField("user_id", userData.ID).Info("Assistant session connected")
	defer h.log.WithField("user_id", userData.ID).Info("Assistant session disconnected")

	transport := &wsTransport{conn: c}
	session, err := h.assistantService.OpenSession(userData.ID, transport)
	if err != nil {
		h.log.Errorf("Failed to open assistant session: %v", err)
		_ = transport.Send(assistant.ServerEvent{
			Type:    assistant.ServerEventError,
			Message: "Failed to open session",
		})
		return
	}
	defer h.assistantService.CloseSession(userData.ID, session)

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	// Initial snapshot so the client knows where it starts.
	snapshot := session.Snapshot()
	if err := transport.Send(assistant.ServerEvent{
		Type:     assistant.ServerEventState,
		Snapshot: &snapshot,
	}); err != nil {
		return
	}

	for {
		if err := c.SetReadDeadline(time.Now().Add(sessionReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Assistant websocket error: %v", err)
			}
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)

		switch messageType {
		case websocket.BinaryMessage:
			// Raw audio frames go through the streaming transcription path.
			err = session.HandleAudioChunk(ctx, message)
		case websocket.TextMessage:
			var event assistant.ClientEvent
			if err = json.Unmarshal(message, &event); err == nil {
				err = session.HandleEvent(ctx, event)
			}
		}
		cancel()

		if err != nil {
			if writeErr := transport.Send(assistant.ServerEvent{
				Type:    assistant.ServerEventError,
				Message: err.Error(),
			}); writeErr != nil {
				break
			}
		}
	}
}
