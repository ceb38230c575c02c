package handler

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/ffc/club/api/internal/middleware"
	"github.com/ffc/club/api/internal/model"
	"github.com/ffc/club/api/internal/service"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound frame size
	maxFrameSize = 4096

	// Outbound frame buffer per connection
	outboundBuffer = 16
)

// wsFrame is the wire format for chat WebSocket frames, both directions.
// Server → client: kind "snapshot" with messages, or kind "error".
// Client → server: kind "send" with text.
type wsFrame struct {
	Kind     string               `json:"kind"`
	Text     string               `json:"text,omitempty"`
	Messages []*model.ChatMessage `json:"messages,omitempty"`
	Message  string               `json:"message,omitempty"`
}

// ChatHandler serves the chat WebSocket and the snapshot endpoint
type ChatHandler struct {
	chatService *service.ChatService
	upgrader    websocket.Upgrader
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, allowedOrigins []string, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Messages handles GET /v1/chat/messages
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.chatService.Snapshot(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	if snapshot == nil {
		snapshot = []*model.ChatMessage{}
	}
	WriteData(w, http.StatusOK, snapshot)
}

// WS handles GET /v1/chat/ws. Anyone may connect and receive snapshots;
// send frames require an authenticated session.
func (h *ChatHandler) WS(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	sub, err := h.chatService.Subscribe(r.Context())
	if err != nil {
		h.logger.Error("chat subscribe failed", "error", err)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "chat unavailable"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	client := &wsClient{
		conn: conn,
		out:  make(chan wsFrame, outboundBuffer),
		done: make(chan struct{}),
	}

	go client.writePump()
	go func() {
		for snapshot := range sub.C {
			client.enqueue(wsFrame{Kind: "snapshot", Messages: snapshot})
		}
	}()

	h.readPump(r, client, session)

	h.chatService.Unsubscribe(sub.ID)
	client.close()
}

func (h *ChatHandler) readPump(r *http.Request, client *wsClient, session *model.Session) {
	client.conn.SetReadLimit(maxFrameSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var frame wsFrame
		if err := client.conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read error", "error", err)
			}
			return
		}

		if frame.Kind != "send" {
			client.enqueue(wsFrame{Kind: "error", Message: "unknown frame kind"})
			continue
		}

		if err := h.chatService.Send(r.Context(), session, frame.Text); err != nil {
			client.enqueue(wsFrame{Kind: "error", Message: MapServiceError(err).Detail})
		}
	}
}

// wsClient serializes all writes to one connection through a single
// goroutine
type wsClient struct {
	conn      *websocket.Conn
	out       chan wsFrame
	done      chan struct{}
	closeOnce sync.Once
}

func (c *wsClient) enqueue(frame wsFrame) {
	select {
	case c.out <- frame:
	case <-c.done:
	default:
		// Slow consumer; drop the frame
	}
}

func (c *wsClient) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowedOrigins {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}
