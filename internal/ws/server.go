package ws

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/raceclub/chat-service/internal/config"
	"github.com/raceclub/chat-service/internal/model"
)

type TokenValidator interface {
	ValidateConnectToken(tokenString string) (*model.LiveConnectClaims, error)
}

// Server owns the shared live endpoint. Connections arrive unsubscribed and
// announce the room they observe with join-chat-room control frames; the
// hub delivers room-scoped events until the socket closes.
type Server struct {
	upgrader  websocket.Upgrader
	hub       *Hub
	tokens    TokenValidator
	pingEvery time.Duration
}

func NewServer(hub *Hub, tokens TokenValidator) *Server {
	return &Server{
		hub:    hub,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		pingEvery: 15 * time.Second,
	}
}

// HandleWS serves GET /live?token=...
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("HandleWS")

	claims, err := s.tokens.ValidateConnectToken(r.URL.Query().Get("token"))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to validate connect token: %v", err))
		http.Error(w, "invalid connect token", http.StatusUnauthorized)
		return
	}

	socket, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upgrade connection: %v", err))
		return
	}

	c := newConn(socket, claims.Subject)
	s.hub.Add(c)

	go c.writePump(s.pingEvery)
	s.readLoop(c, logger)

	s.hub.Remove(c)
	c.close()
}

func (s *Server) readLoop(c *Conn, logger logger_lib.LoggerInterface) {
	c.socket.SetReadLimit(1 << 16)
	_ = c.socket.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	c.socket.SetPongHandler(func(string) error {
		return c.socket.SetReadDeadline(time.Now().Add(2 * s.pingEvery))
	})

	for {
		_, data, err := c.socket.ReadMessage()
		if err != nil {
			return
		}

		event, err := model.DecodeLiveEvent(data)
		if err != nil {
			// malformed control frames are dropped, the connection stays open
			logger.Warn(fmt.Sprintf("dropping malformed live frame from member %s: %v", c.memberID, err))
			continue
		}

		switch e := event.(type) {
		case model.JoinChatRoomEvent:
			s.hub.Subscribe(c, e.ChatRoomID)
		case model.NewMessageEvent, model.MessageDeletedEvent, model.LikeChangedEvent:
			// server-to-client kinds are never valid inbound
			logger.Warn(fmt.Sprintf("dropping outbound-only frame from member %s", c.memberID))
		}
	}
}
