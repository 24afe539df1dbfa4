package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 5 * time.Second
	sendBufferSize = 64
)

// Conn wraps one websocket session. Outbound frames go through a buffered
// channel drained by writePump so a slow peer never blocks a publisher.
type Conn struct {
	socket   *websocket.Conn
	memberID string

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newConn(socket *websocket.Conn, memberID string) *Conn {
	return &Conn{
		socket:   socket,
		memberID: memberID,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
	}
}

func (c *Conn) MemberID() string { return c.memberID }

// enqueue hands a frame to the write pump without blocking. False means the
// buffer is full and the connection should be dropped.
func (c *Conn) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return true // already closing, nothing to deliver
	default:
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Conn) writePump(pingEvery time.Duration) {
	ticker := time.NewTicker(pingEvery)
	defer func() {
		ticker.Stop()
		_ = c.socket.Close()
	}()

	for {
		select {
		case data := <-c.send:
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.socket.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.socket.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-c.done:
			_ = c.socket.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.socket.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

func (c *Conn) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.socket.Close()
	})
}
