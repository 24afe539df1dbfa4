// Package chatclient is the consuming side of the chat core: it merges a
// one-shot history fetch with the unbounded live stream into a single
// duplicate-free, chronologically ordered view.
package chatclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raceclub/chat-service/internal/model"
	"github.com/raceclub/chat-service/internal/rest/api"
)

const (
	defaultHistoryLimit   = 50
	defaultReconnectDelay = 500 * time.Millisecond
	maxReconnectDelay     = 10 * time.Second
)

type Options struct {
	HTTPClient     *http.Client
	HistoryLimit   int
	ReconnectDelay time.Duration
}

// Client observes one room at a time over a shared live connection.
type Client struct {
	baseURL        string
	memberID       string
	httpClient     *http.Client
	historyLimit   int
	reconnectDelay time.Duration

	mu         sync.Mutex
	messages   []model.MessageView
	index      map[string]struct{}
	connected  bool
	historyErr error
	conn       *websocket.Conn

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(baseURL, memberID string, opts *Options) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		memberID:       memberID,
		httpClient:     http.DefaultClient,
		historyLimit:   defaultHistoryLimit,
		reconnectDelay: defaultReconnectDelay,
		index:          make(map[string]struct{}),
	}
	if opts != nil {
		if opts.HTTPClient != nil {
			c.httpClient = opts.HTTPClient
		}
		if opts.HistoryLimit > 0 {
			c.historyLimit = opts.HistoryLimit
		}
		if opts.ReconnectDelay > 0 {
			c.reconnectDelay = opts.ReconnectDelay
		}
	}
	return c
}

// Join opens the live connection, announces the room, and issues the
// history fetch. A failed fetch leaves the list empty in an error state
// while the live stream keeps delivering; the error is exposed through
// HistoryErr, not returned.
func (c *Client) Join(ctx context.Context, roomID string) error {
	c.closeSession()

	runCtx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.messages = nil
	c.index = make(map[string]struct{})
	c.historyErr = nil
	c.cancel = cancel
	c.mu.Unlock()

	conn, err := c.dial(ctx, roomID)
	if err != nil {
		cancel()
		return err
	}

	if !c.installConn(runCtx, conn) {
		return nil
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.readLoop(runCtx, conn, roomID)
	}()

	c.fetchHistory(ctx, roomID)

	return nil
}

// Messages is a snapshot of the reconciled visible list, oldest first.
func (c *Client) Messages() []model.MessageView {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.MessageView, len(c.messages))
	copy(out, c.messages)
	return out
}

// Connected reports live-channel health; false while a reconnect is in
// progress. The UI shows this as a passive indicator, never an error.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// HistoryErr is non-nil when the most recent history fetch failed.
func (c *Client) HistoryErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.historyErr
}

func (c *Client) Close() {
	c.closeSession()
	c.wg.Wait()
}

func (c *Client) closeSession() {
	c.mu.Lock()
	cancel := c.cancel
	conn := c.conn
	c.cancel = nil
	c.conn = nil
	c.connected = false
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		_ = conn.Close()
	}
}

// ----------------------------- live side -----------------------------

func (c *Client) dial(ctx context.Context, roomID string) (*websocket.Conn, error) {
	token, err := c.connectToken(ctx)
	if err != nil {
		return nil, err
	}

	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/live?token=" + url.QueryEscape(token)
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial live endpoint: %w", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	join := model.NewJoinChatRoomEvent(roomID)
	if err := conn.WriteJSON(join); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to send join frame: %w", err)
	}

	return conn, nil
}

// installConn publishes a freshly dialed socket as the active session. A
// session torn down while the dial was in flight must not resurrect: the
// late socket is closed instead of installed.
func (c *Client) installConn(ctx context.Context, conn *websocket.Conn) bool {
	c.mu.Lock()
	if ctx.Err() != nil {
		c.mu.Unlock()
		_ = conn.Close()
		return false
	}
	c.conn = conn
	c.connected = true
	c.mu.Unlock()
	return true
}

func (c *Client) connectToken(ctx context.Context) (string, error) {
	reqURL := fmt.Sprintf("%s/live/token?memberId=%s", c.baseURL, url.QueryEscape(c.memberID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch connect token: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code fetching connect token: %d", resp.StatusCode)
	}

	var tokenResp api.ConnectTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	return tokenResp.Token, nil
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn, roomID string) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			c.reconnect(ctx, roomID)
			return
		}

		event, err := model.DecodeLiveEvent(data)
		if err != nil {
			continue // unknown frames are dropped, the stream goes on
		}

		c.handleEvent(event, roomID)
	}
}

func (c *Client) handleEvent(event model.LiveEvent, roomID string) {
	switch e := event.(type) {
	case model.NewMessageEvent:
		if e.ChatRoomID != roomID {
			return
		}
		c.appendLive(e.Message)
	case model.MessageDeletedEvent:
		if e.ChatRoomID != roomID {
			return
		}
		c.dropMessage(e.MessageID)
	case model.LikeChangedEvent:
		if e.ChatRoomID != roomID {
			return
		}
		c.updateLikeCount(e.MessageID, e.LikeCount)
	case model.JoinChatRoomEvent:
		// client-to-server only; a server never sends this
	}
}

// appendLive adds a streamed message at the tail of the visible list. The
// presence check by identifier guards the race where the history fetch
// resolves after a live event for the same message already arrived.
func (c *Client) appendLive(message model.MessageView) {
	id := message.ID.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[id]; ok {
		return
	}
	c.index[id] = struct{}{}
	c.messages = append(c.messages, message)
}

func (c *Client) dropMessage(messageID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[messageID]; !ok {
		return
	}
	delete(c.index, messageID)
	for i, m := range c.messages {
		if m.ID.String() == messageID {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			break
		}
	}
}

func (c *Client) updateLikeCount(messageID string, likeCount int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.messages {
		if c.messages[i].ID.String() == messageID {
			c.messages[i].LikeCount = likeCount
			break
		}
	}
}

// reconnect recovers from a dropped socket: redial with backoff, re-join,
// replace the visible list wholesale from a fresh fetch, resume appending.
// Missed events come back through the fetch, never through replay.
func (c *Client) reconnect(ctx context.Context, roomID string) {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()

	delay := c.reconnectDelay
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		conn, err := c.dial(ctx, roomID)
		if err != nil {
			if delay *= 2; delay > maxReconnectDelay {
				delay = maxReconnectDelay
			}
			continue
		}

		if !c.installConn(ctx, conn) {
			return
		}

		c.mu.Lock()
		c.messages = nil
		c.index = make(map[string]struct{})
		c.mu.Unlock()

		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.readLoop(ctx, conn, roomID)
		}()

		c.fetchHistory(ctx, roomID)
		return
	}
}

// ----------------------------- history side -----------------------------

func (c *Client) fetchHistory(ctx context.Context, roomID string) {
	reqURL := fmt.Sprintf("%s/chat-rooms/%s/messages?limit=%s&currentUserId=%s",
		c.baseURL, url.PathEscape(roomID), strconv.Itoa(c.historyLimit), url.QueryEscape(c.memberID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.setHistoryErr(err)
		return
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.setHistoryErr(err)
		return
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		c.setHistoryErr(fmt.Errorf("unexpected status code fetching history: %d", resp.StatusCode))
		return
	}

	var fetched model.MessageViewList
	if err := json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		c.setHistoryErr(err)
		return
	}

	c.applyHistory(fetched)
}

// applyHistory seeds the visible list from the fetch result. Messages that
// streamed in before the fetch resolved and are missing from the page are
// kept after it in arrival order, each message present exactly once.
func (c *Client) applyHistory(fetched model.MessageViewList) {
	c.mu.Lock()
	defer c.mu.Unlock()

	merged := make([]model.MessageView, 0, len(fetched)+len(c.messages))
	index := make(map[string]struct{}, len(fetched)+len(c.messages))

	for _, m := range fetched {
		id := m.ID.String()
		if _, ok := index[id]; ok {
			continue
		}
		index[id] = struct{}{}
		merged = append(merged, m)
	}

	for _, m := range c.messages {
		id := m.ID.String()
		if _, ok := index[id]; ok {
			continue
		}
		index[id] = struct{}{}
		merged = append(merged, m)
	}

	c.messages = merged
	c.index = index
	c.historyErr = nil
}

func (c *Client) setHistoryErr(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.historyErr = err
}
