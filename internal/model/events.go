package model

import (
	"encoding/json"
	"fmt"
)

// Live channel frame types. Frames are flat JSON objects tagged by "type";
// the Go side keeps them as a closed union so both ends handle every kind
// exhaustively instead of probing ad-hoc string fields.
const (
	EventJoinChatRoom   = "join-chat-room"
	EventNewMessage     = "new-message"
	EventMessageDeleted = "message-deleted"
	EventLikeChanged    = "like-changed"
)

type LiveEvent interface {
	liveEvent()
}

// JoinChatRoomEvent is the only inbound control frame: a connection
// announces (or switches) the single room it observes.
type JoinChatRoomEvent struct {
	Type       string `json:"type"`
	ChatRoomID string `json:"chatRoomId"`
}

type NewMessageEvent struct {
	Type       string      `json:"type"`
	ChatRoomID string      `json:"chatRoomId"`
	Message    MessageView `json:"message"`
}

type MessageDeletedEvent struct {
	Type       string `json:"type"`
	ChatRoomID string `json:"chatRoomId"`
	MessageID  string `json:"messageId"`
}

type LikeChangedEvent struct {
	Type       string `json:"type"`
	ChatRoomID string `json:"chatRoomId"`
	MessageID  string `json:"messageId"`
	LikeCount  int64  `json:"likeCount"`
}

func (JoinChatRoomEvent) liveEvent()   {}
func (NewMessageEvent) liveEvent()     {}
func (MessageDeletedEvent) liveEvent() {}
func (LikeChangedEvent) liveEvent()    {}

func NewJoinChatRoomEvent(roomID string) JoinChatRoomEvent {
	return JoinChatRoomEvent{Type: EventJoinChatRoom, ChatRoomID: roomID}
}

func NewMessageCreatedEvent(roomID string, message MessageView) NewMessageEvent {
	return NewMessageEvent{Type: EventNewMessage, ChatRoomID: roomID, Message: message}
}

func NewMessageDeletedEvent(roomID, messageID string) MessageDeletedEvent {
	return MessageDeletedEvent{Type: EventMessageDeleted, ChatRoomID: roomID, MessageID: messageID}
}

func NewLikeChangedEvent(roomID, messageID string, likeCount int64) LikeChangedEvent {
	return LikeChangedEvent{Type: EventLikeChanged, ChatRoomID: roomID, MessageID: messageID, LikeCount: likeCount}
}

// DecodeLiveEvent parses a frame into its concrete union member. Unknown
// or untagged frames are an error so callers can log and drop them.
func DecodeLiveEvent(data []byte) (LiveEvent, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode live frame: %w", err)
	}

	switch probe.Type {
	case EventJoinChatRoom:
		var e JoinChatRoomEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to decode %s frame: %w", probe.Type, err)
		}
		return e, nil
	case EventNewMessage:
		var e NewMessageEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to decode %s frame: %w", probe.Type, err)
		}
		return e, nil
	case EventMessageDeleted:
		var e MessageDeletedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to decode %s frame: %w", probe.Type, err)
		}
		return e, nil
	case EventLikeChanged:
		var e LikeChangedEvent
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to decode %s frame: %w", probe.Type, err)
		}
		return e, nil
	default:
		return nil, fmt.Errorf("unknown live event type %q", probe.Type)
	}
}
