//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/raceclub/chat-service/internal/model"
	"github.com/raceclub/chat-service/internal/rest/api"
)

type DBRepo interface {
	CreateOrGetRoom(ctx context.Context, name, kind string, championshipID *uuid.UUID) (*model.ChatRoom, error)
	GetRoom(ctx context.Context, roomID string) (*model.ChatRoom, error)
	ListRooms(ctx context.Context) (*model.RoomList, error)
	DeactivateRoom(ctx context.Context, roomID string) (bool, error)

	MemberExists(ctx context.Context, memberID string) (bool, error)

	SaveMessage(ctx context.Context, message *model.ChatMessage) error
	GetMessage(ctx context.Context, messageID string) (*model.ChatMessage, error)
	GetMessageView(ctx context.Context, messageID string, viewerID *string) (*model.MessageView, error)
	GetRecentMessages(ctx context.Context, roomID string, limit int32, viewerID *string) (*model.MessageViewList, error)
	GetPinnedMessages(ctx context.Context, roomID string) (*model.MessageViewList, error)
	SoftDeleteMessage(ctx context.Context, messageID, deletedBy string) (bool, error)
	PinMessage(ctx context.Context, messageID, pinnedBy string) (bool, error)
	UnpinMessage(ctx context.Context, messageID string) (bool, error)

	LikeMessage(ctx context.Context, messageID, memberID string) (bool, error)
	UnlikeMessage(ctx context.Context, messageID, memberID string) (bool, error)
	GetMessageLikeCount(ctx context.Context, messageID string) (int64, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// BroadcastChannel fans a room-scoped event out to live subscribers.
// Handlers publish strictly after the triggering transaction commits.
type BroadcastChannel interface {
	Publish(roomID string, event model.LiveEvent)
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateCreateRoom(req *api.CreateRoomRequest) error
}

type TokenGenerator interface {
	GenerateConnectToken(memberID string) (string, int64, error)
}
