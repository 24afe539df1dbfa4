package model

import (
	"time"

	"github.com/google/uuid"
)

// MaxMessageLength bounds the body of a chat message, in runes.
const MaxMessageLength = 500

type MessageViewList []MessageView

type ChatMessage struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	RoomID    uuid.UUID  `db:"room_id" json:"chatRoomId"`
	AuthorID  uuid.UUID  `db:"author_id" json:"memberId"`
	Body      string     `db:"body" json:"message"`
	ReplyToID *uuid.UUID `db:"reply_to_id" json:"replyToId,omitempty"`
	Deleted   bool       `db:"deleted" json:"deleted"`
	DeletedBy *uuid.UUID `db:"deleted_by" json:"deletedBy,omitempty"`
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
	Pinned    bool       `db:"pinned" json:"pinned"`
	PinnedBy  *uuid.UUID `db:"pinned_by" json:"pinnedBy,omitempty"`
	PinnedAt  *time.Time `db:"pinned_at" json:"pinnedAt,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

// MessageView is a ChatMessage annotated with author info and like state,
// the shape history reads and live events carry.
type MessageView struct {
	ChatMessage
	AuthorNickname       string `db:"author_nickname" json:"memberName"`
	AuthorAvatarURL      string `db:"author_avatar_url" json:"memberAvatarUrl"`
	LikeCount            int64  `db:"like_count" json:"likeCount"`
	IsLikedByCurrentUser bool   `db:"is_liked_by_current_user" json:"isLikedByCurrentUser"`
}

type MessageLike struct {
	ID        uuid.UUID `db:"id" json:"id"`
	MessageID uuid.UUID `db:"message_id" json:"messageId"`
	MemberID  uuid.UUID `db:"member_id" json:"memberId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
