package member

import (
	"context"

	"github.com/raceclub/chat-service/internal/model"
)

type DBRepo interface {
	AddNewMember(ctx context.Context, member *model.MemberParams) error
	UpdateMemberNickname(ctx context.Context, memberID, nickname string) error
	UpdateMemberAvatar(ctx context.Context, memberID, avatarURL string) error
}

// ProfileMessage is the membership profile payload published by the
// membership service. Full profiles arrive on registration; edits may
// carry only the changed field.
type ProfileMessage struct {
	MemberID  string `json:"member_id"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatar_url"`
}
