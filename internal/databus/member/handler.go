package member

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/raceclub/chat-service/internal/config"
	"github.com/raceclub/chat-service/internal/model"
)

type Handler struct {
	dbRepo DBRepo
}

func New(dbRepo DBRepo) *Handler {
	return &Handler{dbRepo: dbRepo}
}

// Handler consumes membership profile events and keeps the local member
// cache current so message views can resolve nicknames and avatars.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	var msg ProfileMessage
	if err := json.Unmarshal(in, &msg); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal profile message: %v", err))
		return
	}

	if msg.MemberID == "" {
		logger.Error("profile message has no member id")
		return
	}

	switch {
	case msg.Nickname != "" && msg.AvatarURL != "":
		member := &model.MemberParams{
			ID:        msg.MemberID,
			Nickname:  msg.Nickname,
			AvatarURL: msg.AvatarURL,
		}
		if err := h.dbRepo.AddNewMember(ctx, member); err != nil {
			logger.Error(fmt.Sprintf("failed to upsert member: %v", err))
			return
		}
	case msg.Nickname != "":
		if err := h.dbRepo.UpdateMemberNickname(ctx, msg.MemberID, msg.Nickname); err != nil {
			logger.Error(fmt.Sprintf("failed to update nickname: %v", err))
			return
		}
	case msg.AvatarURL != "":
		if err := h.dbRepo.UpdateMemberAvatar(ctx, msg.MemberID, msg.AvatarURL); err != nil {
			logger.Error(fmt.Sprintf("failed to update avatar: %v", err))
			return
		}
	default:
		logger.Error(fmt.Sprintf("profile message for %s carries no fields", msg.MemberID))
		return
	}

	logger.Info(fmt.Sprintf("member profile synced: %s", msg.MemberID))
}
