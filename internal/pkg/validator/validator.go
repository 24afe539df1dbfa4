package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/raceclub/chat-service/internal/model"
	"github.com/raceclub/chat-service/internal/rest/api"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return model.ErrEmptyMessage
	}

	if len([]rune(req.Message)) > model.MaxMessageLength {
		return fmt.Errorf("%w: limit is %d characters", model.ErrMessageTooLong, model.MaxMessageLength)
	}

	if _, err := uuid.Parse(req.MemberID); err != nil {
		return fmt.Errorf("memberId must be a valid UUID")
	}

	if req.ReplyToID != nil && *req.ReplyToID != "" {
		if _, err := uuid.Parse(*req.ReplyToID); err != nil {
			return fmt.Errorf("replyToId must be a valid UUID")
		}
	}

	return nil
}

func (v *Validator) ValidateCreateRoom(req *api.CreateRoomRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("room name is required")
	}

	if strings.TrimSpace(req.Kind) == "" {
		return fmt.Errorf("room kind is required")
	}

	if req.ChampionshipID != nil && *req.ChampionshipID != "" {
		if _, err := uuid.Parse(*req.ChampionshipID); err != nil {
			return fmt.Errorf("championshipId must be a valid UUID")
		}
	}

	return nil
}
