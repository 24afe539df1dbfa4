package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	GeneralRoomKind      = "general"
	ChampionshipRoomKind = "championship"
)

type RoomList []ChatRoom

// ChatRoom is a named channel, either general-purpose or scoped to exactly
// one championship. Kind values other than the constants above are opaque
// display tags owned by the club app.
type ChatRoom struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	Kind           string     `db:"kind" json:"kind"`
	ChampionshipID *uuid.UUID `db:"championship_id" json:"championshipId,omitempty"`
	Active         bool       `db:"active" json:"active"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
}
