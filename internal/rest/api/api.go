// Package api declares the request and response shapes of the chat REST
// surface. Field names follow the club app's wire format.
package api

type Error struct {
	Error string `json:"error"`
}

type SendMessageRequest struct {
	Message   string  `json:"message"`
	MemberID  string  `json:"memberId"`
	ReplyToID *string `json:"replyToId,omitempty"`
}

type LikeRequest struct {
	MemberID string `json:"memberId"`
}

type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

type UnlikeResponse struct {
	Unliked   bool  `json:"unliked"`
	LikeCount int64 `json:"likeCount"`
}

type DeleteMessageRequest struct {
	MemberID string `json:"memberId"`
}

type DeleteMessageResponse struct {
	Deleted bool `json:"deleted"`
}

type PinMessageRequest struct {
	MemberID string `json:"memberId"`
}

type PinMessageResponse struct {
	Pinned bool `json:"pinned"`
}

type CreateRoomRequest struct {
	Name           string  `json:"name"`
	Kind           string  `json:"kind"`
	ChampionshipID *string `json:"championshipId,omitempty"`
}

type ConnectTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
