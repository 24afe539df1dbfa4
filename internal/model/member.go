package model

// MemberParams mirrors the club membership profile fields the chat surface
// needs. Rows are synced from the membership databus, never authored here.
type MemberParams struct {
	ID        string `db:"id"`
	Nickname  string `db:"nickname"`
	AvatarURL string `db:"avatar_url"`
}
