package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/raceclub/chat-service/internal/config"
	"github.com/raceclub/chat-service/internal/model"
)

type txKey struct{}

// queryExecutor is satisfied by both *sqlx.DB and *sqlx.Tx so every query
// can run against whichever the request context carries.
type queryExecutor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// WithTx runs cb inside one transaction; queries issued through Chk with
// the callback's context join it.
func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	t, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, txKey{}, t)); err != nil {
		_ = t.Rollback()
		return err
	}

	return t.Commit()
}

func (r *Repository) Chk(ctx context.Context) queryExecutor {
	if t, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return t
	}
	return r.connection
}

// ----------------------------- room registry -----------------------------

// CreateOrGetRoom returns the existing room for championshipID when one is
// already registered, otherwise inserts a new active room. The unique index
// on championship_id backstops concurrent creates: the loser of the race
// re-reads and returns the committed row instead of surfacing a conflict.
func (r *Repository) CreateOrGetRoom(ctx context.Context, name, kind string, championshipID *uuid.UUID) (*model.ChatRoom, error) {
	if championshipID != nil {
		room, err := r.getRoomByChampionship(ctx, *championshipID)
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, model.ErrRoomNotFound) {
			return nil, err
		}
	}

	query, args, err := sq.Insert("chat_rooms").
		Columns("id", "name", "kind", "championship_id", "active").
		Values(uuid.New(), name, kind, championshipID, true).
		Suffix("ON CONFLICT (championship_id) WHERE championship_id IS NOT NULL DO NOTHING RETURNING id, name, kind, championship_id, active, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var room model.ChatRoom
	err = r.Chk(ctx).GetContext(ctx, &room, query, args...)
	if errors.Is(err, sql.ErrNoRows) && championshipID != nil {
		// lost the create race, the committed row wins
		return r.getRoomByChampionship(ctx, *championshipID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %v", err)
	}

	return &room, nil
}

func (r *Repository) getRoomByChampionship(ctx context.Context, championshipID uuid.UUID) (*model.ChatRoom, error) {
	query, args, err := sq.Select("id", "name", "kind", "championship_id", "active", "created_at").
		From("chat_rooms").
		Where(sq.Eq{"championship_id": championshipID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var room model.ChatRoom
	err = r.Chk(ctx).GetContext(ctx, &room, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room by championship: %v", err)
	}

	return &room, nil
}

func (r *Repository) GetRoom(ctx context.Context, roomID string) (*model.ChatRoom, error) {
	query, args, err := sq.Select("id", "name", "kind", "championship_id", "active", "created_at").
		From("chat_rooms").
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var room model.ChatRoom
	err = r.Chk(ctx).GetContext(ctx, &room, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %v", err)
	}

	return &room, nil
}

func (r *Repository) ListRooms(ctx context.Context) (*model.RoomList, error) {
	query, args, err := sq.Select("id", "name", "kind", "championship_id", "active", "created_at").
		From("chat_rooms").
		Where(sq.Eq{"active": true}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rooms model.RoomList
	err = r.Chk(ctx).SelectContext(ctx, &rooms, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %v", err)
	}

	return &rooms, nil
}

func (r *Repository) DeactivateRoom(ctx context.Context, roomID string) (bool, error) {
	query, args, err := sq.Update("chat_rooms").
		Set("active", false).
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate room: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// ----------------------------- message store -----------------------------

func (r *Repository) SaveMessage(ctx context.Context, message *model.ChatMessage) error {
	query, args, err := sq.Insert("chat_messages").
		Columns("id", "room_id", "author_id", "body", "reply_to_id").
		Values(message.ID, message.RoomID, message.AuthorID, message.Body, message.ReplyToID).
		Suffix("RETURNING created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).GetContext(ctx, &message.CreatedAt, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func (r *Repository) MemberExists(ctx context.Context, memberID string) (bool, error) {
	query, args, err := sq.Select("COUNT(*) > 0").
		From("members").
		Where(sq.Eq{"id": memberID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	var exists bool
	err = r.Chk(ctx).GetContext(ctx, &exists, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check member: %v", err)
	}

	return exists, nil
}

func messageViewColumns() sq.SelectBuilder {
	return sq.Select(
		"m.id",
		"m.room_id",
		"m.author_id",
		"m.body",
		"m.reply_to_id",
		"m.deleted",
		"m.deleted_by",
		"m.deleted_at",
		"m.pinned",
		"m.pinned_by",
		"m.pinned_at",
		"m.created_at",
		"u.nickname AS author_nickname",
		"u.avatar_url AS author_avatar_url",
		"COUNT(l.id) AS like_count",
	).
		From("chat_messages m").
		Join("members u ON u.id = m.author_id").
		LeftJoin("message_likes l ON l.message_id = m.id").
		GroupBy("m.id", "u.nickname", "u.avatar_url")
}

// GetRecentMessages returns the latest limit messages of a room in
// chronological (oldest-first) order, soft-deleted rows excluded. When
// viewerID is set every row carries that viewer's like state. There is no
// cursor: volume per room is modest, a fresh call restarts the page.
func (r *Repository) GetRecentMessages(ctx context.Context, roomID string, limit int32, viewerID *string) (*model.MessageViewList, error) {
	viewer := uuid.Nil.String()
	if viewerID != nil && *viewerID != "" {
		viewer = *viewerID
	}

	if limit <= 0 {
		limit = 50
	}

	queryBuilder := messageViewColumns().
		Column(sq.Expr("COALESCE(BOOL_OR(l.member_id = ?), FALSE) AS is_liked_by_current_user", viewer)).
		Where(sq.Eq{"m.room_id": roomID, "m.deleted": false}).
		OrderBy("m.created_at DESC", "m.id DESC").
		Limit(uint64(limit))

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageViewList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %v", err)
	}

	// the query pages from the newest end; flip to chronological
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return &messages, nil
}

func (r *Repository) GetMessageView(ctx context.Context, messageID string, viewerID *string) (*model.MessageView, error) {
	viewer := uuid.Nil.String()
	if viewerID != nil && *viewerID != "" {
		viewer = *viewerID
	}

	query, args, err := messageViewColumns().
		Column(sq.Expr("COALESCE(BOOL_OR(l.member_id = ?), FALSE) AS is_liked_by_current_user", viewer)).
		Where(sq.Eq{"m.id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.MessageView
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &message, nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID string) (*model.ChatMessage, error) {
	query, args, err := sq.Select(
		"id", "room_id", "author_id", "body", "reply_to_id",
		"deleted", "deleted_by", "deleted_at",
		"pinned", "pinned_by", "pinned_at",
		"created_at",
	).
		From("chat_messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.ChatMessage
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &message, nil
}

// GetPinnedMessages is the separate pinned view of a room, oldest pin first.
func (r *Repository) GetPinnedMessages(ctx context.Context, roomID string) (*model.MessageViewList, error) {
	query, args, err := messageViewColumns().
		Column("FALSE AS is_liked_by_current_user").
		Where(sq.Eq{"m.room_id": roomID, "m.deleted": false, "m.pinned": true}).
		OrderBy("m.pinned_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageViewList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pinned messages: %v", err)
	}

	return &messages, nil
}

// SoftDeleteMessage hides a message from standard reads. The row stays for
// the audit trail; repeating the call is a no-op that still reports true.
func (r *Repository) SoftDeleteMessage(ctx context.Context, messageID, deletedBy string) (bool, error) {
	query, args, err := sq.Update("chat_messages").
		Set("deleted", true).
		Set("deleted_by", deletedBy).
		Set("deleted_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *Repository) PinMessage(ctx context.Context, messageID, pinnedBy string) (bool, error) {
	query, args, err := sq.Update("chat_messages").
		Set("pinned", true).
		Set("pinned_by", pinnedBy).
		Set("pinned_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": messageID, "deleted": false}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to pin message: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *Repository) UnpinMessage(ctx context.Context, messageID string) (bool, error) {
	query, args, err := sq.Update("chat_messages").
		Set("pinned", false).
		Set("pinned_by", nil).
		Set("pinned_at", nil).
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to unpin message: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// ----------------------------- likes -----------------------------

// LikeMessage records a like once per (message, member). The unique index
// resolves duplicate likes atomically; a duplicate reports false instead of
// an error so idempotent client retries stay cheap.
func (r *Repository) LikeMessage(ctx context.Context, messageID, memberID string) (bool, error) {
	query, args, err := sq.Insert("message_likes").
		Columns("id", "message_id", "member_id").
		Values(uuid.New(), messageID, memberID).
		Suffix("ON CONFLICT (message_id, member_id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to like message: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *Repository) UnlikeMessage(ctx context.Context, messageID, memberID string) (bool, error) {
	query, args, err := sq.Delete("message_likes").
		Where(sq.Eq{"message_id": messageID, "member_id": memberID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to unlike message: %v", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *Repository) GetMessageLikeCount(ctx context.Context, messageID string) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("message_likes").
		Where(sq.Eq{"message_id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %v", err)
	}

	return count, nil
}

// ----------------------------- members -----------------------------

func (r *Repository) AddNewMember(ctx context.Context, member *model.MemberParams) error {
	query, args, err := sq.Insert("members").
		Columns("id", "nickname", "avatar_url").
		Values(member.ID, member.Nickname, member.AvatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_url = EXCLUDED.avatar_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateMemberNickname(ctx context.Context, memberID, nickname string) error {
	query, args, err := sq.Update("members").
		Set("nickname", nickname).
		Where(sq.Eq{"id": memberID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateMemberAvatar(ctx context.Context, memberID, avatarURL string) error {
	query, args, err := sq.Update("members").
		Set("avatar_url", avatarURL).
		Where(sq.Eq{"id": memberID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}
