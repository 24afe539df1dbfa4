package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/raceclub/chat-service/internal/config"
	"github.com/raceclub/chat-service/internal/model"
	"github.com/raceclub/chat-service/internal/pkg/tx"
	"github.com/raceclub/chat-service/internal/rest/api"
)

const defaultHistoryLimit = int32(50)

type Handler struct {
	repository DBRepo
	broadcast  BroadcastChannel
	validator  Validator
	tokens     TokenGenerator
}

func New(repo DBRepo, broadcast BroadcastChannel, validator Validator, tokens TokenGenerator) *Handler {
	return &Handler{
		repository: repo,
		broadcast:  broadcast,
		validator:  validator,
		tokens:     tokens,
	}
}

// SendMessage appends a message to a room's log and, once the transaction
// has committed, publishes it to the room's live subscribers.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	roomID := chi.URLParam(r, "roomID")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var view *model.MessageView
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		room, err := h.repository.GetRoom(ctx, roomID)
		if err != nil {
			return err
		}
		if !room.Active {
			return model.ErrRoomNotFound
		}

		exists, err := h.repository.MemberExists(ctx, req.MemberID)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrMemberNotFound
		}

		message := model.ChatMessage{
			ID:       uuid.New(),
			RoomID:   room.ID,
			AuthorID: uuid.MustParse(req.MemberID),
			Body:     req.Message,
		}

		if req.ReplyToID != nil && *req.ReplyToID != "" {
			replyTo := uuid.MustParse(*req.ReplyToID)
			if _, err := h.repository.GetMessage(ctx, replyTo.String()); err != nil {
				return err
			}
			message.ReplyToID = &replyTo
		}

		if err := h.repository.SaveMessage(ctx, &message); err != nil {
			return err
		}

		view, err = h.repository.GetMessageView(ctx, message.ID.String(), &req.MemberID)
		return err
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), statusForError(err))
		return
	}

	// fan-out happens strictly after the commit above
	h.broadcast.Publish(roomID, model.NewMessageCreatedEvent(roomID, *view))

	h.writeJSON(w, view, http.StatusCreated)
}

// GetRecentMessages serves the bounded oldest-first history page a client
// reconciles against its live stream.
func (h *Handler) GetRecentMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRecentMessages")

	roomID := chi.URLParam(r, "roomID")

	if _, err := h.repository.GetRoom(r.Context(), roomID); err != nil {
		logger.Error(fmt.Sprintf("failed to get room: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get room: %v", err), statusForError(err))
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed <= 0 {
			logger.Error(fmt.Sprintf("invalid limit %q", raw))
			h.writeError(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = int32(parsed)
	}

	var viewerID *string
	if raw := r.URL.Query().Get("currentUserId"); raw != "" {
		viewerID = &raw
	}

	messages, err := h.repository.GetRecentMessages(r.Context(), roomID, limit, viewerID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, messages, http.StatusOK)
}

// LikeMessage records a like once per (message, member); a duplicate like is
// a silent no-op. A state change publishes the new count to the room.
func (h *Handler) LikeMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LikeMessage")

	messageID := chi.URLParam(r, "messageID")

	var req api.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(req.MemberID); err != nil {
		logger.Error(fmt.Sprintf("invalid memberId: %v", err))
		h.writeError(w, "memberId must be a valid UUID", http.StatusBadRequest)
		return
	}

	var (
		liked   bool
		count   int64
		message *model.ChatMessage
	)
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		message, err = h.repository.GetMessage(ctx, messageID)
		if err != nil {
			return err
		}

		exists, err := h.repository.MemberExists(ctx, req.MemberID)
		if err != nil {
			return err
		}
		if !exists {
			return model.ErrMemberNotFound
		}

		liked, err = h.repository.LikeMessage(ctx, messageID, req.MemberID)
		if err != nil {
			return err
		}

		count, err = h.repository.GetMessageLikeCount(ctx, messageID)
		return err
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to like message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to like message: %v", err), statusForError(err))
		return
	}

	if liked {
		roomID := message.RoomID.String()
		h.broadcast.Publish(roomID, model.NewLikeChangedEvent(roomID, messageID, count))
	}

	h.writeJSON(w, api.LikeResponse{Liked: liked, LikeCount: count}, http.StatusOK)
}

// UnlikeMessage removes a member's like; unliking a never-liked message is a
// silent no-op, never an error.
func (h *Handler) UnlikeMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UnlikeMessage")

	messageID := chi.URLParam(r, "messageID")

	var req api.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(req.MemberID); err != nil {
		logger.Error(fmt.Sprintf("invalid memberId: %v", err))
		h.writeError(w, "memberId must be a valid UUID", http.StatusBadRequest)
		return
	}

	var (
		unliked bool
		count   int64
		message *model.ChatMessage
	)
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		message, err = h.repository.GetMessage(ctx, messageID)
		if err != nil {
			return err
		}

		unliked, err = h.repository.UnlikeMessage(ctx, messageID, req.MemberID)
		if err != nil {
			return err
		}

		count, err = h.repository.GetMessageLikeCount(ctx, messageID)
		return err
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to unlike message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to unlike message: %v", err), statusForError(err))
		return
	}

	if unliked {
		roomID := message.RoomID.String()
		h.broadcast.Publish(roomID, model.NewLikeChangedEvent(roomID, messageID, count))
	}

	h.writeJSON(w, api.UnlikeResponse{Unliked: unliked, LikeCount: count}, http.StatusOK)
}

// DeleteMessage soft-deletes: the row stays for the audit trail but leaves
// standard reads, and subscribers are told to drop it.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	messageID := chi.URLParam(r, "messageID")

	var req api.DeleteMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(req.MemberID); err != nil {
		logger.Error(fmt.Sprintf("invalid memberId: %v", err))
		h.writeError(w, "memberId must be a valid UUID", http.StatusBadRequest)
		return
	}

	var (
		message        *model.ChatMessage
		alreadyDeleted bool
	)
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		message, err = h.repository.GetMessage(ctx, messageID)
		if err != nil {
			return err
		}

		if message.Deleted {
			alreadyDeleted = true
			return nil
		}

		_, err = h.repository.SoftDeleteMessage(ctx, messageID, req.MemberID)
		return err
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete message: %v", err), statusForError(err))
		return
	}

	if !alreadyDeleted {
		roomID := message.RoomID.String()
		h.broadcast.Publish(roomID, model.NewMessageDeletedEvent(roomID, messageID))
	}

	h.writeJSON(w, api.DeleteMessageResponse{Deleted: true}, http.StatusOK)
}

func (h *Handler) PinMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("PinMessage")

	messageID := chi.URLParam(r, "messageID")

	var req api.PinMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := uuid.Parse(req.MemberID); err != nil {
		logger.Error(fmt.Sprintf("invalid memberId: %v", err))
		h.writeError(w, "memberId must be a valid UUID", http.StatusBadRequest)
		return
	}

	pinned, err := h.repository.PinMessage(r.Context(), messageID, req.MemberID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to pin message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to pin message: %v", err), http.StatusInternalServerError)
		return
	}
	if !pinned {
		h.writeError(w, "message not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, api.PinMessageResponse{Pinned: true}, http.StatusOK)
}

func (h *Handler) UnpinMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UnpinMessage")

	messageID := chi.URLParam(r, "messageID")

	unpinned, err := h.repository.UnpinMessage(r.Context(), messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to unpin message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to unpin message: %v", err), http.StatusInternalServerError)
		return
	}
	if !unpinned {
		h.writeError(w, "message not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, api.PinMessageResponse{Pinned: false}, http.StatusOK)
}

func (h *Handler) GetPinnedMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetPinnedMessages")

	roomID := chi.URLParam(r, "roomID")

	if _, err := h.repository.GetRoom(r.Context(), roomID); err != nil {
		logger.Error(fmt.Sprintf("failed to get room: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get room: %v", err), statusForError(err))
		return
	}

	messages, err := h.repository.GetPinnedMessages(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch pinned messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch pinned messages: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, messages, http.StatusOK)
}

// CreateRoom is idempotent for championship-scoped rooms: a second create
// with the same championship returns the existing room unchanged.
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateRoom")

	var req api.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateRoom(&req); err != nil {
		logger.Error(fmt.Sprintf("room validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("room validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var championshipID *uuid.UUID
	if req.ChampionshipID != nil && *req.ChampionshipID != "" {
		parsed := uuid.MustParse(*req.ChampionshipID)
		championshipID = &parsed
	}

	var room *model.ChatRoom
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		room, err = h.repository.CreateOrGetRoom(ctx, req.Name, req.Kind, championshipID)
		return err
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to create room: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create room: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, room, http.StatusOK)
}

func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListRooms")

	rooms, err := h.repository.ListRooms(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list rooms: %v", err))
		h.writeError(w, fmt.Sprintf("failed to list rooms: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, rooms, http.StatusOK)
}

func (h *Handler) DeactivateRoom(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeactivateRoom")

	roomID := chi.URLParam(r, "roomID")

	deactivated, err := h.repository.DeactivateRoom(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to deactivate room: %v", err))
		h.writeError(w, fmt.Sprintf("failed to deactivate room: %v", err), http.StatusInternalServerError)
		return
	}
	if !deactivated {
		h.writeError(w, "chat room not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetConnectToken mints the short-lived token a client presents when
// opening the live channel.
func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	memberID := r.URL.Query().Get("memberId")
	if _, err := uuid.Parse(memberID); err != nil {
		logger.Error(fmt.Sprintf("invalid memberId: %v", err))
		h.writeError(w, "memberId must be a valid UUID", http.StatusBadRequest)
		return
	}

	exists, err := h.repository.MemberExists(r.Context(), memberID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check member: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check member: %v", err), http.StatusInternalServerError)
		return
	}
	if !exists {
		h.writeError(w, "member not found", http.StatusNotFound)
		return
	}

	token, expiresAt, err := h.tokens.GenerateConnectToken(memberID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate connect token: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.ConnectTokenResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func statusForError(err error) int {
	switch {
	case errors.Is(err, model.ErrRoomNotFound),
		errors.Is(err, model.ErrMemberNotFound),
		errors.Is(err, model.ErrMessageNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrEmptyMessage),
		errors.Is(err, model.ErrMessageTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
