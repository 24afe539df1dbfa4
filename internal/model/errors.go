package model

import "errors"

var (
	ErrRoomNotFound    = errors.New("chat room not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrMessageNotFound = errors.New("message not found")

	ErrEmptyMessage   = errors.New("message body cannot be empty")
	ErrMessageTooLong = errors.New("message body exceeds maximum length")
)
