package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
	ErrReplyQueueFull = fmt.Errorf("reply queue is full")
	ErrSinkClosed     = fmt.Errorf("sink is closed")

	ErrInvalidRequest  = fmt.Errorf("invalid request")
	ErrPostNotFound    = fmt.Errorf("post not found")
	ErrCommentNotFound = fmt.Errorf("comment not found")
	ErrGuideNotFound   = fmt.Errorf("guide not found")
	ErrExpertNotFound  = fmt.Errorf("expert not found")
	ErrThreadNotFound  = fmt.Errorf("thread not found")

	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")

	ErrEmptyMessages        = fmt.Errorf("messages array is required")
	ErrEmptyMessageContent  = fmt.Errorf("no message content provided")
	ErrAssistantUnavailable = fmt.Errorf("assistant is not configured")

	ErrUnsupportedMedia = fmt.Errorf("unsupported media type")
	ErrUploadTooLarge   = fmt.Errorf("upload exceeds size limit")
)
