package handlers

import (
	stderrors "errors"
	"net/http"
	"werkstatt/errors"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrInvalidRequest),
		stderrors.Is(err, errors.ErrInvalidPassword),
		stderrors.Is(err, errors.ErrEmptyMessages),
		stderrors.Is(err, errors.ErrEmptyMessageContent):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case stderrors.Is(err, errors.ErrPostNotFound),
		stderrors.Is(err, errors.ErrCommentNotFound),
		stderrors.Is(err, errors.ErrGuideNotFound),
		stderrors.Is(err, errors.ErrExpertNotFound),
		stderrors.Is(err, errors.ErrThreadNotFound),
		stderrors.Is(err, errors.ErrUserNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrUserAlreadyExists):
		return http.StatusConflict
	case stderrors.Is(err, errors.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case stderrors.Is(err, errors.ErrUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	case stderrors.Is(err, errors.ErrReplyQueueFull):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail aborts the request with the mapped status. Internal errors are logged, never echoed.
func (h *Handlers) fail(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.log.Error("Request failed", "path", c.FullPath(), "error", err)
		message = "internal server error"
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}
