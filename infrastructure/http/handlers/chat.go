package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"
	"werkstatt/domain"
	"werkstatt/errors"

	"github.com/gin-gonic/gin"
)

type chatRequest struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type chatChunk struct {
	Chunk    string `json:"chunk"`
	FullText string `json:"fullText"`
}

type chatFailure struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// Chat relays the conversation to the assistant and streams the answer as it arrives.
func (h *Handlers) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Messages = nil
	}

	chunks, err := h.assistant.Stream(c.Request.Context(), req.Messages)
	switch {
	case stderrors.Is(err, errors.ErrEmptyMessages):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request: messages array is required"})
		return
	case stderrors.Is(err, errors.ErrAssistantUnavailable):
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "API key not configured"})
		return
	case stderrors.Is(err, errors.ErrEmptyMessageContent):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "No message content provided"})
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	sse, err := newSSEStreamer(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	var fullText strings.Builder
	for chunk, err := range chunks {
		if err != nil {
			h.log.Warn("Assistant stream failed", "error", err)
			_ = sse.send(chatFailure{Error: "AI processing failed", Details: err.Error()})
			return
		}
		if chunk == "" {
			continue
		}
		fullText.WriteString(chunk)
		if err = sse.send(chatChunk{Chunk: chunk, FullText: fullText.String()}); err != nil {
			return
		}
	}
	_ = sse.sendDone()
}
