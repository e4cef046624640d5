package handlers

import (
	"fmt"
	"net/http"
	"time"
	"werkstatt/auth"
	"werkstatt/domain"
	"werkstatt/errors"

	"github.com/gin-gonic/gin"
)

type sendMessageRequest struct {
	Content string `json:"content"`
}

type unreadResponse struct {
	domain.ChatThread
	HasUnread bool `json:"hasUnread"`
}

func (h *Handlers) Threads(c *gin.Context) {
	record, err := h.threads.Threads(auth.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateThreads replaces the caller's whole record.
func (h *Handlers) UpdateThreads(c *gin.Context) {
	var record domain.ThreadsRecord
	if !h.bind(c, &record) {
		return
	}
	if err := h.threads.UpdateThreads(auth.UserID(c), record); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) GetThread(c *gin.Context) {
	userID, threadID := auth.UserID(c), c.Param("threadId")
	thread, err := h.threads.GetThread(userID, threadID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, unreadResponse{ChatThread: thread, HasUnread: thread.HasUnread()})
}

func (h *Handlers) StartExpertChat(c *gin.Context) {
	thread, err := h.threads.StartExpertChat(auth.UserID(c), c.Param("expertId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// SendMessage stores the message and answers 202, the reply arrives later.
func (h *Handlers) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if !h.bind(c, &req) {
		return
	}
	thread, err := h.threads.SendMessage(auth.UserID(c), c.Param("threadId"), req.Content)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, thread)
}

func (h *Handlers) MarkThreadAsRead(c *gin.Context) {
	thread, err := h.threads.MarkThreadAsRead(auth.UserID(c), c.Param("threadId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// ResetThread only exists for the assistant thread.
func (h *Handlers) ResetThread(c *gin.Context) {
	if c.Param("threadId") != domain.AIThreadID {
		h.fail(c, fmt.Errorf("%w: only the assistant thread can be reset", errors.ErrInvalidRequest))
		return
	}
	thread, err := h.threads.ResetAIChat(auth.UserID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

// WatchThread streams the thread as server-sent events: the current state first,
// then one snapshot per reply until the client goes away.
func (h *Handlers) WatchThread(c *gin.Context) {
	userID, threadID := auth.UserID(c), c.Param("threadId")
	thread, err := h.threads.GetThread(userID, threadID)
	if err != nil {
		h.fail(c, err)
		return
	}
	stream, stop, err := h.threads.Watch(userID, threadID)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer stop()

	sse, err := newSSEStreamer(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err = sse.send(thread); err != nil {
		return
	}

	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()
	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err = sse.ping(); err != nil {
				return
			}
		case evt, ok := <-stream.Events():
			if !ok {
				return
			}
			if err = sse.send(evt.Thread); err != nil {
				h.log.Debug("Thread watcher gone", "user_id", userID, "thread_id", threadID, "error", err)
				return
			}
		}
	}
}
