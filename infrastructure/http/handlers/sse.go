package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type sseStreamer struct {
	writer  http.ResponseWriter
	flusher http.Flusher
}

// newSSEStreamer writes the event-stream headers and the 200 status.
func newSSEStreamer(c *gin.Context) (*sseStreamer, error) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	flusher.Flush()
	return &sseStreamer{writer: c.Writer, flusher: flusher}, nil
}

func (s *sseStreamer) send(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.raw(string(data))
}

func (s *sseStreamer) sendDone() error {
	return s.raw("[DONE]")
}

// ping writes a comment line that clients ignore, keeping proxies from closing idle streams.
func (s *sseStreamer) ping() error {
	if _, err := fmt.Fprint(s.writer, ": ping\n\n"); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (s *sseStreamer) raw(data string) error {
	if _, err := fmt.Fprintf(s.writer, "data: %s\n\n", data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}
