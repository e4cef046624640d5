//go:generate go run go.uber.org/mock/mockgen -source=assistant_service.go -destination=../mocks/mock_assistant_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"werkstatt/ai"
	"werkstatt/auth"
	"werkstatt/domain"
	"werkstatt/errors"
	"werkstatt/observability"
)

type IAssistantService interface {
	Stream(ctx context.Context, messages []domain.ChatMessage) (iter.Seq2[string, error], error)
}

// AssistantService validates a chat request and relays it to the model unchanged.
type AssistantService struct {
	assistant  ai.Assistant
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

func NewAssistantService(assistant ai.Assistant, monitoring *observability.MonitoringManager, log *slog.Logger) *AssistantService {
	return &AssistantService{assistant: assistant, monitoring: monitoring, log: log}
}

// Stream checks the request in the order clients rely on: messages present,
// assistant configured, latest message not blank.
func (s *AssistantService) Stream(ctx context.Context, messages []domain.ChatMessage) (iter.Seq2[string, error], error) {
	if len(messages) == 0 {
		return nil, errors.ErrEmptyMessages
	}
	for _, m := range messages {
		if err := auth.Validate(m); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrEmptyMessages, err)
		}
	}
	if s.assistant == nil {
		return nil, errors.ErrAssistantUnavailable
	}
	if strings.TrimSpace(messages[len(messages)-1].Content) == "" {
		return nil, errors.ErrEmptyMessageContent
	}

	chunks := s.assistant.Stream(ctx, messages)
	return func(yield func(string, error) bool) {
		s.monitoring.StreamOpened()
		status := "done"
		defer func() { s.monitoring.StreamClosed(status) }()

		for chunk, err := range chunks {
			if err != nil {
				status = "failed"
				yield("", err)
				return
			}
			if !yield(chunk, nil) {
				status = "aborted"
				return
			}
		}
	}, nil
}
