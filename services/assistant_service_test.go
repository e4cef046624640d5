package services_test

import (
	"context"
	stderrors "errors"
	"iter"
	"log/slog"
	"testing"
	"werkstatt/domain"
	"werkstatt/errors"
	"werkstatt/mocks"
	"werkstatt/observability"
	"werkstatt/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func chunksOf(err error, chunks ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, c := range chunks {
			if !yield(c, nil) {
				return
			}
		}
		if err != nil {
			yield("", err)
		}
	}
}

func TestAssistantService_Stream_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	assistant := mocks.NewMockAssistant(ctrl)
	log := slog.New(slog.DiscardHandler)

	tests := []struct {
		name      string
		assistant bool
		messages  []domain.ChatMessage
		want      error
	}{
		{"no messages", true, nil, errors.ErrEmptyMessages},
		{"unknown role", true, []domain.ChatMessage{{Role: "tool", Content: "x"}}, errors.ErrEmptyMessages},
		{"missing messages win over missing key", false, []domain.ChatMessage{}, errors.ErrEmptyMessages},
		{"assistant not configured", false, []domain.ChatMessage{{Role: domain.RoleUser, Content: "Hallo"}}, errors.ErrAssistantUnavailable},
		{"blank latest message", true, []domain.ChatMessage{
			{Role: domain.RoleUser, Content: "Hallo"},
			{Role: domain.RoleUser, Content: "  "},
		}, errors.ErrEmptyMessageContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := services.NewAssistantService(nil, nil, log)
			if tt.assistant {
				svc = services.NewAssistantService(assistant, nil, log)
			}
			_, err := svc.Stream(context.Background(), tt.messages)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAssistantService_Stream(t *testing.T) {
	messages := []domain.ChatMessage{{Role: domain.RoleUser, Content: "Wie entlüfte ich einen Heizkörper?"}}

	t.Run("chunks are relayed in order", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		assistant := mocks.NewMockAssistant(ctrl)
		monitoring := observability.NewMonitoringManager(slog.New(slog.DiscardHandler), nil)
		svc := services.NewAssistantService(assistant, monitoring, slog.New(slog.DiscardHandler))

		assistant.EXPECT().Stream(gomock.Any(), messages).Return(chunksOf(nil, "Zuerst ", "die Heizung ", "abdrehen."))

		// When
		seq, err := svc.Stream(context.Background(), messages)
		req.NoError(err)
		var got []string
		for chunk, err := range seq {
			req.NoError(err)
			req.Equal(int64(1), monitoring.Snapshot().ActiveStreams)
			got = append(got, chunk)
		}

		// Then
		req.Equal([]string{"Zuerst ", "die Heizung ", "abdrehen."}, got)
		req.Zero(monitoring.Snapshot().ActiveStreams)
	})

	t.Run("model failure ends the stream", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		assistant := mocks.NewMockAssistant(ctrl)
		svc := services.NewAssistantService(assistant, nil, slog.New(slog.DiscardHandler))
		boom := stderrors.New("quota exceeded")

		assistant.EXPECT().Stream(gomock.Any(), gomock.Any()).Return(chunksOf(boom, "Zuerst "))

		seq, err := svc.Stream(context.Background(), messages)
		req.NoError(err)

		var chunks []string
		var streamErr error
		for chunk, err := range seq {
			if err != nil {
				streamErr = err
				break
			}
			chunks = append(chunks, chunk)
		}
		req.Equal([]string{"Zuerst "}, chunks)
		req.ErrorIs(streamErr, boom)
	})

	t.Run("client stops reading", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		assistant := mocks.NewMockAssistant(ctrl)
		monitoring := observability.NewMonitoringManager(slog.New(slog.DiscardHandler), nil)
		svc := services.NewAssistantService(assistant, monitoring, slog.New(slog.DiscardHandler))

		assistant.EXPECT().Stream(gomock.Any(), gomock.Any()).Return(chunksOf(nil, "a", "b", "c"))

		seq, err := svc.Stream(context.Background(), messages)
		req.NoError(err)
		for range seq {
			break
		}
		req.Zero(monitoring.Snapshot().ActiveStreams)
	})
}

func TestAssistantService_Stream_LatestMessageNotFromUser(t *testing.T) {
	tests := []struct {
		name     string
		messages []domain.ChatMessage
	}{
		{"lone system message", []domain.ChatMessage{
			{Role: domain.RoleSystem, Content: "Wie dichte ich ein Fenster ab?"},
		}},
		{"assistant turn last", []domain.ChatMessage{
			{Role: domain.RoleUser, Content: "Hallo"},
			{Role: domain.RoleAssistant, Content: "Wie dichte ich ein Fenster ab?"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			assistant := mocks.NewMockAssistant(ctrl)
			svc := services.NewAssistantService(assistant, nil, slog.New(slog.DiscardHandler))

			// Given
			assistant.EXPECT().Stream(gomock.Any(), tt.messages).Return(chunksOf(nil, "Mit Silikon."))

			// When
			seq, err := svc.Stream(context.Background(), tt.messages)
			req.NoError(err)
			var got []string
			for chunk, err := range seq {
				req.NoError(err)
				got = append(got, chunk)
			}

			// Then
			req.Equal([]string{"Mit Silikon."}, got)
		})
	}
}
