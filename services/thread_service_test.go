package services_test

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"testing"
	"time"
	"werkstatt/ai"
	"werkstatt/contract"
	"werkstatt/domain"
	"werkstatt/errors"
	"werkstatt/mocks"
	"werkstatt/moderation"
	"werkstatt/repositories"
	"werkstatt/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	expertDelay = 1500 * time.Millisecond
	aiDelay     = time.Second
)

var cannedReplies = []string{"Das klingt machbar.", "Schicken Sie mir ein Foto."}

type threadFixture struct {
	repo         *repositories.ThreadRepository
	orchestrator *mocks.MockIOrchestrator
	assistant    *mocks.MockAssistant
	svc          *services.ThreadService
}

func openBadger(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func initialThreads(now time.Time) domain.ThreadsRecord {
	return domain.ThreadsRecord{
		domain.AIThreadID: domain.NewAIThread(now),
		"1":               domain.NewExpertThread(experts[0], now),
	}
}

func newThreadFixture(t *testing.T, withAssistant bool) threadFixture {
	ctrl := gomock.NewController(t)
	log := slog.New(slog.DiscardHandler)
	sanitizer := mocks.NewMockISanitizer(ctrl)
	sanitizer.EXPECT().Sanitize(gomock.Any()).DoAndReturn(func(s string) moderation.Sanitized {
		return moderation.Sanitized{Content: s}
	}).AnyTimes()

	f := threadFixture{
		repo:         repositories.NewThreadRepository(openBadger(t), log),
		orchestrator: mocks.NewMockIOrchestrator(ctrl),
		assistant:    mocks.NewMockAssistant(ctrl),
	}
	var assistant ai.Assistant
	if withAssistant {
		assistant = f.assistant
	}
	svc := services.NewThreadService(
		f.repo,
		services.NewExpertService(experts, nil),
		f.orchestrator,
		assistant,
		sanitizer,
		initialThreads,
		cannedReplies,
		services.ThreadConfig{ExpertReplyDelay: expertDelay, AIReplyDelay: aiDelay, MaxContentLength: 100},
		log,
	)
	f.svc = svc.
		WithClock(func() time.Time { return fixedNow }).
		WithPicker(func(replies []string) string { return replies[1] })
	return f
}

func TestThreadService_Threads_SeededOnFirstAccess(t *testing.T) {
	req := require.New(t)
	f := newThreadFixture(t, false)

	record, err := f.svc.Threads("alice")

	req.NoError(err)
	req.Len(record, 2)
	req.Equal(domain.AIWelcomeMessage, record[domain.AIThreadID].Messages[0].Content)
	req.Equal("Alex Johnson", record["1"].Expert.Name)
}

func TestThreadService_SendMessage(t *testing.T) {
	t.Run("expert thread schedules the expert delay", func(t *testing.T) {
		req := require.New(t)
		f := newThreadFixture(t, false)

		// Given
		f.orchestrator.EXPECT().Dispatch(domain.ReplyJob{
			Key:     domain.ThreadKey{UserID: "alice", ThreadID: "1"},
			Content: "Die Sicherung fliegt raus",
			ReadyAt: fixedNow.Add(expertDelay),
		}).Return(nil)

		// When
		thread, err := f.svc.SendMessage("alice", "1", "  Die Sicherung fliegt raus ")

		// Then the user message is stored read
		req.NoError(err)
		req.Len(thread.Messages, 2)
		last := thread.Messages[1]
		req.Equal(domain.RoleUser, last.Role)
		req.Equal("Die Sicherung fliegt raus", last.Content)
		req.True(last.Read)
		req.True(fixedNow.Equal(thread.LastUpdated))
	})

	t.Run("ai thread schedules the ai delay", func(t *testing.T) {
		req := require.New(t)
		f := newThreadFixture(t, false)

		f.orchestrator.EXPECT().Dispatch(gomock.Any()).DoAndReturn(func(job domain.ReplyJob) error {
			req.True(fixedNow.Add(aiDelay).Equal(job.ReadyAt))
			return nil
		})

		_, err := f.svc.SendMessage("alice", domain.AIThreadID, "Welcher Dübel?")
		req.NoError(err)
	})

	t.Run("full queue keeps the message", func(t *testing.T) {
		req := require.New(t)
		f := newThreadFixture(t, false)
		f.orchestrator.EXPECT().Dispatch(gomock.Any()).Return(errors.ErrReplyQueueFull)

		thread, err := f.svc.SendMessage("alice", "1", "Hallo")

		req.NoError(err)
		req.Len(thread.Messages, 2)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		f := newThreadFixture(t, false)
		_, err := f.svc.SendMessage("alice", "1", "   ")
		require.ErrorIs(t, err, errors.ErrEmptyMessageContent)
	})

	t.Run("too long content is rejected", func(t *testing.T) {
		f := newThreadFixture(t, false)
		_, err := f.svc.SendMessage("alice", "1", strings.Repeat("a", 101))
		require.ErrorIs(t, err, errors.ErrInvalidRequest)
	})

	t.Run("unknown thread", func(t *testing.T) {
		f := newThreadFixture(t, false)
		_, err := f.svc.SendMessage("alice", "99", "Hallo")
		require.ErrorIs(t, err, errors.ErrThreadNotFound)
	})
}

func TestThreadService_Reply_Expert(t *testing.T) {
	req := require.New(t)
	f := newThreadFixture(t, false)
	job := domain.ReplyJob{Key: domain.ThreadKey{UserID: "alice", ThreadID: "1"}}

	// Given a seeded user without unread messages
	unread, err := f.svc.HasUnreadMessages("alice", "1")
	req.NoError(err)
	req.False(unread)

	// When the expert answers
	thread, err := f.svc.Reply(context.Background(), job)

	// Then the picked canned reply is unread
	req.NoError(err)
	last := thread.Messages[len(thread.Messages)-1]
	req.Equal(domain.RoleAssistant, last.Role)
	req.Equal(cannedReplies[1], last.Content)
	req.False(last.Read)

	unread, err = f.svc.HasUnreadMessages("alice", "1")
	req.NoError(err)
	req.True(unread)

	// And marking as read clears it
	thread, err = f.svc.MarkThreadAsRead("alice", "1")
	req.NoError(err)
	req.False(thread.HasUnread())
	unread, err = f.svc.HasUnreadMessages("alice", "1")
	req.NoError(err)
	req.False(unread)
}

func TestThreadService_Reply_AI(t *testing.T) {
	job := domain.ReplyJob{Key: domain.ThreadKey{UserID: "alice", ThreadID: domain.AIThreadID}}

	t.Run("assistant answer", func(t *testing.T) {
		req := require.New(t)
		f := newThreadFixture(t, true)
		_, err := f.svc.Threads("alice")
		req.NoError(err)

		f.assistant.EXPECT().Complete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, history []domain.ChatMessage) (string, error) {
				req.Len(history, 1)
				req.Equal(domain.AIWelcomeMessage, history[0].Content)
				return "Nehmen Sie einen 8er Dübel.", nil
			})

		thread, err := f.svc.Reply(context.Background(), job)

		req.NoError(err)
		last := thread.Messages[len(thread.Messages)-1]
		req.Equal("Nehmen Sie einen 8er Dübel.", last.Content)
		req.True(last.Read)
	})

	t.Run("assistant failure falls back to the canned reply", func(t *testing.T) {
		req := require.New(t)
		f := newThreadFixture(t, true)
		_, err := f.svc.Threads("alice")
		req.NoError(err)
		f.assistant.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", stderrors.New("quota"))

		thread, err := f.svc.Reply(context.Background(), job)

		req.NoError(err)
		req.Equal(domain.AICannedReply, thread.Messages[len(thread.Messages)-1].Content)
	})

	t.Run("no assistant configured", func(t *testing.T) {
		req := require.New(t)
		f := newThreadFixture(t, false)
		_, err := f.svc.Threads("alice")
		req.NoError(err)

		thread, err := f.svc.Reply(context.Background(), job)

		req.NoError(err)
		req.Equal(domain.AICannedReply, thread.Messages[len(thread.Messages)-1].Content)
	})
}

func TestThreadService_StartExpertChat(t *testing.T) {
	req := require.New(t)
	f := newThreadFixture(t, false)

	// When starting a new conversation
	thread, err := f.svc.StartExpertChat("alice", "2")
	req.NoError(err)
	req.Equal("2", thread.ID)
	req.Len(thread.Messages, 1)
	req.Equal("Hallo! Hier ist Sam Rodriguez, Ihr Sanitär. Wie kann ich Ihnen helfen?", thread.Messages[0].Content)

	// Then starting it again keeps the existing thread
	f.orchestrator.EXPECT().Dispatch(gomock.Any()).Return(nil)
	_, err = f.svc.SendMessage("alice", "2", "Rohr undicht")
	req.NoError(err)
	again, err := f.svc.StartExpertChat("alice", "2")
	req.NoError(err)
	req.Len(again.Messages, 2)

	_, err = f.svc.StartExpertChat("alice", "42")
	req.ErrorIs(err, errors.ErrExpertNotFound)
}

func TestThreadService_UnknownThreadHasNoUnread(t *testing.T) {
	req := require.New(t)
	f := newThreadFixture(t, false)

	unread, err := f.svc.HasUnreadMessages("alice", "99")

	req.NoError(err)
	req.False(unread)
}

func TestThreadService_ResetAIChat(t *testing.T) {
	req := require.New(t)
	f := newThreadFixture(t, false)
	f.orchestrator.EXPECT().Dispatch(gomock.Any()).Return(nil)
	_, err := f.svc.SendMessage("alice", domain.AIThreadID, "Hallo")
	req.NoError(err)

	thread, err := f.svc.ResetAIChat("alice")

	req.NoError(err)
	req.Len(thread.Messages, 1)
	stored, err := f.svc.GetThread("alice", domain.AIThreadID)
	req.NoError(err)
	req.Len(stored.Messages, 1)
	req.Equal(domain.AIWelcomeMessage, stored.Messages[0].Content)
}

func TestThreadService_UpdateThreads(t *testing.T) {
	req := require.New(t)
	f := newThreadFixture(t, false)

	// When the record key and the thread id disagree
	err := f.svc.UpdateThreads("alice", domain.ThreadsRecord{
		"3": {ID: "wrong"},
	})
	req.NoError(err)

	// Then the key wins and the seeds are not handed out again
	record, err := f.svc.Threads("alice")
	req.NoError(err)
	req.Len(record, 1)
	req.Equal("3", record["3"].ID)
	req.NotNil(record["3"].Messages)

	req.ErrorIs(f.svc.UpdateThreads("alice", domain.ThreadsRecord{" ": {}}), errors.ErrInvalidRequest)
}

func TestThreadService_Watch(t *testing.T) {
	req := require.New(t)
	f := newThreadFixture(t, false)
	key := domain.ThreadKey{UserID: "alice", ThreadID: "1"}

	var registered string
	f.orchestrator.EXPECT().RegisterParticipant(gomock.Any(), key, gomock.Any()).
		Do(func(pID string, _ domain.ThreadKey, _ contract.EventSink) { registered = pID })
	f.orchestrator.EXPECT().UnregisterParticipant(gomock.Any(), key).
		Do(func(pID string, _ domain.ThreadKey) { req.Equal(registered, pID) })

	stream, stop, err := f.svc.Watch("alice", "1")
	req.NoError(err)
	req.NotNil(stream)
	stop()

	_, _, err = f.svc.Watch("alice", "99")
	req.ErrorIs(err, errors.ErrThreadNotFound)
}
