//go:generate go run go.uber.org/mock/mockgen -source=thread_service.go -destination=../mocks/mock_thread_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
	"werkstatt/ai"
	"werkstatt/contract"
	"werkstatt/domain"
	"werkstatt/errors"
	"werkstatt/moderation"
	"werkstatt/repositories"
	"werkstatt/sink"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IThreadService interface {
	Threads(userID string) (domain.ThreadsRecord, error)
	GetThread(userID, threadID string) (domain.ChatThread, error)
	StartExpertChat(userID, expertID string) (domain.ChatThread, error)
	SendMessage(userID, threadID, content string) (domain.ChatThread, error)
	HasUnreadMessages(userID, threadID string) (bool, error)
	MarkThreadAsRead(userID, threadID string) (domain.ChatThread, error)
	ResetAIChat(userID string) (domain.ChatThread, error)
	UpdateThreads(userID string, record domain.ThreadsRecord) error
	Watch(userID, threadID string) (*sink.StreamSink, func(), error)
}

type ThreadConfig struct {
	ExpertReplyDelay time.Duration
	AIReplyDelay     time.Duration
	MaxContentLength int
	WatchBuffer      int
}

// ThreadService owns the per-user chat threads. Sending a message stores it and
// queues a reply job; the reply itself is produced later by Reply, called from the
// reply workers.
type ThreadService struct {
	threads        repositories.IThreadRepository
	experts        IExpertService
	orchestrator   contract.IOrchestrator
	assistant      ai.Assistant
	sanitizer      moderation.ISanitizer
	initialThreads func(now time.Time) domain.ThreadsRecord
	expertReplies  []string
	cfg            ThreadConfig
	now            func() time.Time
	pick           func([]string) string
	log            *slog.Logger
}

var (
	_ IThreadService         = (*ThreadService)(nil)
	_ contract.ThreadReplier = (*ThreadService)(nil)
)

// NewThreadService builds the service. assistant may be nil, the AI thread then
// answers with the canned reply.
func NewThreadService(
	threads repositories.IThreadRepository,
	experts IExpertService,
	orchestrator contract.IOrchestrator,
	assistant ai.Assistant,
	sanitizer moderation.ISanitizer,
	initialThreads func(now time.Time) domain.ThreadsRecord,
	expertReplies []string,
	cfg ThreadConfig,
	log *slog.Logger) *ThreadService {
	if cfg.WatchBuffer <= 0 {
		cfg.WatchBuffer = 8
	}
	return &ThreadService{
		threads:        threads,
		experts:        experts,
		orchestrator:   orchestrator,
		assistant:      assistant,
		sanitizer:      sanitizer,
		initialThreads: initialThreads,
		expertReplies:  expertReplies,
		cfg:            cfg,
		now:            time.Now,
		pick:           lo.Sample[string],
		log:            log,
	}
}

// WithClock replaces the time source, used by tests.
func (s *ThreadService) WithClock(now func() time.Time) *ThreadService {
	s.now = now
	return s
}

// WithPicker replaces the random choice of canned expert replies.
func (s *ThreadService) WithPicker(pick func([]string) string) *ThreadService {
	s.pick = pick
	return s
}

// Threads returns the user's threads, handing out the initial ones on first access.
func (s *ThreadService) Threads(userID string) (domain.ThreadsRecord, error) {
	if err := s.ensureSeeded(userID); err != nil {
		return nil, err
	}
	return s.threads.GetThreads(userID)
}

func (s *ThreadService) GetThread(userID, threadID string) (domain.ChatThread, error) {
	if err := s.ensureSeeded(userID); err != nil {
		return domain.ChatThread{}, err
	}
	return s.threads.GetThread(userID, threadID)
}

// StartExpertChat opens the thread with the expert's greeting unless it already exists.
func (s *ThreadService) StartExpertChat(userID, expertID string) (domain.ChatThread, error) {
	expert, err := s.experts.GetExpert(expertID)
	if err != nil {
		return domain.ChatThread{}, err
	}
	if err = s.ensureSeeded(userID); err != nil {
		return domain.ChatThread{}, err
	}
	thread, err := s.threads.GetThread(userID, expert.ID)
	if err == nil {
		return thread, nil
	}
	if !stderrors.Is(err, errors.ErrThreadNotFound) {
		return domain.ChatThread{}, err
	}
	thread = domain.NewExpertThread(expert, s.now().UTC())
	if err = s.threads.SaveThread(userID, thread); err != nil {
		return domain.ChatThread{}, err
	}
	s.log.Debug("Expert chat started", "user", userID, "expert", expert.ID)
	return thread, nil
}

// SendMessage appends the user's message and schedules the counterpart reply.
// A full reply queue does not fail the call, the message is already stored.
func (s *ThreadService) SendMessage(userID, threadID, content string) (domain.ChatThread, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.ChatThread{}, errors.ErrEmptyMessageContent
	}
	if s.cfg.MaxContentLength > 0 && utf8.RuneCountInString(content) > s.cfg.MaxContentLength {
		return domain.ChatThread{}, fmt.Errorf("%w: message longer than %d characters", errors.ErrInvalidRequest, s.cfg.MaxContentLength)
	}
	if err := s.ensureSeeded(userID); err != nil {
		return domain.ChatThread{}, err
	}

	clean := s.sanitizer.Sanitize(content)
	now := s.now().UTC()
	thread, err := s.threads.UpdateThread(userID, threadID, func(t *domain.ChatThread) (bool, error) {
		t.Append(domain.ExpertMessage{Role: domain.RoleUser, Content: clean.Content, Timestamp: now, Read: true})
		return true, nil
	})
	if err != nil {
		return domain.ChatThread{}, err
	}

	delay := s.cfg.ExpertReplyDelay
	if thread.IsAI() {
		delay = s.cfg.AIReplyDelay
	}
	job := domain.ReplyJob{
		Key:     domain.ThreadKey{UserID: userID, ThreadID: threadID},
		Content: clean.Content,
		ReadyAt: now.Add(delay),
	}
	if err = s.orchestrator.Dispatch(job); err != nil {
		s.log.Warn("Reply not scheduled", "user", userID, "thread", threadID, "error", err)
	}
	return thread, nil
}

// Reply appends the counterpart answer for a queued job.
// Expert threads get a random canned reply marked unread. The AI thread asks the
// assistant and falls back to the canned AI reply, marked read.
func (s *ThreadService) Reply(ctx context.Context, job domain.ReplyJob) (domain.ChatThread, error) {
	thread, err := s.threads.GetThread(job.Key.UserID, job.Key.ThreadID)
	if err != nil {
		return domain.ChatThread{}, err
	}

	msg := domain.ExpertMessage{Role: domain.RoleAssistant}
	if thread.IsAI() {
		msg.Content = s.assistantReply(ctx, thread)
		msg.Read = true
	} else {
		msg.Content = s.pick(s.expertReplies)
		msg.Read = false
	}

	return s.threads.UpdateThread(job.Key.UserID, job.Key.ThreadID, func(t *domain.ChatThread) (bool, error) {
		msg.Timestamp = s.now().UTC()
		t.Append(msg)
		return true, nil
	})
}

func (s *ThreadService) assistantReply(ctx context.Context, thread domain.ChatThread) string {
	if s.assistant == nil {
		return domain.AICannedReply
	}
	history := lo.Map(thread.Messages, func(m domain.ExpertMessage, _ int) domain.ChatMessage {
		return domain.ChatMessage{Role: m.Role, Content: m.Content}
	})
	text, err := s.assistant.Complete(ctx, history)
	if err != nil {
		s.log.Warn("Assistant unavailable, sending canned reply", "error", err)
		return domain.AICannedReply
	}
	return text
}

// HasUnreadMessages reports false for a thread that does not exist.
func (s *ThreadService) HasUnreadMessages(userID, threadID string) (bool, error) {
	thread, err := s.GetThread(userID, threadID)
	if stderrors.Is(err, errors.ErrThreadNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return thread.HasUnread(), nil
}

// MarkThreadAsRead writes only when an unread message exists.
func (s *ThreadService) MarkThreadAsRead(userID, threadID string) (domain.ChatThread, error) {
	if err := s.ensureSeeded(userID); err != nil {
		return domain.ChatThread{}, err
	}
	return s.threads.UpdateThread(userID, threadID, func(t *domain.ChatThread) (bool, error) {
		return t.MarkRead(), nil
	})
}

// ResetAIChat replaces the assistant thread with the welcome message only.
func (s *ThreadService) ResetAIChat(userID string) (domain.ChatThread, error) {
	if err := s.ensureSeeded(userID); err != nil {
		return domain.ChatThread{}, err
	}
	thread := domain.NewAIThread(s.now().UTC())
	if err := s.threads.SaveThread(userID, thread); err != nil {
		return domain.ChatThread{}, err
	}
	return thread, nil
}

// UpdateThreads replaces the whole record. Map keys win over thread ids.
func (s *ThreadService) UpdateThreads(userID string, record domain.ThreadsRecord) error {
	normalized := make(domain.ThreadsRecord, len(record))
	for id, thread := range record {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: empty thread id", errors.ErrInvalidRequest)
		}
		thread.ID = id
		if thread.Messages == nil {
			thread.Messages = []domain.ExpertMessage{}
		}
		normalized[id] = thread
	}
	return s.threads.ReplaceThreads(userID, normalized)
}

// Watch subscribes a new stream to the thread. The returned func unsubscribes and closes it.
func (s *ThreadService) Watch(userID, threadID string) (*sink.StreamSink, func(), error) {
	if _, err := s.GetThread(userID, threadID); err != nil {
		return nil, nil, err
	}
	key := domain.ThreadKey{UserID: userID, ThreadID: threadID}
	participantID := uuid.NewString()
	stream := sink.NewStreamSink(s.cfg.WatchBuffer)
	s.orchestrator.RegisterParticipant(participantID, key, stream)

	return stream, func() {
		s.orchestrator.UnregisterParticipant(participantID, key)
		stream.Close()
	}, nil
}

func (s *ThreadService) ensureSeeded(userID string) error {
	seeded, err := s.threads.SeedIfAbsent(userID, func() domain.ThreadsRecord {
		return s.initialThreads(s.now().UTC())
	})
	if err != nil {
		return err
	}
	if seeded {
		s.log.Debug("Initial threads handed out", "user", userID)
	}
	return nil
}
