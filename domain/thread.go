package domain

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// AIThreadID identifies the assistant thread in a ThreadsRecord.
const AIThreadID = "ai"

const (
	AIWelcomeMessage = "Hallo! Ich bin Ihr Handwerker-Assistent. Wie kann ich Ihnen bei Ihrem DIY-Projekt oder einer Reparatur helfen?"
	AICannedReply    = "Danke für Ihre Nachricht! Ich helfe Ihnen gerne mit Ihrem DIY-Projekt. Könnten Sie mir mehr Details zu Ihrem Vorhaben geben?"
)

type ExpertMessage struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

type ChatThread struct {
	ID          string          `json:"id"`
	Expert      *Expert         `json:"expert,omitempty"`
	Messages    []ExpertMessage `json:"messages"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// ThreadsRecord maps a thread id to its thread.
type ThreadsRecord map[string]ChatThread

func (t ChatThread) IsAI() bool {
	return t.ID == AIThreadID
}

// HasUnread reports whether an assistant message has not been read yet.
func (t ChatThread) HasUnread() bool {
	for _, m := range t.Messages {
		if m.Role == RoleAssistant && !m.Read {
			return true
		}
	}
	return false
}

// MarkRead flags every message as read and reports whether anything changed.
func (t *ChatThread) MarkRead() bool {
	if !t.HasUnread() {
		return false
	}
	for i := range t.Messages {
		t.Messages[i].Read = true
	}
	return true
}

func (t *ChatThread) Append(msg ExpertMessage) {
	t.Messages = append(t.Messages, msg)
	t.LastUpdated = msg.Timestamp
}

// NewAIThread returns the assistant thread holding only the welcome message.
func NewAIThread(now time.Time) ChatThread {
	return ChatThread{
		ID: AIThreadID,
		Messages: []ExpertMessage{
			{Role: RoleAssistant, Content: AIWelcomeMessage, Timestamp: now, Read: true},
		},
		LastUpdated: now,
	}
}

// NewExpertThread opens a conversation with the expert's greeting.
func NewExpertThread(expert Expert, now time.Time) ChatThread {
	return ChatThread{
		ID:     expert.ID,
		Expert: &expert,
		Messages: []ExpertMessage{
			{Role: RoleAssistant, Content: ExpertGreeting(expert), Timestamp: now, Read: true},
		},
		LastUpdated: now,
	}
}

func ExpertGreeting(expert Expert) string {
	return fmt.Sprintf("Hallo! Hier ist %s, Ihr %s. Wie kann ich Ihnen helfen?", expert.Name, expert.Specialty)
}

// ThreadKey identifies one thread of one user.
type ThreadKey struct {
	UserID   string
	ThreadID string
}

// ReplyJob asks a reply worker to answer the latest user message of a thread
// once ReadyAt has passed.
type ReplyJob struct {
	Key     ThreadKey
	Content string
	ReadyAt time.Time
}

// ThreadUpdated is published to thread watchers whenever a reply lands.
type ThreadUpdated struct {
	Key    ThreadKey
	Thread ChatThread
	At     time.Time
}
