package runtime

import (
	"context"
	"testing"
	"werkstatt/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Sink struct {
	name string
}

func (s Sink) Consume(ctx context.Context, e domain.ThreadUpdated) error {
	return nil
}

func TestRegistry_Subscribe_One_Thread_One_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID := uuid.NewString()
	key := domain.ThreadKey{UserID: "7", ThreadID: "expert-1"}
	sink := Sink{name: "a"}

	// Given nobody watches anything
	req.Empty(registry.sessions)
	req.Empty(registry.threadWatchers)

	// When a participant watches a thread
	registry.Subscribe(participantID, key, sink)

	// Then
	req.Len(registry.sessions, 1)
	req.Equal(sink, registry.sessions[participantID])
	req.Len(registry.threadWatchers, 1)
	req.Contains(registry.threadWatchers[key], participantID)
	req.Len(registry.GetSinksForThread(key), 1)
	req.Contains(registry.GetSinksForThread(key), sink)
}

func TestRegistry_Subscribe_One_Thread_Multiple_Participants(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	key := domain.ThreadKey{UserID: "7", ThreadID: domain.AIThreadID}
	sink1 := Sink{name: "a"}
	sink2 := Sink{name: "b"}

	// When two tabs of the same user watch the thread
	registry.Subscribe(uuid.NewString(), key, sink1)
	registry.Subscribe(uuid.NewString(), key, sink2)

	// Then
	req.Len(registry.sessions, 2)
	req.Len(registry.threadWatchers[key], 2)
	sinks := registry.GetSinksForThread(key)
	req.Len(sinks, 2)
	req.Contains(sinks, sink1)
	req.Contains(sinks, sink2)
}

func TestRegistry_Threads_Are_Isolated_Per_User(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	mine := domain.ThreadKey{UserID: "7", ThreadID: "expert-1"}
	theirs := domain.ThreadKey{UserID: "8", ThreadID: "expert-1"}

	// Given a participant watching their own thread
	registry.Subscribe(uuid.NewString(), mine, Sink{name: "a"})

	// Then another user's thread with the same id has no watcher
	req.Nil(registry.GetSinksForThread(theirs))
	req.Len(registry.GetSinksForThread(mine), 1)
}

func TestRegistry_Unsubscribe_Last_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID := uuid.NewString()
	key := domain.ThreadKey{UserID: "7", ThreadID: "expert-1"}

	// Given a participant watches a thread
	registry.Subscribe(participantID, key, Sink{name: "a"})

	// When the participant leaves
	registry.Unsubscribe(participantID, key)

	// Then no participant and no thread entry are left
	req.Empty(registry.sessions)
	req.Empty(registry.threadWatchers)
	req.Nil(registry.GetSinksForThread(key))
}

func TestRegistry_Unsubscribe_One_Of_Many(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	participantID1 := uuid.NewString()
	participantID2 := uuid.NewString()
	key := domain.ThreadKey{UserID: "7", ThreadID: "expert-1"}
	sink2 := Sink{name: "b"}

	registry.Subscribe(participantID1, key, Sink{name: "a"})
	registry.Subscribe(participantID2, key, sink2)

	// When one participant leaves
	registry.Unsubscribe(participantID1, key)

	// Then only one participant is left
	req.Len(registry.sessions, 1)
	req.Len(registry.threadWatchers[key], 1)
	req.Contains(registry.GetSinksForThread(key), sink2)
}
