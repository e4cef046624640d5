package runtime

import (
	"sync"
	"werkstatt/contract"
	"werkstatt/domain"
)

type Set map[string]struct{}

// Registry maps live connections to the threads they watch.
type Registry struct {
	mu             sync.RWMutex
	sessions       map[string]contract.EventSink // participant -> sink
	threadWatchers map[domain.ThreadKey]Set      // thread -> participants
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:       make(map[string]contract.EventSink),
		threadWatchers: make(map[domain.ThreadKey]Set),
	}
}

// GetSinksForThread resolves the watchers of a thread into their sinks.
// Returns nil if nobody watches the thread.
func (r *Registry) GetSinksForThread(key domain.ThreadKey) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	watchers, ok := r.threadWatchers[key]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for participantID := range watchers {
		if sink, exists := r.sessions[participantID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers a participant's connection as a watcher of one thread.
func (r *Registry) Subscribe(participantID string, key domain.ThreadKey, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[participantID] = sink

	if _, ok := r.threadWatchers[key]; !ok {
		r.threadWatchers[key] = make(Set)
	}
	r.threadWatchers[key][participantID] = struct{}{}
}

// Unsubscribe removes the participant and drops the thread entry once nobody is left.
func (r *Registry) Unsubscribe(participantID string, key domain.ThreadKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, participantID)

	if watchers, ok := r.threadWatchers[key]; ok {
		delete(watchers, participantID)
		if len(watchers) == 0 {
			delete(r.threadWatchers, key)
		}
	}
}
